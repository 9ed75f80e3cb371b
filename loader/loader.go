// Package loader reads adventure content from a directory: a JSON bundle
// (adventure.json) describing the world, plus optional Lua scripts that
// register event hooks and custom commands against the running game.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/adventurecore/types"
)

// BundleFile is the required world-data file inside an adventure directory.
const BundleFile = "adventure.json"

// Load reads the adventure bundle and discovers its Lua scripts. Scripts
// are returned as absolute paths, main.lua first and the rest alphabetical,
// to be run against a ScriptHost after the game is constructed.
func Load(dir string) (*types.Bundle, []string, error) {
	data, err := os.ReadFile(filepath.Join(dir, BundleFile))
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", BundleFile, err)
	}
	var bundle types.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", BundleFile, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading adventure directory %s: %w", dir, err)
	}
	var scripts []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			scripts = append(scripts, e.Name())
		}
	}
	scripts = sortedScripts(scripts)
	for i, s := range scripts {
		scripts[i] = filepath.Join(dir, s)
	}
	return &bundle, scripts, nil
}

// sortedScripts puts main.lua first; the rest run alphabetically.
func sortedScripts(files []string) []string {
	sort.Slice(files, func(i, j int) bool {
		if files[i] == "main.lua" {
			return files[j] != "main.lua"
		}
		if files[j] == "main.lua" {
			return false
		}
		return files[i] < files[j]
	})
	return files
}
