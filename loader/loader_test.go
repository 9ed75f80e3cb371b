package loader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const bundleJSON = `{
  "adventure": {"name": "Test Caverns", "first_room_id": 1},
  "rooms": [
    {"id": 1, "name": "Courtyard", "description": "A walled courtyard.",
     "exits": [{"direction": "north", "room_id": 2}]},
    {"id": 2, "name": "Cellar", "exits": [{"direction": "south", "room_id": 1}]}
  ],
  "artifacts": [
    {"id": 1, "name": "sword", "type": 2, "dice": 1, "sides": 8, "room_id": 1}
  ],
  "player": {"name": "Hero", "hardiness": 12, "agility": 10}
}`

func writeAdventure(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadParsesBundle(t *testing.T) {
	dir := writeAdventure(t, map[string]string{BundleFile: bundleJSON})
	bundle, scripts, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if bundle.Adventure.Name != "Test Caverns" {
		t.Errorf("name = %q", bundle.Adventure.Name)
	}
	if len(bundle.Rooms) != 2 || len(bundle.Artifacts) != 1 {
		t.Errorf("rooms=%d artifacts=%d", len(bundle.Rooms), len(bundle.Artifacts))
	}
	if len(scripts) != 0 {
		t.Errorf("scripts = %v, want none", scripts)
	}
}

func TestLoadScriptOrder(t *testing.T) {
	dir := writeAdventure(t, map[string]string{
		BundleFile:   bundleJSON,
		"combat.lua": "",
		"main.lua":   "",
		"alpha.lua":  "",
		"notes.txt":  "ignored",
	})
	_, scripts, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range scripts {
		names = append(names, filepath.Base(s))
	}
	want := []string{"main.lua", "alpha.lua", "combat.lua"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("scripts = %v, want %v", names, want)
	}
	for _, s := range scripts {
		if !filepath.IsAbs(s) {
			t.Errorf("script path %q is not absolute", s)
		}
	}
}

func TestLoadMissingBundle(t *testing.T) {
	if _, _, err := Load(t.TempDir()); err == nil ||
		!strings.Contains(err.Error(), BundleFile) {
		t.Errorf("err = %v", err)
	}
}

func TestLoadMalformedBundle(t *testing.T) {
	dir := writeAdventure(t, map[string]string{BundleFile: "{not json"})
	if _, _, err := Load(dir); err == nil ||
		!strings.Contains(err.Error(), "parsing") {
		t.Errorf("err = %v", err)
	}
}
