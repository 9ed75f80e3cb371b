// Package parser splits raw player input into verb and argument and
// resolves the verb against the registered command verbs.
// Intentionally dumb: no NLP, just exact-then-prefix matching.
package parser

import (
	"sort"
	"strings"
)

// Result is the outcome of resolving one line of input.
type Result struct {
	Verb string // the registered verb that matched (empty if none)
	Arg  string
	// Candidates lists the registered verbs an ambiguous prefix matched.
	Candidates []string
}

// Matched reports whether exactly one registered verb was found.
func (r Result) Matched() bool { return r.Verb != "" }

// Ambiguous reports whether the input prefix matched several verbs.
func (r Result) Ambiguous() bool { return len(r.Candidates) > 1 }

// Split breaks input on the first whitespace into verb and argument.
// The verb is lowercased; the argument keeps its internal spacing.
func Split(input string) (verb, arg string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ""
	}
	if i := strings.IndexAny(input, " \t"); i >= 0 {
		return strings.ToLower(input[:i]), strings.TrimSpace(input[i+1:])
	}
	return strings.ToLower(input), ""
}

// Resolve matches input against the registered verb list: an exact match
// wins outright; otherwise every registered verb the input is a prefix of
// is collected, and a unique candidate resolves. Zero candidates yield an
// unmatched Result; several yield an ambiguous one for disambiguation.
func Resolve(verbs []string, input string) Result {
	verb, arg := Split(input)
	if verb == "" {
		return Result{}
	}

	for _, v := range verbs {
		if v == verb {
			return Result{Verb: v, Arg: arg}
		}
	}

	var candidates []string
	for _, v := range verbs {
		if strings.HasPrefix(v, verb) {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)

	switch len(candidates) {
	case 0:
		return Result{Arg: arg}
	case 1:
		return Result{Verb: candidates[0], Arg: arg}
	default:
		return Result{Arg: arg, Candidates: candidates}
	}
}
