package jobs

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// skillAliases maps common spellings to the term used for matching.
var skillAliases = map[string]string{
	"golang":    "go",
	"go lang":   "go",
	"js":        "javascript",
	"ts":        "typescript",
	"k8s":       "kubernetes",
	"react.js":  "react",
	"reactjs":   "react",
	"vue.js":    "vue",
	"vuejs":     "vue",
	"nodejs":    "node.js",
	"node":      "node.js",
	"postgres":  "postgresql",
	"psql":      "postgresql",
	"aws cloud": "aws",
	"gcp":       "google cloud",
	"ml":        "machine learning",
	"c sharp":   "c#",
	"py":        "python",
}

// aliasesOf maps a canonical term to the spellings that resolve to it.
var aliasesOf = func() map[string][]string {
	out := map[string][]string{}
	for alias, canonical := range skillAliases {
		out[canonical] = append(out[canonical], alias)
	}
	for _, v := range out {
		slices.Sort(v)
	}
	return out
}()

// variants returns term and its known aliases.
func variants(term string) []string {
	return append([]string{term}, aliasesOf[term]...)
}

// mentions reports whether text contains term or one of its aliases.
func mentions(text, term string) bool {
	for _, v := range variants(term) {
		if containsTerm(text, v) {
			return true
		}
	}
	return false
}

// normalizeTerm lowercases and collapses a skill or requirement phrase and
// resolves known aliases.
func normalizeTerm(s string) string {
	t := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if canonical, ok := skillAliases[t]; ok {
		return canonical
	}
	return t
}

// isTermRune reports whether r can be part of a term. Symbols that appear
// inside technology names (c++, c#, node.js, ci/cd) count.
func isTermRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+#", r)
}

// containsTerm reports whether term occurs in text on term boundaries.
// Both are expected to be normalized.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; start <= len(text)-len(term); {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		next, _ := utf8.DecodeRuneInString(text[end:])
		if (i == 0 || !isTermRune(prev)) && (end == len(text) || !isTermRune(next)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		start = i + size
	}
	return false
}
