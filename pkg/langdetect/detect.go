// Package langdetect identifies the programming language of target
// files. It backs the --lang eligibility filter, using go-enry's
// filename and content classification.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detect returns the lowercased language name for a file, or "" when
// detection fails. The filename usually decides; contents break ties
// for ambiguous extensions such as .h.
func Detect(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	return strings.ToLower(lang)
}

// Matcher restricts files to a set of languages.
type Matcher struct {
	langs map[string]struct{}
}

// NewMatcher builds a Matcher for the given language names, compared
// case-insensitively. An empty set matches every file.
func NewMatcher(langs []string) *Matcher {
	m := &Matcher{langs: make(map[string]struct{}, len(langs))}
	for _, lang := range langs {
		m.langs[strings.ToLower(strings.TrimSpace(lang))] = struct{}{}
	}
	return m
}

// Match reports whether the file's detected language is in the set.
func (m *Matcher) Match(path string, content []byte) bool {
	if m == nil || len(m.langs) == 0 {
		return true
	}
	_, ok := m.langs[Detect(path, content)]
	return ok
}
