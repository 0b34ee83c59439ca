// Package prompts holds the text templates used for generated prose.
// canned.json carries the deterministic placeholder texts and generation.json
// the language model prompts. Both are embedded.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"text/template"
)

//go:embed *.json
var files embed.FS

// set is one prompt file, parsed, keyed by prompt name.
type set map[string]*template.Template

var (
	mu     sync.Mutex
	loaded = map[string]set{}
)

// Error is a prompt that could not be loaded or rendered.
type Error struct {
	File    string
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	where := e.File
	if e.Key != "" {
		where += "#" + e.Key
	}
	if e.Cause != nil {
		return fmt.Sprintf("prompt %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("prompt %s: %s", where, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Render fills prompt key of file with data. Placeholders are {{.Name}};
// one without a value renders empty.
func Render(file, key string, data map[string]string) (string, error) {
	s, err := load(file)
	if err != nil {
		return "", err
	}
	t, ok := s[key]
	if !ok {
		return "", &Error{File: file, Key: key, Message: "no such prompt"}
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", &Error{File: file, Key: key, Message: "failed to render", Cause: err}
	}
	return sb.String(), nil
}

// Keys lists the prompt names in file, sorted.
func Keys(file string) ([]string, error) {
	s, err := load(file)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// load parses file once and keeps it for the life of the process.
func load(file string) (set, error) {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := loaded[file]; ok {
		return s, nil
	}

	data, err := files.ReadFile(file)
	if err != nil {
		return nil, &Error{File: file, Message: "failed to read", Cause: err}
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{File: file, Message: "failed to parse", Cause: err}
	}

	s := make(set, len(raw))
	for key, text := range raw {
		t, err := template.New(key).Option("missingkey=zero").Parse(text)
		if err != nil {
			return nil, &Error{File: file, Key: key, Message: "invalid template", Cause: err}
		}
		s[key] = t
	}
	loaded[file] = s
	return s, nil
}
