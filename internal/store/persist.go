package store

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/jonathan/resume-builder/internal/schemas"
	storeschema "github.com/jonathan/resume-builder/schemas"
)

// Persisted layout
const (
	StorageKey     = "resume-builder-store"
	CurrentVersion = 1
)

type envelope struct {
	Version int   `json:"version"`
	State   State `json:"state"`
}

// migration upgrades a raw document from version n to n+1.
type migration func(doc map[string]any) (map[string]any, error)

var storeSchema = schemas.MustCompile("store.schema.json", storeschema.Store)

var migrations = map[int]migration{
	0: migrateV0,
}

// Encode serializes the state in the current persisted layout.
func Encode(st State) ([]byte, error) {
	return json.Marshal(envelope{Version: CurrentVersion, State: st})
}

// Decode parses a persisted document of any known version, upgrades it to the
// current layout, validates it against the store schema, and returns the state.
func Decode(data []byte) (State, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, &MigrationError{Message: "persisted state is not a JSON object", Cause: err}
	}

	version := 0
	if v, ok := doc["version"].(float64); ok {
		version = int(v)
	}
	if version > CurrentVersion {
		return State{}, &MigrationError{Version: version, Message: fmt.Sprintf("unsupported version (newest known is %d)", CurrentVersion)}
	}

	for v := version; v < CurrentVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return State{}, &MigrationError{Version: v, Message: "no migration available"}
		}
		next, err := migrate(doc)
		if err != nil {
			return State{}, &MigrationError{Version: v, Message: "migration failed", Cause: err}
		}
		doc = next
		doc["version"] = v + 1
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return State{}, &MigrationError{Version: version, Message: "failed to re-encode document", Cause: err}
	}
	if err := storeSchema.Validate(normalized); err != nil {
		return State{}, &MigrationError{Version: version, Message: "persisted state does not match schema", Cause: err}
	}

	var env envelope
	if err := json.Unmarshal(normalized, &env); err != nil {
		return State{}, &MigrationError{Version: version, Message: "failed to decode state", Cause: err}
	}
	env.State.normalize()
	return env.State, nil
}

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// migrateV0 upgrades the legacy layout: a bare state object or a {"state", "version": 0}
// wrapper with optional collections, date-only application dates, and current jobs that
// may still carry an end date.
func migrateV0(doc map[string]any) (map[string]any, error) {
	state, ok := doc["state"].(map[string]any)
	if !ok {
		if _, bare := doc["resumes"]; !bare {
			return nil, fmt.Errorf("document has neither a state object nor a resumes collection")
		}
		state = doc
	}

	for _, key := range []string{"resumes", "coverLetters", "savedJobs", "jobApplications", "interviewPreps", "videoResumes"} {
		if _, ok := state[key].([]any); !ok {
			state[key] = []any{}
		}
	}

	for _, r := range objects(state["resumes"]) {
		for _, key := range []string{"experiences", "education", "skills", "projects", "certificates", "languages"} {
			if _, ok := r[key].([]any); !ok {
				r[key] = []any{}
			}
		}
		if _, ok := r["templateId"].(string); !ok {
			r["templateId"] = ""
		}
		for _, exp := range objects(r["experiences"]) {
			if current, _ := exp["current"].(bool); current {
				exp["endDate"] = ""
			}
			if _, ok := exp["current"].(bool); !ok {
				exp["current"] = false
			}
			if _, ok := exp["highlights"].([]any); !ok {
				exp["highlights"] = []any{}
			}
		}
		for _, p := range objects(r["projects"]) {
			if _, ok := p["technologies"].([]any); !ok {
				p["technologies"] = []any{}
			}
		}
		for _, sk := range objects(r["skills"]) {
			if level, ok := sk["level"].(float64); ok && level == 0 {
				delete(sk, "level")
			}
		}
	}

	for _, app := range objects(state["jobApplications"]) {
		for _, key := range []string{"dateApplied", "dateUpdated"} {
			if s, ok := app[key].(string); ok && dateOnly.MatchString(s) {
				app[key] = s + "T00:00:00Z"
			}
		}
		for _, key := range []string{"interviews", "followUps"} {
			if _, ok := app[key].([]any); !ok {
				app[key] = []any{}
			}
		}
	}

	return map[string]any{"version": 0, "state": state}, nil
}

func objects(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
