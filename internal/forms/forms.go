// Package forms holds the form state objects that edit the active resume.
//
// A form validates its Values locally before any store call; a failed
// validation returns *ValidationError and leaves the store untouched.
// List forms (experience, education, skills, projects) share edit-mode
// semantics: Edit loads an entry and switches Submit to update-by-id,
// Cancel restores defaults, Delete removes by id.
package forms

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the slice of the store the resume forms need.
type ResumeStore interface {
	ActiveResume() (types.Resume, bool)
	UpdateResume(ctx context.Context, id string, patch types.ResumePatch) (types.Resume, error)
}

// ErrNoActiveResume is returned when a form is used with no active resume.
var ErrNoActiveResume = errors.New("no active resume")

// ErrEntryNotFound is returned when Edit or Delete names an entry the
// active resume does not have.
var ErrEntryNotFound = errors.New("entry not found in active resume")

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Form   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("validation error in %s form: %s", e.Form, strings.Join(parts, "; "))
}

// Message returns the message for field, if it failed.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

// DuplicateSkillError is returned when a skill name clashes with another
// skill of the same resume.
type DuplicateSkillError struct {
	Name string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("skill %q already exists in this resume", e.Name)
}

// validate checks v against its struct tags. messages maps "field.tag" to
// the message shown for that failure.
func validate(form string, v any, messages map[string]string) error {
	err := types.Validate(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Form: form}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// appendTrimmed appends s when it is non-empty after trimming and, if
// unique is set, not already present.
func appendTrimmed(list []string, s string, unique bool) []string {
	s = strings.TrimSpace(s)
	if s == "" || (unique && slices.Contains(list, s)) {
		return list
	}
	return append(list, s)
}

func removeAt(list []string, i int) []string {
	if i < 0 || i >= len(list) {
		return list
	}
	return slices.Delete(slices.Clone(list), i, i+1)
}

// listEditor holds the edit-mode state shared by the list forms.
type listEditor[T any] struct {
	store   ResumeStore
	editing string
	items   func(types.Resume) []T
	idOf    func(T) string
	withID  func(T, string) T
	patch   func([]T) types.ResumePatch
}

func (e *listEditor[T]) active() (types.Resume, error) {
	r, ok := e.store.ActiveResume()
	if !ok {
		return types.Resume{}, ErrNoActiveResume
	}
	return r, nil
}

func (e *listEditor[T]) find(id string) (T, error) {
	var zero T
	r, err := e.active()
	if err != nil {
		return zero, err
	}
	for _, item := range e.items(r) {
		if e.idOf(item) == id {
			return item, nil
		}
	}
	return zero, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
}

// save adds item, or replaces the entry being edited, and returns the
// entry as stored.
func (e *listEditor[T]) save(ctx context.Context, item T) (T, error) {
	var zero T
	r, err := e.active()
	if err != nil {
		return zero, err
	}
	list := slices.Clone(e.items(r))

	var id string
	if e.editing != "" {
		id = e.editing
		idx := slices.IndexFunc(list, func(x T) bool { return e.idOf(x) == id })
		if idx < 0 {
			return zero, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
		}
		list[idx] = e.withID(item, id)
	} else {
		id = ids.NewUnique(func(candidate string) bool {
			return slices.ContainsFunc(list, func(x T) bool { return e.idOf(x) == candidate })
		})
		list = append(list, e.withID(item, id))
	}

	updated, err := e.store.UpdateResume(ctx, r.ID, e.patch(list))
	if err != nil {
		return zero, err
	}
	e.editing = ""
	for _, x := range e.items(updated) {
		if e.idOf(x) == id {
			return x, nil
		}
	}
	return zero, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
}

func (e *listEditor[T]) remove(ctx context.Context, id string) error {
	r, err := e.active()
	if err != nil {
		return err
	}
	list := e.items(r)
	idx := slices.IndexFunc(list, func(x T) bool { return e.idOf(x) == id })
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, id)
	}
	if _, err := e.store.UpdateResume(ctx, r.ID, e.patch(slices.Delete(slices.Clone(list), idx, idx+1))); err != nil {
		return err
	}
	if e.editing == id {
		e.editing = ""
	}
	return nil
}
