package main

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeCommands_Lifecycle(t *testing.T) {
	dir := newDataDir(t, false)

	out := mustRun(t, dir, "resume", "list")
	assert.Contains(t, out, "No resumes yet")

	first := idFrom(t, mustRun(t, dir, "resume", "new", "--title", "Backend"))
	second := idFrom(t, mustRun(t, dir, "resume", "new", "--title", "Frontend", "--template", "template-minimal"))

	s := openStore(t, dir)
	require.Len(t, s.Resumes(), 2)
	assert.Equal(t, second, s.ActiveResumeID())
	r, err := s.Resume(first)
	require.NoError(t, err)
	assert.Equal(t, templates.DefaultResumeTemplate, r.TemplateID)

	mustRun(t, dir, "resume", "use", first)
	out = mustRun(t, dir, "resume", "list")
	assert.Regexp(t, `\*\s+`+first+`\s+Backend`, out)

	mustRun(t, dir, "resume", "rename", second, "Frontend v2")
	r, err = openStore(t, dir).Resume(second)
	require.NoError(t, err)
	assert.Equal(t, "Frontend v2", r.Title)

	mustRun(t, dir, "resume", "delete", first)
	s = openStore(t, dir)
	assert.Len(t, s.Resumes(), 1)
	assert.Equal(t, second, s.ActiveResumeID())
}

func TestResumeNew_RequiresTitle(t *testing.T) {
	dir := newDataDir(t, false)

	_, err := run(t, dir, "resume", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestResumeUse_UnknownID(t *testing.T) {
	dir := newDataDir(t, false)

	_, err := run(t, dir, "resume", "use", "missing")
	require.Error(t, err)
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestResumeShow_JSON(t *testing.T) {
	dir := newDataDir(t, true)

	out := mustRun(t, dir, "resume", "show", "--json")
	var r types.Resume
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Alex", r.PersonalInfo.FirstName)
	assert.Len(t, r.Experiences, 2)
}

func TestResumeShow_Summary(t *testing.T) {
	dir := newDataDir(t, true)

	out := mustRun(t, dir, "resume", "show")
	assert.Contains(t, out, "RESUME")
	assert.Contains(t, out, "Alex Johnson")
}

func TestSeed_OnlyOnFirstRun(t *testing.T) {
	dir := newDataDir(t, true)

	mustRun(t, dir, "resume", "list")
	s := openStore(t, dir)
	require.Len(t, s.Resumes(), 1)
	id := s.ActiveResumeID()

	mustRun(t, dir, "resume", "delete", id)
	mustRun(t, dir, "resume", "list")
	assert.Empty(t, openStore(t, dir).Resumes())
}

func TestNoActiveResume(t *testing.T) {
	dir := newDataDir(t, false)

	_, err := run(t, dir, "skill", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active resume")
}
