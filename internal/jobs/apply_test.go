package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	s := store.New(storage.NewMemory())
	resume, err := s.AddResume(ctx, types.Resume{Title: "Main"})
	require.NoError(t, err)
	job, err := s.SaveJob(ctx, types.Job{Title: "Frontend Developer", Company: "Acme"})
	require.NoError(t, err)

	app, err := Apply(ctx, s, job)
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, resume.ID, app.ResumeID)
	assert.Equal(t, types.StatusApplied, app.Status)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Frontend Developer", app.Position)
	assert.False(t, app.DateApplied.IsZero())
	assert.Len(t, s.JobApplications(), 1)
}

func TestApply_NoActiveResume(t *testing.T) {
	s := store.New(storage.NewMemory())

	_, err := Apply(context.Background(), s, types.Job{ID: "j1", Title: "Dev", Company: "Acme"})
	assert.ErrorIs(t, err, ErrNoActiveResume)
	assert.Empty(t, s.JobApplications())
}
