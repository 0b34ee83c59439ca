package jobs

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
)

// ApplicationStore is the slice of the store that applying needs.
type ApplicationStore interface {
	ActiveResumeID() string
	AddJobApplication(ctx context.Context, a types.JobApplication) (types.JobApplication, error)
}

// Apply records an Applied application for job with the active resume.
// Company and position are copied from the job.
func Apply(ctx context.Context, s ApplicationStore, job types.Job) (types.JobApplication, error) {
	resumeID := s.ActiveResumeID()
	if resumeID == "" {
		return types.JobApplication{}, ErrNoActiveResume
	}
	return s.AddJobApplication(ctx, types.JobApplication{
		JobID:    job.ID,
		ResumeID: resumeID,
		Status:   types.StatusApplied,
		Company:  job.Company,
		Position: job.Title,
	})
}
