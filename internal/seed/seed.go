// Package seed builds the sample state shown to first-time users: one resume with a
// cover letter, saved jobs, tracked applications, and an interview prep.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed sample.json
var sampleJSON []byte

type sampleApplication struct {
	JobIndex        int                  `json:"jobIndex"`
	WithCoverLetter bool                 `json:"withCoverLetter"`
	Application     types.JobApplication `json:"application"`
}

type samplePrep struct {
	Title         string `json:"title"`
	JobIndex      int    `json:"jobIndex"`
	QuestionCount int    `json:"questionCount"`
	Notes         string `json:"notes"`
}

type sample struct {
	User         types.User                `json:"user"`
	Resume       types.Resume              `json:"resume"`
	CoverLetter  types.CoverLetter         `json:"coverLetter"`
	Jobs         []types.Job               `json:"jobs"`
	Applications []sampleApplication       `json:"applications"`
	Questions    []types.InterviewQuestion `json:"questions"`
	Prep         samplePrep                `json:"prep"`
}

func load() (sample, error) {
	var s sample
	if err := json.Unmarshal(sampleJSON, &s); err != nil {
		return sample{}, fmt.Errorf("failed to parse sample data: %w", err)
	}
	return s, nil
}

// Questions returns the sample interview question bank with fresh ids.
func Questions() []types.InterviewQuestion {
	s, err := load()
	if err != nil {
		panic(err)
	}
	for i := range s.Questions {
		s.Questions[i].ID = ids.New()
	}
	return s.Questions
}

// State builds the sample state with fresh identifiers and timestamps at now.
// Every cross reference points at an entity in the returned state.
func State(now time.Time) (store.State, error) {
	s, err := load()
	if err != nil {
		return store.State{}, err
	}
	now = now.UTC()

	user := s.User
	user.ID = ids.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	resume := s.Resume
	resume.ID = ids.New()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	for i := range resume.Experiences {
		resume.Experiences[i].ID = ids.New()
	}
	for i := range resume.Education {
		resume.Education[i].ID = ids.New()
	}
	for i := range resume.Skills {
		resume.Skills[i].ID = ids.New()
	}
	for i := range resume.Projects {
		resume.Projects[i].ID = ids.New()
	}
	for i := range resume.Certificates {
		resume.Certificates[i].ID = ids.New()
	}
	for i := range resume.Languages {
		resume.Languages[i].ID = ids.New()
	}
	resume.Normalize()
	user.Preferences.DefaultResumeID = resume.ID

	letter := s.CoverLetter
	letter.ID = ids.New()
	letter.ResumeID = resume.ID
	letter.CreatedAt = now
	letter.UpdatedAt = now

	jobs := s.Jobs
	for i := range jobs {
		jobs[i].ID = ids.New()
	}

	apps := make([]types.JobApplication, 0, len(s.Applications))
	for _, sa := range s.Applications {
		if sa.JobIndex < 0 || sa.JobIndex >= len(jobs) {
			return store.State{}, fmt.Errorf("sample application references job %d of %d", sa.JobIndex, len(jobs))
		}
		app := sa.Application
		app.ID = ids.New()
		app.JobID = jobs[sa.JobIndex].ID
		app.ResumeID = resume.ID
		if sa.WithCoverLetter {
			app.CoverLetterID = letter.ID
		}
		for i := range app.Interviews {
			app.Interviews[i].ID = ids.New()
			app.Interviews[i].ApplicationID = app.ID
		}
		for i := range app.FollowUps {
			app.FollowUps[i].ID = ids.New()
			app.FollowUps[i].ApplicationID = app.ID
		}
		app.Normalize()
		apps = append(apps, app)
	}

	questions := s.Questions
	for i := range questions {
		questions[i].ID = ids.New()
	}
	count := min(s.Prep.QuestionCount, len(questions))
	prep := types.InterviewPrep{
		ID:        ids.New(),
		Title:     s.Prep.Title,
		ResumeID:  resume.ID,
		JobID:     jobs[s.Prep.JobIndex].ID,
		CreatedAt: now,
		UpdatedAt: now,
		Questions: append([]types.InterviewQuestion(nil), questions[:count]...),
		Notes:     s.Prep.Notes,
	}

	return store.State{
		User:                 &user,
		Resumes:              []types.Resume{resume},
		ActiveResumeID:       resume.ID,
		CoverLetters:         []types.CoverLetter{letter},
		ActiveCoverLetterID:  letter.ID,
		SavedJobs:            jobs,
		JobApplications:      apps,
		InterviewPreps:       []types.InterviewPrep{prep},
		VideoResumes:         []types.VideoResume{},
		ResumeTemplates:      templates.Resume(),
		CoverLetterTemplates: templates.CoverLetter(),
	}, nil
}
