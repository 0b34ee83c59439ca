package store

import (
	"slices"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// State is the whole client state. It is the unit of persistence.
type State struct {
	User                 *types.User            `json:"user"`
	Resumes              []types.Resume         `json:"resumes"`
	ActiveResumeID       string                 `json:"activeResumeId"`
	CoverLetters         []types.CoverLetter    `json:"coverLetters"`
	ActiveCoverLetterID  string                 `json:"activeCoverLetterId"`
	SavedJobs            []types.Job            `json:"savedJobs"`
	JobApplications      []types.JobApplication `json:"jobApplications"`
	InterviewPreps       []types.InterviewPrep  `json:"interviewPreps"`
	VideoResumes         []types.VideoResume    `json:"videoResumes"`
	ResumeTemplates      []types.Template       `json:"resumeTemplates"`
	CoverLetterTemplates []types.Template       `json:"coverLetterTemplates"`
}

// EmptyState returns a state with no documents and the built-in template catalogs.
func EmptyState() State {
	st := State{}
	st.normalize()
	return st
}

// normalize fills nil collections and catalogs and applies entity invariants.
func (st *State) normalize() {
	if st.Resumes == nil {
		st.Resumes = []types.Resume{}
	}
	for i := range st.Resumes {
		st.Resumes[i].Normalize()
	}
	if st.CoverLetters == nil {
		st.CoverLetters = []types.CoverLetter{}
	}
	if st.SavedJobs == nil {
		st.SavedJobs = []types.Job{}
	}
	for i := range st.SavedJobs {
		if st.SavedJobs[i].Requirements == nil {
			st.SavedJobs[i].Requirements = []string{}
		}
	}
	if st.JobApplications == nil {
		st.JobApplications = []types.JobApplication{}
	}
	for i := range st.JobApplications {
		st.JobApplications[i].Normalize()
	}
	if st.InterviewPreps == nil {
		st.InterviewPreps = []types.InterviewPrep{}
	}
	for i := range st.InterviewPreps {
		if st.InterviewPreps[i].Questions == nil {
			st.InterviewPreps[i].Questions = []types.InterviewQuestion{}
		}
	}
	if st.VideoResumes == nil {
		st.VideoResumes = []types.VideoResume{}
	}
	st.ActiveResumeID = resolveActive(st.Resumes, st.ActiveResumeID, resumeID)
	st.ActiveCoverLetterID = resolveActive(st.CoverLetters, st.ActiveCoverLetterID, coverLetterID)
	if len(st.ResumeTemplates) == 0 {
		st.ResumeTemplates = templates.Resume()
	}
	if len(st.CoverLetterTemplates) == 0 {
		st.CoverLetterTemplates = templates.CoverLetter()
	}
}

// Clone returns a deep copy of the state.
func (st State) Clone() State {
	out := st
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	out.Resumes = cloneEach(st.Resumes, types.Resume.Clone)
	out.CoverLetters = slices.Clone(st.CoverLetters)
	out.SavedJobs = cloneEach(st.SavedJobs, types.Job.Clone)
	out.JobApplications = cloneEach(st.JobApplications, types.JobApplication.Clone)
	out.InterviewPreps = cloneEach(st.InterviewPreps, types.InterviewPrep.Clone)
	out.VideoResumes = slices.Clone(st.VideoResumes)
	out.ResumeTemplates = cloneEach(st.ResumeTemplates, types.Template.Clone)
	out.CoverLetterTemplates = cloneEach(st.CoverLetterTemplates, types.Template.Clone)
	return out
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// resolveActive keeps id when it is empty or names an entity in list.
// A dangling id falls back to the first entity, or empty when there is none.
func resolveActive[T any](list []T, id string, idOf func(T) string) string {
	if id == "" || indexOf(list, id, idOf) >= 0 {
		return id
	}
	return firstID(list, idOf)
}

func indexOf[T any](list []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
}

func resumeID(r types.Resume) string { return r.ID }
func coverLetterID(c types.CoverLetter) string { return c.ID }
func jobID(j types.Job) string { return j.ID }
func applicationID(a types.JobApplication) string { return a.ID }
func prepID(p types.InterviewPrep) string { return p.ID }
func videoID(v types.VideoResume) string { return v.ID }
