package store

import (
	"context"
	"slices"
	"time"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// assignChildIDs gives every child entity without an id a fresh one, unique within its list.
func assignChildIDs(r *types.Resume) {
	for i := range r.Experiences {
		if r.Experiences[i].ID == "" {
			r.Experiences[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Experiences, func(e types.Experience) bool { return e.ID == id })
			})
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Education, func(e types.Education) bool { return e.ID == id })
			})
		}
	}
	for i := range r.Skills {
		if r.Skills[i].ID == "" {
			r.Skills[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Skills, func(sk types.Skill) bool { return sk.ID == id })
			})
		}
	}
	for i := range r.Projects {
		if r.Projects[i].ID == "" {
			r.Projects[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Projects, func(p types.Project) bool { return p.ID == id })
			})
		}
	}
	for i := range r.Certificates {
		if r.Certificates[i].ID == "" {
			r.Certificates[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Certificates, func(c types.Certificate) bool { return c.ID == id })
			})
		}
	}
	for i := range r.Languages {
		if r.Languages[i].ID == "" {
			r.Languages[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(r.Languages, func(l types.Language) bool { return l.ID == id })
			})
		}
	}
}

func validateResume(r types.Resume) error {
	if err := types.Validate(r); err != nil {
		return &InvalidInputError{Kind: "resume", Message: "validation failed", Cause: err}
	}
	return nil
}

// AddResume stores a new resume and makes it active. The id and timestamps of r are
// ignored and generated; child entities without ids get fresh ones.
func (s *Store) AddResume(ctx context.Context, r types.Resume) (types.Resume, error) {
	var added types.Resume
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		r = r.Clone()
		r.ID = newID(st.Resumes, resumeID)
		now := s.timestamp(time.Time{})
		r.CreatedAt = now
		r.UpdatedAt = now
		if r.TemplateID == "" {
			r.TemplateID = templates.DefaultResumeTemplate
		}
		r.Normalize()
		assignChildIDs(&r)
		if err := validateResume(r); err != nil {
			return nil, err
		}
		st.Resumes = append(st.Resumes, r)
		st.ActiveResumeID = r.ID
		added = r.Clone()
		return []Change{
			{Slice: SliceResumes, ID: r.ID, Op: OpAdd},
			{Slice: SliceActiveResume, ID: r.ID, Op: OpSelect},
		}, nil
	})
	return added, err
}

// UpdateResume merges patch into the resume with id and refreshes its updatedAt.
func (s *Store) UpdateResume(ctx context.Context, id string, patch types.ResumePatch) (types.Resume, error) {
	var updated types.Resume
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.Resumes, id, resumeID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: id}
		}
		r := st.Resumes[i]
		patch.Apply(&r)
		r = r.Clone()
		r.Normalize()
		assignChildIDs(&r)
		if err := validateResume(r); err != nil {
			return nil, err
		}
		r.UpdatedAt = s.timestamp(r.UpdatedAt)
		st.Resumes[i] = r
		updated = r.Clone()
		return []Change{{Slice: SliceResumes, ID: id, Op: OpUpdate}}, nil
	})
	return updated, err
}

// DeleteResume removes the resume and every document that references it: cover letters,
// job applications, interview preps, and video resumes. Deleting the active resume
// selects the first remaining one, or none.
func (s *Store) DeleteResume(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.Resumes, id, resumeID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: id}
		}
		st.Resumes = slices.Delete(st.Resumes, i, i+1)
		changes := []Change{{Slice: SliceResumes, ID: id, Op: OpDelete}}

		var removedLetters []string
		st.CoverLetters = slices.DeleteFunc(st.CoverLetters, func(c types.CoverLetter) bool {
			if c.ResumeID == id {
				removedLetters = append(removedLetters, c.ID)
				return true
			}
			return false
		})
		for _, letterID := range removedLetters {
			changes = append(changes, Change{Slice: SliceCoverLetters, ID: letterID, Op: OpDelete})
		}
		if slices.Contains(removedLetters, st.ActiveCoverLetterID) {
			st.ActiveCoverLetterID = firstID(st.CoverLetters, coverLetterID)
			changes = append(changes, Change{Slice: SliceActiveCover, ID: st.ActiveCoverLetterID, Op: OpSelect})
		}

		st.JobApplications = slices.DeleteFunc(st.JobApplications, func(a types.JobApplication) bool {
			if a.ResumeID == id {
				changes = append(changes, Change{Slice: SliceJobApplications, ID: a.ID, Op: OpDelete})
				return true
			}
			return false
		})
		st.InterviewPreps = slices.DeleteFunc(st.InterviewPreps, func(p types.InterviewPrep) bool {
			if p.ResumeID == id {
				changes = append(changes, Change{Slice: SliceInterviewPreps, ID: p.ID, Op: OpDelete})
				return true
			}
			return false
		})
		st.VideoResumes = slices.DeleteFunc(st.VideoResumes, func(v types.VideoResume) bool {
			if v.ResumeID == id {
				changes = append(changes, Change{Slice: SliceVideoResumes, ID: v.ID, Op: OpDelete})
				return true
			}
			return false
		})

		if st.ActiveResumeID == id {
			st.ActiveResumeID = firstID(st.Resumes, resumeID)
			changes = append(changes, Change{Slice: SliceActiveResume, ID: st.ActiveResumeID, Op: OpSelect})
		}
		return changes, nil
	})
}

// SetActiveResumeID selects the active resume. An empty id clears the selection.
func (s *Store) SetActiveResumeID(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		if id != "" && indexOf(st.Resumes, id, resumeID) < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: id}
		}
		st.ActiveResumeID = id
		return []Change{{Slice: SliceActiveResume, ID: id, Op: OpSelect}}, nil
	})
}

// AddCoverLetter stores a new cover letter for an existing resume and makes it active.
func (s *Store) AddCoverLetter(ctx context.Context, c types.CoverLetter) (types.CoverLetter, error) {
	var added types.CoverLetter
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		if indexOf(st.Resumes, c.ResumeID, resumeID) < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: c.ResumeID}
		}
		c.ID = newID(st.CoverLetters, coverLetterID)
		now := s.timestamp(time.Time{})
		c.CreatedAt = now
		c.UpdatedAt = now
		if c.TemplateID == "" {
			c.TemplateID = templates.DefaultCoverLetterTemplate
		}
		if err := types.Validate(c); err != nil {
			return nil, &InvalidInputError{Kind: "cover letter", Message: "validation failed", Cause: err}
		}
		st.CoverLetters = append(st.CoverLetters, c)
		st.ActiveCoverLetterID = c.ID
		added = c
		return []Change{
			{Slice: SliceCoverLetters, ID: c.ID, Op: OpAdd},
			{Slice: SliceActiveCover, ID: c.ID, Op: OpSelect},
		}, nil
	})
	return added, err
}

// UpdateCoverLetter merges patch into the cover letter with id and refreshes its updatedAt.
func (s *Store) UpdateCoverLetter(ctx context.Context, id string, patch types.CoverLetterPatch) (types.CoverLetter, error) {
	var updated types.CoverLetter
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.CoverLetters, id, coverLetterID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "cover letter", ID: id}
		}
		c := st.CoverLetters[i]
		patch.Apply(&c)
		if indexOf(st.Resumes, c.ResumeID, resumeID) < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: c.ResumeID}
		}
		if err := types.Validate(c); err != nil {
			return nil, &InvalidInputError{Kind: "cover letter", Message: "validation failed", Cause: err}
		}
		c.UpdatedAt = s.timestamp(c.UpdatedAt)
		st.CoverLetters[i] = c
		updated = c
		return []Change{{Slice: SliceCoverLetters, ID: id, Op: OpUpdate}}, nil
	})
	return updated, err
}

// DeleteCoverLetter removes the cover letter and clears references to it from job applications.
func (s *Store) DeleteCoverLetter(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.CoverLetters, id, coverLetterID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "cover letter", ID: id}
		}
		st.CoverLetters = slices.Delete(st.CoverLetters, i, i+1)
		changes := []Change{{Slice: SliceCoverLetters, ID: id, Op: OpDelete}}

		for j := range st.JobApplications {
			if st.JobApplications[j].CoverLetterID == id {
				st.JobApplications[j].CoverLetterID = ""
				changes = append(changes, Change{Slice: SliceJobApplications, ID: st.JobApplications[j].ID, Op: OpUpdate})
			}
		}
		if st.ActiveCoverLetterID == id {
			st.ActiveCoverLetterID = firstID(st.CoverLetters, coverLetterID)
			changes = append(changes, Change{Slice: SliceActiveCover, ID: st.ActiveCoverLetterID, Op: OpSelect})
		}
		return changes, nil
	})
}

// SetActiveCoverLetterID selects the active cover letter. An empty id clears the selection.
func (s *Store) SetActiveCoverLetterID(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		if id != "" && indexOf(st.CoverLetters, id, coverLetterID) < 0 {
			return nil, &NotFoundError{Kind: "cover letter", ID: id}
		}
		st.ActiveCoverLetterID = id
		return []Change{{Slice: SliceActiveCover, ID: id, Op: OpSelect}}, nil
	})
}

func firstID[T any](list []T, idOf func(T) string) string {
	if len(list) == 0 {
		return ""
	}
	return idOf(list[0])
}
