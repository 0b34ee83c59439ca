package store

import (
	"context"
	"slices"
	"time"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

// SaveJob replaces the saved job with the same id, or appends it. A job without an id gets one.
func (s *Store) SaveJob(ctx context.Context, job types.Job) (types.Job, error) {
	var saved types.Job
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		job = job.Clone()
		if job.Requirements == nil {
			job.Requirements = []string{}
		}
		if err := types.Validate(job); err != nil {
			return nil, &InvalidInputError{Kind: "job", Message: "validation failed", Cause: err}
		}
		op := OpUpdate
		if i := indexOf(st.SavedJobs, job.ID, jobID); job.ID != "" && i >= 0 {
			st.SavedJobs[i] = job
		} else {
			if job.ID == "" {
				job.ID = newID(st.SavedJobs, jobID)
			}
			st.SavedJobs = append(st.SavedJobs, job)
			op = OpAdd
		}
		saved = job.Clone()
		return []Change{{Slice: SliceSavedJobs, ID: job.ID, Op: op}}, nil
	})
	return saved, err
}

// RemoveJob deletes a saved job. Interview preps targeting it lose their job reference;
// applications keep theirs along with the denormalized company and position.
func (s *Store) RemoveJob(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.SavedJobs, id, jobID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "job", ID: id}
		}
		st.SavedJobs = slices.Delete(st.SavedJobs, i, i+1)
		changes := []Change{{Slice: SliceSavedJobs, ID: id, Op: OpDelete}}
		for j := range st.InterviewPreps {
			if st.InterviewPreps[j].JobID == id {
				st.InterviewPreps[j].JobID = ""
				changes = append(changes, Change{Slice: SliceInterviewPreps, ID: st.InterviewPreps[j].ID, Op: OpUpdate})
			}
		}
		return changes, nil
	})
}

func (s *Store) checkApplicationRefs(st *State, a types.JobApplication) error {
	if indexOf(st.Resumes, a.ResumeID, resumeID) < 0 {
		return &NotFoundError{Kind: "resume", ID: a.ResumeID}
	}
	if a.CoverLetterID != "" && indexOf(st.CoverLetters, a.CoverLetterID, coverLetterID) < 0 {
		return &NotFoundError{Kind: "cover letter", ID: a.CoverLetterID}
	}
	if err := types.Validate(a); err != nil {
		return &InvalidInputError{Kind: "job application", Message: "validation failed", Cause: err}
	}
	return nil
}

// linkChildren assigns ids to interviews and follow-ups and points them at the application.
func linkChildren(a *types.JobApplication) {
	for i := range a.Interviews {
		if a.Interviews[i].ID == "" {
			a.Interviews[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(a.Interviews, func(iv types.Interview) bool { return iv.ID == id })
			})
		}
		a.Interviews[i].ApplicationID = a.ID
	}
	for i := range a.FollowUps {
		if a.FollowUps[i].ID == "" {
			a.FollowUps[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(a.FollowUps, func(f types.FollowUp) bool { return f.ID == id })
			})
		}
		a.FollowUps[i].ApplicationID = a.ID
	}
}

// AddJobApplication stores a new application. DateApplied defaults to now; DateUpdated is set to now.
func (s *Store) AddJobApplication(ctx context.Context, a types.JobApplication) (types.JobApplication, error) {
	var added types.JobApplication
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		a = a.Clone()
		a.ID = newID(st.JobApplications, applicationID)
		now := s.timestamp(time.Time{})
		if a.DateApplied.IsZero() {
			a.DateApplied = now
		}
		a.DateUpdated = now
		if a.Status == "" {
			a.Status = types.StatusApplied
		}
		a.Normalize()
		linkChildren(&a)
		if err := s.checkApplicationRefs(st, a); err != nil {
			return nil, err
		}
		st.JobApplications = append(st.JobApplications, a)
		added = a.Clone()
		return []Change{{Slice: SliceJobApplications, ID: a.ID, Op: OpAdd}}, nil
	})
	return added, err
}

// UpdateJobApplication merges patch into the application with id and refreshes dateUpdated.
func (s *Store) UpdateJobApplication(ctx context.Context, id string, patch types.JobApplicationPatch) (types.JobApplication, error) {
	return s.updateApplication(ctx, id, func(a *types.JobApplication) error {
		patch.Apply(a)
		return nil
	})
}

// AddInterview appends an interview to an application.
func (s *Store) AddInterview(ctx context.Context, applicationID string, iv types.Interview) (types.Interview, error) {
	var added types.Interview
	_, err := s.updateApplication(ctx, applicationID, func(a *types.JobApplication) error {
		iv.ID = ""
		a.Interviews = append(a.Interviews, iv)
		linkChildren(a)
		added = a.Interviews[len(a.Interviews)-1]
		return nil
	})
	return added, err
}

// AddFollowUp appends a follow-up to an application.
func (s *Store) AddFollowUp(ctx context.Context, applicationID string, f types.FollowUp) (types.FollowUp, error) {
	var added types.FollowUp
	_, err := s.updateApplication(ctx, applicationID, func(a *types.JobApplication) error {
		f.ID = ""
		a.FollowUps = append(a.FollowUps, f)
		linkChildren(a)
		added = a.FollowUps[len(a.FollowUps)-1]
		return nil
	})
	return added, err
}

func (s *Store) updateApplication(ctx context.Context, id string, edit func(a *types.JobApplication) error) (types.JobApplication, error) {
	var updated types.JobApplication
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.JobApplications, id, applicationID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "job application", ID: id}
		}
		a := st.JobApplications[i]
		if err := edit(&a); err != nil {
			return nil, err
		}
		a = a.Clone()
		a.Normalize()
		linkChildren(&a)
		if err := s.checkApplicationRefs(st, a); err != nil {
			return nil, err
		}
		a.DateUpdated = s.timestamp(a.DateUpdated)
		st.JobApplications[i] = a
		updated = a.Clone()
		return []Change{{Slice: SliceJobApplications, ID: id, Op: OpUpdate}}, nil
	})
	return updated, err
}

// DeleteJobApplication removes an application.
func (s *Store) DeleteJobApplication(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.JobApplications, id, applicationID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "job application", ID: id}
		}
		st.JobApplications = slices.Delete(st.JobApplications, i, i+1)
		return []Change{{Slice: SliceJobApplications, ID: id, Op: OpDelete}}, nil
	})
}

// AddInterviewPrep stores a new interview prep for an existing resume.
func (s *Store) AddInterviewPrep(ctx context.Context, p types.InterviewPrep) (types.InterviewPrep, error) {
	var added types.InterviewPrep
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		if indexOf(st.Resumes, p.ResumeID, resumeID) < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: p.ResumeID}
		}
		p = p.Clone()
		p.ID = newID(st.InterviewPreps, prepID)
		now := s.timestamp(time.Time{})
		p.CreatedAt = now
		p.UpdatedAt = now
		if p.Questions == nil {
			p.Questions = []types.InterviewQuestion{}
		}
		assignQuestionIDs(p.Questions)
		if err := types.Validate(p); err != nil {
			return nil, &InvalidInputError{Kind: "interview prep", Message: "validation failed", Cause: err}
		}
		st.InterviewPreps = append(st.InterviewPreps, p)
		added = p.Clone()
		return []Change{{Slice: SliceInterviewPreps, ID: p.ID, Op: OpAdd}}, nil
	})
	return added, err
}

// UpdateInterviewPrep merges patch into the prep with id and refreshes its updatedAt.
func (s *Store) UpdateInterviewPrep(ctx context.Context, id string, patch types.InterviewPrepPatch) (types.InterviewPrep, error) {
	var updated types.InterviewPrep
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.InterviewPreps, id, prepID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "interview prep", ID: id}
		}
		p := st.InterviewPreps[i]
		patch.Apply(&p)
		p = p.Clone()
		assignQuestionIDs(p.Questions)
		if err := types.Validate(p); err != nil {
			return nil, &InvalidInputError{Kind: "interview prep", Message: "validation failed", Cause: err}
		}
		p.UpdatedAt = s.timestamp(p.UpdatedAt)
		st.InterviewPreps[i] = p
		updated = p.Clone()
		return []Change{{Slice: SliceInterviewPreps, ID: id, Op: OpUpdate}}, nil
	})
	return updated, err
}

func assignQuestionIDs(questions []types.InterviewQuestion) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(questions, func(q types.InterviewQuestion) bool { return q.ID == id })
			})
		}
	}
}

// DeleteInterviewPrep removes an interview prep.
func (s *Store) DeleteInterviewPrep(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.InterviewPreps, id, prepID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "interview prep", ID: id}
		}
		st.InterviewPreps = slices.Delete(st.InterviewPreps, i, i+1)
		return []Change{{Slice: SliceInterviewPreps, ID: id, Op: OpDelete}}, nil
	})
}

// AddVideoResume stores a new video resume for an existing resume.
func (s *Store) AddVideoResume(ctx context.Context, v types.VideoResume) (types.VideoResume, error) {
	var added types.VideoResume
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		if indexOf(st.Resumes, v.ResumeID, resumeID) < 0 {
			return nil, &NotFoundError{Kind: "resume", ID: v.ResumeID}
		}
		v.ID = newID(st.VideoResumes, videoID)
		v.CreatedAt = s.timestamp(time.Time{})
		if err := types.Validate(v); err != nil {
			return nil, &InvalidInputError{Kind: "video resume", Message: "validation failed", Cause: err}
		}
		st.VideoResumes = append(st.VideoResumes, v)
		added = v
		return []Change{{Slice: SliceVideoResumes, ID: v.ID, Op: OpAdd}}, nil
	})
	return added, err
}

// DeleteVideoResume removes a video resume.
func (s *Store) DeleteVideoResume(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) ([]Change, error) {
		i := indexOf(st.VideoResumes, id, videoID)
		if i < 0 {
			return nil, &NotFoundError{Kind: "video resume", ID: id}
		}
		st.VideoResumes = slices.Delete(st.VideoResumes, i, i+1)
		return []Change{{Slice: SliceVideoResumes, ID: id, Op: OpDelete}}, nil
	})
}

// SetUserData creates or updates the local user profile.
func (s *Store) SetUserData(ctx context.Context, email, name string, subscription types.Subscription) (types.User, error) {
	var saved types.User
	err := s.mutate(ctx, func(st *State) ([]Change, error) {
		var u types.User
		if st.User != nil {
			u = *st.User
		} else {
			u.ID = ids.New()
			u.CreatedAt = s.timestamp(time.Time{})
		}
		u.Email = email
		u.Name = name
		if subscription == "" {
			subscription = types.SubscriptionFree
		}
		u.Subscription = subscription
		if err := types.Validate(u); err != nil {
			return nil, &InvalidInputError{Kind: "user", Message: "validation failed", Cause: err}
		}
		u.UpdatedAt = s.timestamp(u.UpdatedAt)
		st.User = &u
		saved = u
		return []Change{{Slice: SliceUser, ID: u.ID, Op: OpUpdate}}, nil
	})
	return saved, err
}
