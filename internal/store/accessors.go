package store

import "github.com/jonathan/resume-builder/internal/types"

// Resumes returns copies of all resumes in insertion order.
func (s *Store) Resumes() []types.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.Resumes, types.Resume.Clone)
}

// Resume returns a copy of the resume with id.
func (s *Store) Resume(id string) (types.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.Resumes, id, resumeID)
	if i < 0 {
		return types.Resume{}, &NotFoundError{Kind: "resume", ID: id}
	}
	return s.state.Resumes[i].Clone(), nil
}

// ActiveResumeID returns the selected resume id, or "" when none is selected.
func (s *Store) ActiveResumeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveResumeID
}

// ActiveResume returns a copy of the selected resume.
func (s *Store) ActiveResume() (types.Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.Resumes, s.state.ActiveResumeID, resumeID)
	if s.state.ActiveResumeID == "" || i < 0 {
		return types.Resume{}, false
	}
	return s.state.Resumes[i].Clone(), true
}

// CoverLetters returns copies of all cover letters.
func (s *Store) CoverLetters() []types.CoverLetter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.CoverLetter(nil), s.state.CoverLetters...)
}

// CoverLetter returns the cover letter with id.
func (s *Store) CoverLetter(id string) (types.CoverLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.CoverLetters, id, coverLetterID)
	if i < 0 {
		return types.CoverLetter{}, &NotFoundError{Kind: "cover letter", ID: id}
	}
	return s.state.CoverLetters[i], nil
}

// ActiveCoverLetterID returns the selected cover letter id, or "" when none is selected.
func (s *Store) ActiveCoverLetterID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveCoverLetterID
}

// ActiveCoverLetter returns the selected cover letter.
func (s *Store) ActiveCoverLetter() (types.CoverLetter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.CoverLetters, s.state.ActiveCoverLetterID, coverLetterID)
	if s.state.ActiveCoverLetterID == "" || i < 0 {
		return types.CoverLetter{}, false
	}
	return s.state.CoverLetters[i], true
}

// SavedJobs returns copies of the saved jobs.
func (s *Store) SavedJobs() []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.SavedJobs, types.Job.Clone)
}

// Job returns a copy of the saved job with id.
func (s *Store) Job(id string) (types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.SavedJobs, id, jobID)
	if i < 0 {
		return types.Job{}, &NotFoundError{Kind: "job", ID: id}
	}
	return s.state.SavedJobs[i].Clone(), nil
}

// JobApplications returns copies of all job applications.
func (s *Store) JobApplications() []types.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.JobApplications, types.JobApplication.Clone)
}

// JobApplication returns a copy of the application with id.
func (s *Store) JobApplication(id string) (types.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.JobApplications, id, applicationID)
	if i < 0 {
		return types.JobApplication{}, &NotFoundError{Kind: "job application", ID: id}
	}
	return s.state.JobApplications[i].Clone(), nil
}

// InterviewPreps returns copies of all interview preps.
func (s *Store) InterviewPreps() []types.InterviewPrep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.InterviewPreps, types.InterviewPrep.Clone)
}

// InterviewPrep returns a copy of the prep with id.
func (s *Store) InterviewPrep(id string) (types.InterviewPrep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.state.InterviewPreps, id, prepID)
	if i < 0 {
		return types.InterviewPrep{}, &NotFoundError{Kind: "interview prep", ID: id}
	}
	return s.state.InterviewPreps[i].Clone(), nil
}

// VideoResumes returns copies of all video resumes.
func (s *Store) VideoResumes() []types.VideoResume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.VideoResume(nil), s.state.VideoResumes...)
}

// ResumeTemplates returns the resume template catalog.
func (s *Store) ResumeTemplates() []types.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.ResumeTemplates, types.Template.Clone)
}

// CoverLetterTemplates returns the cover letter template catalog.
func (s *Store) CoverLetterTemplates() []types.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEach(s.state.CoverLetterTemplates, types.Template.Clone)
}

// User returns the local user profile, if one has been set.
func (s *Store) User() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return types.User{}, false
	}
	return *s.state.User, true
}
