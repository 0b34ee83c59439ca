//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"time"
)

// ApplicationStatus tracks where a job application stands.
type ApplicationStatus string

// Application statuses
const (
	StatusSaved        ApplicationStatus = "Saved"
	StatusApplied      ApplicationStatus = "Applied"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusOffered      ApplicationStatus = "Offered"
	StatusRejected     ApplicationStatus = "Rejected"
	StatusAccepted     ApplicationStatus = "Accepted"
	StatusWithdrawn    ApplicationStatus = "Withdrawn"
)

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusSaved, StatusApplied, StatusInterviewing, StatusOffered,
	StatusRejected, StatusAccepted, StatusWithdrawn,
}

// ParseApplicationStatus matches s case-insensitively against the known statuses.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	for _, status := range ApplicationStatuses {
		if equalFold(string(status), s) {
			return status, true
		}
	}
	return "", false
}

// InterviewType is the format of an interview.
type InterviewType string

// Interview types
const (
	InterviewPhone     InterviewType = "Phone"
	InterviewVideo     InterviewType = "Video"
	InterviewInPerson  InterviewType = "In-person"
	InterviewTechnical InterviewType = "Technical"
	InterviewOther     InterviewType = "Other"
)

// FollowUpType is the channel of a follow-up.
type FollowUpType string

// Follow-up types
const (
	FollowUpEmail FollowUpType = "Email"
	FollowUpCall  FollowUpType = "Call"
	FollowUpOther FollowUpType = "Other"
)

// Interview is a scheduled or completed interview; ApplicationID points back to its owner.
type Interview struct {
	ID            string        `json:"id"`
	ApplicationID string        `json:"applicationId"`
	Type          InterviewType `json:"type" validate:"oneof=Phone Video In-person Technical Other"`
	Date          string        `json:"date" validate:"required"`
	Time          string        `json:"time,omitempty"`
	Duration      int           `json:"duration,omitempty" validate:"min=0"`
	Location      string        `json:"location,omitempty"`
	Interviewers  []string      `json:"interviewers"`
	Notes         string        `json:"notes,omitempty"`
	Completed     bool          `json:"completed"`
	Feedback      string        `json:"feedback,omitempty"`
}

// FollowUp is a follow-up contact after applying.
type FollowUp struct {
	ID            string       `json:"id"`
	ApplicationID string       `json:"applicationId"`
	Type          FollowUpType `json:"type" validate:"oneof=Email Call Other"`
	Date          string       `json:"date" validate:"required"`
	Notes         string       `json:"notes,omitempty"`
	Completed     bool         `json:"completed"`
	Response      string       `json:"response,omitempty"`
}

// JobApplication records applying to a job with a resume.
// Company and Position are denormalized from the job.
type JobApplication struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId"`
	ResumeID      string            `json:"resumeId" validate:"required"`
	CoverLetterID string            `json:"coverLetterId,omitempty"`
	Status        ApplicationStatus `json:"status" validate:"oneof=Saved Applied Interviewing Offered Rejected Accepted Withdrawn"`
	DateApplied   time.Time         `json:"dateApplied"`
	DateUpdated   time.Time         `json:"dateUpdated"`
	Notes         string            `json:"notes"`
	Interviews    []Interview       `json:"interviews" validate:"dive"`
	FollowUps     []FollowUp        `json:"followUps" validate:"dive"`
	Company       string            `json:"company"`
	Position      string            `json:"position"`
	ContactPerson string            `json:"contactPerson,omitempty"`
	ContactEmail  string            `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

// Normalize fills nil collections.
func (a *JobApplication) Normalize() {
	if a.Interviews == nil {
		a.Interviews = []Interview{}
	}
	if a.FollowUps == nil {
		a.FollowUps = []FollowUp{}
	}
	for i := range a.Interviews {
		if a.Interviews[i].Interviewers == nil {
			a.Interviews[i].Interviewers = []string{}
		}
	}
}

// Clone returns a deep copy of the application.
func (a JobApplication) Clone() JobApplication {
	out := a
	if a.Interviews != nil {
		out.Interviews = make([]Interview, len(a.Interviews))
		for i, iv := range a.Interviews {
			iv.Interviewers = slices.Clone(iv.Interviewers)
			out.Interviews[i] = iv
		}
	}
	out.FollowUps = slices.Clone(a.FollowUps)
	return out
}

// JobApplicationPatch holds a partial update for a job application.
// Nil slices leave the collection unchanged.
type JobApplicationPatch struct {
	Status        *ApplicationStatus
	CoverLetterID *string
	Notes         *string
	Interviews    []Interview
	FollowUps     []FollowUp
	ContactPerson *string
	ContactEmail  *string
}

// Apply merges the patch into a. DateUpdated is maintained by the store.
func (p JobApplicationPatch) Apply(a *JobApplication) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	setString(&a.CoverLetterID, p.CoverLetterID)
	setString(&a.Notes, p.Notes)
	if p.Interviews != nil {
		a.Interviews = p.Interviews
	}
	if p.FollowUps != nil {
		a.FollowUps = p.FollowUps
	}
	setString(&a.ContactPerson, p.ContactPerson)
	setString(&a.ContactEmail, p.ContactEmail)
}
