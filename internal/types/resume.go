// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"time"
)

// LanguageProficiency is the self-assessed level for a spoken language.
type LanguageProficiency string

// Language proficiency levels
const (
	ProficiencyBasic          LanguageProficiency = "Basic"
	ProficiencyConversational LanguageProficiency = "Conversational"
	ProficiencyFluent         LanguageProficiency = "Fluent"
	ProficiencyNative         LanguageProficiency = "Native"
)

// PersonalInfo is the singleton contact and headline block of a resume.
type PersonalInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	LinkedIn     string `json:"linkedIn,omitempty"`
	Website      string `json:"website,omitempty"`
	Location     string `json:"location,omitempty"`
	Summary      string `json:"summary,omitempty"`
	JobTitle     string `json:"jobTitle,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// FullName joins first and last name, trimming when either is missing.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Experience is a single work history entry.
// EndDate is empty whenever Current is true; see Normalize.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Normalize enforces the current-job invariant by clearing EndDate.
func (e *Experience) Normalize() {
	if e.Current {
		e.EndDate = ""
	}
	if e.Highlights == nil {
		e.Highlights = []string{}
	}
}

// Education is a single education history entry.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Skill is a named skill. Level is 1-5 when set and 0 when unset.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level,omitempty" validate:"omitempty,min=1,max=5"`
	Category string `json:"category,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certificate is a professional certification.
type Certificate struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

// Language is a spoken language with a proficiency level.
type Language struct {
	ID          string              `json:"id"`
	Name        string              `json:"name" validate:"required"`
	Proficiency LanguageProficiency `json:"proficiency" validate:"oneof=Basic Conversational Fluent Native"`
}

// Resume is the root aggregate; every child list is owned by it.
type Resume struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	PersonalInfo   PersonalInfo  `json:"personalInfo"`
	Experiences    []Experience  `json:"experiences" validate:"dive"`
	Education      []Education   `json:"education" validate:"dive"`
	Skills         []Skill       `json:"skills" validate:"dive"`
	Projects       []Project     `json:"projects" validate:"dive"`
	Certificates   []Certificate `json:"certificates" validate:"dive"`
	Languages      []Language    `json:"languages" validate:"dive"`
	References     string        `json:"references,omitempty"`
	AdditionalInfo string        `json:"additionalInfo,omitempty"`
	TemplateID     string        `json:"templateId"`
	TemplateColor  string        `json:"templateColor,omitempty"`
	TemplateFont   string        `json:"templateFont,omitempty"`
	Score          *int          `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	IsPublic       *bool         `json:"isPublic,omitempty"`
}

// Normalize fills nil collections and normalizes every experience.
func (r *Resume) Normalize() {
	if r.Experiences == nil {
		r.Experiences = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certificates == nil {
		r.Certificates = []Certificate{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	for i := range r.Experiences {
		r.Experiences[i].Normalize()
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
}

// Clone returns a deep copy of the resume.
func (r Resume) Clone() Resume {
	out := r
	if r.Experiences != nil {
		out.Experiences = make([]Experience, len(r.Experiences))
		for i, e := range r.Experiences {
			e.Highlights = slices.Clone(e.Highlights)
			out.Experiences[i] = e
		}
	}
	out.Education = slices.Clone(r.Education)
	out.Skills = slices.Clone(r.Skills)
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			p.Technologies = slices.Clone(p.Technologies)
			out.Projects[i] = p
		}
	}
	out.Certificates = slices.Clone(r.Certificates)
	out.Languages = slices.Clone(r.Languages)
	if r.Score != nil {
		score := *r.Score
		out.Score = &score
	}
	if r.IsPublic != nil {
		public := *r.IsPublic
		out.IsPublic = &public
	}
	return out
}

// ResumePatch holds a partial update for a resume.
// Nil pointers and nil slices leave the corresponding field unchanged;
// a non-nil empty slice clears the collection.
type ResumePatch struct {
	Title          *string
	PersonalInfo   *PersonalInfo
	Experiences    []Experience
	Education      []Education
	Skills         []Skill
	Projects       []Project
	Certificates   []Certificate
	Languages      []Language
	References     *string
	AdditionalInfo *string
	TemplateID     *string
	TemplateColor  *string
	TemplateFont   *string
	Score          *int
	IsPublic       *bool
}

// Apply merges the patch into r. Timestamps are not touched.
func (p ResumePatch) Apply(r *Resume) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.PersonalInfo != nil {
		r.PersonalInfo = *p.PersonalInfo
	}
	if p.Experiences != nil {
		r.Experiences = p.Experiences
	}
	if p.Education != nil {
		r.Education = p.Education
	}
	if p.Skills != nil {
		r.Skills = p.Skills
	}
	if p.Projects != nil {
		r.Projects = p.Projects
	}
	if p.Certificates != nil {
		r.Certificates = p.Certificates
	}
	if p.Languages != nil {
		r.Languages = p.Languages
	}
	if p.References != nil {
		r.References = *p.References
	}
	if p.AdditionalInfo != nil {
		r.AdditionalInfo = *p.AdditionalInfo
	}
	if p.TemplateID != nil {
		r.TemplateID = *p.TemplateID
	}
	if p.TemplateColor != nil {
		r.TemplateColor = *p.TemplateColor
	}
	if p.TemplateFont != nil {
		r.TemplateFont = *p.TemplateFont
	}
	if p.Score != nil {
		score := *p.Score
		r.Score = &score
	}
	if p.IsPublic != nil {
		public := *p.IsPublic
		r.IsPublic = &public
	}
}
