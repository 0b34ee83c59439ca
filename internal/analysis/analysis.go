// Package analysis scores resume completeness per section and suggests improvements.
// Every function here is pure: the result depends only on the resume's field values.
package analysis

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section names in report order
const (
	SectionPersonal   = "Personal Information"
	SectionExperience = "Work Experience"
	SectionEducation  = "Education"
	SectionSkills     = "Skills"
	SectionProjects   = "Projects"
)

// minHighlights is the number of bullet points an experience needs to count as detailed.
const minHighlights = 3

// SectionResult is the tier score and tips for one resume section.
type SectionResult struct {
	Name     string   `json:"name"`
	Score    int      `json:"score"`
	Complete bool     `json:"complete"`
	Tips     []string `json:"tips"`
}

// Keywords splits the job-title keyword suggestions by presence in the resume.
type Keywords struct {
	Suggested []string `json:"suggested"`
	Present   []string `json:"present"`
	Missing   []string `json:"missing"`
}

// Recommendation is an actionable improvement.
type Recommendation struct {
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
	Keywords []string `json:"keywords,omitempty"`
	Positive bool     `json:"positive"`
}

// Report is the full analysis of a resume.
type Report struct {
	Score           int              `json:"score"`
	Rating          string           `json:"rating"`
	Sections        []SectionResult  `json:"sections"`
	Keywords        Keywords         `json:"keywords"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Analyze scores every section, checks keywords, and builds recommendations.
func Analyze(r types.Resume) Report {
	sections := Sections(r)
	score := overall(sections)
	keywords := CheckKeywords(r)

	return Report{
		Score:           score,
		Rating:          Rating(score),
		Sections:        sections,
		Keywords:        keywords,
		Recommendations: recommendations(r, score, keywords),
	}
}

// Score returns the overall score: the rounded mean of the section scores.
func Score(r types.Resume) int {
	return overall(Sections(r))
}

func overall(sections []SectionResult) int {
	if len(sections) == 0 {
		return 0
	}
	total := 0
	for _, s := range sections {
		total += s.Score
	}
	return int(math.Round(float64(total) / float64(len(sections))))
}

// Rating describes how an overall score fares against applicant tracking systems.
func Rating(score int) string {
	switch {
	case score >= 80:
		return "Your resume is well-optimized for ATS systems"
	case score >= 60:
		return "Your resume is good but could be improved to increase your chances"
	default:
		return "Your resume needs significant improvement to pass ATS systems"
	}
}

// Sections returns the five section results in fixed order.
func Sections(r types.Resume) []SectionResult {
	return []SectionResult{
		personalSection(r),
		experienceSection(r),
		educationSection(r),
		skillsSection(r),
		projectsSection(r),
	}
}

func personalSection(r types.Resume) SectionResult {
	info := r.PersonalInfo
	s := SectionResult{
		Name:     SectionPersonal,
		Complete: hasText(info.Summary) && hasText(info.JobTitle),
		Tips:     []string{},
	}
	switch {
	case hasText(info.Summary):
		s.Score = 100
	case hasText(info.FirstName):
		s.Score = 50
	}
	if !hasText(info.Summary) {
		s.Tips = append(s.Tips,
			"Add a professional summary to increase visibility",
			"Include your job title for better search matches")
	}
	return s
}

func experienceSection(r types.Resume) SectionResult {
	n := len(r.Experiences)
	detailed := allDetailed(r.Experiences)
	s := SectionResult{
		Name:     SectionExperience,
		Complete: n > 0 && allHaveHighlights(r.Experiences),
		Tips:     []string{},
	}
	switch {
	case n == 0:
		s.Score = 0
	case n == 1 && detailed:
		s.Score = 75
	case n == 1:
		s.Score = 50
	case detailed:
		s.Score = 100
	default:
		s.Score = 75
	}

	switch {
	case n == 0:
		s.Tips = append(s.Tips, "Add at least one work experience")
	case !detailed:
		s.Tips = append(s.Tips,
			"Add more bullet points to your experiences (aim for 3-5 per role)",
			"Use quantifiable achievements in your bullet points")
	}
	return s
}

func educationSection(r types.Resume) SectionResult {
	s := SectionResult{
		Name:     SectionEducation,
		Complete: len(r.Education) > 0,
		Tips:     []string{},
	}
	switch {
	case len(r.Education) == 0:
		s.Tips = append(s.Tips, "Add your educational background")
	case hasText(r.Education[0].Description):
		s.Score = 100
	default:
		s.Score = 75
		s.Tips = append(s.Tips, "Add details to your education, such as GPA, relevant coursework, or achievements")
	}
	return s
}

func skillsSection(r types.Resume) SectionResult {
	n := len(r.Skills)
	s := SectionResult{
		Name:     SectionSkills,
		Complete: n >= 5,
		Tips:     []string{},
	}
	switch {
	case n >= 8:
		s.Score = 100
	case n >= 5:
		s.Score = 75
	case n >= 1:
		s.Score = 50
	}
	if n < 5 {
		s.Tips = append(s.Tips,
			"Add at least 5-10 relevant skills",
			"Organize skills by category for better readability")
	}
	return s
}

func projectsSection(r types.Resume) SectionResult {
	n := len(r.Projects)
	s := SectionResult{
		Name:     SectionProjects,
		Complete: n > 0,
		Tips:     []string{},
	}
	switch {
	case n >= 2:
		s.Score = 100
	case n == 1:
		s.Score = 75
		s.Tips = append(s.Tips, "Consider adding another project to strengthen your resume")
	default:
		s.Tips = append(s.Tips,
			"Add at least one project to showcase your work",
			"Include technologies used in each project")
	}
	return s
}

func allDetailed(exps []types.Experience) bool {
	for _, e := range exps {
		if len(e.Highlights) < minHighlights {
			return false
		}
	}
	return true
}

func allHaveHighlights(exps []types.Experience) bool {
	for _, e := range exps {
		if len(e.Highlights) == 0 {
			return false
		}
	}
	return true
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func recommendations(r types.Resume, score int, kw Keywords) []Recommendation {
	var recs []Recommendation
	if hasText(r.PersonalInfo.Summary) {
		recs = append(recs, Recommendation{
			Title:    "Your professional summary is good",
			Detail:   "A strong summary helps recruiters quickly understand your value proposition.",
			Positive: true,
		})
	} else {
		recs = append(recs, Recommendation{
			Title:  "Add a professional summary",
			Detail: "A compelling summary highlighting your expertise and career goals will make your resume stand out.",
		})
	}
	if len(r.Experiences) > 0 && !allDetailed(r.Experiences) {
		recs = append(recs, Recommendation{
			Title:  "Enhance work experience descriptions",
			Detail: "Add more quantifiable achievements to your bullet points (numbers, percentages, etc.).",
		})
	}
	if len(r.Skills) < 5 {
		recs = append(recs, Recommendation{
			Title:  "Add more relevant skills",
			Detail: "Include both technical and soft skills relevant to your target position.",
		})
	}
	if len(kw.Missing) > 0 {
		recs = append(recs, Recommendation{
			Title:    "Include industry keywords",
			Detail:   "Add these keywords naturally throughout your resume to improve ATS matching:",
			Keywords: kw.Missing[:min(5, len(kw.Missing))],
		})
	}
	if score >= 80 {
		recs = append(recs, Recommendation{
			Title:    "Your resume is well-optimized",
			Detail:   "Great job! Your resume is comprehensive and well-structured. Continue to tailor it for specific job applications.",
			Positive: true,
		})
	}
	return recs
}
