package rendering

import (
	"github.com/jonathan/resume-builder/internal/types"
)

func testResume() types.Resume {
	return types.Resume{
		Title: "Main",
		PersonalInfo: types.PersonalInfo{
			FirstName: "Alex",
			LastName:  "Johnson",
			Email:     "alex@example.com",
			Phone:     "(555) 123-4567",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/alexjohnson",
			Summary:   "Engineer who ships.",
			JobTitle:  "Senior Software Engineer",
		},
		Experiences: []types.Experience{
			{
				ID:          "e1",
				Company:     "Tech Innovations Inc.",
				Position:    "Senior Software Engineer",
				StartDate:   "2020-03",
				Current:     true,
				Location:    "San Francisco, CA",
				Description: "Lead developer for the platform.",
				Highlights:  []string{"Built the API", "Built the API", "Cut costs <30%>"},
			},
			{
				ID:        "e2",
				Company:   "WebSolutions",
				Position:  "Developer",
				StartDate: "2017-06",
				EndDate:   "2020-02",
			},
		},
		Education: []types.Education{
			{ID: "ed1", Institution: "State University", Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: "2013-09", EndDate: "2017-05"},
		},
		Skills: []types.Skill{
			{ID: "s1", Name: "Go", Level: 5, Category: "Programming"},
			{ID: "s2", Name: "React", Level: 3, Category: "Frontend"},
			{ID: "s3", Name: "Python", Category: "Programming"},
		},
		Projects: []types.Project{
			{ID: "p1", Name: "Budget App", Description: "Tracks spending.", Technologies: []string{"Go", "SQLite"}, URL: "https://example.com/budget"},
		},
		Certificates:  []types.Certificate{{ID: "c1", Name: "AWS Solutions Architect", Issuer: "Amazon", IssueDate: "2022-01"}},
		Languages:     []types.Language{{ID: "l1", Name: "Spanish", Proficiency: types.ProficiencyFluent}},
		TemplateID:    "template-modern",
		TemplateColor: "#10b981",
	}
}
