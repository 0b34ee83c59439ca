package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func newStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s := store.New(mem, store.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}))
	_, err := s.AddResume(context.Background(), types.Resume{
		Title: "Main",
		PersonalInfo: types.PersonalInfo{
			FirstName:    "Alex",
			LastName:     "Johnson",
			Email:        "alex@example.com",
			JobTitle:     "Software Engineer",
			ProfileImage: "https://example.com/alex.png",
		},
	})
	require.NoError(t, err)
	return s, mem
}

func active(t *testing.T, s *store.Store) types.Resume {
	t.Helper()
	r, ok := s.ActiveResume()
	require.True(t, ok)
	return r
}

func TestPersonalInfoForm_LoadAndSubmit(t *testing.T) {
	s, _ := newStore(t)
	f := NewPersonalInfoForm(s, generation.NewTemplateGenerator())

	assert.Equal(t, "Alex", f.Values.FirstName)
	f.Values.Phone = " 555-0100 "
	f.Values.Summary = "Builder of things."

	info, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "555-0100", info.Phone)
	assert.Equal(t, "https://example.com/alex.png", info.ProfileImage)
	assert.Equal(t, "Builder of things.", active(t, s).PersonalInfo.Summary)
}

func TestPersonalInfoForm_ValidationBlocksStore(t *testing.T) {
	s, mem := newStore(t)
	f := NewPersonalInfoForm(s, generation.NewTemplateGenerator())
	saves := mem.Saves()

	f.Values.FirstName = "  "
	f.Values.Email = "not-an-email"
	_, err := f.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	msg, ok := verr.Message("firstName")
	assert.True(t, ok)
	assert.Equal(t, "First name is required", msg)
	msg, _ = verr.Message("email")
	assert.Equal(t, "Invalid email address", msg)
	_, ok = verr.Message("lastName")
	assert.False(t, ok)
	assert.Equal(t, saves, mem.Saves())
	assert.Equal(t, "Alex", active(t, s).PersonalInfo.FirstName)
}

func TestPersonalInfoForm_EnhanceSummary(t *testing.T) {
	s, _ := newStore(t)
	f := NewPersonalInfoForm(s, generation.NewTemplateGenerator())

	require.NoError(t, f.EnhanceSummary(context.Background()))
	assert.Contains(t, f.Values.Summary, "results-driven Software Engineer")
	assert.Empty(t, active(t, s).PersonalInfo.Summary)
}

func TestForms_NoActiveResume(t *testing.T) {
	s := store.New(storage.NewMemory())
	f := NewExperienceForm(s, generation.NewTemplateGenerator())
	f.Values = ExperienceValues{Company: "A", Position: "B", StartDate: "2020-01"}

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveResume)
	assert.ErrorIs(t, NewPersonalInfoForm(s, nil).Load(), ErrNoActiveResume)
}

func TestExperienceForm_AddEditCancelDelete(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewExperienceForm(s, generation.NewTemplateGenerator())

	f.Values = ExperienceValues{
		Company:   "TechCorp",
		Position:  "Developer",
		StartDate: "2020-03",
		EndDate:   "2023-01",
		Current:   true,
	}
	f.AddHighlight("  Shipped the app ")
	f.AddHighlight("   ")
	exp, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, exp.ID)
	assert.Empty(t, exp.EndDate, "current job has no end date")
	assert.Equal(t, []string{"Shipped the app"}, exp.Highlights)
	assert.Empty(t, f.Values.Company, "form resets after submit")

	require.NoError(t, f.Edit(exp.ID))
	assert.Equal(t, exp.ID, f.Editing())
	assert.Equal(t, "TechCorp", f.Values.Company)
	f.Values.Position = "Senior Developer"
	updated, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp.ID, updated.ID)
	assert.Equal(t, "", f.Editing())
	require.Len(t, active(t, s).Experiences, 1)
	assert.Equal(t, "Senior Developer", active(t, s).Experiences[0].Position)

	require.NoError(t, f.Edit(exp.ID))
	f.Values.Position = "Discarded"
	f.Cancel()
	assert.Equal(t, "", f.Editing())
	assert.Equal(t, "Senior Developer", active(t, s).Experiences[0].Position)

	require.NoError(t, f.Delete(ctx, exp.ID))
	assert.Empty(t, active(t, s).Experiences)
	assert.ErrorIs(t, f.Delete(ctx, exp.ID), ErrEntryNotFound)
	assert.ErrorIs(t, f.Edit("missing"), ErrEntryNotFound)
}

func TestExperienceForm_RequiredFields(t *testing.T) {
	s, _ := newStore(t)
	f := NewExperienceForm(s, generation.NewTemplateGenerator())

	_, err := f.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "experience", verr.Form)
	assert.Len(t, verr.Fields, 3)
	msg, _ := verr.Message("startDate")
	assert.Equal(t, "Start date is required", msg)
	assert.Empty(t, active(t, s).Experiences)
}

func TestExperienceForm_Enhance(t *testing.T) {
	s, _ := newStore(t)
	f := NewExperienceForm(s, generation.NewTemplateGenerator())
	f.Values.Position = "Analyst"
	f.AddHighlight("Mentored junior team members and provided technical guidance on best practices")

	require.NoError(t, f.Enhance(context.Background()))
	assert.Equal(t, "Enhanced Analyst professional with 3+ years of industry experience. Skilled in improving processes and achieving measurable results.", f.Values.Description)
	assert.Len(t, f.Values.Highlights, 4, "existing bullet is not duplicated")

	f.RemoveHighlight(0)
	f.RemoveHighlight(10)
	assert.Len(t, f.Values.Highlights, 3)
}

func TestEducationForm(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewEducationForm(s, generation.NewTemplateGenerator())

	f.Values = EducationValues{Institution: "State University", Degree: "BSc", StartDate: "2014-09"}
	_, err := f.Submit(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	msg, _ := verr.Message("endDate")
	assert.Equal(t, "End date is required", msg)

	f.Values.EndDate = "2018-06"
	f.Values.FieldOfStudy = "Computer Science"
	require.NoError(t, f.Enhance(ctx))
	assert.Contains(t, f.Values.Description, "Completed BSc in Computer Science")

	edu, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "State University", edu.Institution)
	require.Len(t, active(t, s).Education, 1)

	require.NoError(t, f.Delete(ctx, edu.ID))
	assert.Empty(t, active(t, s).Education)
}

func TestSkillsForm_DuplicateRule(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewSkillsForm(s)

	assert.Equal(t, DefaultSkillLevel, f.Values.Level)
	f.Values.Name = "Go"
	f.Values.Category = ""
	goSkill, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Programming", goSkill.Category)

	f.Values.Name = "  go "
	_, err = f.Submit(ctx)
	var dup *DuplicateSkillError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "go", dup.Name)
	assert.Len(t, active(t, s).Skills, 1)

	// Renaming the edited skill to a case variant of itself is allowed.
	require.NoError(t, f.Edit(goSkill.ID))
	f.Values.Name = "GO"
	f.Values.Level = 5
	renamed, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, goSkill.ID, renamed.ID)
	assert.Equal(t, 5, renamed.Level)

	f.Values.Name = "Rust"
	f.Values.Level = 9
	_, err = f.Submit(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	msg, _ := verr.Message("level")
	assert.Equal(t, "Level must be between 1 and 5", msg)
}

func TestSkillsForm_DuplicateIgnoresStoredWhitespace(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	r := active(t, s)
	_, err := s.UpdateResume(ctx, r.ID, types.ResumePatch{
		Skills: []types.Skill{{ID: "s1", Name: " Go ", Level: 4, Category: "Programming"}},
	})
	require.NoError(t, err)

	f := NewSkillsForm(s)
	f.Values.Name = "go"
	_, err = f.Submit(ctx)

	var dup *DuplicateSkillError
	require.ErrorAs(t, err, &dup)
	assert.Len(t, active(t, s).Skills, 1)
}

func TestSkillsForm_Suggest(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewSkillsForm(s)
	f.Values.Name = "react"
	_, err := f.Submit(ctx)
	require.NoError(t, err)

	added, err := f.Suggest(ctx)
	require.NoError(t, err)
	names := make([]string, len(added))
	for i, sk := range added {
		names[i] = sk.Name
		assert.Equal(t, DefaultSkillLevel, sk.Level)
	}
	assert.Equal(t, []string{"JavaScript", "Node.js", "API", "Git", "CI/CD", "Leadership", "Communication", "Problem-solving", "Teamwork"}, names)
	assert.Len(t, active(t, s).Skills, 10)

	again, err := f.Suggest(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestDetectCategory(t *testing.T) {
	tests := map[string]string{
		"JavaScript":        "Programming",
		"React":             "Frontend",
		"Node.js":           "Backend",
		"Postgres":          "Database",
		"SQL":               "Database",
		"Docker":            "DevOps",
		"Digital Marketing": "Marketing",
		"User Stories":      "Management",
		"KPIs":              "Management",
		"Teamwork":          "Communication",
		"Underwater Basket": "Other",
	}
	for name, want := range tests {
		assert.Equal(t, want, DetectCategory(name), name)
	}
}

func TestProjectsForm(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewProjectsForm(s, generation.NewTemplateGenerator())

	f.Values.Name = "Budget App"
	_, err := f.Submit(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	msg, _ := verr.Message("description")
	assert.Equal(t, "Description is required", msg)

	require.NoError(t, f.Enhance(ctx))
	assert.Contains(t, f.Values.Description, "Developed Budget App")

	f.AddTechnology(" Go ")
	f.AddTechnology("Go")
	f.AddTechnology("")
	f.AddTechnology("SQLite")
	assert.Equal(t, []string{"Go", "SQLite"}, f.Values.Technologies)
	f.RemoveTechnology(0)

	p, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"SQLite"}, p.Technologies)

	require.NoError(t, f.Edit(p.ID))
	f.Values.URL = "https://example.com"
	p2, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, p2.ID)
	assert.Equal(t, "https://example.com", active(t, s).Projects[0].URL)
}

func TestTemplateForm(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewTemplateForm(s)

	r, err := f.Apply(ctx, "template-creative", "purple")
	require.NoError(t, err)
	assert.Equal(t, "template-creative", r.TemplateID)
	assert.Equal(t, "#8b5cf6", r.TemplateColor)

	r, err = f.Apply(ctx, "template-minimal", "")
	require.NoError(t, err)
	assert.Equal(t, "#8b5cf6", r.TemplateColor, "empty color keeps current")

	_, err = f.Apply(ctx, "template-nope", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = f.Apply(ctx, "template-modern", "chartreuse")
	require.ErrorAs(t, err, &verr)
	_, ok := verr.Message("templateColor")
	assert.True(t, ok)

	tpl, err := f.Suggest()
	require.NoError(t, err)
	assert.Equal(t, "template-minimal", tpl.ID, "no experience suggests minimal")
}

func TestCoverLetterForm_Generate(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	f := NewCoverLetterForm(s, generation.NewTemplateGenerator())

	assert.Equal(t, s.ActiveResumeID(), f.Values.ResumeID)
	assert.Equal(t, "Hiring Manager", f.Values.Recipient)

	_, err := f.Generate(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.CoverLetters())

	f.Values.Title = "Acme letter"
	f.Values.Company = "Acme"
	f.Values.Position = "Engineer"
	f.Values.Tone = "balanced"
	letter, err := f.Generate(ctx)
	require.NoError(t, err)
	assert.Contains(t, letter.Content, "<p>Dear Hiring Manager,</p>")
	assert.Equal(t, "cover-modern", letter.TemplateID)
	assert.Equal(t, letter.ID, s.ActiveCoverLetterID())
	assert.Empty(t, f.Values.Title, "form resets after generation")
}

func TestCoverLetterForm_BadToneAndResume(t *testing.T) {
	s, _ := newStore(t)
	f := NewCoverLetterForm(s, generation.NewTemplateGenerator())
	f.Values = CoverLetterValues{Title: "T", Company: "C", Position: "P", Tone: "sarcastic", ResumeID: "nope"}

	_, err := f.Generate(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	msg, _ := verr.Message("tone")
	assert.Contains(t, msg, "professional, enthusiastic, or balanced")

	f.Values.Tone = "professional"
	_, err = f.Generate(context.Background())
	var nf *store.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
