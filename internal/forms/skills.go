package forms

import (
	"context"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/types"
)

// SkillCategories lists the categories offered for a skill.
var SkillCategories = []string{
	"Programming", "Frontend", "Backend", "Database", "Cloud", "DevOps",
	"Design", "Marketing", "Management", "Communication", "Other",
}

// DefaultSkillLevel is the level a new skill starts at.
const DefaultSkillLevel = 3

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Frontend", []string{"react", "vue", "angular", "html", "css", "frontend", "next.js", "tailwind"}},
	{"Backend", []string{"node", "node.js", "api", "express", "django", "spring", "graphql", "backend", "microservice"}},
	{"Database", []string{"sql", "postgres", "mysql", "mongo", "redis", "database"}},
	{"Cloud", []string{"aws", "azure", "gcp", "cloud", "lambda"}},
	{"DevOps", []string{"docker", "kubernetes", "ci/cd", "terraform", "git", "devops", "jenkins"}},
	{"Programming", []string{"javascript", "typescript", "python", "java", "go", "rust", "c++", "c#", "machine learning", "statistics"}},
	{"Design", []string{"figma", "design", "ux", "ui", "sketch", "visualization"}},
	{"Marketing", []string{"seo", "marketing", "campaign", "content", "analytics"}},
	{"Management", []string{"agile", "scrum", "roadmap", "leadership", "kpi", "stakeholder", "mvp", "user stories", "management"}},
	{"Communication", []string{"communication", "teamwork", "presentation", "writing", "problem-solving"}},
}

// DetectCategory guesses a category for a skill name. Unknown names are
// "Other".
func DetectCategory(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	tokens := strings.Fields(lower)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(w, " ") {
				if strings.Contains(lower, w) {
					return ck.category
				}
				continue
			}
			for _, tok := range tokens {
				if tok == w || tok == w+"s" {
					return ck.category
				}
			}
		}
	}
	return "Other"
}

// SkillValues are the editable fields of a skill.
type SkillValues struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"min=1,max=5"`
	Category string `json:"category"`
}

var skillMessages = map[string]string{
	"name.required": "Skill name is required",
	"level.min":     "Level must be between 1 and 5",
	"level.max":     "Level must be between 1 and 5",
}

func defaultSkillValues() SkillValues {
	return SkillValues{Level: DefaultSkillLevel, Category: "Other"}
}

// SkillsForm adds and edits skills.
type SkillsForm struct {
	editor listEditor[types.Skill]
	Values SkillValues
}

// NewSkillsForm returns a skills form with default values.
func NewSkillsForm(store ResumeStore) *SkillsForm {
	return &SkillsForm{
		editor: listEditor[types.Skill]{
			store:  store,
			items:  func(r types.Resume) []types.Skill { return r.Skills },
			idOf:   func(s types.Skill) string { return s.ID },
			withID: func(s types.Skill, id string) types.Skill { s.ID = id; return s },
			patch:  func(l []types.Skill) types.ResumePatch { return types.ResumePatch{Skills: l} },
		},
		Values: defaultSkillValues(),
	}
}

// Editing returns the id of the skill being edited, or "".
func (f *SkillsForm) Editing() string { return f.editor.editing }

// Edit loads skill id into Values and switches Submit to update.
func (f *SkillsForm) Edit(id string) error {
	s, err := f.editor.find(id)
	if err != nil {
		return err
	}
	f.editor.editing = id
	f.Values = SkillValues{Name: s.Name, Level: s.Level, Category: s.Category}
	if f.Values.Level == 0 {
		f.Values.Level = DefaultSkillLevel
	}
	if f.Values.Category == "" {
		f.Values.Category = "Other"
	}
	return nil
}

// Cancel leaves edit mode and restores defaults.
func (f *SkillsForm) Cancel() {
	f.editor.editing = ""
	f.Values = defaultSkillValues()
}

// Submit validates Values, rejects a name already used by another skill
// (case-insensitive), and adds or updates the skill.
func (f *SkillsForm) Submit(ctx context.Context) (types.Skill, error) {
	v := f.Values
	trim(&v.Name, &v.Category)
	if err := validate("skills", v, skillMessages); err != nil {
		return types.Skill{}, err
	}
	r, err := f.editor.active()
	if err != nil {
		return types.Skill{}, err
	}
	for _, s := range r.Skills {
		if sameSkill(s.Name, v.Name) && s.ID != f.editor.editing {
			return types.Skill{}, &DuplicateSkillError{Name: v.Name}
		}
	}
	if v.Category == "" {
		v.Category = DetectCategory(v.Name)
	}
	saved, err := f.editor.save(ctx, types.Skill{Name: v.Name, Level: v.Level, Category: v.Category})
	if err != nil {
		return types.Skill{}, err
	}
	f.Cancel()
	return saved, nil
}

// sameSkill reports whether two skill names clash, ignoring case and
// surrounding whitespace.
func sameSkill(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Delete removes skill id from the active resume.
func (f *SkillsForm) Delete(ctx context.Context, id string) error {
	return f.editor.remove(ctx, id)
}

// Suggest adds the keyword suggestions for the resume's job title that the
// resume does not already list, and returns the added skills.
func (f *SkillsForm) Suggest(ctx context.Context) ([]types.Skill, error) {
	r, err := f.editor.active()
	if err != nil {
		return nil, err
	}
	skills := slices.Clone(r.Skills)
	var added []types.Skill
	for _, name := range analysis.SuggestKeywords(r.PersonalInfo.JobTitle) {
		if slices.ContainsFunc(skills, func(s types.Skill) bool { return sameSkill(s.Name, name) }) {
			continue
		}
		skill := types.Skill{
			ID: ids.NewUnique(func(id string) bool {
				return slices.ContainsFunc(skills, func(s types.Skill) bool { return s.ID == id })
			}),
			Name:     name,
			Level:    DefaultSkillLevel,
			Category: DetectCategory(name),
		}
		skills = append(skills, skill)
		added = append(added, skill)
	}
	if len(added) == 0 {
		return nil, nil
	}
	if _, err := f.editor.store.UpdateResume(ctx, r.ID, types.ResumePatch{Skills: skills}); err != nil {
		return nil, err
	}
	return added, nil
}
