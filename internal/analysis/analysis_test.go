package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/seed"
	"github.com/jonathan/resume-builder/internal/types"
)

func highlights(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Delivered result"
	}
	return out
}

func section(t *testing.T, r types.Resume, name string) SectionResult {
	t.Helper()
	for _, s := range Sections(r) {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("section %q not found", name)
	return SectionResult{}
}

func TestExperienceSection_Scenario(t *testing.T) {
	r := types.Resume{}

	empty := section(t, r, SectionExperience)
	assert.Equal(t, 0, empty.Score)
	assert.Contains(t, empty.Tips, "Add at least one work experience")

	r.Experiences = []types.Experience{{Company: "TechCorp", Position: "Dev", Highlights: highlights(3)}}
	one := section(t, r, SectionExperience)
	assert.Equal(t, 75, one.Score, "a single detailed experience caps at 75")
	assert.Empty(t, one.Tips)
}

func TestExperienceSection_Tiers(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   int
	}{
		{name: "none", counts: nil, want: 0},
		{name: "one sparse", counts: []int{2}, want: 50},
		{name: "one detailed", counts: []int{3}, want: 75},
		{name: "two sparse", counts: []int{3, 1}, want: 75},
		{name: "two detailed", counts: []int{3, 5}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r types.Resume
			for _, c := range tt.counts {
				r.Experiences = append(r.Experiences, types.Experience{Highlights: highlights(c)})
			}
			assert.Equal(t, tt.want, section(t, r, SectionExperience).Score)
		})
	}
}

func TestExperienceSection_AddingHighlightCrossesTier(t *testing.T) {
	r := types.Resume{Experiences: []types.Experience{
		{Highlights: highlights(3)},
		{Highlights: highlights(2)},
	}}
	assert.Equal(t, 75, section(t, r, SectionExperience).Score)

	r.Experiences[1].Highlights = append(r.Experiences[1].Highlights, "Another result")
	assert.Equal(t, 100, section(t, r, SectionExperience).Score)
}

func TestPersonalSection(t *testing.T) {
	assert.Equal(t, 0, section(t, types.Resume{}, SectionPersonal).Score)

	named := types.Resume{PersonalInfo: types.PersonalInfo{FirstName: "Alex"}}
	s := section(t, named, SectionPersonal)
	assert.Equal(t, 50, s.Score)
	assert.Len(t, s.Tips, 2)

	summarized := types.Resume{PersonalInfo: types.PersonalInfo{Summary: "Engineer"}}
	s = section(t, summarized, SectionPersonal)
	assert.Equal(t, 100, s.Score)
	assert.Empty(t, s.Tips)
	assert.False(t, s.Complete, "complete also needs a job title")
}

func TestEducationSection(t *testing.T) {
	assert.Equal(t, 0, section(t, types.Resume{}, SectionEducation).Score)

	r := types.Resume{Education: []types.Education{{Institution: "Berkeley", Degree: "BS"}}}
	s := section(t, r, SectionEducation)
	assert.Equal(t, 75, s.Score)
	assert.Equal(t, []string{"Add details to your education, such as GPA, relevant coursework, or achievements"}, s.Tips)

	r.Education[0].Description = "Graduated with honors"
	assert.Equal(t, 100, section(t, r, SectionEducation).Score)
}

func TestSkillsSection(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 50}, {4, 50}, {5, 75}, {7, 75}, {8, 100}, {12, 100},
	}
	for _, tt := range tests {
		r := types.Resume{Skills: make([]types.Skill, tt.count)}
		assert.Equal(t, tt.want, section(t, r, SectionSkills).Score, "skills=%d", tt.count)
	}
}

func TestProjectsSection(t *testing.T) {
	assert.Equal(t, 0, section(t, types.Resume{}, SectionProjects).Score)

	one := types.Resume{Projects: make([]types.Project, 1)}
	s := section(t, one, SectionProjects)
	assert.Equal(t, 75, s.Score)
	assert.Equal(t, []string{"Consider adding another project to strengthen your resume"}, s.Tips)

	assert.Equal(t, 100, section(t, types.Resume{Projects: make([]types.Project, 2)}, SectionProjects).Score)
}

func TestScore_RoundedMean(t *testing.T) {
	r := types.Resume{
		PersonalInfo: types.PersonalInfo{FirstName: "Alex"},
		Experiences:  []types.Experience{{Highlights: highlights(1)}},
		Education:    []types.Education{{Institution: "Berkeley", Degree: "BS"}},
		Skills:       make([]types.Skill, 5),
		Projects:     make([]types.Project, 1),
	}
	// (50+50+75+75+75)/5 = 65
	assert.Equal(t, 65, Score(r))

	r.Projects = nil // (50+50+75+75+0)/5 = 50
	assert.Equal(t, 50, Score(r))

	r.Skills = make([]types.Skill, 1) // (50+50+75+50+0)/5 = 45
	assert.Equal(t, 45, Score(r))

	r.PersonalInfo.Summary = "x" // (100+50+75+50+0)/5 = 55
	assert.Equal(t, 55, Score(r))

	r.Education = nil
	r.Skills = nil
	r.PersonalInfo = types.PersonalInfo{FirstName: "A"} // (50+50+0+0+0)/5 = 20
	assert.Equal(t, 20, Score(r))

	r.Experiences = append(r.Experiences, types.Experience{}) // (50+75)/5 = 25
	assert.Equal(t, 25, Score(r))
}

func TestScore_MixedTiers(t *testing.T) {
	r := types.Resume{
		Experiences: []types.Experience{{Highlights: highlights(3)}},
		Education:   []types.Education{{Description: "x"}},
		Skills:      make([]types.Skill, 1),
		Projects:    make([]types.Project, 1),
	}
	// (0+75+100+50+75)/5 = 60
	assert.Equal(t, 60, Score(r))

	r.Projects = nil
	r.Skills = make([]types.Skill, 5)
	// (0+75+100+75+0)/5 = 50
	assert.Equal(t, 50, Score(r))
}

func TestScore_Deterministic(t *testing.T) {
	st, err := seed.State(time.Now())
	require.NoError(t, err)
	r := st.Resumes[0]
	clone := r.Clone()
	clone.ID = "different"

	assert.Equal(t, Score(r), Score(clone))
	assert.Equal(t, 100, Score(r))
}

func TestAnalyze_SampleResume(t *testing.T) {
	st, err := seed.State(time.Now())
	require.NoError(t, err)

	report := Analyze(st.Resumes[0])

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "Your resume is well-optimized for ATS systems", report.Rating)
	assert.Len(t, report.Sections, 5)
	for _, s := range report.Sections {
		assert.Empty(t, s.Tips, s.Name)
		assert.True(t, s.Complete, s.Name)
	}
	last := report.Recommendations[len(report.Recommendations)-1]
	assert.Equal(t, "Your resume is well-optimized", last.Title)
	assert.True(t, last.Positive)
}

func TestAnalyze_EmptyResume(t *testing.T) {
	report := Analyze(types.Resume{})

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, "Your resume needs significant improvement to pass ATS systems", report.Rating)

	titles := make([]string, 0, len(report.Recommendations))
	for _, rec := range report.Recommendations {
		titles = append(titles, rec.Title)
	}
	assert.Equal(t, []string{"Add a professional summary", "Add more relevant skills", "Include industry keywords"}, titles)
	assert.Equal(t, []string{"Leadership", "Communication", "Problem-solving", "Teamwork"}, report.Recommendations[2].Keywords)
}

func TestRating(t *testing.T) {
	assert.Contains(t, Rating(59), "significant improvement")
	assert.Contains(t, Rating(60), "could be improved")
	assert.Contains(t, Rating(79), "could be improved")
	assert.Contains(t, Rating(80), "well-optimized")
}
