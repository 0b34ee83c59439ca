package jobs

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/types"
)

// Category buckets a saved job by its match score.
type Category string

// Categories
const (
	CategoryBestMatch Category = "best-match"
	CategoryGoodFit   Category = "good-fit"
	CategoryOther     Category = "other"
)

// Score thresholds for the categories. A job without a score is Other.
const (
	BestMatchThreshold = 70
	GoodFitThreshold   = 50
)

// Categorize returns the bucket for a match score.
func Categorize(score *int) Category {
	switch {
	case score == nil || *score <= 0:
		return CategoryOther
	case *score >= BestMatchThreshold:
		return CategoryBestMatch
	case *score >= GoodFitThreshold:
		return CategoryGoodFit
	default:
		return CategoryOther
	}
}

// Groups holds saved jobs split by category, each in saved order.
type Groups struct {
	BestMatches []types.Job
	GoodFits    []types.Job
	Others      []types.Job
}

// Group splits jobs by category.
func Group(jobs []types.Job) Groups {
	var g Groups
	for _, j := range jobs {
		switch Categorize(j.MatchScore) {
		case CategoryBestMatch:
			g.BestMatches = append(g.BestMatches, j)
		case CategoryGoodFit:
			g.GoodFits = append(g.GoodFits, j)
		default:
			g.Others = append(g.Others, j)
		}
	}
	return g
}

// Match is the overlap between a resume and one posting.
type Match struct {
	Score int
	// Matched lists the requirements the resume covers, in posting order.
	Matched []string
	// Skills lists the resume skills that appear in the posting.
	Skills []string
}

// maxPhraseWords bounds how long a requirement can be and still be looked
// up verbatim in the resume text.
const maxPhraseWords = 3

// resumeTerm is a normalized skill or technology with its display name.
type resumeTerm struct {
	term string
	name string
}

func resumeTerms(r types.Resume) []resumeTerm {
	seen := map[string]bool{}
	var out []resumeTerm
	add := func(name string) {
		t := normalizeTerm(name)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		out = append(out, resumeTerm{term: t, name: strings.TrimSpace(name)})
	}
	for _, s := range r.Skills {
		add(s.Name)
	}
	for _, p := range r.Projects {
		for _, tech := range p.Technologies {
			add(tech)
		}
	}
	return out
}

// MatchResume scores how well the resume covers the posting.
//
// With requirements, the score is the share of requirements that mention a
// resume skill or project technology, or that (when short) appear verbatim
// in the resume. Without requirements, it is the share of resume skills
// mentioned in the title and description.
func MatchResume(r types.Resume, j types.Job) Match {
	terms := resumeTerms(r)
	posting := normalizeTerm(j.Title + " " + j.Description + " " + strings.Join(j.Requirements, " "))

	var m Match
	for _, t := range terms {
		if mentions(posting, t.term) {
			m.Skills = append(m.Skills, t.name)
		}
	}

	var reqs []string
	for _, req := range j.Requirements {
		if strings.TrimSpace(req) != "" {
			reqs = append(reqs, req)
		}
	}

	if len(reqs) == 0 {
		if len(terms) > 0 {
			m.Score = percent(len(m.Skills), len(terms))
		}
		return m
	}

	text := normalizeTerm(analysis.Text(r))
	for _, req := range reqs {
		nreq := normalizeTerm(req)
		covered := false
		for _, t := range terms {
			if mentions(nreq, t.term) {
				covered = true
				break
			}
		}
		if !covered && len(strings.Fields(nreq)) <= maxPhraseWords {
			covered = containsTerm(text, nreq)
		}
		if covered {
			m.Matched = append(m.Matched, strings.TrimSpace(req))
		}
	}
	m.Score = percent(len(m.Matched), len(reqs))
	return m
}

func percent(n, total int) int {
	return int(math.Round(100 * float64(n) / float64(total)))
}

// ScoreJobs returns copies of jobs with MatchScore filled in for those that
// have none. Existing scores are kept.
func ScoreJobs(r types.Resume, jobs []types.Job) []types.Job {
	out := make([]types.Job, len(jobs))
	for i, j := range jobs {
		j = j.Clone()
		if j.MatchScore == nil {
			score := MatchResume(r, j).Score
			j.MatchScore = &score
		}
		out[i] = j
	}
	return out
}

// Reasons explains a good match in a few lines. It returns nil when the
// score is below the good-fit threshold.
func Reasons(r types.Resume, j types.Job, m Match) []string {
	score := m.Score
	if j.MatchScore != nil {
		score = *j.MatchScore
	}
	if score < GoodFitThreshold {
		return nil
	}

	var out []string
	skills := m.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	if len(skills) > 0 {
		out = append(out, fmt.Sprintf("Your %s skills align with the job requirements", strings.Join(skills, ", ")))
	}
	if len(r.Experiences) > 0 {
		e := r.Experiences[0]
		out = append(out, fmt.Sprintf("Your %s experience at %s is relevant", e.Position, e.Company))
	}
	if len(j.Requirements) > 0 {
		out = append(out, fmt.Sprintf("Your resume covers %d of %d listed requirements", len(m.Matched), len(j.Requirements)))
	}
	return out
}
