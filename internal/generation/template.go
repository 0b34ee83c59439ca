package generation

import (
	"context"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

const cannedFile = "canned.json"

// TemplateGenerator fills canned prose from the fields already entered.
// Output is deterministic.
type TemplateGenerator struct{}

// NewTemplateGenerator returns a TemplateGenerator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate implements Generator.
func (g *TemplateGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := req.validate(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch req.Kind {
	case KindSummary:
		text, err = prompts.Render(cannedFile, "summary", map[string]string{
			"JobTitle": or(req.JobTitle, "professional"),
			"Summary":  strings.TrimSpace(req.Summary),
		})
		text = strings.Join(strings.Fields(text), " ")
	case KindExperienceDescription:
		text, err = prompts.Render(cannedFile, "experience-description", map[string]string{
			"Position": req.Position,
			"Years":    or(req.Years, "3+"),
		})
	case KindExperienceHighlights:
		text, err = prompts.Render(cannedFile, "experience-highlights", map[string]string{
			"Position": req.Position,
		})
	case KindEducationDescription:
		text, err = prompts.Render(cannedFile, "education-description", map[string]string{
			"Degree":       or(req.Degree, "my degree"),
			"FieldOfStudy": or(req.FieldOfStudy, "my field"),
		})
	case KindProjectDescription:
		key := "project-description-new"
		if strings.TrimSpace(req.Description) != "" {
			key = "project-description-extend"
		}
		text, err = prompts.Render(cannedFile, key, map[string]string{
			"Name":        req.Name,
			"Description": strings.TrimSpace(req.Description),
		})
	case KindCoverLetter:
		text, err = coverLetter(req)
	}
	if err != nil {
		return "", &Error{Kind: req.Kind, Message: "failed to render template", Cause: err}
	}
	return text, nil
}

// coverLetter builds the HTML letter. Every interpolated value is escaped.
func coverLetter(req Request) (string, error) {
	r := req.Resume
	var exp types.Experience
	if len(r.Experiences) > 0 {
		exp = r.Experiences[0]
	}
	highlight := ""
	if len(exp.Highlights) > 0 {
		highlight = exp.Highlights[0]
	}

	tone := req.Tone
	if tone == "" {
		tone = ToneProfessional
	}

	data := map[string]string{
		"Recipient":    or(req.Recipient, DefaultRecipient),
		"Company":      req.Company,
		"Position":     req.Position,
		"PositionLead": strings.Fields(req.Position)[0],
		"Background":   or(exp.Position, "the industry"),
		"TopSkills":    or(skillNames(r.Skills, 3, ", "), "my core skills"),
		"PairSkills":   or(skillNames(r.Skills, 2, " and "), "my core skills"),
		"FirstSkill":   or(skillNames(r.Skills, 1, ""), "this field"),
		"LastCompany":  or(exp.Company, "my previous company"),
		"FullName":     r.PersonalInfo.FullName(),
		"Reputation":   "excellence and professionalism",
	}

	var toneKey string
	switch tone {
	case ToneEnthusiastic:
		toneKey = "cover-letter-enthusiastic"
		data["Highlight"] = or(strings.ToLower(highlight), "took on challenging projects and delivered outstanding results")
		data["Reputation"] = "innovation and creativity"
	case ToneBalanced:
		toneKey = "cover-letter-balanced"
		data["Highlight"] = or(strings.ToLower(highlight), "completed projects that required strong problem-solving abilities")
	default:
		toneKey = "cover-letter-professional"
		data["Highlight"] = or(lowerFirst(highlight), "delivered exceptional results and drove significant improvements")
	}

	for k, v := range data {
		data[k] = html.EscapeString(v)
	}

	paragraph, err := prompts.Render(cannedFile, toneKey, data)
	if err != nil {
		return "", err
	}
	data["ToneParagraph"] = paragraph

	data["KeyPoints"] = ""
	if kp := strings.TrimSpace(req.KeyPoints); kp != "" {
		data["KeyPoints"], err = prompts.Render(cannedFile, "cover-letter-key-points", map[string]string{
			"KeyPoints": html.EscapeString(kp),
		})
		if err != nil {
			return "", err
		}
	}

	return prompts.Render(cannedFile, "cover-letter", data)
}

func skillNames(skills []types.Skill, n int, sep string) string {
	names := make([]string, 0, n)
	for _, s := range skills {
		if len(names) == n {
			break
		}
		names = append(names, s.Name)
	}
	return strings.Join(names, sep)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
