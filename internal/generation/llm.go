package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

const promptFile = "generation.json"

// LLMGenerator asks a language model for the text.
type LLMGenerator struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMGenerator wraps client. A nil logger disables logging.
func NewLLMGenerator(client llm.Client, logger *zap.Logger) *LLMGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMGenerator{client: client, logger: logger}
}

// tiers maps each kind to the model tier it needs.
var tiers = map[Kind]llm.ModelTier{
	KindSummary:               llm.TierStandard,
	KindExperienceDescription: llm.TierLite,
	KindExperienceHighlights:  llm.TierStandard,
	KindEducationDescription:  llm.TierLite,
	KindProjectDescription:    llm.TierLite,
	KindCoverLetter:           llm.TierAdvanced,
}

// Generate implements Generator.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	prompt, err := prompts.Render(promptFile, string(req.Kind), promptData(req))
	if err != nil {
		return "", &Error{Kind: req.Kind, Message: "failed to build prompt", Cause: err}
	}

	tier := tiers[req.Kind]
	g.logger.Debug("generating text", zap.String("kind", string(req.Kind)), zap.String("tier", string(tier)))

	if req.Kind == KindExperienceHighlights {
		raw, err := g.client.GenerateJSON(ctx, prompt, tier)
		if err != nil {
			return "", &Error{Kind: req.Kind, Message: "model call failed", Cause: err}
		}
		var bullets []string
		if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &bullets); err != nil {
			return "", &Error{Kind: req.Kind, Message: "model did not return a JSON array", Cause: err}
		}
		return strings.Join(SplitHighlights(strings.Join(bullets, "\n")), "\n"), nil
	}

	text, err := g.client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", &Error{Kind: req.Kind, Message: "model call failed", Cause: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &Error{Kind: req.Kind, Message: "model returned empty text"}
	}
	return text, nil
}

func promptData(req Request) map[string]string {
	data := map[string]string{
		"JobTitle":     or(req.JobTitle, "professional"),
		"Summary":      req.Summary,
		"Position":     req.Position,
		"Company":      or(req.Company, "the company"),
		"Description":  req.Description,
		"Highlights":   "- " + strings.Join(req.Highlights, "\n- "),
		"Institution":  req.Institution,
		"Degree":       req.Degree,
		"FieldOfStudy": or(req.FieldOfStudy, "their field"),
		"Name":         req.Name,
		"Recipient":    or(req.Recipient, DefaultRecipient),
		"Tone":         or(string(req.Tone), string(ToneProfessional)),
		"KeyPoints":    or(req.KeyPoints, "none"),
	}
	if len(req.Highlights) == 0 {
		data["Highlights"] = "(none)"
	}
	if req.Resume != nil {
		data["FullName"] = req.Resume.PersonalInfo.FullName()
		data["Profile"] = profile(*req.Resume)
	}
	return data
}

// profile summarizes a resume for a cover letter prompt.
func profile(r types.Resume) string {
	var sb strings.Builder
	p := r.PersonalInfo
	fmt.Fprintf(&sb, "Name: %s\n", p.FullName())
	if p.JobTitle != "" {
		fmt.Fprintf(&sb, "Title: %s\n", p.JobTitle)
	}
	if p.Summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", p.Summary)
	}
	for _, e := range r.Experiences {
		fmt.Fprintf(&sb, "Experience: %s at %s\n", e.Position, e.Company)
		for _, h := range e.Highlights {
			fmt.Fprintf(&sb, "  - %s\n", h)
		}
	}
	if len(r.Skills) > 0 {
		names := make([]string, len(r.Skills))
		for i, s := range r.Skills {
			names[i] = s.Name
		}
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(names, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
