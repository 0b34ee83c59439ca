package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates text with a language model.
type Client interface {
	// GenerateContent returns free text for prompt.
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON asks for a JSON response and strips any fences around it.
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("model returned no text")

// Error is a failed model call.
type Error struct {
	Model   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "llm"
	if e.Model != "" {
		msg += " " + e.Model
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

type geminiClient struct {
	client *genai.Client
	cfg    Config
}

// NewClient connects to Gemini with apiKey. A nil cfg uses DefaultConfig.
func NewClient(ctx context.Context, cfg *Config, apiKey string) (Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &Error{Message: "an api key is required"}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &Error{Message: "failed to create client", Cause: err}
	}
	return &geminiClient{client: c, cfg: *cfg}, nil
}

func (g *geminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return g.generate(ctx, prompt, tier, "")
}

func (g *geminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := g.generate(ctx, prompt, tier, "application/json")
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (g *geminiClient) Close() error {
	return g.client.Close()
}

func (g *geminiClient) generate(ctx context.Context, prompt string, tier ModelTier, mimeType string) (string, error) {
	name := g.cfg.Model(tier)
	if name == "" {
		return "", &Error{Message: fmt.Sprintf("no model configured for tier %q", tier)}
	}

	model := g.client.GenerativeModel(name)
	model.SetTemperature(g.cfg.Temperature)
	if g.cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	}
	model.ResponseMIMEType = mimeType

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &Error{Model: name, Message: "request failed", Cause: err}
	}
	text, err := responseText(resp)
	if err != nil {
		return "", &Error{Model: name, Message: "unusable response", Cause: err}
	}
	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	if len(resp.Candidates) == 0 {
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("prompt blocked: %s", fb.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", errors.New("response blocked by safety filters")
	}
	var sb strings.Builder
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
