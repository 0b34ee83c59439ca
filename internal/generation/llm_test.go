package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text    string
	json    string
	err     error
	prompts []string
	tiers   []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.text, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.json, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestLLMGenerator_Summary(t *testing.T) {
	client := &fakeClient{text: "  A crisp summary.\n"}
	g := NewLLMGenerator(client, nil)

	text, err := g.Generate(context.Background(), Request{Kind: KindSummary, JobTitle: "Nurse", Summary: "Ten years in ICU."})
	require.NoError(t, err)
	assert.Equal(t, "A crisp summary.", text)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "for a Nurse.")
	assert.Contains(t, client.prompts[0], "Ten years in ICU.")
	assert.NotContains(t, client.prompts[0], "{{.")
	assert.Equal(t, llm.TierStandard, client.tiers[0])
}

func TestLLMGenerator_Highlights(t *testing.T) {
	client := &fakeClient{json: "```json\n[\"Shipped v2\", \"- Cut latency 40%\"]\n```"}
	g := NewLLMGenerator(client, nil)

	text, err := g.Generate(context.Background(), Request{
		Kind:       KindExperienceHighlights,
		Position:   "Engineer",
		Company:    "Acme",
		Highlights: []string{"Built CI"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Shipped v2", "Cut latency 40%"}, SplitHighlights(text))
	assert.Contains(t, client.prompts[0], "- Built CI")
}

func TestLLMGenerator_HighlightsNotArray(t *testing.T) {
	g := NewLLMGenerator(&fakeClient{json: `{"bullets": 3}`}, nil)

	_, err := g.Generate(context.Background(), Request{Kind: KindExperienceHighlights, Position: "Engineer"})
	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "JSON array")
}

func TestLLMGenerator_CoverLetterUsesAdvancedTier(t *testing.T) {
	client := &fakeClient{text: "<p>Dear Team,</p>"}
	g := NewLLMGenerator(client, nil)

	_, err := g.Generate(context.Background(), Request{
		Kind:     KindCoverLetter,
		Resume:   sampleResume(),
		Company:  "Acme",
		Position: "Staff Engineer",
		Tone:     ToneBalanced,
	})
	require.NoError(t, err)
	assert.Equal(t, llm.TierAdvanced, client.tiers[0])
	assert.Contains(t, client.prompts[0], "from Alex Johnson")
	assert.Contains(t, client.prompts[0], "Tone: balanced.")
	assert.Contains(t, client.prompts[0], "Experience: Senior Software Engineer at Tech Innovations Inc.")
	assert.Contains(t, client.prompts[0], "Skills: JavaScript, React, Node.js, Go")
}

func TestLLMGenerator_Errors(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := NewLLMGenerator(&fakeClient{err: boom}, nil)

	_, err := g.Generate(context.Background(), Request{Kind: KindProjectDescription, Name: "X"})
	assert.ErrorIs(t, err, boom)

	g = NewLLMGenerator(&fakeClient{text: "   "}, nil)
	_, err = g.Generate(context.Background(), Request{Kind: KindProjectDescription, Name: "X"})
	assert.ErrorContains(t, err, "empty text")

	_, err = g.Generate(context.Background(), Request{Kind: Kind("poem")})
	assert.ErrorContains(t, err, "unknown kind")
}
