// Package llm wraps the Gemini API behind a small interface so text
// generation and posting extraction can run against a fake in tests.
package llm

import "time"

// ModelTier is how much model a request needs. Callers pick a tier and the
// configuration maps it to a concrete model name.
type ModelTier string

const (
	// TierLite covers one-line rewrites and structured extraction.
	TierLite ModelTier = "lite"
	// TierStandard covers paragraph prose: summaries and highlights.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers long-form writing such as cover letters.
	TierAdvanced ModelTier = "advanced"
)

// Tiers lists the tiers from cheapest to most capable.
var Tiers = []ModelTier{TierLite, TierStandard, TierAdvanced}

// Config selects models and sampling for every call a client makes.
type Config struct {
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	// Timeout bounds a single request. Zero leaves only the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the Gemini models used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     0.7,
		MaxOutputTokens: 2048,
		Timeout:         90 * time.Second,
	}
}

// Model returns the model for tier. A tier without a model borrows the next
// cheaper one; an unknown tier takes the cheapest configured model.
func (c *Config) Model(tier ModelTier) string {
	for i := len(Tiers) - 1; i >= 0; i-- {
		if Tiers[i] != tier {
			continue
		}
		for j := i; j >= 0; j-- {
			if m := c.Models[Tiers[j]]; m != "" {
				return m
			}
		}
		break
	}
	for _, t := range Tiers {
		if m := c.Models[t]; m != "" {
			return m
		}
	}
	return ""
}

// WithAllModels returns a copy of c that sends every tier to model.
func (c *Config) WithAllModels(model string) *Config {
	out := *c
	out.Models = make(map[ModelTier]string, len(Tiers))
	for _, t := range Tiers {
		out.Models[t] = model
	}
	return &out
}
