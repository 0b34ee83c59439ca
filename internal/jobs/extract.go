package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// postingSchema asks for the fields of a saved job. Keys match the
// persisted Job record.
var postingSchema = llm.Schema{
	Instructions: `You turn raw job postings into saved job records. Copy text verbatim and do not paraphrase.
Ignore application form fields, EEO statements, legal disclaimers, and cookie banners.`,
	Fields: []llm.Field{
		{Name: "title", Description: "job title as written", Required: true},
		{Name: "company", Description: "hiring company", Required: true},
		{Name: "location", Description: "city and region, or Remote"},
		{Name: "salary", Description: "salary range exactly as written, empty if absent"},
		{Name: "description", Description: "one paragraph describing the role"},
		{Name: "requirements", Type: `["string"]`, Description: "one entry per qualification or skill", Required: true},
	},
}

// extractedPosting is the decoded postingSchema object.
type extractedPosting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// Extractor turns posting text into a job with a language model.
type Extractor struct {
	client llm.Client
}

// NewExtractor returns an extractor using client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract asks the model for the posting fields.
func (e *Extractor) Extract(ctx context.Context, text string) (types.Job, error) {
	if strings.TrimSpace(text) == "" {
		return types.Job{}, &ImportError{Source: "llm", Message: "posting text is empty"}
	}

	prompt := postingSchema.Prompt(text)
	resp, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.Job{}, &ImportError{Source: "llm", Message: "failed to extract posting", Cause: err}
	}

	var out extractedPosting
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &out); err != nil {
		return types.Job{}, &ImportError{Source: "llm", Message: fmt.Sprintf("failed to decode extraction (content: %s)", resp), Cause: err}
	}

	job := types.Job{
		Title:        collapse(out.Title),
		Company:      collapse(out.Company),
		Location:     collapse(out.Location),
		Salary:       collapse(out.Salary),
		Description:  strings.TrimSpace(out.Description),
		Requirements: []string{},
	}
	for _, r := range out.Requirements {
		if r = collapse(r); r != "" {
			job.Requirements = append(job.Requirements, r)
		}
	}
	return job, nil
}
