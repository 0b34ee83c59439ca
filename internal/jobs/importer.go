package jobs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/types"
)

// ImportOptions override what the posting itself says.
type ImportOptions struct {
	URL     string
	Title   string
	Company string
}

// Importer reads local posting files into jobs ready to save.
type Importer struct {
	extractor *Extractor
	logger    *zap.Logger
}

// NewImporter returns an importer. A nil extractor parses postings
// without a language model.
func NewImporter(extractor *Extractor, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{extractor: extractor, logger: logger}
}

// ImportFile reads and parses the posting at path.
func (im *Importer) ImportFile(ctx context.Context, path string, opts ImportOptions) (types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Job{}, &ImportError{Source: path, Message: "failed to read file", Cause: err}
	}
	return im.Import(ctx, filepath.Base(path), data, opts)
}

// Import parses a posting document. Structured parsing runs first; when an
// extractor is configured its fields take precedence and the parsed ones
// fill the gaps. The result must have a title and a company.
func (im *Importer) Import(ctx context.Context, name string, data []byte, opts ImportOptions) (types.Job, error) {
	if err := ctx.Err(); err != nil {
		return types.Job{}, err
	}
	kind, err := KindOf(name)
	if err != nil {
		return types.Job{}, err
	}

	var job types.Job
	if kind == KindHTML {
		job, err = ParsePostingHTML(bytes.NewReader(data), opts.URL)
		if err != nil {
			return types.Job{}, err
		}
	} else {
		text, err := ExtractText(name, data)
		if err != nil {
			return types.Job{}, err
		}
		job = ParsePostingText(text)
	}

	if im.extractor != nil {
		job = im.extract(ctx, name, data, job)
	}

	if s := strings.TrimSpace(opts.Title); s != "" {
		job.Title = s
	}
	if s := strings.TrimSpace(opts.Company); s != "" {
		job.Company = s
	}
	if s := strings.TrimSpace(opts.URL); s != "" {
		job.URL = s
	}
	if job.Source == "" {
		job.Source = DetectPlatform(job.URL).Source()
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	if err := types.Validate(job); err != nil {
		return types.Job{}, &ImportError{Source: name, Message: "posting needs a title and a company", Cause: err}
	}
	im.logger.Debug("imported job posting",
		zap.String("file", name),
		zap.String("kind", string(kind)),
		zap.String("title", job.Title),
		zap.Int("requirements", len(job.Requirements)))
	return job, nil
}

func (im *Importer) extract(ctx context.Context, name string, data []byte, parsed types.Job) types.Job {
	text, err := ExtractText(name, data)
	if err == nil {
		var extracted types.Job
		extracted, err = im.extractor.Extract(ctx, text)
		if err == nil {
			return merge(extracted, parsed)
		}
	}
	im.logger.Warn("language model extraction failed, keeping parsed fields",
		zap.String("file", name), zap.Error(err))
	return parsed
}

// merge fills empty fields of primary from fallback.
func merge(primary, fallback types.Job) types.Job {
	primary.Title = or(primary.Title, fallback.Title)
	primary.Company = or(primary.Company, fallback.Company)
	primary.Location = or(primary.Location, fallback.Location)
	primary.Salary = or(primary.Salary, fallback.Salary)
	primary.Description = or(primary.Description, fallback.Description)
	primary.DatePosted = or(primary.DatePosted, fallback.DatePosted)
	primary.URL = or(primary.URL, fallback.URL)
	primary.Source = or(primary.Source, fallback.Source)
	if len(primary.Requirements) == 0 {
		primary.Requirements = fallback.Requirements
	}
	return primary
}
