//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// CoverLetter is a letter tied to a resume by ResumeID.
// Content holds an HTML fragment.
type CoverLetter struct {
	ID            string    `json:"id"`
	Title         string    `json:"title" validate:"required"`
	Content       string    `json:"content"`
	ResumeID      string    `json:"resumeId" validate:"required"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Company       string    `json:"company,omitempty"`
	Position      string    `json:"position,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	TemplateID    string    `json:"templateId,omitempty"`
	TemplateColor string    `json:"templateColor,omitempty"`
	TemplateFont  string    `json:"templateFont,omitempty"`
}

// CoverLetterPatch holds a partial update for a cover letter.
type CoverLetterPatch struct {
	Title         *string
	Content       *string
	ResumeID      *string
	Company       *string
	Position      *string
	Recipient     *string
	TemplateID    *string
	TemplateColor *string
	TemplateFont  *string
}

// Apply merges the patch into c.
func (p CoverLetterPatch) Apply(c *CoverLetter) {
	setString(&c.Title, p.Title)
	setString(&c.Content, p.Content)
	setString(&c.ResumeID, p.ResumeID)
	setString(&c.Company, p.Company)
	setString(&c.Position, p.Position)
	setString(&c.Recipient, p.Recipient)
	setString(&c.TemplateID, p.TemplateID)
	setString(&c.TemplateColor, p.TemplateColor)
	setString(&c.TemplateFont, p.TemplateFont)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
