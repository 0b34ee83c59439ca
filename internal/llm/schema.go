package llm

import (
	"fmt"
	"strings"
)

// Field is one key of the JSON object a model is asked to fill.
type Field struct {
	Name string
	// Type is a JSON sketch of the value, such as "string" or ["string"].
	// Empty means a plain string.
	Type        string
	Description string
	Required    bool
}

// Schema describes a JSON object to pull out of free text.
type Schema struct {
	Instructions string
	Fields       []Field
}

// Prompt renders the extraction prompt for input.
func (s Schema) Prompt(input string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(s.Instructions))
	sb.WriteString("\n\nRespond with one JSON object of this shape:\n{\n")
	for i, f := range s.Fields {
		typ := f.Type
		if typ == "" {
			typ = `"string"`
		}
		fmt.Fprintf(&sb, "  %q: %s", f.Name, typ)
		if i < len(s.Fields)-1 {
			sb.WriteByte(',')
		}
		var notes []string
		if f.Required {
			notes = append(notes, "required")
		}
		if f.Description != "" {
			notes = append(notes, f.Description)
		}
		if len(notes) > 0 {
			sb.WriteString("  // " + strings.Join(notes, "; "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Copy values from the text. Leave a field empty rather than guess.\n")
	sb.WriteString("- Output the JSON object only, without markdown fences or commentary.\n\n")
	sb.WriteString("Text:\n<<<\n")
	sb.WriteString(strings.TrimSpace(input))
	sb.WriteString("\n>>>\n")
	return sb.String()
}
