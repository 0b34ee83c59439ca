// Package schemas embeds the JSON Schemas for documents the resume builder persists.
package schemas

import _ "embed"

// Store is the JSON Schema for the persisted store envelope.
//
//go:embed store.schema.json
var Store []byte
