package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/schemas"
)

var storeSchema = schemas.MustCompile("store.schema.json", Store)

func TestStoreSchema_ValidJSON(t *testing.T) {
	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(Store, &schemaObj))

	_, hasSchema := schemaObj["$schema"]
	_, hasDefs := schemaObj["definitions"]
	assert.True(t, hasSchema)
	assert.True(t, hasDefs)
}

func TestStoreSchema_AcceptsMinimalState(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"user": null,
			"resumes": [],
			"activeResumeId": null,
			"coverLetters": [],
			"activeCoverLetterId": "",
			"savedJobs": [],
			"jobApplications": [],
			"interviewPreps": [],
			"videoResumes": []
		}
	}`

	assert.NoError(t, storeSchema.Validate([]byte(doc)))
}

func TestStoreSchema_AcceptsResume(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"resumes": [{
				"id": "abc123def456",
				"title": "Resume",
				"createdAt": "2024-01-01T00:00:00Z",
				"updatedAt": "2024-01-01T00:00:00Z",
				"personalInfo": {"firstName": "Alex", "lastName": "Johnson", "email": "alex@example.com"},
				"experiences": [{"id": "e1", "company": "TechCorp", "position": "Dev", "startDate": "2020-03", "endDate": "", "current": true, "description": "", "highlights": ["a"]}],
				"education": [],
				"skills": [{"id": "s1", "name": "Go", "level": 5}],
				"projects": [],
				"certificates": [],
				"languages": [{"id": "l1", "name": "English", "proficiency": "Native"}],
				"templateId": "template-modern",
				"score": 85
			}],
			"coverLetters": [],
			"savedJobs": [],
			"jobApplications": [],
			"interviewPreps": [],
			"videoResumes": []
		}
	}`

	assert.NoError(t, storeSchema.Validate([]byte(doc)))
}

func TestStoreSchema_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing version", doc: `{"state": {"resumes": [], "coverLetters": [], "savedJobs": [], "jobApplications": [], "interviewPreps": [], "videoResumes": []}}`},
		{name: "missing collections", doc: `{"version": 1, "state": {"resumes": []}}`},
		{name: "skill level out of range", doc: `{"version": 1, "state": {"resumes": [{"id": "r", "title": "", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z", "personalInfo": {"firstName": "", "lastName": "", "email": ""}, "experiences": [], "education": [], "skills": [{"id": "s", "name": "Go", "level": 9}], "projects": [], "certificates": [], "languages": [], "templateId": ""}], "coverLetters": [], "savedJobs": [], "jobApplications": [], "interviewPreps": [], "videoResumes": []}}`},
		{name: "unknown application status", doc: `{"version": 1, "state": {"resumes": [], "coverLetters": [], "savedJobs": [], "jobApplications": [{"id": "a", "resumeId": "r", "status": "Ghosted", "dateApplied": "2024-01-01T00:00:00Z", "dateUpdated": "2024-01-01T00:00:00Z", "interviews": [], "followUps": []}], "interviewPreps": [], "videoResumes": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeSchema.Validate([]byte(tt.doc))
			require.Error(t, err)
			var validationErr *schemas.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
