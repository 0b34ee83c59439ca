package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html><head>
<script type="application/ld+json">
{"@type":"JobPosting","title":"Site Reliability Engineer",
 "description":"<p>Keep the fleet healthy.</p><h3>Requirements</h3><ul><li>Kubernetes</li><li>Go</li></ul>",
 "hiringOrganization":{"name":"Northwind"},
 "jobLocation":{"address":{"addressLocality":"Denver","addressRegion":"CO"}}}
</script></head><body></body></html>`

func writePosting(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJobSaveShowRemove(t *testing.T) {
	dir := newDataDir(t, false)

	out := mustRun(t, dir, "job", "save",
		"--title", "Backend Engineer", "--company", "Initech", "--location", "Remote",
		"--requirement", "Go", "--requirement", "PostgreSQL", "--score", "72")
	id := idFrom(t, out)
	assert.Contains(t, out, "Backend Engineer at Initech")

	out = mustRun(t, dir, "job", "show", id)
	assert.Contains(t, out, "Score:    72")
	assert.Contains(t, out, "• PostgreSQL")

	out = mustRun(t, dir, "job", "list")
	assert.Contains(t, out, "Initech")

	mustRun(t, dir, "job", "remove", id)
	assert.Empty(t, openStore(t, dir).SavedJobs())
}

func TestJobSave_RequiresCompany(t *testing.T) {
	dir := newDataDir(t, false)

	_, err := run(t, dir, "job", "save", "--title", "Backend Engineer")
	assert.Error(t, err)
}

func TestJobImport_HTML(t *testing.T) {
	dir := newDataDir(t, false)
	path := writePosting(t, "posting.html", postingHTML)

	out := mustRun(t, dir, "job", "import", path, "--dry-run")
	assert.Contains(t, out, "Site Reliability Engineer at Northwind")
	assert.Empty(t, openStore(t, dir).SavedJobs())

	out = mustRun(t, dir, "job", "import", path, "--url", "https://boards.greenhouse.io/northwind/jobs/7")
	id := idFrom(t, out)
	assert.Contains(t, out, "(2 requirements)")

	j, err := openStore(t, dir).Job(id)
	require.NoError(t, err)
	assert.Equal(t, "Denver, CO", j.Location)
	assert.Equal(t, "Greenhouse", j.Source)
	assert.Equal(t, []string{"Kubernetes", "Go"}, j.Requirements)
}

func TestJobImport_CompanyOverride(t *testing.T) {
	dir := newDataDir(t, false)
	path := writePosting(t, "posting.html", postingHTML)

	out := mustRun(t, dir, "job", "import", path, "--company", "Contoso")
	assert.Contains(t, out, "at Contoso")
}

func TestJobImport_UnsupportedFile(t *testing.T) {
	dir := newDataDir(t, false)
	path := writePosting(t, "posting.xls", "title")

	_, err := run(t, dir, "job", "import", path)
	assert.Error(t, err)
}

func TestJobSearch(t *testing.T) {
	dir := newDataDir(t, true)

	out := mustRun(t, dir, "job", "search", "frontend")
	assert.Contains(t, out, `Found 1 jobs matching "frontend"`)
	assert.Contains(t, out, "InnovateTech")

	out = mustRun(t, dir, "job", "search")
	assert.Contains(t, out, `Found 3 jobs matching "Senior Software Developer"`)

	out = mustRun(t, dir, "job", "search", "cobol")
	assert.Contains(t, out, "Found 0 jobs")
}

func TestJobMatch_Save(t *testing.T) {
	dir := newDataDir(t, true)

	mustRun(t, dir, "job", "save", "--title", "Data Analyst", "--company", "Umbrella")
	out := mustRun(t, dir, "job", "match", "--save")
	assert.Contains(t, out, "Data Analyst at Umbrella")

	for _, j := range openStore(t, dir).SavedJobs() {
		require.NotNil(t, j.MatchScore, j.Title)
		assert.GreaterOrEqual(t, *j.MatchScore, 0)
		assert.LessOrEqual(t, *j.MatchScore, 100)
	}
}

func TestJobApply(t *testing.T) {
	dir := newDataDir(t, false)
	resumeID := idFrom(t, mustRun(t, dir, "resume", "new", "--title", "Backend"))
	jobID := idFrom(t, mustRun(t, dir, "job", "save", "--title", "Backend Engineer", "--company", "Initech"))

	out := mustRun(t, dir, "job", "apply", jobID)
	assert.Contains(t, out, "Applied to Backend Engineer at Initech")

	apps := openStore(t, dir).JobApplications()
	require.Len(t, apps, 1)
	assert.Equal(t, jobID, apps[0].JobID)
	assert.Equal(t, resumeID, apps[0].ResumeID)
	assert.Equal(t, types.StatusApplied, apps[0].Status)
}
