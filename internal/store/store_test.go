package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s := New(mem, WithClock(func() time.Time { return fixedNow }), WithLogger(zaptest.NewLogger(t)))
	return s, mem
}

func testResume(title string) types.Resume {
	return types.Resume{
		Title: title,
		PersonalInfo: types.PersonalInfo{
			FirstName: "Alex",
			LastName:  "Johnson",
			Email:     "alex@example.com",
		},
		Experiences: []types.Experience{
			{Company: "TechCorp", Position: "Developer", StartDate: "2020-03", EndDate: "2023-01", Current: true, Highlights: []string{"Shipped"}},
		},
		Skills: []types.Skill{{Name: "Go", Level: 5}},
	}
}

func addResume(t *testing.T, s *Store, title string) types.Resume {
	t.Helper()
	r, err := s.AddResume(context.Background(), testResume(title))
	require.NoError(t, err)
	return r
}

func TestAddResume_AssignsIdentityAndActivates(t *testing.T) {
	s, mem := newTestStore(t)

	r := addResume(t, s, "First")

	assert.Len(t, r.ID, 12)
	assert.Equal(t, fixedNow, r.CreatedAt)
	assert.Equal(t, fixedNow, r.UpdatedAt)
	assert.Equal(t, "template-modern", r.TemplateID)
	assert.Equal(t, r.ID, s.ActiveResumeID())
	assert.NotEmpty(t, r.Experiences[0].ID)
	assert.NotEmpty(t, r.Skills[0].ID)
	assert.Empty(t, r.Experiences[0].EndDate, "current job must not keep an end date")
	assert.Equal(t, 1, mem.Saves())
}

func TestAddResume_InvalidChildRejected(t *testing.T) {
	s, mem := newTestStore(t)
	r := testResume("Bad")
	r.Skills = []types.Skill{{Name: "Go", Level: 9}}

	_, err := s.AddResume(context.Background(), r)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, s.Resumes())
	assert.Equal(t, 0, mem.Saves())
}

func TestAddResume_UniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		r := addResume(t, s, "Resume")
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, s.Resumes(), 50)
}

func TestUpdateResume_SetsFieldAndAdvancesUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)
	r := addResume(t, s, "Old")

	title := "New"
	updated, err := s.UpdateResume(context.Background(), r.ID, types.ResumePatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.True(t, updated.UpdatedAt.After(r.UpdatedAt), "updatedAt must strictly increase even with a frozen clock")
	assert.Equal(t, r.CreatedAt, updated.CreatedAt)

	again, err := s.UpdateResume(context.Background(), r.ID, types.ResumePatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))

	stored, err := s.Resume(r.ID)
	require.NoError(t, err)
	assert.Equal(t, again, stored)
}

func TestUpdateResume_NormalizesCurrentExperience(t *testing.T) {
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")

	exps := r.Experiences
	exps[0].EndDate = "2024-01"
	updated, err := s.UpdateResume(context.Background(), r.ID, types.ResumePatch{Experiences: exps})
	require.NoError(t, err)
	assert.Empty(t, updated.Experiences[0].EndDate)
}

func TestUpdateResume_UnknownID(t *testing.T) {
	s, mem := newTestStore(t)
	title := "x"

	_, err := s.UpdateResume(context.Background(), "missing", types.ResumePatch{Title: &title})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resume", notFound.Kind)
	assert.Equal(t, "missing", notFound.ID)
	assert.Equal(t, 0, mem.Saves())
}

func TestDeleteResume_ReassignsActive(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	first := addResume(t, s, "First")
	second := addResume(t, s, "Second")
	third := addResume(t, s, "Third")
	require.Equal(t, third.ID, s.ActiveResumeID())

	require.NoError(t, s.DeleteResume(ctx, third.ID))
	assert.Equal(t, first.ID, s.ActiveResumeID())

	require.NoError(t, s.DeleteResume(ctx, second.ID))
	assert.Equal(t, first.ID, s.ActiveResumeID(), "deleting an inactive resume keeps the selection")

	require.NoError(t, s.DeleteResume(ctx, first.ID))
	assert.Empty(t, s.ActiveResumeID())
	assert.Empty(t, s.Resumes())

	_, ok := s.ActiveResume()
	assert.False(t, ok)
}

func TestDeleteResume_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.DeleteResume(context.Background(), "nope")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteResume_CascadesToDependents(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	keep := addResume(t, s, "Keep")
	drop := addResume(t, s, "Drop")

	keptLetter, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "Keep", ResumeID: keep.ID})
	require.NoError(t, err)
	letter, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "Drop", ResumeID: drop.ID})
	require.NoError(t, err)
	_, err = s.AddJobApplication(ctx, types.JobApplication{ResumeID: drop.ID, CoverLetterID: letter.ID, Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	keptApp, err := s.AddJobApplication(ctx, types.JobApplication{ResumeID: keep.ID, Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	_, err = s.AddInterviewPrep(ctx, types.InterviewPrep{Title: "Prep", ResumeID: drop.ID})
	require.NoError(t, err)
	_, err = s.AddVideoResume(ctx, types.VideoResume{Title: "Intro", ResumeID: drop.ID, URL: "https://example.com/v.mp4", Duration: 60})
	require.NoError(t, err)

	require.NoError(t, s.DeleteResume(ctx, drop.ID))

	snap := s.Snapshot()
	require.Len(t, snap.CoverLetters, 1)
	assert.Equal(t, keptLetter.ID, snap.CoverLetters[0].ID)
	assert.Equal(t, keptLetter.ID, snap.ActiveCoverLetterID)
	require.Len(t, snap.JobApplications, 1)
	assert.Equal(t, keptApp.ID, snap.JobApplications[0].ID)
	assert.Empty(t, snap.InterviewPreps)
	assert.Empty(t, snap.VideoResumes)
	assert.Equal(t, keep.ID, snap.ActiveResumeID)
}

func TestSetActiveResumeID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	first := addResume(t, s, "First")
	addResume(t, s, "Second")

	require.NoError(t, s.SetActiveResumeID(ctx, first.ID))
	active, ok := s.ActiveResume()
	require.True(t, ok)
	assert.Equal(t, "First", active.Title)

	err := s.SetActiveResumeID(ctx, "dangling")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, first.ID, s.ActiveResumeID())

	require.NoError(t, s.SetActiveResumeID(ctx, ""))
	assert.Empty(t, s.ActiveResumeID())
}

func TestMutation_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)
	r := addResume(t, s, "Stable")
	before := s.Snapshot()

	mem.FailSaves(errors.New("disk full"))

	title := "Changed"
	_, err := s.UpdateResume(ctx, r.ID, types.ResumePatch{Title: &title})
	var persistErr *PersistError
	require.ErrorAs(t, err, &persistErr)

	_, err = s.AddResume(ctx, testResume("Another"))
	require.ErrorAs(t, err, &persistErr)

	err = s.DeleteResume(ctx, r.ID)
	require.ErrorAs(t, err, &persistErr)

	assert.Equal(t, before, s.Snapshot())
}

func TestOpen_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)
	r := addResume(t, s, "Persisted")
	letter, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "Letter", ResumeID: r.ID, Content: "<p>Hi</p>"})
	require.NoError(t, err)
	job, err := s.SaveJob(ctx, types.Job{Title: "Engineer", Company: "Acme", Requirements: []string{"Go"}})
	require.NoError(t, err)
	app, err := s.AddJobApplication(ctx, types.JobApplication{JobID: job.ID, ResumeID: r.ID, CoverLetterID: letter.ID, Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)
	_, err = s.AddInterview(ctx, app.ID, types.Interview{Type: types.InterviewPhone, Date: "2024-05-02", Interviewers: []string{"Sam"}})
	require.NoError(t, err)
	_, err = s.AddInterview(ctx, app.ID, types.Interview{Type: types.InterviewVideo, Date: "2024-05-09", Interviewers: []string{}})
	require.NoError(t, err)
	_, err = s.AddInterview(ctx, app.ID, types.Interview{Type: types.InterviewOther, Date: "2024-05-16"})
	require.NoError(t, err)
	_, err = s.SetUserData(ctx, "alex@example.com", "Alex", types.SubscriptionPremium)
	require.NoError(t, err)

	reopened, err := Open(ctx, mem)
	require.NoError(t, err)

	assert.True(t, reopened.Restored())
	assert.Equal(t, s.Snapshot(), reopened.Snapshot())
}

func TestOpen_EmptyStorage(t *testing.T) {
	s, err := Open(context.Background(), storage.NewMemory())
	require.NoError(t, err)

	assert.False(t, s.Restored())
	assert.Empty(t, s.Resumes())
	assert.Len(t, s.ResumeTemplates(), 5)
	assert.Len(t, s.CoverLetterTemplates(), 3)
}

func TestOpen_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Save(ctx, StorageKey, []byte(`not json`)))

	_, err := Open(ctx, mem)
	var migrationErr *MigrationError
	assert.ErrorAs(t, err, &migrationErr)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	r := addResume(t, s, "Original")

	got, err := s.Resume(r.ID)
	require.NoError(t, err)
	got.Title = "Mutated"
	got.Experiences[0].Highlights[0] = "Mutated"

	again, err := s.Resume(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
	assert.Equal(t, "Shipped", again.Experiences[0].Highlights[0])
}

func TestCoverLetters(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")

	_, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "Orphan", ResumeID: "missing"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	first, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "First", ResumeID: r.ID})
	require.NoError(t, err)
	second, err := s.AddCoverLetter(ctx, types.CoverLetter{Title: "Second", ResumeID: r.ID})
	require.NoError(t, err)
	assert.Equal(t, second.ID, s.ActiveCoverLetterID())
	assert.Equal(t, "cover-modern", first.TemplateID)

	content := "<p>Updated</p>"
	updated, err := s.UpdateCoverLetter(ctx, first.ID, types.CoverLetterPatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))

	app, err := s.AddJobApplication(ctx, types.JobApplication{ResumeID: r.ID, CoverLetterID: second.ID, Company: "Acme", Position: "Dev"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCoverLetter(ctx, second.ID))
	assert.Equal(t, first.ID, s.ActiveCoverLetterID())

	gotApp, err := s.JobApplication(app.ID)
	require.NoError(t, err)
	assert.Empty(t, gotApp.CoverLetterID, "deleting a cover letter clears references to it")

	require.NoError(t, s.SetActiveCoverLetterID(ctx, ""))
	_, ok := s.ActiveCoverLetter()
	assert.False(t, ok)
	assert.Error(t, s.SetActiveCoverLetterID(ctx, "missing"))
}

func TestSaveJob_ReplaceOrAppend(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	job, err := s.SaveJob(ctx, types.Job{Title: "Engineer", Company: "Acme"})
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)

	job.Salary = "$100k"
	_, err = s.SaveJob(ctx, job)
	require.NoError(t, err)

	jobs := s.SavedJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "$100k", jobs[0].Salary)

	_, err = s.SaveJob(ctx, types.Job{ID: "external-1", Title: "Designer", Company: "Studio"})
	require.NoError(t, err)
	assert.Len(t, s.SavedJobs(), 2)

	got, err := s.Job("external-1")
	require.NoError(t, err)
	assert.Equal(t, "Designer", got.Title)
}

func TestRemoveJob_ClearsPrepReference(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")
	job, err := s.SaveJob(ctx, types.Job{Title: "Engineer", Company: "Acme"})
	require.NoError(t, err)
	app, err := s.AddJobApplication(ctx, types.JobApplication{JobID: job.ID, ResumeID: r.ID, Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)
	prep, err := s.AddInterviewPrep(ctx, types.InterviewPrep{Title: "Prep", ResumeID: r.ID, JobID: job.ID})
	require.NoError(t, err)

	require.NoError(t, s.RemoveJob(ctx, job.ID))

	gotPrep, err := s.InterviewPrep(prep.ID)
	require.NoError(t, err)
	assert.Empty(t, gotPrep.JobID)

	gotApp, err := s.JobApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, gotApp.JobID)
	assert.Equal(t, "Acme", gotApp.Company)

	var notFound *NotFoundError
	assert.ErrorAs(t, s.RemoveJob(ctx, job.ID), &notFound)
}

func TestJobApplications(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")

	app, err := s.AddJobApplication(ctx, types.JobApplication{ResumeID: r.ID, Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusApplied, app.Status)
	assert.Equal(t, fixedNow, app.DateApplied)

	iv, err := s.AddInterview(ctx, app.ID, types.Interview{Type: types.InterviewTechnical, Date: "2024-05-10", Duration: 60})
	require.NoError(t, err)
	assert.NotEmpty(t, iv.ID)
	assert.Equal(t, app.ID, iv.ApplicationID)

	f, err := s.AddFollowUp(ctx, app.ID, types.FollowUp{Type: types.FollowUpEmail, Date: "2024-05-11"})
	require.NoError(t, err)
	assert.Equal(t, app.ID, f.ApplicationID)

	status := types.StatusOffered
	updated, err := s.UpdateJobApplication(ctx, app.ID, types.JobApplicationPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, types.StatusOffered, updated.Status)
	assert.Len(t, updated.Interviews, 1)
	assert.Len(t, updated.FollowUps, 1)
	assert.True(t, updated.DateUpdated.After(app.DateUpdated))

	bad := types.ApplicationStatus("Ghosted")
	_, err = s.UpdateJobApplication(ctx, app.ID, types.JobApplicationPatch{Status: &bad})
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = s.AddInterview(ctx, "missing", types.Interview{Type: types.InterviewPhone, Date: "2024-05-10"})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	require.NoError(t, s.DeleteJobApplication(ctx, app.ID))
	assert.Empty(t, s.JobApplications())
	assert.ErrorAs(t, s.DeleteJobApplication(ctx, app.ID), &notFound)
}

func TestInterviewPreps(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")

	prep, err := s.AddInterviewPrep(ctx, types.InterviewPrep{
		Title:    "Prep",
		ResumeID: r.ID,
		Questions: []types.InterviewQuestion{
			{Question: "Tell me about yourself.", Category: "General", Difficulty: types.DifficultyEasy},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, prep.Questions[0].ID)

	questions := prep.Questions
	questions[0].UserAnswer = "I build things."
	updated, err := s.UpdateInterviewPrep(ctx, prep.ID, types.InterviewPrepPatch{Questions: questions})
	require.NoError(t, err)
	assert.Equal(t, "I build things.", updated.Questions[0].UserAnswer)
	assert.True(t, updated.UpdatedAt.After(prep.UpdatedAt))

	require.NoError(t, s.DeleteInterviewPrep(ctx, prep.ID))
	assert.Empty(t, s.InterviewPreps())
}

func TestVideoResumes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Resume")

	_, err := s.AddVideoResume(ctx, types.VideoResume{Title: "Intro", ResumeID: r.ID, URL: "not a url"})
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	v, err := s.AddVideoResume(ctx, types.VideoResume{Title: "Intro", ResumeID: r.ID, URL: "https://example.com/intro.mp4", Duration: 90})
	require.NoError(t, err)
	assert.Len(t, s.VideoResumes(), 1)

	require.NoError(t, s.DeleteVideoResume(ctx, v.ID))
	assert.Empty(t, s.VideoResumes())
}

func TestSetUserData(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, ok := s.User()
	assert.False(t, ok)

	u, err := s.SetUserData(ctx, "alex@example.com", "Alex", "")
	require.NoError(t, err)
	assert.Equal(t, types.SubscriptionFree, u.Subscription)

	u2, err := s.SetUserData(ctx, "alex@new.example.com", "Alex J", types.SubscriptionPremium)
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)
	assert.Equal(t, u.CreatedAt, u2.CreatedAt)

	_, err = s.SetUserData(ctx, "not-an-email", "Alex", types.SubscriptionFree)
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var mu sync.Mutex
	var got []Change
	unsubscribe := s.Subscribe(func(c Change) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, c)
	})

	r := addResume(t, s, "Watched")
	require.NoError(t, s.SetActiveResumeID(ctx, ""))

	mu.Lock()
	assert.Equal(t, []Change{
		{Slice: SliceResumes, ID: r.ID, Op: OpAdd},
		{Slice: SliceActiveResume, ID: r.ID, Op: OpSelect},
		{Slice: SliceActiveResume, ID: "", Op: OpSelect},
	}, got)
	mu.Unlock()

	unsubscribe()
	addResume(t, s, "Unwatched")

	mu.Lock()
	assert.Len(t, got, 3)
	mu.Unlock()
}

func TestSubscribe_NoNotificationOnFailure(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	err := s.DeleteResume(context.Background(), "missing")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	addResume(t, s, "Old")

	require.NoError(t, s.Replace(ctx, State{}))

	snap := s.Snapshot()
	assert.Empty(t, snap.Resumes)
	assert.NotNil(t, snap.CoverLetters)
	assert.Len(t, snap.ResumeTemplates, 5)
}

func TestReplace_RepairsDanglingActiveIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	r := addResume(t, s, "Kept")

	st := s.Snapshot()
	st.ActiveResumeID = "ghost"
	st.ActiveCoverLetterID = "ghost2"
	require.NoError(t, s.Replace(ctx, st))

	active, ok := s.ActiveResume()
	require.True(t, ok)
	assert.Equal(t, r.ID, active.ID)
	assert.Empty(t, s.Snapshot().ActiveCoverLetterID)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	s, _ := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddResume(context.Background(), testResume("Concurrent"))
			assert.NoError(t, err)
			_ = s.Resumes()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Resumes(), 20)
}
