package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewhq/crewhq/internal/model"
)

func TestSubmitRequiresMembership(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	outsider := addBrawler(t, dbm, "outsider")
	m := addMission(t, e, chief.ID, "mission1", 5)

	work := &SubmitWork{FileName: "a.png", FileType: "image/png", Data: []byte{1}}

	_, err := e.Submit(context.Background(), m.ID, outsider.ID, work)
	assert.ErrorIs(t, err, ErrForbidden)

	// the chief is not a member and does not submit either
	_, err = e.Submit(context.Background(), m.ID, chief.ID, work)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitTaskCoupling(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	task, err := e.CreateTask(m.ID, chief.ID, &AddTask{Title: "recon"})
	require.NoError(t, err)
	assert.Equal(t, model.TaskPending, task.Status)
	assert.False(t, task.HasSubmission)

	s, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{
		TaskID:   &task.ID,
		FileName: "report.pdf",
		FileType: "application/pdf",
		Data:     []byte("data"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	assert.Contains(t, s.FileURL, "report.pdf")

	task = dbm.TaskQuery().Id(task.ID).One()
	assert.Equal(t, model.TaskReview, task.Status)
	assert.True(t, task.HasSubmission)

	// chief deletes the submission, task drops back to in progress
	require.NoError(t, e.DeleteSubmission(s.ID, chief.ID))

	task = dbm.TaskQuery().Id(task.ID).One()
	assert.Equal(t, model.TaskInProgress, task.Status)
	assert.False(t, task.HasSubmission)
}

func TestSubmitForeignTask(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	mission1 := addMission(t, e, chief.ID, "mission1", 5)
	mission2 := addMission(t, e, chief.ID, "mission2", 5)

	require.NoError(t, e.Join(mission1.ID, m1.ID))

	task, err := e.CreateTask(mission2.ID, chief.ID, &AddTask{Title: "other"})
	require.NoError(t, err)

	_, err = e.Submit(context.Background(), mission1.ID, m1.ID, &SubmitWork{
		TaskID:   &task.ID,
		FileName: "a.png",
		Data:     []byte{1},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitUploadFailure(t *testing.T) {
	e, dbm := prepare(t)
	e.uploader = &fakeUploader{fail: true}

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	_, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", Data: []byte{1}})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.EqualValues(t, 0, dbm.SubmissionQuery().Mission(m.ID).Count())
}

func TestGetSubmissionsAccess(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	outsider := addBrawler(t, dbm, "outsider")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	_, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", Data: []byte{1}})
	require.NoError(t, err)

	subs, err := e.GetSubmissions(m.ID, chief.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	subs, err = e.GetSubmissions(m.ID, m1.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	_, err = e.GetSubmissions(m.ID, outsider.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteSubmissionAuth(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	s, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", Data: []byte{1}})
	require.NoError(t, err)

	assert.ErrorIs(t, e.DeleteSubmission(s.ID, m2.ID), ErrForbidden)
	assert.ErrorIs(t, e.DeleteSubmission(s.ID+100, m1.ID), ErrNotFound)

	// owner may delete their own work
	require.NoError(t, e.DeleteSubmission(s.ID, m1.ID))
	assert.EqualValues(t, 0, dbm.SubmissionQuery().Mission(m.ID).Count())
}

func TestUpdateDescription(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	s, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", Data: []byte{1}})
	require.NoError(t, err)

	assert.ErrorIs(t, e.UpdateDescription(s.ID, m2.ID, "nope"), ErrForbidden)

	require.NoError(t, e.UpdateDescription(s.ID, m1.ID, "by owner"))
	require.NoError(t, e.UpdateDescription(s.ID, chief.ID, "by chief"))

	assert.Equal(t, "by chief", dbm.SubmissionQuery().Id(s.ID).One().Description)
}

func TestGetTaskSubmission(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	task, err := e.CreateTask(m.ID, chief.ID, &AddTask{Title: "recon"})
	require.NoError(t, err)

	assert.Nil(t, e.GetTaskSubmission(task.ID))

	_, err = e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{TaskID: &task.ID, FileName: "a.png", Data: []byte{1}})
	require.NoError(t, err)

	got := e.GetTaskSubmission(task.ID)
	require.NotNil(t, got)
	assert.Equal(t, m1.ID, got.BrawlerID)
}
