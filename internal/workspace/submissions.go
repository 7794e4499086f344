package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewhq/crewhq/internal/model"
	"github.com/crewhq/crewhq/internal/upload"
)

type SubmitWork struct {
	TaskID      *uint
	FileName    string
	FileType    string
	Data        []byte
	Description string
}

// Submit stores the artifact through the upload collaborator and
// persists the submission row. Joined members only. If the work targets
// a task, the task is nudged to Review; that side effect never rolls
// back the already-persisted submission.
func (e *Engine) Submit(ctx context.Context, missionID, brawlerID uint, work *SubmitWork) (*model.Submission, error) {
	m := e.dbm.MissionDetail(missionID, brawlerID)

	if m == nil {
		return nil, ErrNotFound
	}

	if !CanSubmit(m, brawlerID) {
		return nil, fmt.Errorf("%w: you must be a crew member to submit work", ErrForbidden)
	}

	if work.TaskID != nil {
		t := e.dbm.TaskQuery().Id(*work.TaskID).One()
		if t == nil || t.MissionID != missionID {
			return nil, fmt.Errorf("%w: task does not belong to this mission", ErrNotFound)
		}
	}

	url, err := e.uploader.Upload(ctx, &upload.Request{
		Folder:      fmt.Sprintf("mission_%d_submissions", missionID),
		Name:        work.FileName,
		ContentType: work.FileType,
		Data:        work.Data,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	s := &model.Submission{
		MissionID:   missionID,
		BrawlerID:   brawlerID,
		FileURL:     url,
		FileName:    work.FileName,
		FileType:    work.FileType,
		TaskID:      work.TaskID,
		Description: work.Description,
		SubmittedAt: time.Now(),
	}

	if err := e.dbm.Create(s); err != nil {
		return nil, err
	}

	if work.TaskID != nil {
		e.onSubmissionCreated(*work.TaskID)
	}

	return s, nil
}

// GetSubmissions - chief or joined member.
func (e *Engine) GetSubmissions(missionID, actorID uint) ([]*model.Submission, error) {
	m := e.dbm.MissionDetail(missionID, actorID)

	if m == nil {
		return nil, ErrNotFound
	}

	if !CanView(m, actorID) {
		return nil, fmt.Errorf("%w: no permission to view submissions", ErrForbidden)
	}

	return e.dbm.SubmissionQuery().Mission(missionID).Get(), nil
}

// GetTaskSubmission returns the task's most recent submission, or nil.
func (e *Engine) GetTaskSubmission(taskID uint) *model.Submission {
	return e.dbm.SubmissionQuery().Task(taskID).One()
}

// DeleteSubmission - chief or owner. Reverses the task coupling after
// the row is gone, best effort.
func (e *Engine) DeleteSubmission(id, actorID uint) error {
	s := e.dbm.SubmissionQuery().Id(id).One()

	if s == nil {
		return fmt.Errorf("%w: submission", ErrNotFound)
	}

	m := e.dbm.MissionDetail(s.MissionID, actorID)

	if m == nil {
		return ErrNotFound
	}

	if !CanTouchSubmission(m, s, actorID) {
		return fmt.Errorf("%w: only the chief or the owner can delete submissions", ErrForbidden)
	}

	if err := e.dbm.SubmissionQuery().Id(id).Delete(); err != nil {
		return err
	}

	if s.TaskID != nil {
		e.onSubmissionDeleted(*s.TaskID)
	}

	return nil
}

// UpdateDescription - chief or owner.
func (e *Engine) UpdateDescription(id, actorID uint, description string) error {
	s := e.dbm.SubmissionQuery().Id(id).One()

	if s == nil {
		return fmt.Errorf("%w: submission", ErrNotFound)
	}

	m := e.dbm.MissionDetail(s.MissionID, actorID)

	if m == nil {
		return ErrNotFound
	}

	if !CanTouchSubmission(m, s, actorID) {
		return fmt.Errorf("%w: only the chief or the owner can update descriptions", ErrForbidden)
	}

	return e.dbm.SubmissionQuery().Id(id).Update(map[string]any{"description": description})
}

// onSubmissionCreated and onSubmissionDeleted are the only automatic
// task status transitions. Everything else is an explicit chief edit.

func (e *Engine) onSubmissionCreated(taskID uint) {
	if err := e.dbm.TaskQuery().Id(taskID).Update(map[string]any{
		"status":         model.TaskReview,
		"has_submission": true,
	}); err != nil {
		e.logger.Error("task review flag update failed",
			slog.Any("error", err), slog.Uint64("task", uint64(taskID)))
	}
}

func (e *Engine) onSubmissionDeleted(taskID uint) {
	// only reset when no other live submission still references the task
	if e.dbm.SubmissionQuery().Task(taskID).Count() > 0 {
		return
	}

	if err := e.dbm.TaskQuery().Id(taskID).Update(map[string]any{
		"status":         model.TaskInProgress,
		"has_submission": false,
	}); err != nil {
		e.logger.Error("task review flag reset failed",
			slog.Any("error", err), slog.Uint64("task", uint64(taskID)))
	}
}
