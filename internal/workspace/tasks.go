package workspace

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/crewhq/crewhq/internal/model"
)

type AddTask struct {
	Title       string
	Description string
	MemberID    *uint
	Priority    string
	StartDate   *time.Time
	EndDate     *time.Time
}

// EditTask carries partial task edits, nil fields are untouched.
// A MemberID of zero clears the assignee. HasSubmission is deliberately
// absent: that flag belongs to the submission workflow.
type EditTask struct {
	Title       *string
	Description *string
	MemberID    *uint
	Status      *string
	Priority    *string
}

// CreateTask - chief only. New tasks start Pending, priority defaults
// to Medium.
func (e *Engine) CreateTask(missionID, actorID uint, add *AddTask) (*model.Task, error) {
	m := e.dbm.MissionDetail(missionID, 0)

	if m == nil {
		return nil, ErrNotFound
	}

	if !CanManage(m, actorID) {
		return nil, fmt.Errorf("%w: only the chief can create tasks", ErrForbidden)
	}

	if add == nil || add.Title == "" {
		return nil, fmt.Errorf("empty task title")
	}

	t := &model.Task{
		MissionID:   missionID,
		MemberID:    add.MemberID,
		Title:       add.Title,
		Description: add.Description,
		StartDate:   add.StartDate,
		EndDate:     add.EndDate,
		Priority:    add.Priority,
		Status:      model.TaskPending,
		CreatedBy:   actorID,
	}

	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	if err := e.dbm.Create(t); err != nil {
		return nil, err
	}

	return t, nil
}

// UpdateTask - chief only, partial fields, refreshes updated_at.
func (e *Engine) UpdateTask(taskID, actorID uint, edit *EditTask) (*model.Task, error) {
	t := e.dbm.TaskQuery().Id(taskID).One()

	if t == nil {
		return nil, ErrNotFound
	}

	m := e.dbm.MissionDetail(t.MissionID, 0)

	if m == nil {
		return nil, ErrNotFound
	}

	if !CanManage(m, actorID) {
		return nil, fmt.Errorf("%w: only the chief can update tasks", ErrForbidden)
	}

	updates := make(map[string]any)

	if edit.Title != nil {
		updates["title"] = *edit.Title
	}

	if edit.Description != nil {
		updates["description"] = *edit.Description
	}

	if edit.MemberID != nil {
		if *edit.MemberID == 0 {
			updates["member_id"] = nil
		} else {
			updates["member_id"] = *edit.MemberID
		}
	}

	if edit.Status != nil {
		updates["status"] = *edit.Status
	}

	if edit.Priority != nil {
		updates["priority"] = *edit.Priority
	}

	if err := e.dbm.TaskQuery().Id(taskID).Update(updates); err != nil {
		return nil, err
	}

	return e.dbm.TaskQuery().Id(taskID).One(), nil
}

// DeleteTask - chief only. Submissions referencing the task go first,
// the storage is not trusted to cascade.
func (e *Engine) DeleteTask(taskID, actorID uint) error {
	t := e.dbm.TaskQuery().Id(taskID).One()

	if t == nil {
		return ErrNotFound
	}

	m := e.dbm.MissionDetail(t.MissionID, 0)

	if m == nil {
		return ErrNotFound
	}

	if !CanManage(m, actorID) {
		return fmt.Errorf("%w: only the chief can delete tasks", ErrForbidden)
	}

	if err := e.dbm.SubmissionQuery().Task(taskID).Delete(); err != nil {
		e.logger.Error("task delete: submission cleanup failed",
			slog.Any("error", err), slog.Uint64("task", uint64(taskID)))
	}

	return e.dbm.TaskQuery().Id(taskID).Delete()
}

// GetMissionTasks - chief or joined member.
func (e *Engine) GetMissionTasks(missionID, actorID uint) ([]*model.Task, error) {
	m := e.dbm.MissionDetail(missionID, actorID)

	if m == nil {
		return nil, ErrNotFound
	}

	if !CanView(m, actorID) {
		return nil, fmt.Errorf("%w: access denied", ErrForbidden)
	}

	return e.dbm.TaskQuery().Mission(missionID).Get(), nil
}

func (e *Engine) GetTasksByAssignee(memberID uint) []*model.Task {
	return e.dbm.TaskQuery().Assignee(memberID).Get()
}
