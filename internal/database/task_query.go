package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

type TaskQuery struct {
	Query[model.Task]
	id        uint
	missionID uint
	memberID  uint
}

func NewTaskQuery(db *gorm.DB) *TaskQuery {
	return &TaskQuery{
		Query: Query[model.Task]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "tasks.created_at DESC",
		},
	}
}

func (q *TaskQuery) Limit(n int) *TaskQuery {
	if q == nil {
		return nil
	}

	q.limit = n
	return q
}

func (q *TaskQuery) Offset(n int) *TaskQuery {
	if q == nil {
		return nil
	}

	q.offset = n
	return q
}

// Id with a zero id invalidates the builder, it never matches anything.
func (q *TaskQuery) Id(id uint) *TaskQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.id = id
	return q
}

func (q *TaskQuery) Mission(id uint) *TaskQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.missionID = id
	return q
}

func (q *TaskQuery) Assignee(id uint) *TaskQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.memberID = id
	return q
}

func (q *TaskQuery) where() *gorm.DB {
	tx := q.db

	if q.id != 0 {
		tx = tx.Where("tasks.id = ?", q.id)
	}

	if q.missionID != 0 {
		tx = tx.Where("tasks.mission_id = ?", q.missionID)
	}

	if q.memberID != 0 {
		tx = tx.Where("tasks.member_id = ?", q.memberID)
	}

	return tx
}

func (q *TaskQuery) Get() []*model.Task {
	if q == nil {
		return nil
	}

	return q.get(q.where().Model(&model.Task{}))
}

func (q *TaskQuery) One() *model.Task {
	if q == nil {
		return nil
	}

	return q.one(q.where().Model(&model.Task{}))
}

// Update refreshes updated_at on every write.
func (q *TaskQuery) Update(updates map[string]any) error {
	if q == nil {
		return ErrNoRecord
	}

	updates["updated_at"] = time.Now()

	return q.updateOrError(q.where().Model(&model.Task{}), updates)
}

func (q *TaskQuery) Delete() error {
	if q == nil {
		return ErrNoRecord
	}

	return q.where().Delete(&model.Task{}).Error
}
