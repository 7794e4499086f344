package database

import (
	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

type SubmissionQuery struct {
	Query[model.Submission]
	id        uint
	missionID uint
	brawlerID uint
	taskID    uint
}

func NewSubmissionQuery(db *gorm.DB) *SubmissionQuery {
	return &SubmissionQuery{
		Query: Query[model.Submission]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "submitted_at DESC",
		},
	}
}

func (q *SubmissionQuery) Limit(n int) *SubmissionQuery {
	if q == nil {
		return nil
	}

	q.limit = n
	return q
}

func (q *SubmissionQuery) Offset(n int) *SubmissionQuery {
	if q == nil {
		return nil
	}

	q.offset = n
	return q
}

// Id with a zero id invalidates the builder, it never matches anything.
func (q *SubmissionQuery) Id(id uint) *SubmissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.id = id
	return q
}

func (q *SubmissionQuery) Mission(id uint) *SubmissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.missionID = id
	return q
}

func (q *SubmissionQuery) Brawler(id uint) *SubmissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.brawlerID = id
	return q
}

func (q *SubmissionQuery) Task(id uint) *SubmissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.taskID = id
	return q
}

func (q *SubmissionQuery) where() *gorm.DB {
	tx := q.db

	if q.id != 0 {
		tx = tx.Where("id = ?", q.id)
	}

	if q.missionID != 0 {
		tx = tx.Where("mission_id = ?", q.missionID)
	}

	if q.brawlerID != 0 {
		tx = tx.Where("brawler_id = ?", q.brawlerID)
	}

	if q.taskID != 0 {
		tx = tx.Where("task_id = ?", q.taskID)
	}

	return tx
}

func (q *SubmissionQuery) Get() []*model.Submission {
	if q == nil {
		return nil
	}

	return q.get(q.where().Model(&model.Submission{}))
}

func (q *SubmissionQuery) One() *model.Submission {
	if q == nil {
		return nil
	}

	return q.one(q.where().Model(&model.Submission{}))
}

func (q *SubmissionQuery) Count() int64 {
	if q == nil {
		return 0
	}

	return q.count(q.where().Model(&model.Submission{}))
}

func (q *SubmissionQuery) Update(updates map[string]any) error {
	if q == nil {
		return ErrNoRecord
	}

	return q.updateOrError(q.where().Model(&model.Submission{}), updates)
}

func (q *SubmissionQuery) Delete() error {
	if q == nil {
		return ErrNoRecord
	}

	return q.where().Delete(&model.Submission{}).Error
}
