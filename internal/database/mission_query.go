package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

// MissionQuery excludes soft-deleted missions unless WithDeleted is set.
type MissionQuery struct {
	Query[model.Mission]
	id          uint
	chief       uint
	status      string
	nameLike    string
	withDeleted bool
}

func NewMissionQuery(db *gorm.DB) *MissionQuery {
	return &MissionQuery{
		Query: Query[model.Mission]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "missions.created_at DESC",
		},
	}
}

func (q *MissionQuery) Order(s string) *MissionQuery {
	if q == nil {
		return nil
	}

	q.order = s
	return q
}

func (q *MissionQuery) Limit(n int) *MissionQuery {
	if q == nil {
		return nil
	}

	q.limit = n
	return q
}

func (q *MissionQuery) Offset(n int) *MissionQuery {
	if q == nil {
		return nil
	}

	q.offset = n
	return q
}

// Id keys the query to one mission. A zero id never matches anything:
// it invalidates the builder instead of silently dropping the filter.
func (q *MissionQuery) Id(id uint) *MissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.id = id
	return q
}

func (q *MissionQuery) Chief(id uint) *MissionQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.chief = id
	return q
}

func (q *MissionQuery) Status(status string) *MissionQuery {
	if q == nil {
		return nil
	}

	q.status = status
	return q
}

func (q *MissionQuery) NameLike(name string) *MissionQuery {
	if q == nil {
		return nil
	}

	q.nameLike = name
	return q
}

func (q *MissionQuery) WithDeleted() *MissionQuery {
	if q == nil {
		return nil
	}

	q.withDeleted = true
	return q
}

func (q *MissionQuery) where() *gorm.DB {
	tx := q.db

	if !q.withDeleted {
		tx = tx.Where("missions.deleted_at IS NULL")
	}

	if q.id != 0 {
		tx = tx.Where("missions.id = ?", q.id)
	}

	if q.chief != 0 {
		tx = tx.Where("missions.chief_id = ?", q.chief)
	}

	if q.status != "" {
		tx = tx.Where("missions.status = ?", q.status)
	}

	if q.nameLike != "" {
		tx = tx.Where("missions.name LIKE ?", "%"+q.nameLike+"%")
	}

	return tx
}

func (q *MissionQuery) Get() []*model.Mission {
	if q == nil {
		return nil
	}

	return q.get(q.where().Model(&model.Mission{}))
}

func (q *MissionQuery) One() *model.Mission {
	if q == nil {
		return nil
	}

	return q.one(q.where().Model(&model.Mission{}))
}

func (q *MissionQuery) Count() int64 {
	if q == nil {
		return 0
	}

	return q.count(q.where().Model(&model.Mission{}))
}

func (q *MissionQuery) Update(updates map[string]any) error {
	if q == nil {
		return ErrNoRecord
	}

	updates["updated_at"] = time.Now()

	return q.updateOrError(q.where().Model(&model.Mission{}), updates)
}

// SoftDelete marks the mission deleted. The row and its dependents stay
// in place, every query that does not opt in with WithDeleted stops
// seeing them.
func (q *MissionQuery) SoftDelete(id uint) error {
	if q == nil || id == 0 {
		return ErrNoRecord
	}

	return q.db.Model(&model.Mission{}).Where("id = ?", id).
		Update("deleted_at", time.Now()).Error
}
