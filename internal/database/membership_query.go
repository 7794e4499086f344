package database

import (
	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

// MembershipQuery is keyed by mission and brawler id. A zero id
// invalidates the builder rather than widening the match, so a bad
// target can never turn an update or delete into a crew-wide write.
type MembershipQuery struct {
	Query[model.CrewMembership]
	missionID uint
	brawlerID uint
}

func NewMembershipQuery(db *gorm.DB) *MembershipQuery {
	return &MembershipQuery{
		Query: Query[model.CrewMembership]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "joined_at",
		},
	}
}

func (q *MembershipQuery) Limit(n int) *MembershipQuery {
	if q == nil {
		return nil
	}

	q.limit = n
	return q
}

func (q *MembershipQuery) Offset(n int) *MembershipQuery {
	if q == nil {
		return nil
	}

	q.offset = n
	return q
}

func (q *MembershipQuery) Mission(id uint) *MembershipQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.missionID = id
	return q
}

func (q *MembershipQuery) Brawler(id uint) *MembershipQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.brawlerID = id
	return q
}

func (q *MembershipQuery) where() *gorm.DB {
	tx := q.db

	if q.missionID != 0 {
		tx = tx.Where("mission_id = ?", q.missionID)
	}

	if q.brawlerID != 0 {
		tx = tx.Where("brawler_id = ?", q.brawlerID)
	}

	return tx
}

func (q *MembershipQuery) Get() []*model.CrewMembership {
	if q == nil {
		return nil
	}

	return q.get(q.where().Model(&model.CrewMembership{}))
}

func (q *MembershipQuery) One() *model.CrewMembership {
	if q == nil {
		return nil
	}

	return q.one(q.where().Model(&model.CrewMembership{}))
}

// Count is always a live query, never a cached value, so capacity
// checks see concurrent joins as soon as they commit.
func (q *MembershipQuery) Count() int64 {
	if q == nil {
		return 0
	}

	return q.count(q.where().Model(&model.CrewMembership{}))
}

func (q *MembershipQuery) Update(updates map[string]any) error {
	if q == nil {
		return ErrNoRecord
	}

	return q.updateOrError(q.where().Model(&model.CrewMembership{}), updates)
}

func (q *MembershipQuery) Delete() error {
	if q == nil {
		return ErrNoRecord
	}

	return q.where().Delete(&model.CrewMembership{}).Error
}
