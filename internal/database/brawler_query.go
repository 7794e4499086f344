package database

import (
	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

type BrawlerQuery struct {
	Query[model.Brawler]
	id       uint
	username string
}

func NewBrawlerQuery(db *gorm.DB) *BrawlerQuery {
	return &BrawlerQuery{
		Query: Query[model.Brawler]{
			db:     db,
			limit:  100,
			offset: 0,
			order:  "username",
		},
	}
}

// Id with a zero id invalidates the builder, it never matches anything.
func (q *BrawlerQuery) Id(id uint) *BrawlerQuery {
	if q == nil || id == 0 {
		return nil
	}

	q.id = id
	return q
}

func (q *BrawlerQuery) Username(username string) *BrawlerQuery {
	if q == nil || username == "" {
		return nil
	}

	q.username = username
	return q
}

func (q *BrawlerQuery) where() *gorm.DB {
	tx := q.db

	if q.id != 0 {
		tx = tx.Where("id = ?", q.id)
	}

	if q.username != "" {
		tx = tx.Where("username = ?", q.username)
	}

	return tx
}

func (q *BrawlerQuery) Get() []*model.Brawler {
	if q == nil {
		return nil
	}

	return q.get(q.where().Model(&model.Brawler{}))
}

func (q *BrawlerQuery) One() *model.Brawler {
	if q == nil {
		return nil
	}

	return q.one(q.where().Model(&model.Brawler{}))
}

func (q *BrawlerQuery) Update(updates map[string]any) error {
	if q == nil {
		return ErrNoRecord
	}

	return q.updateOrError(q.where().Model(&model.Brawler{}), updates)
}
