package model

import (
	"time"
)

type Mission struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
	ChiefID     uint      `gorm:"index;not null"`
	Name        string    `gorm:"index;not null;size:255"`
	Description string
	Status      string `gorm:"index;not null;size:50"`
	MaxMembers  int    `gorm:"not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// CrewMembership is keyed by (mission, brawler), so a brawler is joined
// once or not at all. The chief never gets a row for their own mission.
type CrewMembership struct {
	MissionID  uint `gorm:"primaryKey;autoIncrement:false"`
	BrawlerID  uint `gorm:"primaryKey;autoIncrement:false"`
	JoinedAt   time.Time
	Role       string `gorm:"size:255"`
	AssignedBy *uint
}

// MissionDetail is the per-actor view every workspace operation starts
// from. IsJoined is computed for the acting brawler, MemberCount is a
// live count.
type MissionDetail struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ChiefID     uint      `json:"chief_id"`
	ChiefName   string    `json:"chief_display_name"`
	MemberCount int64     `json:"member_count"`
	MaxMembers  int       `json:"max_members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsJoined    bool      `json:"is_joined"`
}

func (m *Mission) IsDeleted() bool {
	return m != nil && m.DeletedAt != nil
}
