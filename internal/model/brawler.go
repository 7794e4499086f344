package model

import (
	"time"
)

type Brawler struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
	Username    string    `gorm:"uniqueIndex;not null;size:255"`
	Password    string    `gorm:"not null;size:255"`
	DisplayName string    `gorm:"size:50"`
	AvatarURL   string    `gorm:"size:512"`
	Bio         string
}

// CrewMember is a read view of one crew row joined with its brawler.
type CrewMember struct {
	BrawlerID    uint      `json:"brawler_id"`
	DisplayName  string    `json:"display_name"`
	AvatarURL    string    `json:"avatar_url"`
	Role         string    `json:"role"`
	JoinedAt     time.Time `json:"joined_at"`
	JoinCount    int64     `json:"mission_join_count"`
	SuccessCount int64     `json:"mission_success_count"`
}
