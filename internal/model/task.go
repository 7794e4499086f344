package model

import (
	"time"
)

type Task struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
	MissionID   uint      `gorm:"index;not null"`
	MemberID    *uint     `gorm:"index"`
	Title       string    `gorm:"not null;size:255"`
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Priority    string `gorm:"size:50"`
	Status      string `gorm:"size:50"`
	CreatedBy   uint
	// HasSubmission is a cache of "a live submission references this
	// task", maintained by the submission workflow only.
	HasSubmission bool
}
