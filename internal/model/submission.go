package model

import (
	"time"
)

type Submission struct {
	ID          uint   `gorm:"primarykey"`
	MissionID   uint   `gorm:"index;not null"`
	BrawlerID   uint   `gorm:"index;not null"`
	FileURL     string `gorm:"not null"`
	FileName    string
	FileType    string `gorm:"size:50"`
	TaskID      *uint  `gorm:"index"`
	Description string
	SubmittedAt time.Time `gorm:"type:timestamp"`
}
