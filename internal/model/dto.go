package model

import (
	"time"
)

type BrawlerDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaskDTO struct {
	ID            uint       `json:"id"`
	MissionID     uint       `json:"mission_id"`
	MemberID      *uint      `json:"member_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	CreatedBy     uint       `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	HasSubmission bool       `json:"has_submission"`
}

type SubmissionDTO struct {
	ID          uint      `json:"id"`
	MissionID   uint      `json:"mission_id"`
	BrawlerID   uint      `json:"brawler_id"`
	BrawlerName string    `json:"brawler_name,omitempty"`
	FileURL     string    `json:"file_url"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	TaskID      *uint     `json:"task_id"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type DashboardSummary struct {
	CreatedCount   int64 `json:"created_count"`
	JoinedCount    int64 `json:"joined_count"`
	ActiveCount    int64 `json:"active_count"`
	CompletedCount int64 `json:"completed_count"`
}

func ToBrawlerDTO(b *Brawler) *BrawlerDTO {
	if b == nil {
		return nil
	}

	return &BrawlerDTO{
		ID:          b.ID,
		Username:    b.Username,
		DisplayName: b.DisplayName,
		AvatarURL:   b.AvatarURL,
		Bio:         b.Bio,
		CreatedAt:   b.CreatedAt,
	}
}

func ToTaskDTO(t *Task) *TaskDTO {
	if t == nil {
		return nil
	}

	return &TaskDTO{
		ID:            t.ID,
		MissionID:     t.MissionID,
		MemberID:      t.MemberID,
		Title:         t.Title,
		Description:   t.Description,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		Priority:      t.Priority,
		Status:        t.Status,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		HasSubmission: t.HasSubmission,
	}
}

func ToSubmissionDTO(s *Submission, brawlerName string) *SubmissionDTO {
	if s == nil {
		return nil
	}

	return &SubmissionDTO{
		ID:          s.ID,
		MissionID:   s.MissionID,
		BrawlerID:   s.BrawlerID,
		BrawlerName: brawlerName,
		FileURL:     s.FileURL,
		FileName:    s.FileName,
		FileType:    s.FileType,
		TaskID:      s.TaskID,
		Description: s.Description,
		SubmittedAt: s.SubmittedAt,
	}
}
