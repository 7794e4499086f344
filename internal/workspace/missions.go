package workspace

import (
	"fmt"
	"time"

	"github.com/crewhq/crewhq/internal/model"
)

const defaultMaxMembers = 10

type AddMission struct {
	Name        string
	Description string
	MaxMembers  int
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

// EditMission carries partial mission edits, nil fields are untouched.
type EditMission struct {
	Name        *string
	Description *string
	MaxMembers  *int
	Status      *string
}

// CreateMission opens a new mission with the actor as chief.
func (e *Engine) CreateMission(chiefID uint, add *AddMission) (*model.Mission, error) {
	if add == nil || add.Name == "" {
		return nil, fmt.Errorf("empty mission name")
	}

	m := &model.Mission{
		ChiefID:     chiefID,
		Name:        add.Name,
		Description: add.Description,
		Status:      add.Status,
		MaxMembers:  add.MaxMembers,
		StartDate:   add.StartDate,
		EndDate:     add.EndDate,
	}

	if m.Status == "" {
		m.Status = model.MissionOpen
	}

	if m.MaxMembers <= 0 {
		m.MaxMembers = defaultMaxMembers
	}

	if err := e.dbm.Create(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (e *Engine) UpdateMission(missionID, actorID uint, edit *EditMission) error {
	m := e.dbm.MissionDetail(missionID, 0)

	if m == nil {
		return ErrNotFound
	}

	if !CanManage(m, actorID) {
		return fmt.Errorf("%w: only the chief can edit the mission", ErrForbidden)
	}

	updates := make(map[string]any)

	if edit.Name != nil {
		updates["name"] = *edit.Name
	}

	if edit.Description != nil {
		updates["description"] = *edit.Description
	}

	if edit.MaxMembers != nil {
		updates["max_members"] = *edit.MaxMembers
	}

	if edit.Status != nil {
		updates["status"] = *edit.Status
	}

	if len(updates) == 0 {
		return nil
	}

	return e.dbm.MissionQuery().Id(missionID).Update(updates)
}

// DeleteMission soft-deletes, chief only. The row stays, every
// lifecycle operation stops seeing it.
func (e *Engine) DeleteMission(missionID, actorID uint) error {
	m := e.dbm.MissionDetail(missionID, 0)

	if m == nil {
		return ErrNotFound
	}

	if !CanManage(m, actorID) {
		return fmt.Errorf("%w: only the chief can delete the mission", ErrForbidden)
	}

	return e.dbm.MissionQuery().SoftDelete(missionID)
}

// GetMission is the actor-scoped detail view.
func (e *Engine) GetMission(missionID, actorID uint) (*model.MissionDetail, error) {
	m := e.dbm.MissionDetail(missionID, actorID)

	if m == nil {
		return nil, ErrNotFound
	}

	return m, nil
}

func (e *Engine) ListMissions(status, nameLike string, actorID uint) []*model.MissionDetail {
	return e.dbm.Missions(status, nameLike, actorID)
}

func (e *Engine) JoinedMissions(brawlerID uint) []*model.MissionDetail {
	return e.dbm.JoinedMissions(brawlerID)
}

func (e *Engine) CreatedMissions(chiefID uint) []*model.MissionDetail {
	var res []*model.MissionDetail

	for _, m := range e.dbm.MissionQuery().Chief(chiefID).Get() {
		if d := e.dbm.MissionDetail(m.ID, chiefID); d != nil {
			res = append(res, d)
		}
	}

	return res
}

// GetCrew lists the mission's members. Open to anyone who can see the
// mission, the roster itself is not sensitive.
func (e *Engine) GetCrew(missionID uint) ([]*model.CrewMember, error) {
	if e.dbm.MissionDetail(missionID, 0) == nil {
		return nil, ErrNotFound
	}

	return e.dbm.Crew(missionID), nil
}
