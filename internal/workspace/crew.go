package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewhq/crewhq/internal/database"
	"github.com/crewhq/crewhq/internal/model"
)

// Join adds the brawler to the mission crew. Success is idempotent for
// an already-joined brawler. The chief cannot join their own mission,
// the mission status must pass the join gate and the crew must have
// room. The capacity check is read-then-write; the composite key on
// crew_memberships keeps duplicates out, transient over-capacity under
// concurrent joins is accepted.
func (e *Engine) Join(missionID, brawlerID uint) error {
	m := e.dbm.MissionDetail(missionID, brawlerID)

	if m == nil {
		return ErrNotFound
	}

	if m.IsJoined {
		return nil
	}

	if IsChief(m, brawlerID) {
		return fmt.Errorf("%w: the chief cannot join their own mission as crew", ErrForbidden)
	}

	if !model.IsJoinable(m.Status) {
		return fmt.Errorf("%w: mission is not joinable", ErrInvalidState)
	}

	if m.MemberCount >= int64(m.MaxMembers) {
		return ErrCapacity
	}

	return e.dbm.Create(&model.CrewMembership{
		MissionID: missionID,
		BrawlerID: brawlerID,
		JoinedAt:  time.Now(),
		Role:      model.RoleMember,
	})
}

// Leave removes the brawler from the crew. Allowed while the mission is
// open, in progress or failed, so nobody is trapped mid-mission.
func (e *Engine) Leave(missionID, brawlerID uint) error {
	m := e.dbm.MissionDetail(missionID, brawlerID)

	if m == nil {
		return ErrNotFound
	}

	if !m.IsJoined {
		return ErrNotMember
	}

	if !model.IsLeavable(m.Status) {
		return fmt.Errorf("%w: mission is not leavable in its current state", ErrInvalidState)
	}

	return e.dbm.MembershipQuery().Mission(missionID).Brawler(brawlerID).Delete()
}

// UpdateRole sets the crew member's role string. Chief only. The role
// vocabulary is not validated beyond being non-empty.
func (e *Engine) UpdateRole(missionID, targetID uint, role string, actorID uint) error {
	m := e.dbm.MissionDetail(missionID, 0)

	if m == nil {
		return ErrNotFound
	}

	if !CanManage(m, actorID) {
		return fmt.Errorf("%w: only the chief can update roles", ErrForbidden)
	}

	if targetID == 0 {
		return ErrNotMember
	}

	if role == "" {
		return fmt.Errorf("empty role")
	}

	if err := e.dbm.MembershipQuery().Mission(missionID).Brawler(targetID).
		Update(map[string]any{"role": role, "assigned_by": actorID}); err != nil {
		if errors.Is(err, database.ErrNoRecord) {
			return ErrNotMember
		}

		return err
	}

	return nil
}

// Kick removes a crew member and their submissions. The submission
// cleanup runs first since not every backend cascades; its failure is
// logged but does not abort the membership removal.
func (e *Engine) Kick(missionID, targetID uint, actorID uint) error {
	m := e.dbm.MissionDetail(missionID, 0)

	if m == nil {
		return ErrNotFound
	}

	if !CanManage(m, actorID) {
		return fmt.Errorf("%w: only the chief can kick members", ErrForbidden)
	}

	if targetID == m.ChiefID {
		return fmt.Errorf("%w: the chief cannot kick themselves", ErrForbidden)
	}

	if e.dbm.MembershipQuery().Mission(missionID).Brawler(targetID).One() == nil {
		return ErrNotMember
	}

	if err := e.dbm.SubmissionQuery().Mission(missionID).Brawler(targetID).Delete(); err != nil {
		e.logger.Error("kick: submission cleanup failed",
			slog.Any("error", err),
			slog.Uint64("mission", uint64(missionID)),
			slog.Uint64("brawler", uint64(targetID)))
	}

	return e.dbm.MembershipQuery().Mission(missionID).Brawler(targetID).Delete()
}
