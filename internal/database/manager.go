package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/model"
)

type DatabaseManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB) *DatabaseManager {
	mn := &DatabaseManager{
		db:     db,
		logger: slog.With("logger", "dbm"),
	}

	return mn
}

func (mm *DatabaseManager) Create(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Create(s).Error

	if err != nil {
		mm.logger.Error("error create object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) Save(s any) error {
	if mm == nil || mm.db == nil {
		return nil
	}

	err := mm.db.Save(s).Error

	if err != nil {
		mm.logger.Error("error saving object", slog.Any("error", err))
	}

	return err
}

func (mm *DatabaseManager) MissionQuery() *MissionQuery {
	return NewMissionQuery(mm.db)
}

func (mm *DatabaseManager) MembershipQuery() *MembershipQuery {
	return NewMembershipQuery(mm.db)
}

func (mm *DatabaseManager) TaskQuery() *TaskQuery {
	return NewTaskQuery(mm.db)
}

func (mm *DatabaseManager) SubmissionQuery() *SubmissionQuery {
	return NewSubmissionQuery(mm.db)
}

func (mm *DatabaseManager) BrawlerQuery() *BrawlerQuery {
	return NewBrawlerQuery(mm.db)
}

func (mm *DatabaseManager) Migrate() error {
	if mm == nil || mm.db == nil {
		return fmt.Errorf("no database")
	}

	// Migrate the schema
	if err := mm.db.AutoMigrate(
		&model.Brawler{},
		&model.Mission{},
		&model.CrewMembership{},
		&model.Task{},
		&model.Submission{},
	); err != nil {
		return err
	}

	return nil
}

// MemberCount is the live crew size for capacity checks.
func (mm *DatabaseManager) MemberCount(missionID uint) int64 {
	return mm.MembershipQuery().Mission(missionID).Count()
}

// MissionDetail loads the actor-scoped view of a mission. Returns nil
// for missing or soft-deleted missions. actorID may be zero when the
// caller does not need IsJoined.
func (mm *DatabaseManager) MissionDetail(missionID uint, actorID uint) *model.MissionDetail {
	m := mm.MissionQuery().Id(missionID).One()

	if m == nil {
		return nil
	}

	d := &model.MissionDetail{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		ChiefID:     m.ChiefID,
		MemberCount: mm.MemberCount(m.ID),
		MaxMembers:  m.MaxMembers,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if chief := mm.BrawlerQuery().Id(m.ChiefID).One(); chief != nil {
		d.ChiefName = chief.DisplayName
	}

	if actorID != 0 {
		d.IsJoined = mm.MembershipQuery().Mission(m.ID).Brawler(actorID).One() != nil
	}

	return d
}

func (mm *DatabaseManager) toDetails(missions []*model.Mission, actorID uint) []*model.MissionDetail {
	res := make([]*model.MissionDetail, 0, len(missions))

	for _, m := range missions {
		if d := mm.MissionDetail(m.ID, actorID); d != nil {
			res = append(res, d)
		}
	}

	return res
}

// Missions lists live missions, optionally filtered by status and name
// substring, each scoped to the acting brawler.
func (mm *DatabaseManager) Missions(status, nameLike string, actorID uint) []*model.MissionDetail {
	q := mm.MissionQuery()

	if status != "" {
		q = q.Status(status)
	}

	if nameLike != "" {
		q = q.NameLike(nameLike)
	}

	return mm.toDetails(q.Get(), actorID)
}

// JoinedMissions lists live missions the brawler is crew on, not ones
// they run as chief.
func (mm *DatabaseManager) JoinedMissions(brawlerID uint) []*model.MissionDetail {
	var missions []*model.Mission

	err := mm.db.
		Joins("JOIN crew_memberships cm ON cm.mission_id = missions.id").
		Where("cm.brawler_id = ? AND missions.chief_id != ? AND missions.deleted_at IS NULL", brawlerID, brawlerID).
		Order("missions.created_at DESC").
		Find(&missions).Error

	if err != nil {
		mm.logger.Error("joined missions query", slog.Any("error", err))
		return nil
	}

	return mm.toDetails(missions, brawlerID)
}

// Crew lists the mission's members with per-brawler join and success
// counters aggregated over all their memberships.
func (mm *DatabaseManager) Crew(missionID uint) []*model.CrewMember {
	var crew []*model.CrewMember

	err := mm.db.Raw(`
		SELECT b.id AS brawler_id,
			b.display_name,
			b.avatar_url,
			cm.role,
			cm.joined_at,
			(SELECT COUNT(*) FROM crew_memberships cm2 WHERE cm2.brawler_id = b.id) AS join_count,
			(SELECT COUNT(*) FROM crew_memberships cm3
				JOIN missions m3 ON m3.id = cm3.mission_id
				WHERE cm3.brawler_id = b.id AND m3.status = ?) AS success_count
		FROM crew_memberships cm
		JOIN brawlers b ON b.id = cm.brawler_id
		WHERE cm.mission_id = ?
		ORDER BY cm.joined_at`, model.MissionCompleted, missionID).
		Scan(&crew).Error

	if err != nil {
		mm.logger.Error("crew query", slog.Any("error", err))
		return nil
	}

	return crew
}
