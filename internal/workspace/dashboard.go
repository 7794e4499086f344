package workspace

import (
	"github.com/crewhq/crewhq/internal/model"
)

// DashboardSummary is a read-only reporting query over one brawler's
// missions: how many they run, how many they crew on, and how many of
// either are active or completed.
func (e *Engine) DashboardSummary(brawlerID uint) *model.DashboardSummary {
	joined := e.dbm.JoinedMissions(brawlerID)

	s := &model.DashboardSummary{
		CreatedCount: e.dbm.MissionQuery().Chief(brawlerID).Count(),
		JoinedCount:  int64(len(joined)),
	}

	countByStatus := func(status string) int64 {
		n := e.dbm.MissionQuery().Chief(brawlerID).Status(status).Count()

		for _, m := range joined {
			if m.Status == status {
				n++
			}
		}

		return n
	}

	s.ActiveCount = countByStatus(model.MissionOpen) + countByStatus(model.MissionInProgress)
	s.CompletedCount = countByStatus(model.MissionCompleted)

	return s
}
