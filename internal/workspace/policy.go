package workspace

import (
	"github.com/crewhq/crewhq/internal/model"
)

// Authorization policy for the whole workspace. Every operation asks
// these predicates instead of re-deriving role checks, so chief vs.
// member vs. non-member rules cannot drift between operations.
//
// Chief: runs the mission and its tasks, kicks and re-roles crew, may
// touch anyone's submission, never appears on the crew itself.
// Member: joins, leaves, submits work, touches own submissions.
// Non-member: may only join.

// IsChief reports whether the actor runs this mission.
func IsChief(m *model.MissionDetail, actorID uint) bool {
	return m != nil && m.ChiefID == actorID
}

// CanManage gates mission edits, task create/update/delete, kick and
// role changes.
func CanManage(m *model.MissionDetail, actorID uint) bool {
	return IsChief(m, actorID)
}

// CanView gates task and submission listings: the chief or a joined
// member.
func CanView(m *model.MissionDetail, actorID uint) bool {
	return IsChief(m, actorID) || m != nil && m.IsJoined
}

// CanSubmit gates work submission: joined members only. The chief is
// not a member and does not submit.
func CanSubmit(m *model.MissionDetail, actorID uint) bool {
	return m != nil && m.IsJoined && !IsChief(m, actorID)
}

// CanTouchSubmission gates submission edits and deletes: the mission
// chief or the submission's own author.
func CanTouchSubmission(m *model.MissionDetail, s *model.Submission, actorID uint) bool {
	if m == nil || s == nil {
		return false
	}

	return IsChief(m, actorID) || s.BrawlerID == actorID
}
