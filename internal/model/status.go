package model

// Mission statuses. Joining and leaving are gated here and nowhere else:
// any new status must be added to both predicates.
const (
	MissionOpen       = "Open"
	MissionInProgress = "InProgress"
	MissionCompleted  = "Completed"
	MissionFailed     = "Failed"
)

// IsJoinable reports whether a crew member may join a mission in the
// given status. Joining makes sense before the mission starts or after
// a failed attempt.
func IsJoinable(status string) bool {
	return status == MissionOpen || status == MissionFailed
}

// IsLeavable reports whether a crew member may leave. Members are not
// trapped mid-mission or after a failure, only a completed mission is
// frozen.
func IsLeavable(status string) bool {
	return status == MissionOpen || status == MissionInProgress || status == MissionFailed
}

// Task statuses.
const (
	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskReview     = "Review"
	TaskCompleted  = "Completed"
)

// Task priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// RoleMember is the role every brawler gets on join. The chief may
// rename it later, the vocabulary is not restricted here.
const RoleMember = "Member"
