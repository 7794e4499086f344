package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewhq/crewhq/internal/model"
)

func TestJoinLeave(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	assert.EqualValues(t, 1, dbm.MemberCount(m.ID))

	// idempotent: second join succeeds without a second row
	require.NoError(t, e.Join(m.ID, m1.ID))
	assert.EqualValues(t, 1, dbm.MemberCount(m.ID))

	s := dbm.MembershipQuery().Mission(m.ID).Brawler(m1.ID).One()
	require.NotNil(t, s)
	assert.Equal(t, model.RoleMember, s.Role)

	require.NoError(t, e.Leave(m.ID, m1.ID))
	assert.EqualValues(t, 0, dbm.MemberCount(m.ID))

	assert.ErrorIs(t, e.Leave(m.ID, m1.ID), ErrNotMember)
}

func TestJoinAsChief(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m := addMission(t, e, chief.ID, "mission1", 5)

	assert.ErrorIs(t, e.Join(m.ID, chief.ID), ErrForbidden)
	assert.EqualValues(t, 0, dbm.MemberCount(m.ID))
}

func TestJoinStatusGate(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	for _, status := range []string{model.MissionInProgress, model.MissionCompleted} {
		require.NoError(t, dbm.MissionQuery().Id(m.ID).Update(map[string]any{"status": status}))
		assert.ErrorIs(t, e.Join(m.ID, m1.ID), ErrInvalidState, status)
	}

	// a failed mission is joinable again
	require.NoError(t, dbm.MissionQuery().Id(m.ID).Update(map[string]any{"status": model.MissionFailed}))
	require.NoError(t, e.Join(m.ID, m1.ID))
}

func TestLeaveStatusGate(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, dbm.MissionQuery().Id(m.ID).Update(map[string]any{"status": model.MissionCompleted}))

	assert.ErrorIs(t, e.Leave(m.ID, m1.ID), ErrInvalidState)
	assert.EqualValues(t, 1, dbm.MemberCount(m.ID))
}

func TestJoinCapacity(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m3 := addBrawler(t, dbm, "m3")
	m := addMission(t, e, chief.ID, "mission1", 2)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	assert.ErrorIs(t, e.Join(m.ID, m3.ID), ErrCapacity)

	// a slot opens up and m3 gets in
	require.NoError(t, e.Leave(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m3.ID))
	assert.EqualValues(t, 2, dbm.MemberCount(m.ID))
}

func TestUpdateRole(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	assert.ErrorIs(t, e.UpdateRole(m.ID, m1.ID, "Scout", m2.ID), ErrForbidden)
	assert.ErrorIs(t, e.UpdateRole(m.ID, m1.ID, "Scout", m1.ID), ErrForbidden)

	require.NoError(t, e.UpdateRole(m.ID, m1.ID, "Scout", chief.ID))

	s := dbm.MembershipQuery().Mission(m.ID).Brawler(m1.ID).One()
	require.NotNil(t, s)
	assert.Equal(t, "Scout", s.Role)
	require.NotNil(t, s.AssignedBy)
	assert.Equal(t, chief.ID, *s.AssignedBy)
}

func TestUpdateRoleUnknownTarget(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	// neither a zero nor a non-member target may touch anyone else's role
	assert.ErrorIs(t, e.UpdateRole(m.ID, 0, "Scout", chief.ID), ErrNotMember)
	assert.ErrorIs(t, e.UpdateRole(m.ID, m2.ID+100, "Scout", chief.ID), ErrNotMember)

	for _, id := range []uint{m1.ID, m2.ID} {
		s := dbm.MembershipQuery().Mission(m.ID).Brawler(id).One()
		require.NotNil(t, s)
		assert.Equal(t, model.RoleMember, s.Role)
	}
}

func TestKickUnknownTarget(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	_, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", FileType: "image/png", Data: []byte{1}})
	require.NoError(t, err)

	// neither a zero nor a non-member target may empty the crew
	assert.ErrorIs(t, e.Kick(m.ID, 0, chief.ID), ErrNotMember)
	assert.ErrorIs(t, e.Kick(m.ID, m2.ID+100, chief.ID), ErrNotMember)

	assert.EqualValues(t, 2, dbm.MemberCount(m.ID))
	assert.EqualValues(t, 1, dbm.SubmissionQuery().Mission(m.ID).Count())
}

func TestKick(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m2 := addBrawler(t, dbm, "m2")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))
	require.NoError(t, e.Join(m.ID, m2.ID))

	// kick by a non-chief fails whatever their role is
	for _, role := range []string{"Member", "Scout", "Officer"} {
		require.NoError(t, e.UpdateRole(m.ID, m2.ID, role, chief.ID))
		assert.ErrorIs(t, e.Kick(m.ID, m1.ID, m2.ID), ErrForbidden, role)
	}

	assert.ErrorIs(t, e.Kick(m.ID, chief.ID, chief.ID), ErrForbidden)

	require.NoError(t, e.Kick(m.ID, m1.ID, chief.ID))
	assert.Nil(t, dbm.MembershipQuery().Mission(m.ID).Brawler(m1.ID).One())
	assert.EqualValues(t, 1, dbm.MemberCount(m.ID))
}

func TestKickCleansSubmissions(t *testing.T) {
	e, dbm := prepare(t)

	chief := addBrawler(t, dbm, "chief")
	m1 := addBrawler(t, dbm, "m1")
	m := addMission(t, e, chief.ID, "mission1", 5)

	require.NoError(t, e.Join(m.ID, m1.ID))

	_, err := e.Submit(context.Background(), m.ID, m1.ID, &SubmitWork{FileName: "a.png", FileType: "image/png", Data: []byte{1}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, dbm.SubmissionQuery().Mission(m.ID).Count())

	require.NoError(t, e.Kick(m.ID, m1.ID, chief.ID))
	assert.EqualValues(t, 0, dbm.SubmissionQuery().Mission(m.ID).Count())
}
