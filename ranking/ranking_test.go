package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndRetrieve(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	s.RegisterPlayerResult("bob", 900)

	assert.Equal(t, 1200, s.GetPlayerRating("alice"))
	assert.Equal(t, 900, s.GetPlayerRating("bob"))
	assert.Equal(t, -1, s.GetPlayerRating("carol"))
}

func TestRegisterOverwritesExistingRating(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	s.RegisterPlayerResult("alice", 1500)
	assert.Equal(t, 1500, s.GetPlayerRating("alice"))
	assert.Equal(t, 2, s.Version())
}

func TestUnregisterRemovesPlayer(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	s.UnregisterPlayer("alice")
	assert.Equal(t, -1, s.GetPlayerRating("alice"))
}

func TestUnregisterUnknownPlayerIsNoop(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	s.UnregisterPlayer("bob")
	assert.Equal(t, 1, s.Version())
}

func TestGetPlayerRank(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("bob", 900)
	s.RegisterPlayerResult("alice", 1200)
	s.RegisterPlayerResult("carol", 800)

	assert.Equal(t, 1, s.GetPlayerRank("alice"))
	assert.Equal(t, 2, s.GetPlayerRank("bob"))
	assert.Equal(t, 3, s.GetPlayerRank("carol"))
	assert.Equal(t, -1, s.GetPlayerRank("dave"))
}

func TestRollbackRestoresPriorStanding(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	s.RegisterPlayerResult("bob", 900)
	s.UnregisterPlayer("alice")

	require.NoError(t, s.Rollback(1))
	assert.Equal(t, 1200, s.GetPlayerRating("alice"))

	require.NoError(t, s.Rollback(2))
	assert.Equal(t, -1, s.GetPlayerRating("alice"))
	assert.Equal(t, -1, s.GetPlayerRating("bob"))
}

func TestRollbackRejectsOutOfRangeStep(t *testing.T) {
	s := New()
	s.RegisterPlayerResult("alice", 1200)
	require.Error(t, s.Rollback(0))
	require.Error(t, s.Rollback(2))
}
