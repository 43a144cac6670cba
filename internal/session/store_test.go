package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReusesLiveSession(t *testing.T) {
	s := NewStore(30 * time.Minute)

	first := s.Get(1)
	require.NotEmpty(t, first.ID)
	require.NotNil(t, first.Profile)
	require.NotNil(t, first.Insights)

	second := s.Get(1)
	assert.Equal(t, first.ID, second.ID)
	assert.Same(t, first.Profile, second.Profile)
}

func TestSessionsAreKeyedByUser(t *testing.T) {
	s := NewStore(30 * time.Minute)

	a := s.Get(1)
	b := s.Get(2)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStaleSessionIsReplaced(t *testing.T) {
	s := NewStore(30 * time.Minute)
	base := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	first := s.Get(7)
	first.Profile.CompletionRate = 0.4

	// 31 minutes of silence: next message starts a clean session
	s.now = func() time.Time { return base.Add(31 * time.Minute) }
	second := s.Get(7)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Zero(t, second.Profile.CompletionRate)
}

func TestEndForcesFreshSession(t *testing.T) {
	s := NewStore(30 * time.Minute)

	first := s.Get(3)
	s.End(3)
	second := s.Get(3)

	assert.NotEqual(t, first.ID, second.ID)
}
