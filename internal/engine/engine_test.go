package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engineClock = time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)

func TestRespondEmptyUtterance(t *testing.T) {
	e := newDeterministic(7, engineClock)

	resp := e.Respond(Request{Utterance: ""}, NewProfile(), NewSessionInsights(engineClock))
	assert.Equal(t, IntentUnclear, resp.Intent)
	assert.Zero(t, resp.Confidence)
	assert.NotEmpty(t, resp.Text)
	assert.Empty(t, resp.SuggestedAction)
}

func TestRespondUrgentTaskPreempts(t *testing.T) {
	e := newDeterministic(7, engineClock)

	tasks := []Task{
		{ID: 10, Title: "piani per il weekend", Type: TypeCreative, EnergyRequired: EnergyLow, XPReward: 300, Status: "active"},
		{ID: 11, Title: "consegna tesi", Type: TypeAction, EnergyRequired: EnergyHigh,
			DueDate: engineClock.Add(12 * time.Hour).Format(time.RFC3339), Status: "active"},
	}

	resp := e.Respond(Request{Utterance: "cosa faccio adesso?", Tasks: tasks}, NewProfile(), NewSessionInsights(engineClock))

	require.Equal(t, IntentTaskSelection, resp.Intent)
	assert.Equal(t, []int{11}, resp.UrgentTaskIDs)
	assert.Empty(t, resp.RecommendedTaskIDs, "urgent override bypasses the scored list")
	assert.Contains(t, resp.Text, "consegna tesi")
	assert.Equal(t, "show_urgent_task", resp.SuggestedAction)
	assert.Greater(t, resp.Confidence, actionThreshold, "classification confidence must survive the override")
}

func TestRespondRanksByMoodAndEnergy(t *testing.T) {
	e := newDeterministic(7, engineClock)

	tasks := []Task{
		{ID: 1, Title: "ordina scrivania", Type: TypeOrganizing, EnergyRequired: EnergyLow, Status: "active"},
		{ID: 2, Title: "scrivi capitolo", Type: TypeCreative, EnergyRequired: EnergyVeryHigh, Status: "active"},
	}
	req := Request{
		Utterance: "what should i do next?",
		Context:   Context{Mood: &MoodState{Label: MoodFlowing, SuggestedRitual: "stretch"}},
		Tasks:     tasks,
	}

	resp := e.Respond(req, NewProfile(), NewSessionInsights(engineClock))

	require.Equal(t, IntentTaskSelection, resp.Intent)
	require.Len(t, resp.RecommendedTaskIDs, 2)
	assert.Equal(t, 2, resp.RecommendedTaskIDs[0], "flowing mood pushes very_high energy first")
	assert.Empty(t, resp.UrgentTaskIDs)
}

func TestRespondNoTasks(t *testing.T) {
	e := newDeterministic(7, engineClock)

	req := Request{
		Utterance: "what should i do next?",
		Context:   Context{Mood: &MoodState{Label: MoodInspired}},
	}
	resp := e.Respond(req, NewProfile(), NewSessionInsights(engineClock))

	assert.Equal(t, noTasksByMood[MoodInspired], resp.Text)
	assert.Empty(t, resp.SuggestedAction)
}

func TestRespondRecordsSessionState(t *testing.T) {
	e := newDeterministic(7, engineClock)
	insights := NewSessionInsights(engineClock)

	e.Respond(Request{Utterance: "sono sopraffatto, troppe cose"}, NewProfile(), insights)
	e.Respond(Request{Utterance: "davvero troppe cose insieme"}, NewProfile(), insights)

	assert.Equal(t, 2, insights.MessageCount)
	assert.Equal(t, []string{"overwhelmed"}, insights.DominantEmotions)
}

func TestRespondIdempotentWithoutSharedState(t *testing.T) {
	e := newDeterministic(7, engineClock)

	a := e.Classify("non riesco a concentrarmi oggi")
	b := e.Classify("non riesco a concentrarmi oggi")
	assert.Equal(t, a, b)
}
