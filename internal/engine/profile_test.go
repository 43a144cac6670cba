package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var profileClock = time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)

func sampleTask(taskType TaskType) Task {
	return Task{ID: 1, Title: "write report", Type: taskType, EnergyRequired: EnergyMedium, Status: "active"}
}

func TestCompletionRateSteps(t *testing.T) {
	p := NewProfile()

	p.RecordOutcome(sampleTask(TypeAction), 25, true, profileClock)
	assert.InDelta(t, 0.10, p.CompletionRate, 1e-9)

	p.RecordOutcome(sampleTask(TypeAction), 25, true, profileClock)
	assert.InDelta(t, 0.20, p.CompletionRate, 1e-9)

	p.RecordOutcome(sampleTask(TypeAction), 25, false, profileClock)
	assert.InDelta(t, 0.15, p.CompletionRate, 1e-9)
}

func TestCompletionRateClamped(t *testing.T) {
	p := NewProfile()

	p.RecordOutcome(sampleTask(TypeAction), 5, false, profileClock)
	assert.Zero(t, p.CompletionRate)

	for i := 0; i < 15; i++ {
		p.RecordOutcome(sampleTask(TypeAction), 5, true, profileClock)
	}
	assert.InDelta(t, 1.0, p.CompletionRate, 1e-9)
}

func TestDurationIsRecencyWeighted(t *testing.T) {
	p := NewProfile()

	p.RecordOutcome(sampleTask(TypeAction), 30, true, profileClock)
	assert.InDelta(t, 15.0, p.AverageTaskDuration, 1e-9)

	// latest sample weighs 50%, not 1/n
	p.RecordOutcome(sampleTask(TypeAction), 60, true, profileClock)
	assert.InDelta(t, 37.5, p.AverageTaskDuration, 1e-9)
}

func TestPreferencesGrowOnlyAndDeduplicate(t *testing.T) {
	p := NewProfile()

	p.RecordOutcome(sampleTask(TypeCreative), 10, true, profileClock)
	p.RecordOutcome(sampleTask(TypeCreative), 10, true, profileClock)
	p.RecordOutcome(sampleTask(TypeAction), 10, true, profileClock)
	assert.Equal(t, []TaskType{TypeCreative, TypeAction}, p.PreferredTaskTypes)

	// failures never add or remove preferences
	p.RecordOutcome(sampleTask(TypeOrganizing), 10, false, profileClock)
	assert.Equal(t, []TaskType{TypeCreative, TypeAction}, p.PreferredTaskTypes)

	assert.Equal(t, []int{10}, p.PeakEnergyHours)
}

func TestProfileExportShape(t *testing.T) {
	p := NewProfile()
	p.RecordOutcome(sampleTask(TypeReflection), 20, true, profileClock)

	export := p.Export()
	assert.Equal(t, []string{"reflection"}, export["preferred_task_types"])
	assert.Equal(t, []int{10}, export["peak_energy_hours"])
	assert.InDelta(t, 0.10, export["completion_rate"].(float64), 1e-9)
}
