package scheduler

import (
	"testing"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestResolveSlots_TrainingRelative(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 1, Ref: domain.RelativeTo(domain.TrainingAnchor, 90)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380, Training: intPtr(1020)})
	assert.Equal(t, 1110, res.Times[1], "training 17:00 + 90 should be 18:30")
	assert.Empty(t, res.Unresolved)
}

func TestResolveSlots_TrainingAbsentIsUnresolvable(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 1, Ref: domain.RelativeTo(domain.WakeAnchor, 0)},
		{Number: 2, Ref: domain.RelativeTo(domain.TrainingAnchor, 90)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380})
	_, ok := res.Times[2]
	assert.False(t, ok, "slot anchored to absent training must be excluded")
	assert.Equal(t, []int{2}, res.Unresolved)
	assert.Equal(t, 360, res.Times[1])
}

func TestResolveSlots_DependencyChaining(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 2, Ref: domain.RelativeTo(domain.SlotAnchor(1), 240)},
		{Number: 1, Ref: domain.RelativeTo(domain.WakeAnchor, 30)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380})
	assert.Equal(t, 390, res.Times[1])
	assert.Equal(t, 630, res.Times[2])
}

func TestResolveSlots_ChainThroughUnresolvedTraining(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 1, Ref: domain.RelativeTo(domain.TrainingAnchor, -120)},
		{Number: 2, Ref: domain.RelativeTo(domain.SlotAnchor(1), 60)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380})
	assert.Empty(t, res.Times)
	assert.Equal(t, []int{1, 2}, res.Unresolved)
}

func TestResolveSlots_CycleTerminates(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 1, Ref: domain.RelativeTo(domain.SlotAnchor(2), 10)},
		{Number: 2, Ref: domain.RelativeTo(domain.SlotAnchor(1), 10)},
		{Number: 3, Ref: domain.RelativeTo(domain.SlotAnchor(3), 10)},
		{Number: 4, Ref: domain.AbsoluteAt(720)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380})
	assert.Equal(t, map[int]int{4: 720}, res.Times)
	assert.Equal(t, []int{1, 2, 3}, res.Unresolved)
}

func TestResolveSlots_NegativeOffsetAndRollover(t *testing.T) {
	defs := []domain.SlotDefinition{
		{Number: 1, Ref: domain.RelativeTo(domain.SleepAnchor, -30)},
		{Number: 2, Ref: domain.RelativeTo(domain.SlotAnchor(1), 90)},
	}

	res := ResolveSlots(defs, Anchors{Wake: 360, Sleep: 1380})
	assert.Equal(t, 1350, res.Times[1])
	assert.Equal(t, 1440, res.Times[2], "rollover keeps minutes past 1439")
	assert.Equal(t, "00:00", FormatClock(res.Times[2]))
}

func TestWrapMinute(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{1439, 1439},
		{1440, 0},
		{1470, 30},
		{-60, 1380},
		{-1500, 1380},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WrapMinute(tt.in), "WrapMinute(%d)", tt.in)
	}
}

func TestResolveDay_LabelsAndAdjacency(t *testing.T) {
	defs := DefaultRoutine(5, 3)

	slots, unresolved := ResolveDay(defs, Anchors{Wake: 420, Sleep: 1380, Training: intPtr(1020)}, 3)
	require.Empty(t, unresolved)
	require.Len(t, slots, 5)

	want := []int{420, 600, 900, 1020, 1080}
	for i, s := range slots {
		assert.Equal(t, i+1, s.Number)
		assert.Equal(t, want[i], s.Minutes, "slot %d", s.Number)
	}
	assert.Equal(t, "食事1", slots[0].Label)
	assert.False(t, slots[1].TrainingAdjacent)
	assert.True(t, slots[2].TrainingAdjacent)
	assert.True(t, slots[3].TrainingAdjacent)
	assert.False(t, slots[4].TrainingAdjacent)
}

func TestDefaultRoutine_RestDay(t *testing.T) {
	defs := DefaultRoutine(4, 0)

	slots, unresolved := ResolveDay(defs, Anchors{Wake: 420, Sleep: 1380}, 0)
	assert.Empty(t, unresolved)
	require.Len(t, slots, 4)
	assert.Equal(t, []int{420, 600, 780, 960}, []int{slots[0].Minutes, slots[1].Minutes, slots[2].Minutes, slots[3].Minutes})
}

func TestAnchorsFor(t *testing.T) {
	p := domain.DefaultScheduleProfile()

	a, err := AnchorsFor(p, false)
	require.NoError(t, err)
	require.NotNil(t, a.Training)
	assert.Equal(t, 1020, *a.Training)

	a, err = AnchorsFor(p, true)
	require.NoError(t, err)
	assert.Nil(t, a.Training, "rest day drops the training anchor")
	assert.Equal(t, 0, EffectiveTrainingSlot(p, a))
}
