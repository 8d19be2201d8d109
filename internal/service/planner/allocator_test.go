package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPostCounts(t *testing.T) {
	// n_optimo 7 -> min_load 6: one operator runs 6-7 posts, two run 12-14...
	valid := validPostCounts(7, 28)
	assert.Equal(t, []int{6, 7, 12, 13, 14, 18, 19, 20, 21, 24, 25, 26, 27, 28}, valid)

	// n_optimo 1 -> every count up to the ceiling
	valid = validPostCounts(1, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, valid)

	assert.Empty(t, validPostCounts(0, 28))
	assert.Empty(t, validPostCounts(-3, 28))
}

func TestChoosePosts_MassBalance(t *testing.T) {
	// Scenario from the plant: denier 6000, rewinder 13.296 kg/h/post,
	// torsion supply 62.5 kg/h (500 kg per 8h shift). 5 posts consume
	// 531.85 kg/shift (ratio ~0.94), 6 posts would consume 638 kg (~0.78).
	valid := []int{3, 4, 5, 6, 7, 8}

	posts, ratio, degraded := choosePosts(valid, 28, 62.5, 13.296)
	require.Equal(t, 5, posts)
	assert.False(t, degraded)
	assert.InDelta(t, 0.94, ratio, 0.01)
	assert.GreaterOrEqual(t, ratio, 0.9)
}

func TestChoosePosts_DegradedSupply(t *testing.T) {
	// Supply so small that even the minimum admissible count breaks the
	// threshold: the allocator still schedules and flags it.
	posts, ratio, degraded := choosePosts([]int{3, 4, 5}, 28, 10.0, 13.296)
	assert.Equal(t, 3, posts)
	assert.True(t, degraded)
	assert.Less(t, ratio, 0.9)
}

func TestChoosePosts_NothingFits(t *testing.T) {
	posts, _, degraded := choosePosts([]int{6, 7}, 5, 1000, 10)
	assert.Zero(t, posts)
	assert.False(t, degraded)
}

func TestAllocateShift_PostCeiling(t *testing.T) {
	refs := []*reference{
		{Ref: "REF-A", Denier: "12000", PendingKg: 50000, InitialKg: 50000},
		{Ref: "REF-B", Denier: "6000", PendingKg: 50000, InitialKg: 50000},
		{Ref: "REF-C", Denier: "4000", PendingKg: 50000, InitialKg: 50000},
	}
	rw := map[string]RewinderCapacity{
		"12000": {KgPerHour: 20, NOptimo: 5},
		"6000":  {KgPerHour: 10, NOptimo: 7},
		"4000":  {KgPerHour: 8, NOptimo: 4},
	}
	tor := map[string]TorsionCapacity{
		"12000": {Machines: []Machine{{ID: "T14", Kgh: 400}}},
		"6000":  {Machines: []Machine{{ID: "T11", Kgh: 400}}},
		"4000":  {Machines: []Machine{{ID: "T16", Kgh: 400}}},
	}

	allocs, err := allocateShift(refs, rw, tor, "A", 8, 28)
	require.NoError(t, err)
	require.NotEmpty(t, allocs)

	total := 0
	for _, a := range allocs {
		total += a.Posts
		assert.Positive(t, a.Posts)
		assert.Positive(t, a.Kg)
		assert.GreaterOrEqual(t, a.Crew, 1)
	}
	// greedy first-come-first-served never exceeds the plant ceiling
	assert.LessOrEqual(t, total, 28)

	// supply was generous, nothing should be degraded
	for _, a := range allocs {
		assert.False(t, a.Degraded)
		assert.GreaterOrEqual(t, a.SupplyRatio, 0.9)
	}
}

func TestAllocateShift_ClampsToPending(t *testing.T) {
	refs := []*reference{{Ref: "REF-X", Denier: "6000", PendingKg: 40, InitialKg: 40}}
	rw := map[string]RewinderCapacity{"6000": {KgPerHour: 10, NOptimo: 7}}
	tor := map[string]TorsionCapacity{"6000": {Machines: []Machine{{ID: "T11", Kgh: 500}}}}

	allocs, err := allocateShift(refs, rw, tor, "A", 8, 28)
	require.NoError(t, err)
	require.Len(t, allocs, 1)

	// a full shift would produce far more than the 40 kg remaining
	assert.InDelta(t, 40.0, allocs[0].Kg, 1e-9)
	assert.True(t, refs[0].exhausted())
}

func TestAllocateShift_SkipsExhausted(t *testing.T) {
	refs := []*reference{{Ref: "REF-DONE", Denier: "6000", PendingKg: 0.05, InitialKg: 100}}
	rw := map[string]RewinderCapacity{"6000": {KgPerHour: 10, NOptimo: 7}}

	allocs, err := allocateShift(refs, rw, nil, "A", 8, 28)
	require.NoError(t, err)
	assert.Empty(t, allocs)
}

func TestCrewFor(t *testing.T) {
	assert.Equal(t, 1, crewFor(7, 7))
	assert.Equal(t, 2, crewFor(8, 7))
	assert.Equal(t, 1, crewFor(3, 7))
	assert.Equal(t, 0, crewFor(0, 7))
	// a broken grouping size still yields at least one operator per post
	assert.Equal(t, 4, crewFor(4, 0))
}
