package planner

import (
	"sort"
	"strconv"
	"strings"

	"cabuya-planner/internal/constants"
)

// reference is the mutable working copy of one backlog entry. Identity is
// immutable; PendingKg only moves down during a run.
type reference struct {
	Ref         string
	Denier      string
	Description string
	Priority    bool
	PendingKg   float64
	InitialKg   float64

	// allocation bookkeeping for the finalization table
	postsSum   int
	shiftCount int
	finishedAt string
}

func (r *reference) exhausted() bool {
	return r.PendingKg <= constants.PendingEpsilonKg
}

func (r *reference) avgPosts() float64 {
	if r.shiftCount == 0 {
		return 0
	}
	return float64(r.postsSum) / float64(r.shiftCount)
}

// denierValue extracts the numeric part of a family name ("6000 expo" ->
// 6000). The second result is false for non-numeric names.
func denierValue(name string) (float64, bool) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeBacklog turns the backlog snapshot into an ordered work list.
// The base order is lexicographic by reference id so a map input always
// yields the same sequence; the policy then reorders it with stable sorts.
func normalizeBacklog(backlog map[string]BacklogEntry, policy OrderPolicy) []*reference {
	refs := make([]*reference, 0, len(backlog))
	for id, e := range backlog {
		if e.Kg <= constants.PendingEpsilonKg {
			continue
		}
		refs = append(refs, &reference{
			Ref:         id,
			Denier:      e.Denier,
			Description: e.Description,
			Priority:    e.Priority,
			PendingKg:   e.Kg,
			InitialKg:   e.Kg,
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Ref < refs[j].Ref })

	byDenierDesc := func(i, j int) bool {
		vi, oki := denierValue(refs[i].Denier)
		vj, okj := denierValue(refs[j].Denier)
		if oki && okj {
			return vi > vj
		}
		// numeric families come before the stable non-numeric tail
		return oki && !okj
	}
	sort.SliceStable(refs, byDenierDesc)

	if policy == OrderPriorityFirst {
		sort.SliceStable(refs, func(i, j int) bool {
			return refs[i].Priority && !refs[j].Priority
		})
	}

	return refs
}

func activeRefs(refs []*reference) []*reference {
	out := refs[:0:0]
	for _, r := range refs {
		if !r.exhausted() {
			out = append(out, r)
		}
	}
	return out
}
