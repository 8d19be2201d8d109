package planner

import (
	"fmt"
	"math"
	"sort"

	"cabuya-planner/internal/constants"
)

// validPostCounts generates the admissible post counts for a crew-grouping
// size. One operator runs between minLoad and nOptimo posts, with
// minLoad = max(1, ceil(0.8*nOptimo)); the admissible set is the union over
// operator counts, capped at the plant's post ceiling.
func validPostCounts(nOptimo, totalPosts int) []int {
	if nOptimo <= 0 || totalPosts <= 0 {
		return nil
	}

	minLoad := int(math.Ceil(constants.MinLoadFactor * float64(nOptimo)))
	if minLoad < 1 {
		minLoad = 1
	}

	seen := make(map[int]struct{})
	for crews := 1; crews*minLoad <= totalPosts; crews++ {
		low := crews * minLoad
		high := crews * nOptimo
		if high > totalPosts {
			high = totalPosts
		}
		for p := low; p <= high; p++ {
			seen[p] = struct{}{}
		}
	}

	valid := make([]int, 0, len(seen))
	for p := range seen {
		valid = append(valid, p)
	}
	sort.Ints(valid)
	return valid
}

// choosePosts picks the post count for one reference: the largest admissible
// value not exceeding the available posts whose torsion supply covers at
// least 90% of rewinder consumption. If even the smallest admissible value
// breaks the threshold the allocator still schedules it and flags the
// allocation degraded. Rates are per hour, so the shift duration cancels
// out of the inequality.
func choosePosts(valid []int, available int, supplyKgh, rwKghPerPost float64) (posts int, ratio float64, degraded bool) {
	fitting := valid[:0:0]
	for _, p := range valid {
		if p <= available {
			fitting = append(fitting, p)
		}
	}
	if len(fitting) == 0 {
		return 0, 0, false
	}

	balance := func(p int) float64 {
		consumption := float64(p) * rwKghPerPost
		if consumption <= 0 {
			return math.Inf(1)
		}
		return supplyKgh / consumption
	}

	for i := len(fitting) - 1; i >= 0; i-- {
		p := fitting[i]
		if r := balance(p); r >= constants.MassBalanceThreshold {
			return p, r, false
		}
	}

	p := fitting[0]
	return p, balance(p), true
}

// crewFor reports the operators needed to run a number of posts.
func crewFor(posts, nOptimo int) int {
	if posts <= 0 {
		return 0
	}
	if nOptimo < 1 {
		nOptimo = 1
	}
	crew := int(math.Ceil(float64(posts) / float64(nOptimo)))
	if crew < 1 {
		crew = 1
	}
	return crew
}

// rewinderProfile resolves a family's rewinder capacity, falling back to the
// plant defaults when the family is not configured. The fallback is a
// documented default, not an error.
func rewinderProfile(caps map[string]RewinderCapacity, denier string) (RewinderCapacity, bool) {
	if c, ok := caps[denier]; ok {
		if c.NOptimo < 1 {
			c.NOptimo = 1
		}
		return c, true
	}
	return RewinderCapacity{
		KgPerHour: constants.DefaultRewinderKgh,
		NOptimo:   constants.DefaultNOptimo,
	}, false
}

// allocateShift runs the greedy pass for one shift: references are served in
// backlog order, each taking the best admissible post count that still fits
// under the remaining post ceiling. Later references get reduced or zero
// allocation; that is the documented first-come-first-served policy.
func allocateShift(refs []*reference, rw map[string]RewinderCapacity, tor map[string]TorsionCapacity, shiftLabel string, durationHours float64, totalPosts int) ([]Allocation, error) {
	var out []Allocation
	remaining := totalPosts

	for _, ref := range refs {
		if ref.exhausted() || remaining <= 0 {
			continue
		}

		prof, _ := rewinderProfile(rw, ref.Denier)
		valid := validPostCounts(prof.NOptimo, totalPosts)
		if len(valid) == 0 {
			return nil, &ConfigError{
				Ref:    ref.Ref,
				Reason: fmt.Sprintf("no admissible post counts for n_optimo=%d", prof.NOptimo),
			}
		}

		supplyKgh := familySupplyKgh(tor, ref.Denier)
		posts, ratio, degraded := choosePosts(valid, remaining, supplyKgh, prof.KgPerHour)
		if posts == 0 {
			continue
		}

		kg := float64(posts) * prof.KgPerHour * durationHours
		if kg > ref.PendingKg {
			kg = ref.PendingKg
		}

		ref.PendingKg -= kg
		ref.postsSum += posts
		ref.shiftCount++
		remaining -= posts

		out = append(out, Allocation{
			Ref:         ref.Ref,
			Description: ref.Description,
			Denier:      ref.Denier,
			Shift:       shiftLabel,
			Posts:       posts,
			Crew:        crewFor(posts, prof.NOptimo),
			Kg:          kg,
			SupplyRatio: ratio,
			Degraded:    degraded,
		})
	}

	return out, nil
}
