package planner

import (
	"time"

	"cabuya-planner/internal/constants"
)

const dateLayout = "2006-01-02"

var shiftDefs = []struct{ Name, Window string }{
	{"A", "06:00 - 14:00"},
	{"B", "14:00 - 22:00"},
	{"C", "22:00 - 06:00"},
}

// dayAccum collects a date's allocations during the forward pass.
type dayAccum struct {
	allocations []Allocation
	crewPeak    int
	postsPeak   int
}

// forwardResult is the immutable outcome of the forward pass: per-day
// allocations plus the uncorrected machine loads that feed redistribution.
type forwardResult struct {
	days  map[string]*dayAccum
	loads loadMap
}

func newForwardResult() *forwardResult {
	return &forwardResult{days: make(map[string]*dayAccum), loads: make(loadMap)}
}

func (fr *forwardResult) dayFor(date string) *dayAccum {
	da, ok := fr.days[date]
	if !ok {
		da = &dayAccum{}
		fr.days[date] = da
	}
	return da
}

func startDate(in Input) time.Time {
	if len(in.Shifts) > 0 {
		if t, err := time.Parse(dateLayout, in.Shifts[0].Date); err == nil {
			return t
		}
	}
	// plans start tomorrow at 00:00
	now := in.Now
	t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, 1)
}

func calendarHours(in Input) map[string]int {
	cal := make(map[string]int, len(in.Shifts))
	for _, s := range in.Shifts {
		cal[s.Date] = s.WorkingHours
	}
	return cal
}

func hoursFor(cal map[string]int, date string) int {
	if h, ok := cal[date]; ok {
		return h
	}
	return constants.DefaultWorkingHours
}

// runFixedShift divides every day into fixed shift blocks; all active
// references compete for posts within each block.
func runFixedShift(in Input, refs []*reference) (*forwardResult, error) {
	fr := newForwardResult()
	cal := calendarHours(in)

	shiftHours := in.ShiftHours
	if shiftHours <= 0 {
		shiftHours = constants.ShiftDurationHours
	}
	totalPosts := in.TotalPosts
	if totalPosts <= 0 {
		totalPosts = constants.TotalRewinderPosts
	}

	date := startDate(in)
	for day := 0; ; day++ {
		act := activeRefs(refs)
		if len(act) == 0 {
			break
		}
		if day >= constants.MaxPlanDays {
			return nil, &ConfigError{
				Ref:    act[0].Ref,
				Date:   date.Format(dateLayout),
				Reason: "planning horizon exceeded, check throughput configuration",
			}
		}

		dateStr := date.Format(dateLayout)
		numShifts := hoursFor(cal, dateStr) / shiftHours

		for s := 0; s < numShifts; s++ {
			act = activeRefs(refs)
			if len(act) == 0 {
				break
			}
			label := shiftDefs[s%len(shiftDefs)].Name

			allocs, err := allocateShift(act, in.Rewinder, in.Torsion, label, float64(shiftHours), totalPosts)
			if err != nil {
				return nil, err
			}

			da := fr.dayFor(dateStr)
			crew, posts := 0, 0
			for _, a := range allocs {
				da.allocations = append(da.allocations, a)
				crew += a.Crew
				posts += a.Posts
				aggregateTorsion(fr.loads, in.Torsion, dateStr, a.Ref, a.Denier, a.Kg)
			}
			if crew > da.crewPeak {
				da.crewPeak = crew
			}
			if posts > da.postsPeak {
				da.postsPeak = posts
			}

			for _, r := range act {
				if r.exhausted() && r.finishedAt == "" {
					r.finishedAt = dateStr + " Turno " + label
				}
			}
		}

		date = date.AddDate(0, 0, 1)
	}

	return fr, nil
}

// runContinuous processes references one at a time to exhaustion, moving a
// single clock across shift-hour and day boundaries.
func runContinuous(in Input, refs []*reference) (*forwardResult, error) {
	fr := newForwardResult()
	cal := calendarHours(in)

	totalPosts := in.TotalPosts
	if totalPosts <= 0 {
		totalPosts = constants.TotalRewinderPosts
	}

	date := startDate(in)
	usedToday := 0.0

	for _, ref := range refs {
		if ref.exhausted() {
			continue
		}

		prof, _ := rewinderProfile(in.Rewinder, ref.Denier)
		valid := validPostCounts(prof.NOptimo, totalPosts)
		if len(valid) == 0 {
			return nil, &ConfigError{
				Ref:    ref.Ref,
				Reason: "no admissible post counts for reference",
			}
		}

		posts, ratio, degraded := choosePosts(valid, totalPosts, familySupplyKgh(in.Torsion, ref.Denier), prof.KgPerHour)
		rate := float64(posts) * prof.KgPerHour
		if rate <= 0 {
			return nil, &ConfigError{
				Ref:    ref.Ref,
				Reason: "zero rewinder throughput configured",
			}
		}

		for steps := 0; !ref.exhausted(); steps++ {
			if steps >= constants.MaxClockSteps {
				return nil, &ConfigError{
					Ref:    ref.Ref,
					Date:   date.Format(dateLayout),
					Reason: "iteration safety bound exceeded",
				}
			}

			dateStr := date.Format(dateLayout)
			avail := float64(hoursFor(cal, dateStr)) - usedToday
			if avail <= hoursEpsilon {
				date = date.AddDate(0, 0, 1)
				usedToday = 0
				continue
			}

			h := ref.PendingKg / rate
			if h > avail {
				h = avail
			}
			kg := h * rate
			if kg > ref.PendingKg {
				kg = ref.PendingKg
			}

			da := fr.dayFor(dateStr)
			da.allocations = append(da.allocations, Allocation{
				Ref:         ref.Ref,
				Description: ref.Description,
				Denier:      ref.Denier,
				Shift:       "continuo",
				Posts:       posts,
				Crew:        crewFor(posts, prof.NOptimo),
				Kg:          kg,
				SupplyRatio: ratio,
				Degraded:    degraded,
			})
			if c := crewFor(posts, prof.NOptimo); c > da.crewPeak {
				da.crewPeak = c
			}
			if posts > da.postsPeak {
				da.postsPeak = posts
			}
			aggregateTorsion(fr.loads, in.Torsion, dateStr, ref.Ref, ref.Denier, kg)

			ref.PendingKg -= kg
			ref.postsSum += posts
			ref.shiftCount++
			usedToday += h

			if ref.exhausted() {
				finish := date.Add(time.Duration(usedToday * float64(time.Hour)))
				ref.finishedAt = finish.Format("2006-01-02 15:04")
			}
		}
	}

	return fr, nil
}
