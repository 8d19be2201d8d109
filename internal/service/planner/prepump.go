package planner

import (
	"sort"
	"time"

	"cabuya-planner/internal/constants"
)

const hoursEpsilon = 1e-9

// redistribute enforces the 24h/day ceiling per torsion machine by pushing
// excess load backward in time: machines pre-produce inventory ahead of the
// day it is consumed, never after. The forward map is left untouched; a new
// corrected map is returned so the two passes stay independently testable.
//
// The sweep visits each date exactly once, latest first. Whether a machine
// overflows is decided on its forward-pass hours, so load pushed onto an
// earlier day is not re-checked against that day's own cap within the same
// pass; such days surface through TorsionSummary.CapExceeded.
func redistribute(forward loadMap) loadMap {
	corrected := make(loadMap, len(forward))
	for date, day := range forward {
		cd := make(map[string]*machineDay, len(day))
		for id, md := range day {
			refs := make(map[string]struct{}, len(md.Refs))
			for r := range md.Refs {
				refs[r] = struct{}{}
			}
			cd[id] = &machineDay{Hours: md.Hours, Kg: md.Kg, Refs: refs}
		}
		corrected[date] = cd
	}

	dates := sortedDates(forward)
	for i := len(dates) - 1; i >= 0; i-- {
		date := dates[i]
		prev, err := previousDate(date)
		if err != nil {
			continue
		}

		for _, id := range machineIDs(forward[date]) {
			orig := forward[date][id]
			if orig.Hours <= constants.DayHours+hoursEpsilon {
				continue
			}

			ratio := constants.DayHours / orig.Hours
			overHours := orig.Hours - constants.DayHours
			movedKg := orig.Kg * (1 - ratio)

			// subtract the machine's own overflow; load already pushed onto
			// this day from a later date stays put and is not re-checked
			md := corrected[date][id]
			md.Kg -= movedKg
			md.Hours -= overHours

			day := corrected.day(prev)
			target, ok := day[id]
			if !ok {
				target = &machineDay{Refs: make(map[string]struct{})}
				day[id] = target
			}
			target.Hours += overHours
			target.Kg += movedKg
			for r := range md.Refs {
				target.Refs[r] = struct{}{}
			}
		}
	}

	return corrected
}

func machineIDs(day map[string]*machineDay) []string {
	ids := make([]string, 0, len(day))
	for id := range day {
		ids = append(ids, id)
	}
	// deterministic sweep order
	sort.Strings(ids)
	return ids
}

func previousDate(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(dateLayout), nil
}
