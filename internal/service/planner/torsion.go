package planner

import (
	"sort"

	"cabuya-planner/internal/constants"
)

// machineDay accumulates the load of one torsion machine on one date.
type machineDay struct {
	Hours float64
	Kg    float64
	Refs  map[string]struct{}
}

// loadMap is keyed by date, then machine id.
type loadMap map[string]map[string]*machineDay

func (lm loadMap) day(date string) map[string]*machineDay {
	d, ok := lm[date]
	if !ok {
		d = make(map[string]*machineDay)
		lm[date] = d
	}
	return d
}

func (lm loadMap) add(date, machine, ref string, hours, kg float64) {
	d := lm.day(date)
	md, ok := d[machine]
	if !ok {
		md = &machineDay{Refs: make(map[string]struct{})}
		d[machine] = md
	}
	md.Hours += hours
	md.Kg += kg
	if ref != "" {
		md.Refs[ref] = struct{}{}
	}
}

// familyMachines resolves the torsion machine list of a denier family. A
// family with no machines, or with zero total throughput, gets the synthetic
// fallback machine so that hours never divide by zero.
func familyMachines(tor map[string]TorsionCapacity, denier string) ([]Machine, float64) {
	c, ok := tor[denier]
	total := c.TotalKgh
	if total <= 0 {
		total = 0
		for _, m := range c.Machines {
			total += m.Kgh
		}
	}
	if !ok || len(c.Machines) == 0 || total <= 0 {
		return []Machine{{ID: constants.SyntheticMachineID, Kgh: constants.DefaultTorsionKgh}}, constants.DefaultTorsionKgh
	}
	return c.Machines, total
}

func familySupplyKgh(tor map[string]TorsionCapacity, denier string) float64 {
	_, total := familyMachines(tor, denier)
	return total
}

// aggregateTorsion translates kilograms produced by the rewinder side into
// feeder demand: the whole family runs hours = kg / total kgh, and each
// machine contributes hours * its own kgh, i.e. proportional load-sharing
// with no per-machine preference.
func aggregateTorsion(lm loadMap, tor map[string]TorsionCapacity, date, ref, denier string, kg float64) {
	if kg <= 0 {
		return
	}
	machines, totalKgh := familyMachines(tor, denier)
	hours := kg / totalKgh
	for _, m := range machines {
		if m.Kgh <= 0 {
			continue
		}
		lm.add(date, m.ID, ref, hours, hours*m.Kgh)
	}
}

func sortedDates(lm loadMap) []string {
	dates := make([]string, 0, len(lm))
	for d := range lm {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// summarize builds the finalized per-date torsion summary from a corrected
// load map: total kilograms, maximum hours in use, and a flag for any day
// still above the cap after the single backward sweep.
func summarize(lm loadMap, date string) TorsionSummary {
	day := lm[date]
	ids := make([]string, 0, len(day))
	for id := range day {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var s TorsionSummary
	for _, id := range ids {
		md := day[id]
		refs := make([]string, 0, len(md.Refs))
		for r := range md.Refs {
			refs = append(refs, r)
		}
		sort.Strings(refs)

		s.Machines = append(s.Machines, MachineLoad{
			Machine: id,
			Hours:   md.Hours,
			Kg:      md.Kg,
			Refs:    refs,
		})
		s.TotalKg += md.Kg
		if md.Hours > s.Hours {
			s.Hours = md.Hours
		}
		if md.Hours > constants.DayHours+hoursEpsilon {
			s.CapExceeded = true
		}
	}
	return s
}
