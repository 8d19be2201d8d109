package capacity

import (
	"math"

	"cabuya-planner/internal/constants"
)

// TorsionKgh computes a torsion machine's throughput for a denier from its
// physical parameters: output speed (rpm over twist density), linear mass
// (denier/9000 g/m), spindle count and a 0.06 m/min-to-kg/h factor, derated
// by OEE and waste.
func TorsionKgh(denier float64, rpm, torsionesMetro, husos int, oee, waste float64) float64 {
	if torsionesMetro == 0 {
		return 0
	}
	vSalida := float64(rpm) / float64(torsionesMetro)
	return (vSalida * (denier / 9000) * float64(husos) * 0.06) * oee * (1 - waste)
}

// TorsionKghDefault applies the plant's standard OEE and waste figures.
func TorsionKghDefault(denier float64, rpm, torsionesMetro, husos int) float64 {
	return TorsionKgh(denier, rpm, torsionesMetro, husos, constants.DefaultOEE, constants.DefaultWasteFraction)
}

// OptimalPosts is the crew-grouping size: how many rewinder posts one
// operator can run, given the machine cycle time (minutes) and the manual
// intervention time (seconds).
func OptimalPosts(tmMinutos, mpSegundos float64) int {
	if mpSegundos <= 0 {
		mpSegundos = constants.DefaultMPSeconds
	}
	mpMin := mpSegundos / 60
	return int(math.Floor((mpMin + tmMinutos) / mpMin))
}

// RewinderKgh converts a rewinder cycle time into kg/hour per post at the
// standard productivity factor.
func RewinderKgh(tmMinutos float64) float64 {
	if tmMinutos <= 0 {
		return 0
	}
	return (60 / tmMinutos) * constants.RewinderProductivity
}

// RafiaInput is the raw material needed to hit a production target once
// waste is accounted for.
func RafiaInput(targetKg, waste float64) float64 {
	if waste >= 1 {
		return targetKg
	}
	return targetKg / (1 - waste)
}
