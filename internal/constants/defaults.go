package constants

// Plant-wide planning defaults. Every numeric guard in the planner and the
// capacity service reads from this table instead of repeating literals.
const (
	// TotalRewinderPosts is the number of rewinder posts on the floor.
	TotalRewinderPosts = 28

	// ShiftDurationHours is the length of one fixed shift block.
	ShiftDurationHours = 8

	// DayHours is the 24h ceiling enforced per torsion machine per day.
	DayHours = 24.0

	// DefaultWorkingHours is assumed for dates absent from the shift calendar.
	DefaultWorkingHours = 24

	// MassBalanceThreshold: torsion supply must cover at least this share of
	// rewinder consumption within a shift.
	MassBalanceThreshold = 0.9

	// MinLoadFactor sets the lower bound of posts one operator can run,
	// relative to the optimal crew-grouping size.
	MinLoadFactor = 0.8

	// DefaultTorsionKgh is the throughput of the synthetic machine substituted
	// for a denier family with no configured torsion capacity.
	DefaultTorsionKgh = 50.0

	// SyntheticMachineID names the fallback torsion machine.
	SyntheticMachineID = "T-AUX"

	// DefaultRewinderKgh and DefaultNOptimo cover a denier family missing from
	// the rewinder capacity table.
	DefaultRewinderKgh = 10.0
	DefaultNOptimo     = 4

	// PendingEpsilonKg: below this a reference counts as exhausted.
	PendingEpsilonKg = 0.1

	// MaxPlanDays bounds the fixed-shift day loop; MaxClockSteps bounds the
	// continuous-flow clock per reference. Exceeding either is a
	// configuration error, not a hang.
	MaxPlanDays   = 366
	MaxClockSteps = 10000
)

// Physical formula defaults for torsion/rewinder throughput.
const (
	DefaultOEE           = 0.8
	DefaultWasteFraction = 0.03
	DefaultMPSeconds     = 37.0
	RewinderProductivity = 0.8
)

// FallbackAnnotation is returned when the commentary collaborator is
// unavailable or fails.
const FallbackAnnotation = "Plan generado con asignación greedy: balance de masa al 90% y pre-bombeo de torsión para respetar el tope de 24h/día por máquina."
