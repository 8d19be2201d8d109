// Package planner implements the production scheduling and mass-balance
// allocation engine: a greedy per-shift rewinder allocator, a torsion
// demand aggregator, and a backward "pre-pumping" pass that keeps every
// torsion machine under 24 operating hours per calendar day.
package planner

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"cabuya-planner/internal/constants"
)

// Annotator attaches a human-readable commentary to a finished plan. It is
// an optional collaborator: any failure is swallowed and replaced with the
// fixed fallback sentence.
type Annotator interface {
	Annotate(ctx context.Context, s Summary) (string, error)
}

type Engine struct {
	log       *slog.Logger
	annotator Annotator
}

func NewEngine(log *slog.Logger, annotator Annotator) *Engine {
	return &Engine{log: log, annotator: annotator}
}

// Generate runs one planning pass over the input snapshot. The run is
// strictly sequential: allocation, aggregation, redistribution, output.
// Only configuration errors withhold a result; degraded mass balance and
// applied defaults are reported inside it.
func (e *Engine) Generate(ctx context.Context, in Input) (*Result, error) {
	const op = "planner.Generate"

	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	if in.Strategy == "" {
		in.Strategy = StrategyFixedShift
	}
	if in.Order == "" {
		in.Order = OrderDenierDesc
	}

	refs := normalizeBacklog(in.Backlog, in.Order)
	if len(refs) == 0 {
		return &Result{
			Summary: Summary{Annotation: "No hay items en el backlog."},
			Chart:   ChartSeries{Dates: []string{}, CrewPeak: []int{}, KgPerDay: []float64{}},
		}, nil
	}

	e.logMissingCapacities(in, refs)

	var (
		fr  *forwardResult
		err error
	)
	switch in.Strategy {
	case StrategyContinuous:
		fr, err = runContinuous(in, refs)
	default:
		fr, err = runFixedShift(in, refs)
	}
	if err != nil {
		e.log.Error("planning run aborted", slog.String("op", op), slog.String("error", err.Error()))
		return nil, err
	}

	corrected := redistribute(fr.loads)
	result := e.buildResult(refs, fr, corrected)
	result.Summary.Annotation = e.annotate(ctx, result.Summary)
	return result, nil
}

// buildResult assembles the daily calendar, finalization table and chart
// series from the forward allocations and the corrected machine loads.
// Numeric fields are rounded here, at the output boundary only.
func (e *Engine) buildResult(refs []*reference, fr *forwardResult, corrected loadMap) *Result {
	dates := make(map[string]struct{}, len(fr.days))
	for d := range fr.days {
		dates[d] = struct{}{}
	}
	// pre-pumping can create load on days before the first allocation
	for d := range corrected {
		dates[d] = struct{}{}
	}
	ordered := make([]string, 0, len(dates))
	for d := range dates {
		ordered = append(ordered, d)
	}
	sort.Strings(ordered)

	res := &Result{
		Chart: ChartSeries{
			Dates:    make([]string, 0, len(ordered)),
			CrewPeak: make([]int, 0, len(ordered)),
			KgPerDay: make([]float64, 0, len(ordered)),
		},
	}

	for _, date := range ordered {
		da := fr.days[date]
		if da == nil {
			da = &dayAccum{}
		}

		entry := DayEntry{
			Date:        date,
			Allocations: make([]Allocation, 0, len(da.allocations)),
			Torsion:     roundSummaryFields(summarize(corrected, date)),
			CrewPeak:    da.crewPeak,
			PostsActive: da.postsPeak,
		}
		var dayKg float64
		for _, a := range da.allocations {
			dayKg += a.Kg
			a.Kg = round2(a.Kg)
			a.SupplyRatio = round2(a.SupplyRatio)
			entry.Allocations = append(entry.Allocations, a)
		}
		res.Days = append(res.Days, entry)

		res.Chart.Dates = append(res.Chart.Dates, date)
		res.Chart.CrewPeak = append(res.Chart.CrewPeak, da.crewPeak)
		res.Chart.KgPerDay = append(res.Chart.KgPerDay, round2(dayKg))
	}

	var totalKg float64
	for _, r := range refs {
		totalKg += r.InitialKg
		res.Finalization = append(res.Finalization, Finalization{
			Ref:         r.Ref,
			Description: r.Description,
			FinishedAt:  r.finishedAt,
			AvgPosts:    round2(r.avgPosts()),
			TotalKg:     round2(r.InitialKg),
		})
	}

	res.Summary = Summary{
		DaysScheduled: len(res.Days),
		TotalKg:       round2(totalKg),
	}
	if n := len(ordered); n > 0 {
		res.Summary.FinishedAt = ordered[n-1]
	}
	return res
}

// annotate calls the optional commentary collaborator. Its failure can
// neither corrupt nor delay the already-computed schedule.
func (e *Engine) annotate(ctx context.Context, s Summary) (text string) {
	text = constants.FallbackAnnotation
	if e.annotator == nil {
		return text
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("commentary annotator panicked", slog.Any("panic", r))
			text = constants.FallbackAnnotation
		}
	}()

	out, err := e.annotator.Annotate(ctx, s)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			e.log.Warn("commentary annotator failed", slog.String("error", err.Error()))
		}
		return constants.FallbackAnnotation
	}
	return out
}

// logMissingCapacities surfaces applied configuration defaults as
// diagnostics; they are documented fallbacks, never failures.
func (e *Engine) logMissingCapacities(in Input, refs []*reference) {
	seen := make(map[string]struct{})
	for _, r := range refs {
		if _, ok := seen[r.Denier]; ok {
			continue
		}
		seen[r.Denier] = struct{}{}

		if _, ok := in.Rewinder[r.Denier]; !ok {
			e.log.Debug("rewinder capacity missing, defaults applied",
				slog.String("denier", r.Denier),
				slog.Float64("kg_per_hour", constants.DefaultRewinderKgh))
		}
		if c, ok := in.Torsion[r.Denier]; !ok || len(c.Machines) == 0 {
			e.log.Debug("torsion capacity missing, synthetic machine applied",
				slog.String("denier", r.Denier),
				slog.String("machine", constants.SyntheticMachineID))
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundSummaryFields(s TorsionSummary) TorsionSummary {
	s.TotalKg = round2(s.TotalKg)
	s.Hours = round2(s.Hours)
	for i := range s.Machines {
		s.Machines[i].Hours = round2(s.Machines[i].Hours)
		s.Machines[i].Kg = round2(s.Machines[i].Kg)
	}
	return s
}
