// Package capacity turns raw machine configuration into the scheduling
// snapshot the planner consumes: rewinder and torsion capacity tables, the
// shift calendar, and the merged backlog of manual orders plus automatic
// stock requirements.
package capacity

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"cabuya-planner/internal/constants"
	"cabuya-planner/internal/service/planner"
	"cabuya-planner/internal/storage"
)

type SchedulingStorage interface {
	GetOrders(ctx context.Context) ([]*storage.Order, error)
	GetRewinderConfigs(ctx context.Context) ([]*storage.RewinderDenierConfig, error)
	GetMachineDenierConfigs(ctx context.Context) ([]*storage.MachineDenierConfig, error)
	GetShifts(ctx context.Context) ([]*storage.Shift, error)
	GetProducts(ctx context.Context) ([]*storage.Product, error)
}

type Service struct {
	storage SchedulingStorage
	log     *slog.Logger
}

func NewService(log *slog.Logger, storage SchedulingStorage) *Service {
	return &Service{storage: storage, log: log}
}

// BuildSchedulingData fetches everything a planning run needs in one go and
// assembles the planner input. The five reads are independent, so they run
// concurrently.
func (s *Service) BuildSchedulingData(ctx context.Context) (*planner.Input, error) {
	const op = "capacity.BuildSchedulingData"

	var (
		orders    []*storage.Order
		rwConfigs []*storage.RewinderDenierConfig
		mdConfigs []*storage.MachineDenierConfig
		shifts    []*storage.Shift
		products  []*storage.Product
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.storage.GetOrders(gCtx)
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rwConfigs, err = s.storage.GetRewinderConfigs(gCtx)
		if err != nil {
			return fmt.Errorf("rewinder configs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mdConfigs, err = s.storage.GetMachineDenierConfigs(gCtx)
		if err != nil {
			return fmt.Errorf("machine configs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shifts, err = s.storage.GetShifts(gCtx)
		if err != nil {
			return fmt.Errorf("shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.storage.GetProducts(gCtx)
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in := &planner.Input{
		Backlog:  s.buildBacklog(orders, products),
		Rewinder: buildRewinderTable(rwConfigs),
		Shifts:   make([]planner.ShiftDay, 0, len(shifts)),
	}
	in.Torsion = s.buildTorsionTable(mdConfigs, in.Backlog)

	for _, sh := range shifts {
		in.Shifts = append(in.Shifts, planner.ShiftDay{Date: sh.Date, WorkingHours: sh.WorkingHours})
	}
	return in, nil
}

// buildBacklog merges manual orders (always priority) with automatic
// requirements from stock sitting below its safety level.
func (s *Service) buildBacklog(orders []*storage.Order, products []*storage.Product) map[string]planner.BacklogEntry {
	productMap := make(map[string]*storage.Product, len(products))
	for _, p := range products {
		productMap[p.Codigo] = p
	}

	backlog := make(map[string]planner.BacklogEntry)

	for _, o := range orders {
		if o.CabuyaCodigo == "" || o.PendingKg() <= 0 {
			continue
		}
		denier := o.DenierName
		desc := "Pedido manual"
		if p, ok := productMap[o.CabuyaCodigo]; ok {
			if denier == "" {
				denier = p.ReferenciaDenier
			}
			desc = p.Descripcion
		}
		if denier == "" {
			s.log.Debug("order without denier skipped", slog.String("codigo", o.CabuyaCodigo))
			continue
		}

		e := backlog[o.CabuyaCodigo]
		e.Denier = denier
		e.Description = desc
		e.Priority = true
		e.Kg += o.PendingKg()
		backlog[o.CabuyaCodigo] = e
	}

	for _, p := range products {
		req := p.RequirementKg()
		if req <= 0 || p.ReferenciaDenier == "" {
			continue
		}
		e, existed := backlog[p.Codigo]
		if !existed {
			e.Denier = p.ReferenciaDenier
			e.Description = p.Descripcion
			e.Priority = p.Prioridad
		} else if p.Prioridad {
			e.Priority = true
		}
		e.Kg += req
		backlog[p.Codigo] = e
	}

	return backlog
}

func buildRewinderTable(configs []*storage.RewinderDenierConfig) map[string]planner.RewinderCapacity {
	table := make(map[string]planner.RewinderCapacity, len(configs))
	for _, c := range configs {
		table[c.Denier] = planner.RewinderCapacity{
			KgPerHour: RewinderKgh(c.TMMinutos),
			NOptimo:   OptimalPosts(c.TMMinutos, c.MPSegundos),
		}
	}
	return table
}

// buildTorsionTable computes per-machine throughput for every denier family
// present in the backlog. Families with no usable machines are simply
// absent; the planner substitutes its synthetic fallback.
func (s *Service) buildTorsionTable(configs []*storage.MachineDenierConfig, backlog map[string]planner.BacklogEntry) map[string]planner.TorsionCapacity {
	families := make(map[string]struct{})
	for _, e := range backlog {
		families[e.Denier] = struct{}{}
	}

	table := make(map[string]planner.TorsionCapacity, len(families))
	for family := range families {
		fields := strings.Fields(family)
		if len(fields) == 0 {
			continue
		}
		val, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			s.log.Debug("non-numeric denier family, torsion capacity skipped", slog.String("denier", family))
			continue
		}

		var tc planner.TorsionCapacity
		for _, c := range configs {
			if c.Denier != family {
				continue
			}
			kgh := TorsionKghDefault(val, c.RPM, c.TorsionesMetro, c.Husos)
			if kgh <= 0 {
				continue
			}
			tc.Machines = append(tc.Machines, planner.Machine{ID: c.MachineID, Kgh: kgh})
			tc.TotalKgh += kgh
		}
		if len(tc.Machines) > 0 {
			table[family] = tc
		} else {
			s.log.Debug("denier family without torsion machines, planner default applies",
				slog.String("denier", family),
				slog.Float64("fallback_kgh", constants.DefaultTorsionKgh))
		}
	}
	return table
}
