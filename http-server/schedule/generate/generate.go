package generate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/service/planner"
)

type SchedulingData interface {
	BuildSchedulingData(ctx context.Context) (*planner.Input, error)
}

type PlanEngine interface {
	Generate(ctx context.Context, in planner.Input) (*planner.Result, error)
}

type Request struct {
	Strategy    string `json:"estrategia"`
	OrderPolicy string `json:"politica_orden"`
}

// GeneratePlan builds the scheduling snapshot from storage and runs the
// engine with the requested strategy.
func GeneratePlan(log *slog.Logger, data SchedulingData, engine PlanEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.GeneratePlan"

		var req Request
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Datos inválidos", http.StatusBadRequest)
				return
			}
		}

		strategy, ok := parseStrategy(req.Strategy)
		if !ok {
			http.Error(w, "Estrategia desconocida", http.StatusBadRequest)
			return
		}
		policy, ok := parsePolicy(req.OrderPolicy)
		if !ok {
			http.Error(w, "Política de orden desconocida", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		in, err := data.BuildSchedulingData(ctx)
		if err != nil {
			log.Error("failed to build scheduling data", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		in.Strategy = strategy
		in.Order = policy

		res, err := engine.Generate(ctx, *in)
		if err != nil {
			var cfgErr *planner.ConfigError
			if errors.As(err, &cfgErr) {
				log.Error("plan aborted by configuration", slog.String("op", op), slog.String("error", err.Error()))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, map[string]string{"error": cfgErr.Error()})
				return
			}
			log.Error("plan generation failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res)
	}
}

func parseStrategy(s string) (planner.Strategy, bool) {
	switch planner.Strategy(s) {
	case "":
		return planner.StrategyFixedShift, true
	case planner.StrategyFixedShift, planner.StrategyContinuous:
		return planner.Strategy(s), true
	}
	return "", false
}

func parsePolicy(s string) (planner.OrderPolicy, bool) {
	switch planner.OrderPolicy(s) {
	case "":
		return planner.OrderDenierDesc, true
	case planner.OrderDenierDesc, planner.OrderPriorityFirst:
		return planner.OrderPolicy(s), true
	}
	return "", false
}
