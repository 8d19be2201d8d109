package get

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/service/planner"
)

type SchedulingData interface {
	BuildSchedulingData(ctx context.Context) (*planner.Input, error)
}

type Row struct {
	Ref         string  `json:"referencia"`
	Denier      string  `json:"denier"`
	Kg          float64 `json:"kg_total"`
	Priority    bool    `json:"is_priority"`
	Description string  `json:"descripcion"`
}

type Response struct {
	Backlog []Row   `json:"backlog"`
	TotalKg float64 `json:"kg_totales"`
	Error   string  `json:"error"`
}

// GetBacklog exposes the merged backlog (manual orders plus automatic
// stock requirements) the next planning run would schedule.
func GetBacklog(log *slog.Logger, data SchedulingData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.backlog.GetBacklog"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		in, err := data.BuildSchedulingData(ctx)
		if err != nil {
			log.Error("failed to build backlog", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		resp := Response{Backlog: make([]Row, 0, len(in.Backlog))}
		for ref, e := range in.Backlog {
			resp.Backlog = append(resp.Backlog, Row{
				Ref:         ref,
				Denier:      e.Denier,
				Kg:          e.Kg,
				Priority:    e.Priority,
				Description: e.Description,
			})
			resp.TotalKg += e.Kg
		}
		sort.Slice(resp.Backlog, func(i, j int) bool { return resp.Backlog[i].Ref < resp.Backlog[j].Ref })

		render.JSON(w, r, resp)
	}
}
