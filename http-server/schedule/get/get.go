package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type PlanReader interface {
	GetSavedPlans(ctx context.Context) ([]*storage.SavedPlan, error)
}

type Response struct {
	Plans []*storage.SavedPlan `json:"planes"`
	Error string               `json:"error"`
}

func GetSavedPlans(log *slog.Logger, reader PlanReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.GetSavedPlans"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		plans, err := reader.GetSavedPlans(ctx)
		if err != nil {
			log.Error("failed to fetch saved plans", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Plans: plans})
	}
}
