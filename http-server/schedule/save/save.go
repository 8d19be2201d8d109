package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type PlanSaver interface {
	SavePlan(ctx context.Context, name string, plan []byte) (string, error)
}

type Request struct {
	Name string          `json:"nombre"`
	Plan json.RawMessage `json:"plan_data"`
}

type Response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

func SavePlanScenario(log *slog.Logger, saver PlanSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.SavePlanScenario"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.Name == "" || len(req.Plan) == 0 {
			http.Error(w, "Faltan nombre o plan_data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SavePlan(ctx, req.Name, req.Plan)
		if err != nil {
			log.Error("failed to save plan", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar el plan"})
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}
