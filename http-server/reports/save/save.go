package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type ReportSaver interface {
	SaveMachineReport(ctx context.Context, rep *storage.MachineReport) (string, error)
}

type Response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// SaveMachineReport registers a supervisor novedad against a torsion
// machine.
func SaveMachineReport(log *slog.Logger, saver ReportSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.SaveMachineReport"

		var req storage.MachineReport
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.MachineID == "" || req.Type == "" {
			http.Error(w, "Faltan machine_id o type", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveMachineReport(ctx, &req)
		if err != nil {
			log.Error("failed to save report", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar la novedad"})
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}
