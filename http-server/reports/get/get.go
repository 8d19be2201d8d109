package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type ReportReader interface {
	GetMachineReports(ctx context.Context, machineID string) ([]*storage.MachineReport, error)
}

type Response struct {
	Reports []*storage.MachineReport `json:"novedades"`
	Error   string                   `json:"error"`
}

func GetMachineReports(log *slog.Logger, reader ReportReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GetMachineReports"

		machineID := r.URL.Query().Get("machine_id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reports, err := reader.GetMachineReports(ctx, machineID)
		if err != nil {
			log.Error("failed to fetch reports", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Reports: reports})
	}
}
