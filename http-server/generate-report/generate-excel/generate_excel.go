package generate_excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cabuya-planner/internal/service/planner"
)

type SchedulingData interface {
	BuildSchedulingData(ctx context.Context) (*planner.Input, error)
}

type PlanEngine interface {
	Generate(ctx context.Context, in planner.Input) (*planner.Result, error)
}

type ExcelRenderer interface {
	GenerateExcel(res *planner.Result) ([]byte, error)
}

// GenerateReportExcel runs a fresh plan and streams it as an .xlsx
// workbook. The strategy comes from the query string, fixed shifts by
// default.
func GenerateReportExcel(log *slog.Logger, data SchedulingData, engine PlanEngine, renderer ExcelRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		strategy := planner.StrategyFixedShift
		if s := r.URL.Query().Get("estrategia"); s != "" {
			switch planner.Strategy(s) {
			case planner.StrategyFixedShift, planner.StrategyContinuous:
				strategy = planner.Strategy(s)
			default:
				http.Error(w, "Estrategia desconocida", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		in, err := data.BuildSchedulingData(ctx)
		if err != nil {
			log.Error("failed to build scheduling data", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		in.Strategy = strategy

		res, err := engine.Generate(ctx, *in)
		if err != nil {
			var cfgErr *planner.ConfigError
			if errors.As(err, &cfgErr) {
				http.Error(w, cfgErr.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error("plan generation failed", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		excelBytes, err := renderer.GenerateExcel(res)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Plan_Cabuya_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
