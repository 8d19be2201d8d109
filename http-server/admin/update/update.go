package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type AdminWriter interface {
	UpsertMachineDenierConfig(ctx context.Context, c *storage.MachineDenierConfig) error
	UpsertRewinderConfig(ctx context.Context, c *storage.RewinderDenierConfig) error
	UpsertShift(ctx context.Context, sh *storage.Shift) error
	UpdateProductPriority(ctx context.Context, codigo string, priority bool) error
	UpdateProductSafetyStock(ctx context.Context, codigo string, kg float64) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func UpsertMachineConfigAdmin(log *slog.Logger, writer AdminWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpsertMachineConfigAdmin"

		var req storage.MachineDenierConfig
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.MachineID == "" || req.Denier == "" {
			http.Error(w, "Faltan machine_id o denier", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpsertMachineDenierConfig(ctx, &req); err != nil {
			log.Error("failed to upsert machine config", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar la configuración"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

func UpsertRewinderConfigAdmin(log *slog.Logger, writer AdminWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpsertRewinderConfigAdmin"

		var req storage.RewinderDenierConfig
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.Denier == "" || req.TMMinutos <= 0 {
			http.Error(w, "Faltan denier o tm_minutos", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpsertRewinderConfig(ctx, &req); err != nil {
			log.Error("failed to upsert rewinder config", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar la configuración"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

func UpsertShiftAdmin(log *slog.Logger, writer AdminWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpsertShiftAdmin"

		var req storage.Shift
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			http.Error(w, "Fecha inválida, formato 2006-01-02", http.StatusBadRequest)
			return
		}
		if req.WorkingHours < 0 || req.WorkingHours > 24 {
			http.Error(w, "working_hours fuera de rango", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpsertShift(ctx, &req); err != nil {
			log.Error("failed to upsert shift", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar el turno"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}

type ProductRequest struct {
	Priority    *bool    `json:"prioridad"`
	SafetyStock *float64 `json:"inventario_seguridad"`
}

// UpdateProductAdmin changes the priority flag and/or safety stock of one
// product.
func UpdateProductAdmin(log *slog.Logger, writer AdminWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateProductAdmin"

		codigo := chi.URLParam(r, "codigo")
		if codigo == "" {
			http.Error(w, "Falta codigo", http.StatusBadRequest)
			return
		}

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.Priority == nil && req.SafetyStock == nil {
			http.Error(w, "Nada que actualizar", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if req.Priority != nil {
			if err := writer.UpdateProductPriority(ctx, codigo, *req.Priority); err != nil {
				log.Error("failed to update priority", slog.String("op", op), slog.String("codigo", codigo), slog.String("error", err.Error()))
				render.JSON(w, r, Response{Error: "no se pudo actualizar la prioridad"})
				return
			}
		}
		if req.SafetyStock != nil {
			if err := writer.UpdateProductSafetyStock(ctx, codigo, *req.SafetyStock); err != nil {
				log.Error("failed to update safety stock", slog.String("op", op), slog.String("codigo", codigo), slog.String("error", err.Error()))
				render.JSON(w, r, Response{Error: "no se pudo actualizar el inventario de seguridad"})
				return
			}
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
