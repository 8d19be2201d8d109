package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type AdminReader interface {
	GetDeniers(ctx context.Context) ([]*storage.Denier, error)
	GetMachineDenierConfigs(ctx context.Context) ([]*storage.MachineDenierConfig, error)
	GetRewinderConfigs(ctx context.Context) ([]*storage.RewinderDenierConfig, error)
	GetShifts(ctx context.Context) ([]*storage.Shift, error)
	GetProducts(ctx context.Context) ([]*storage.Product, error)
}

func GetDeniersAdmin(log *slog.Logger, reader AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetDeniersAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		deniers, err := reader.GetDeniers(ctx)
		if err != nil {
			log.Error("failed to fetch deniers", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, deniers)
	}
}

func GetMachineConfigsAdmin(log *slog.Logger, reader AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetMachineConfigsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		configs, err := reader.GetMachineDenierConfigs(ctx)
		if err != nil {
			log.Error("failed to fetch machine configs", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, configs)
	}
}

func GetRewinderConfigsAdmin(log *slog.Logger, reader AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetRewinderConfigsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		configs, err := reader.GetRewinderConfigs(ctx)
		if err != nil {
			log.Error("failed to fetch rewinder configs", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, configs)
	}
}

func GetShiftsAdmin(log *slog.Logger, reader AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetShiftsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		shifts, err := reader.GetShifts(ctx)
		if err != nil {
			log.Error("failed to fetch shifts", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, shifts)
	}
}

func GetProductsAdmin(log *slog.Logger, reader AdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetProductsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := reader.GetProducts(ctx)
		if err != nil {
			log.Error("failed to fetch products", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, products)
	}
}
