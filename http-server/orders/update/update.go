package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type OrderUpdater interface {
	UpdateOrderProduced(ctx context.Context, id string, kg float64) error
}

type Request struct {
	Kg float64 `json:"kg_producidos"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// UpdateOrderProduced registers reported production against an order.
func UpdateOrderProduced(log *slog.Logger, updater OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.UpdateOrderProduced"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Falta id", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.Kg <= 0 {
			http.Error(w, "kg_producidos debe ser positivo", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateOrderProduced(ctx, id, req.Kg); err != nil {
			log.Error("failed to update order", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo actualizar el pedido"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
