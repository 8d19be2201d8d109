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

type OrderSaver interface {
	SaveOrder(ctx context.Context, o *storage.Order) (string, error)
}

type Response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

func SaveOrder(log *slog.Logger, saver OrderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.SaveOrder"

		var req storage.Order
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if req.CabuyaCodigo == "" || req.TotalKg <= 0 {
			http.Error(w, "Faltan cabuya_codigo o total_kg", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveOrder(ctx, &req)
		if err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar el pedido"})
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "ok"})
	}
}
