package delete_order

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func DeleteOrder(log *slog.Logger, deleter OrderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.DeleteOrder"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Falta id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteOrder(ctx, id); err != nil {
			log.Error("failed to delete order", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo eliminar el pedido"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
