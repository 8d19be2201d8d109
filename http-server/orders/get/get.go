package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"cabuya-planner/internal/storage"
)

type OrderReader interface {
	GetOrders(ctx context.Context) ([]*storage.Order, error)
}

type Response struct {
	Orders []*storage.Order `json:"pedidos"`
	Error  string           `json:"error"`
}

func GetOrders(log *slog.Logger, reader OrderReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.GetOrders"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := reader.GetOrders(ctx)
		if err != nil {
			log.Error("failed to fetch orders", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Orders: orders})
	}
}
