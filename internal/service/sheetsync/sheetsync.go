// Package sheetsync imports reported production from the shared workbook
// the shift supervisors fill in. A cron job reads the drop file and adds
// the reported kg to the matching orders.
package sheetsync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/xuri/excelize/v2"
)

type OrderUpdater interface {
	UpdateOrderProduced(ctx context.Context, id string, kg float64) error
}

type Service struct {
	log     *slog.Logger
	storage OrderUpdater
	path    string
}

func New(log *slog.Logger, storage OrderUpdater, path string) *Service {
	return &Service{log: log, storage: storage, path: path}
}

// Schedule registers the sync on the given cron. An invalid spec is a
// startup error; a failing run is only logged.
func (s *Service) Schedule(c *cron.Cron, spec string) error {
	const op = "sheetsync.Schedule"

	_, err := c.AddFunc(spec, func() {
		if err := s.Run(context.Background()); err != nil {
			s.log.Error("sheet sync failed", slog.Any("err", err))
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Run reads the drop workbook once. The expected layout is a header row
// followed by (order id, reported kg) pairs on the first sheet; rows that
// do not parse are skipped with a warning so one typo cannot block the
// rest of the import.
func (s *Service) Run(ctx context.Context) error {
	const op = "sheetsync.Run"

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var applied, skipped int
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			skipped++
			continue
		}

		id := strings.TrimSpace(row[0])
		kg, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if id == "" || err != nil || kg <= 0 {
			s.log.Warn("unparseable production row skipped",
				slog.Int("row", i+1), slog.String("sheet", sheet))
			skipped++
			continue
		}

		if err := s.storage.UpdateOrderProduced(ctx, id, kg); err != nil {
			s.log.Warn("production row not applied",
				slog.Int("row", i+1), slog.String("order", id), slog.Any("err", err))
			skipped++
			continue
		}
		applied++
	}

	s.log.Info("sheet sync finished",
		slog.String("path", s.path),
		slog.Int("applied", applied),
		slog.Int("skipped", skipped))

	return nil
}
