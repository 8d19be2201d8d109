package sheetsync

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockOrderUpdater struct {
	mock.Mock
}

func (m *MockOrderUpdater) UpdateOrderProduced(ctx context.Context, id string, kg float64) error {
	args := m.Called(ctx, id, kg)
	return args.Error(0)
}

func writeDropFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "producido.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRun_AppliesReportedProduction(t *testing.T) {
	path := writeDropFile(t, [][]interface{}{
		{"orden", "kg_reportados"},
		{"o1", 120.5},
		{"o2", 80},
		{"", 50},        // no order id
		{"o3", "texto"}, // unparseable kg
		{"o4", -10},     // negative, skipped
	})

	st := new(MockOrderUpdater)
	st.On("UpdateOrderProduced", mock.Anything, "o1", 120.5).Return(nil)
	st.On("UpdateOrderProduced", mock.Anything, "o2", 80.0).Return(nil)

	err := New(slog.Default(), st, path).Run(context.Background())
	require.NoError(t, err)
	st.AssertExpectations(t)
	st.AssertNumberOfCalls(t, "UpdateOrderProduced", 2)
}

func TestRun_RowFailureDoesNotStopImport(t *testing.T) {
	path := writeDropFile(t, [][]interface{}{
		{"orden", "kg_reportados"},
		{"missing", 40},
		{"o2", 60},
	})

	st := new(MockOrderUpdater)
	st.On("UpdateOrderProduced", mock.Anything, "missing", 40.0).Return(assert.AnError)
	st.On("UpdateOrderProduced", mock.Anything, "o2", 60.0).Return(nil)

	err := New(slog.Default(), st, path).Run(context.Background())
	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestRun_MissingFileIsAnError(t *testing.T) {
	err := New(slog.Default(), new(MockOrderUpdater), "/no/such/file.xlsx").Run(context.Background())
	assert.Error(t, err)
}
