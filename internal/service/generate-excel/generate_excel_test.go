package generate_excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cabuya-planner/internal/service/planner"
)

func TestGenerateExcel(t *testing.T) {
	res := &planner.Result{
		Days: []planner.DayEntry{
			{
				Date: "2026-03-02",
				Allocations: []planner.Allocation{
					{Ref: "CAB-12000", Description: "Cabuya 12000", Denier: "12000",
						Shift: "A", Posts: 8, Crew: 2, Kg: 1280, SupplyRatio: 1.1},
					{Ref: "CAB-6000", Description: "Cabuya 6000", Denier: "6000",
						Shift: "A", Posts: 7, Crew: 1, Kg: 560, SupplyRatio: 0.85, Degraded: true},
				},
			},
		},
		Finalization: []planner.Finalization{
			{Ref: "CAB-12000", Description: "Cabuya 12000", FinishedAt: "2026-03-04", AvgPosts: 8, TotalKg: 8000},
		},
	}

	data, err := NewGenerateService().GenerateExcel(res)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Cronograma", "C2")
	require.NoError(t, err)
	assert.Equal(t, "CAB-12000", got)

	degraded, err := f.GetCellValue("Cronograma", "J3")
	require.NoError(t, err)
	assert.Equal(t, "SI", degraded)

	finRef, err := f.GetCellValue("Finalización", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CAB-12000", finRef)

	finDate, err := f.GetCellValue("Finalización", "C2")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", finDate)
}
