package generate_excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cabuya-planner/internal/service/planner"
)

type GenerateExcelService struct{}

func NewGenerateService() *GenerateExcelService {
	return &GenerateExcelService{}
}

// GenerateExcel renders a planning result as a two-sheet workbook: the
// daily schedule and the per-reference finalization table.
func (g *GenerateExcelService) GenerateExcel(res *planner.Result) ([]byte, error) {
	const op = "generate-excel.GenerateExcel"

	f := excelize.NewFile()
	defer f.Close()

	scheduleSheet := "Cronograma"
	f.SetSheetName("Sheet1", scheduleSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	scheduleHeaders := []string{"Fecha", "Turno", "Referencia", "Descripción", "Denier",
		"Puestos", "Operarios", "Kg producidos", "Balance", "Degradado"}
	for i, name := range scheduleHeaders {
		f.SetCellValue(scheduleSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(scheduleSheet, "A1", cellName(len(scheduleHeaders), 1), headerStyle)

	rowNum := 2
	for _, day := range res.Days {
		for _, a := range day.Allocations {
			f.SetCellValue(scheduleSheet, cellName(1, rowNum), day.Date)
			f.SetCellValue(scheduleSheet, cellName(2, rowNum), a.Shift)
			f.SetCellValue(scheduleSheet, cellName(3, rowNum), a.Ref)
			f.SetCellValue(scheduleSheet, cellName(4, rowNum), a.Description)
			f.SetCellValue(scheduleSheet, cellName(5, rowNum), a.Denier)
			f.SetCellValue(scheduleSheet, cellName(6, rowNum), a.Posts)
			f.SetCellValue(scheduleSheet, cellName(7, rowNum), a.Crew)
			f.SetCellValue(scheduleSheet, cellName(8, rowNum), a.Kg)
			f.SetCellValue(scheduleSheet, cellName(9, rowNum), a.SupplyRatio)
			if a.Degraded {
				f.SetCellValue(scheduleSheet, cellName(10, rowNum), "SI")
			}
			rowNum++
		}
	}

	finalSheet := "Finalización"
	if _, err := f.NewSheet(finalSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	finalHeaders := []string{"Referencia", "Descripción", "Fecha finalización", "Puestos promedio", "Kg totales"}
	for i, name := range finalHeaders {
		f.SetCellValue(finalSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(finalSheet, "A1", cellName(len(finalHeaders), 1), headerStyle)

	for i, fin := range res.Finalization {
		row := i + 2
		f.SetCellValue(finalSheet, cellName(1, row), fin.Ref)
		f.SetCellValue(finalSheet, cellName(2, row), fin.Description)
		f.SetCellValue(finalSheet, cellName(3, row), fin.FinishedAt)
		f.SetCellValue(finalSheet, cellName(4, row), fin.AvgPosts)
		f.SetCellValue(finalSheet, cellName(5, row), fin.TotalKg)
	}

	f.SetPanes(scheduleSheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(scheduleSheet, "A", "J", 15)
	f.SetColWidth(finalSheet, "A", "E", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
