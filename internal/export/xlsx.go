package export

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the table.
const SheetName = "Cronograma"

var xlsxWidths = []float64{9, 45, 28, 45, 40, 30}

// WriteXLSX writes a single-sheet workbook: title in row 1, headers in row 2,
// one week per row from row 3.
func WriteXLSX(out io.Writer, g models.Group, weeks []models.Week) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, w := range xlsxWidths {
		col := colName(i)
		f.SetColWidth(SheetName, col, col, w)
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#3B82F6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	title := Title
	if g.Name != "" {
		title = fmt.Sprintf("%s - %s", Title, g.Name)
	}
	last := colName(len(Columns) - 1)
	f.SetCellValue(SheetName, "A1", title)
	f.MergeCell(SheetName, "A1", cell(last, 1))
	f.SetCellStyle(SheetName, "A1", cell(last, 1), titleStyle)

	for i, h := range Columns {
		f.SetCellValue(SheetName, cell(colName(i), 2), h)
	}
	f.SetCellStyle(SheetName, "A2", cell(last, 2), headerStyle)

	for r, w := range weeks {
		rowNum := r + 3
		f.SetCellValue(SheetName, cell("A", rowNum), w.WeekNumber)
		for i, v := range row(w)[1:] {
			f.SetCellValue(SheetName, cell(colName(i+1), rowNum), v)
		}
		f.SetCellStyle(SheetName, cell("A", rowNum), cell(last, rowNum), bodyStyle)
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
