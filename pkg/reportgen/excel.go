package reportgen

import (
	"fmt"

	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/xuri/excelize/v2"
)

// ExcelGenerator renders order statistics into a two-sheet workbook.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

func (g *ExcelGenerator) Generate(stats *services.OrderStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	f.SetSheetName("Sheet1", sheet)
	f.SetCellValue(sheet, "A1", "Restaurant")
	f.SetCellValue(sheet, "B1", stats.RestaurantID)
	f.SetCellValue(sheet, "A2", "From")
	f.SetCellValue(sheet, "B2", stats.From.Format("2006-01-02"))
	f.SetCellValue(sheet, "A3", "To")
	f.SetCellValue(sheet, "B3", stats.To.Format("2006-01-02"))
	f.SetCellValue(sheet, "A4", "Orders")
	f.SetCellValue(sheet, "B4", stats.OrderCount)
	f.SetCellValue(sheet, "A5", "Revenue")
	f.SetCellValue(sheet, "B5", stats.Revenue)
	f.SetCellValue(sheet, "A6", "Paid")
	f.SetCellValue(sheet, "B6", stats.PaidCount)
	f.SetCellValue(sheet, "A7", "Served")
	f.SetCellValue(sheet, "B7", stats.ServedCount)

	daySheet := "Per day"
	if _, err := f.NewSheet(daySheet); err != nil {
		return nil, err
	}
	f.SetCellValue(daySheet, "A1", "Day")
	f.SetCellValue(daySheet, "B1", "Orders")
	f.SetCellValue(daySheet, "C1", "Revenue")
	for i, d := range stats.PerDay {
		row := i + 2
		f.SetCellValue(daySheet, fmt.Sprintf("A%d", row), d.Day)
		f.SetCellValue(daySheet, fmt.Sprintf("B%d", row), d.Orders)
		f.SetCellValue(daySheet, fmt.Sprintf("C%d", row), d.Revenue)
	}

	dishSheet := "Top dishes"
	if _, err := f.NewSheet(dishSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(dishSheet, "A1", "Dish")
	f.SetCellValue(dishSheet, "B1", "Quantity")
	for i, d := range stats.TopDishes {
		row := i + 2
		f.SetCellValue(dishSheet, fmt.Sprintf("A%d", row), d.Name)
		f.SetCellValue(dishSheet, fmt.Sprintf("B%d", row), d.Quantity)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
