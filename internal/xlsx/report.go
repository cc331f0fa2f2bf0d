// Package xlsx renders the analytics report as a spreadsheet.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"eventsphere/internal/analytics"
)

const sheet = "Analytics"

// BuildReport lays the organizer's rollup out on a single sheet: totals on
// top, then the two leaderboards and the revenue shares.
func BuildReport(organizer string, rep analytics.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Analytics for %s", organizer))
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}

	f.SetCellValue(sheet, "A3", "Total revenue")
	f.SetCellValue(sheet, "B3", rep.TotalRevenue)
	f.SetCellValue(sheet, "A4", "Total tickets sold")
	f.SetCellValue(sheet, "B4", rep.TotalTicketsSold)

	row := 6
	f.SetCellValue(sheet, cell(1, row), "Top events by tickets sold")
	f.SetCellStyle(sheet, cell(1, row), cell(3, row), headerStyle)
	row++
	f.SetCellValue(sheet, cell(1, row), "Event")
	f.SetCellValue(sheet, cell(2, row), "Tickets sold")
	f.SetCellValue(sheet, cell(3, row), "Revenue")
	for _, e := range rep.TopEvents {
		row++
		f.SetCellValue(sheet, cell(1, row), e.Title)
		f.SetCellValue(sheet, cell(2, row), e.TicketsSold)
		f.SetCellValue(sheet, cell(3, row), e.Revenue)
	}

	row += 2
	f.SetCellValue(sheet, cell(1, row), "Top categories by revenue")
	f.SetCellStyle(sheet, cell(1, row), cell(2, row), headerStyle)
	row++
	f.SetCellValue(sheet, cell(1, row), "Category")
	f.SetCellValue(sheet, cell(2, row), "Revenue")
	for _, c := range rep.TopCategories {
		row++
		f.SetCellValue(sheet, cell(1, row), c.Category)
		f.SetCellValue(sheet, cell(2, row), c.Revenue)
	}

	row += 2
	f.SetCellValue(sheet, cell(1, row), "Revenue share per event")
	f.SetCellStyle(sheet, cell(1, row), cell(3, row), headerStyle)
	row++
	f.SetCellValue(sheet, cell(1, row), "Event")
	f.SetCellValue(sheet, cell(2, row), "Revenue")
	f.SetCellValue(sheet, cell(3, row), "Share %")
	for _, s := range rep.RevenueShares {
		row++
		f.SetCellValue(sheet, cell(1, row), s.Title)
		f.SetCellValue(sheet, cell(2, row), s.Revenue)
		f.SetCellValue(sheet, cell(3, row), s.Percentage)
	}

	f.SetColWidth(sheet, "A", "A", 36)
	f.SetColWidth(sheet, "B", "C", 16)

	f.DeleteSheet("Sheet1")

	return f, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
