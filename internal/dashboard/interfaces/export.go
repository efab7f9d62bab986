package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	dashboard "rental-billing/internal/dashboard/domain"
)

// BuildFinancialReportPDF renders a minimal PDF for a financial summary.
func BuildFinancialReportPDF(summary dashboard.FinancialSummary, today time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Financial Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", today.Format("2006-01-02")))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Total Revenue: %.2f", summary.TotalRevenue))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Monthly Revenue: %.2f", summary.MonthlyRevenue))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Weekly Revenue: %.2f", summary.WeeklyRevenue))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Revenue Growth: %.2f%%", summary.RevenueGrowthPct))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Costs: %.2f", summary.TotalCosts))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Net Profit: %.2f", summary.NetProfit.Total))
	pdf.Ln(8)

	// Trailing month table, oldest month first.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Month", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Revenue", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Costs", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for offset := dashboard.TrailingMonths - 1; offset >= 0; offset-- {
		month := monthAtOffset(today, offset)
		pdf.CellFormat(40, 6, month.Format("2006-01"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", summary.RevenueByMonth[offset]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", summary.CostsByMonth[offset]), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildFinancialReportXLSX renders a minimal XLSX for a financial summary.
func BuildFinancialReportXLSX(summary dashboard.FinancialSummary, today time.Time) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	monthsSheet := "months"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(monthsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Financial Report")
	_ = f.SetCellValue(summarySheet, "A2", "Generated")
	_ = f.SetCellValue(summarySheet, "B2", today.Format("2006-01-02"))
	_ = f.SetCellValue(summarySheet, "A4", "Total Revenue")
	_ = f.SetCellValue(summarySheet, "B4", summary.TotalRevenue)
	_ = f.SetCellValue(summarySheet, "A5", "Monthly Revenue")
	_ = f.SetCellValue(summarySheet, "B5", summary.MonthlyRevenue)
	_ = f.SetCellValue(summarySheet, "A6", "Weekly Revenue")
	_ = f.SetCellValue(summarySheet, "B6", summary.WeeklyRevenue)
	_ = f.SetCellValue(summarySheet, "A7", "Revenue Growth %")
	_ = f.SetCellValue(summarySheet, "B7", summary.RevenueGrowthPct)
	_ = f.SetCellValue(summarySheet, "A8", "Total Costs")
	_ = f.SetCellValue(summarySheet, "B8", summary.TotalCosts)
	_ = f.SetCellValue(summarySheet, "A9", "Monthly Costs")
	_ = f.SetCellValue(summarySheet, "B9", summary.MonthlyCosts)
	_ = f.SetCellValue(summarySheet, "A10", "Weekly Costs")
	_ = f.SetCellValue(summarySheet, "B10", summary.WeeklyCosts)
	_ = f.SetCellValue(summarySheet, "A11", "Net Profit")
	_ = f.SetCellValue(summarySheet, "B11", summary.NetProfit.Total)
	_ = f.SetCellValue(summarySheet, "A12", "Net Profit (Month)")
	_ = f.SetCellValue(summarySheet, "B12", summary.NetProfit.Monthly)
	_ = f.SetCellValue(summarySheet, "A13", "Net Profit (Week)")
	_ = f.SetCellValue(summarySheet, "B13", summary.NetProfit.Weekly)

	_ = f.SetCellValue(monthsSheet, "A1", "Month")
	_ = f.SetCellValue(monthsSheet, "B1", "Revenue")
	_ = f.SetCellValue(monthsSheet, "C1", "Costs")
	row := 2
	for offset := dashboard.TrailingMonths - 1; offset >= 0; offset-- {
		month := monthAtOffset(today, offset)
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("A%d", row), month.Format("2006-01"))
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("B%d", row), summary.RevenueByMonth[offset])
		_ = f.SetCellValue(monthsSheet, fmt.Sprintf("C%d", row), summary.CostsByMonth[offset])
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// monthAtOffset returns the first day of the month offset months back,
// immune to end-of-month normalization.
func monthAtOffset(today time.Time, offset int) time.Time {
	return time.Date(today.Year(), today.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}
