package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/shopspring/decimal"
)

// Render produces the printable pay slip (desprendible de nómina) for
// one saved period summary.
func Render(s summary.PeriodSummary, emp employee.Employee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Desprendible de Nómina"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Período: %s al %s",
		s.PeriodStart.Format("2006-01-02"), s.PeriodEnd.Format("2006-01-02"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Employee block
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr("Empleado: "+s.EmployeeName))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Cargo: "+s.JobTitle))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Cédula: "+emp.NationalID))
	pdf.Ln(10)

	// Hours table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Horas del período"))
	pdf.Ln(9)

	hourRows := []struct {
		label string
		value float64
	}{
		{"Horas Normales", s.Hours.Normal},
		{"Horas Extra Diurnas", s.Hours.OvertimeDay},
		{"Horas Normales Nocturnas", s.Hours.NightSurcharge},
		{"Horas Extra Nocturnas", s.Hours.OvertimeNight},
		{"Horas Feriadas Diurnas", s.Hours.HolidayDay},
		{"Horas Extra Feriadas Diurnas", s.Hours.HolidayOvertimeDay},
		{"Horas Feriadas Nocturnas", s.Hours.HolidayNight},
		{"Horas Extra Feriadas Nocturnas", s.Hours.HolidayOvertimeNight},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range hourRows {
		pdf.CellFormat(120, 6, tr(row.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Earnings and deductions
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Conceptos"))
	pdf.Ln(9)

	moneyRows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Auxilio de Transporte", s.TransportAllowance},
		{fmt.Sprintf("Incapacidad (%d días)", s.IncapacityDays), decimal.NewFromInt(int64(s.IncapacityDays)).Mul(s.DailyRate)},
		{"Beneficio de Productividad", s.ProductivityBonus},
		{"Seguridad Social", s.Deductions.SocialSecurity.Neg()},
		{"Póliza Sura", s.Deductions.Insurance.Neg()},
		{"Adelanto de Nómina", s.Deductions.PayrollAdvance.Neg()},
		{"Otros Descuentos", s.Deductions.Other.Neg()},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range moneyRows {
		pdf.CellFormat(120, 6, tr(row.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, formatMoney(row.value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 7, tr("Total Devengado"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatMoney(s.TotalEarned), "1", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, tr("Total Deducciones"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatMoney(s.TotalDeductions), "1", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, tr("Neto a Pagar"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatMoney(s.TotalPayable), "1", 1, "R", false, 0, "")
	pdf.Ln(20)

	// Signature lines
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(80, 6, "_________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "_________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(80, 6, tr("Firma del Empleador"), "", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, tr("Firma del Empleado"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(d decimal.Decimal) string {
	return "$ " + d.StringFixed(0)
}
