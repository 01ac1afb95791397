package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/validation"
	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	amortizationSvc *AmortizationService
	journalSvc      *JournalService
	settings        Settings
}

func NewExportService(amortizationSvc *AmortizationService, journalSvc *JournalService, settings Settings) *ExportService {
	return &ExportService{amortizationSvc: amortizationSvc, journalSvc: journalSvc, settings: settings}
}

// ScheduleXLSX renders the stored schedule of a contract as a spreadsheet
func (s *ExportService) ScheduleXLSX(ctx context.Context, contractID uint) ([]byte, string, error) {
	contract, schedule, entries, err := s.amortizationSvc.PersistedSchedule(ctx, contractID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Amortizacion"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Calendario de amortización - Contrato #%d", contract.ID))
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(sheet, "A2", "Proveedor")
	_ = f.SetCellValue(sheet, "B2", validation.EscapeFormula(contract.VendorName))
	_ = f.SetCellValue(sheet, "A3", "Monto total")
	_ = f.SetCellValue(sheet, "B3", moneyFloat(schedule.TotalAmount))
	_ = f.SetCellValue(sheet, "C3", schedule.Currency)
	_ = f.SetCellValue(sheet, "A4", "Escenario")
	_ = f.SetCellValue(sheet, "B4", string(schedule.Scenario))
	_ = f.SetCellValue(sheet, "A5", "En letras")
	_ = f.SetCellValue(sheet, "B5", AmountInWords(schedule.TotalAmount, schedule.Currency))

	header := []string{"Período amortización", "Período contable", "Monto", "Pagado", "Estado", "Fecha de pago"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, e := range entries {
		row := 7 + i
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.AmortizationPeriod)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.AccountingPeriod)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), moneyFloat(e.Amount))
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), moneyFloat(e.PaidAmount))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(e.PaymentStatus))
		if e.PaymentDate != nil {
			_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), models.FormatDate(*e.PaymentDate))
		}
	}
	if len(entries) > 0 {
		last := 6 + len(entries)
		_ = f.SetCellStyle(sheet, "C7", fmt.Sprintf("D%d", last), moneyStyle)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("amortizacion_contrato_%d_%s.xlsx", contract.ID, s.stamp())
	return buf.Bytes(), filename, nil
}

// JournalCSV renders every journal line of a contract
func (s *ExportService) JournalCSV(ctx context.Context, contractID uint) ([]byte, string, error) {
	entries, err := s.journalSvc.ListByContract(ctx, contractID)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Lote", "Tipo", "Orden", "Fecha", "Cuenta", "Nombre", "Debe", "Haber", "Concepto"})
	for _, e := range entries {
		_ = writer.Write([]string{
			e.BatchID.String(),
			string(e.EntryType),
			fmt.Sprintf("%d", e.EntryOrder),
			models.FormatDate(e.BookingDate),
			e.AccountCode,
			validation.EscapeFormula(e.AccountName),
			models.Money(e.DebitAmount),
			models.Money(e.CreditAmount),
			validation.EscapeFormula(e.Memo),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("diario_contrato_%d_%s.csv", contractID, s.stamp())
	return buf.Bytes(), filename, nil
}

// JournalPDF renders the journal of a contract with debit and credit totals
func (s *ExportService) JournalPDF(ctx context.Context, contractID uint) ([]byte, string, error) {
	entries, err := s.journalSvc.ListByContract(ctx, contractID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("Libro diario - Contrato #%d", contractID)))
	pdf.Ln(12)

	widths := []float64{25, 25, 18, 55, 30, 30, 90}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Fecha", "Tipo", "Cuenta", "Nombre", "Debe", "Haber", "Concepto"} {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range entries {
		pdf.CellFormat(widths[0], 6, models.FormatDate(e.BookingDate), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 6, string(e.EntryType), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 6, e.AccountCode, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(e.AccountName), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[4], 6, models.Money(e.DebitAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, models.Money(e.CreditAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, tr(e.Memo), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
		debit = debit.Add(e.DebitAmount)
		credit = credit.Add(e.CreditAmount)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 6, "Totales", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 6, models.Money(debit), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 6, models.Money(credit), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("diario_contrato_%d_%s.pdf", contractID, s.stamp())
	return buf.Bytes(), filename, nil
}

func (s *ExportService) stamp() string {
	return s.settings.now().Format("2006-01-02")
}

func moneyFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
