package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type ReceiptItem struct {
	ConceptName string
	Debit       bool
	Amount      decimal.Decimal
}

type ReceiptData struct {
	EmployeeName string
	NationalID   string
	Month        int
	Year         int
	Items        []ReceiptItem
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	NetPay       decimal.Decimal
}

// Receipt renders a salary receipt as a PDF document.
func Receipt(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Salary Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("National ID: %s", data.NationalID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %02d/%d", data.Month, data.Year))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 7, "Concept", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range data.Items {
		kind := "Credit"
		if item.Debit {
			kind = "Debit"
		}
		pdf.CellFormat(100, 6, item.ConceptName, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, kind, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, item.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(130, 6, "Total credits", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, data.TotalCredits.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.CellFormat(130, 6, "Total debits", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, data.TotalDebits.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 7, "NET PAY", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, data.NetPay.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
