package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfText converts UTF-8 text to PDF-safe encoding.
// The £ sign in UTF-8 is 0xC2 0xA3, but PDF standard fonts expect Latin-1.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// FormatMoneyPDF formats money for PDF output (handles £ encoding).
func FormatMoneyPDF(amount float64) string {
	return pdfText(FormatMoney(amount))
}

// ComparisonPDFReport renders a ComparisonResult as a PDF document.
type ComparisonPDFReport struct {
	pdf    *fpdf.Fpdf
	result *ComparisonResult
}

// NewComparisonPDFReport creates a report for one comparison result.
func NewComparisonPDFReport(result *ComparisonResult) *ComparisonPDFReport {
	return &ComparisonPDFReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}
}

// Generate writes the PDF to the given path.
func (r *ComparisonPDFReport) Generate(path string) error {
	r.addTitlePage()
	r.addSummarySection()
	r.addYearTable()
	return r.pdf.OutputFileAndClose(path)
}

const pdfContentWidth = 190.0

func (r *ComparisonPDFReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.CellFormat(pdfContentWidth, 14, "Drawdown Strategy Comparison", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 13)
	title := fmt.Sprintf("%s  vs  %s",
		r.result.Strategy1.Definition.Name, r.result.Strategy2.Definition.Name)
	r.pdf.CellFormat(pdfContentWidth, 9, pdfText(title), "", 1, "C", false, 0, "")

	in := r.result.Inputs
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(pdfContentWidth, 7, pdfText(fmt.Sprintf(
		"Capital %s, %.1f%% withdrawal, %d-%d. Generated %s",
		FormatMoney(in.Capital), in.WithdrawalRatePercent,
		in.StartYear, in.EndYear(), time.Now().Format("2 January 2006"))),
		"", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *ComparisonPDFReport) addSummarySection() {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(pdfContentWidth, 8, "Summary", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	for _, out := range []*StrategyOutput{r.result.Strategy1, r.result.Strategy2} {
		line := fmt.Sprintf("%s: total realized %s (withdrawn %s, final %s after tax)",
			out.Definition.Name,
			FormatMoney(out.TotalValueRealized),
			FormatMoney(out.Summary.TotalNetWithdrawn),
			FormatMoney(out.AfterTaxFinalValue))
		r.pdf.CellFormat(pdfContentWidth, 7, pdfText(line), "LR", 1, "L", true, 0, "")
	}

	r.pdf.SetFont("Arial", "B", 10)
	var verdict string
	switch r.result.Summary.Winner {
	case WinnerTie:
		verdict = fmt.Sprintf("Verdict: tie (difference %s)", FormatMoneyFull(r.result.Summary.AbsoluteDifference))
	case WinnerStrategy1:
		verdict = fmt.Sprintf("Verdict: %s leads by %s (%.1f%%)",
			r.result.Strategy1.Definition.Name,
			FormatMoney(r.result.Summary.AbsoluteDifference), r.result.Summary.PercentDifference)
	case WinnerStrategy2:
		verdict = fmt.Sprintf("Verdict: %s leads by %s (%.1f%%)",
			r.result.Strategy2.Definition.Name,
			FormatMoney(r.result.Summary.AbsoluteDifference), r.result.Summary.PercentDifference)
	}
	r.pdf.CellFormat(pdfContentWidth, 8, pdfText(verdict), "LRB", 1, "L", true, 0, "")
	r.pdf.Ln(3)

	r.pdf.SetFont("Arial", "", 9)
	for _, insight := range KeyInsights(r.result) {
		r.pdf.CellFormat(pdfContentWidth, 6, pdfText("- "+insight), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)
}

func (r *ComparisonPDFReport) addYearTable() {
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.CellFormat(pdfContentWidth, 8, "Year by Year", "", 1, "L", false, 0, "")

	widths := []float64{16, 29, 29, 16, 29, 29, 16, 26}
	headers := []string{"Year", "Value 1", "Net W/D 1", "St 1", "Value 2", "Net W/D 2", "St 2", "Difference"}

	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(230, 234, 240)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	for i := range r.result.Strategy1.Years {
		a := r.result.Strategy1.Years[i]
		b := r.result.Strategy2.Years[i]
		diff := r.result.Differences[i]

		cells := []string{
			fmt.Sprintf("%d", a.Year),
			FormatMoneyPDF(a.AssetValue),
			FormatMoneyPDF(a.NetWithdrawal),
			shortStatus(a.Status),
			FormatMoneyPDF(b.AssetValue),
			FormatMoneyPDF(b.NetWithdrawal),
			shortStatus(b.Status),
			FormatMoneyPDF(diff.ValueDifference),
		}
		for j, c := range cells {
			r.pdf.CellFormat(widths[j], 6, c, "1", 0, "R", false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func shortStatus(s YearStatus) string {
	switch s {
	case StatusActive:
		return "act"
	case StatusDepleted:
		return "dep"
	case StatusExhausted:
		return "exh"
	case StatusPartial:
		return "par"
	default:
		return "?"
	}
}
