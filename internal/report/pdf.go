package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"dps.app/disease-prediction/internal/model"
)

// Builder renders the fixed-layout PDF report. Output is deterministic for
// identical inputs except for the freshly generated report id and the date.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the report and returns the document bytes together with the
// short report identifier used in file names and email subjects.
func (b *Builder) Build(patient Patient, diagnosis model.DiagnosisResult, disease model.Disease, params []Parameter) ([]byte, string, error) {
	reportID := uuid.NewString()[:8]

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, DiseaseTitle(disease)+" report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Patient Report - ID: "+reportID, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Patient info
	b.sectionHeader(pdf, "Patient Information")
	info := [][2]string{
		{"Name:", patient.Name},
		{"Email:", patient.Email},
		{"Report Date:", time.Now().Format("2006-01-02")},
		{"Report ID:", reportID},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range info {
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(40, 7, row[0], "1", 0, "R", true, 0, "")
		pdf.CellFormat(100, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Diagnosis, red for a positive outcome, green otherwise
	b.sectionHeader(pdf, "Diagnosis Result")
	pdf.SetFont("Helvetica", "B", 16)
	if diagnosis.Positive() {
		pdf.SetTextColor(200, 0, 0)
	} else {
		pdf.SetTextColor(0, 128, 0)
	}
	pdf.CellFormat(0, 9, fmt.Sprintf("%s (confidence %.0f%%)", diagnosis.Label, diagnosis.Confidence*100), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Parameter table
	b.sectionHeader(pdf, "Health Parameters")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(55, 7, "Parameter", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Normal Range", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, p := range params {
		pdf.CellFormat(55, 7, p.Name, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, p.Value, "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 7, p.NormalRange, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// Recommendations
	b.sectionHeader(pdf, "Recommendations")
	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range Recommendations(disease, diagnosis.Positive()) {
		pdf.CellFormat(0, 6, "- "+rec, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, 4, disclaimer, "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), reportID, nil
}

func (b *Builder) sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 139)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
