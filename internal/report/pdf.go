package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	// FileName is the name offered for the exported document.
	FileName = "project_report.pdf"
	// MIMEType is the content type of the exported document.
	MIMEType = "application/pdf"
)

// Page layout in millimetres.
const (
	pageMargin  = 20.0
	titleHeight = 12.0
	lineHeight  = 6.5
	spacer      = 4.2 // 12pt
)

// WritePDF renders v as a one-column document: title, the three summary
// lines, and a bulleted risk list.
func WritePDF(w io.Writer, v View) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(v.Title, true)
	pdf.SetCreator("pdash", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, titleHeight, tr(v.Title), "", "C", false)
	pdf.Ln(spacer)

	pdf.SetFont("Helvetica", "", 11)
	for _, s := range v.Summary {
		pdf.MultiCell(0, lineHeight, tr(s.String()), "", "L", false)
	}
	pdf.Ln(spacer)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, lineHeight+1.5, tr("Risks:"), "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	for _, e := range v.Risks {
		pdf.MultiCell(0, lineHeight, tr(RiskLine(e)), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

// ExportPDF writes v to path, creating parent directories. If path is a
// directory the document is written there as FileName. It returns the path
// actually written.
func ExportPDF(path string, v View) (string, error) {
	if path == "" {
		path = FileName
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, FileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // path is chosen by the local user
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WritePDF(f, v); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
