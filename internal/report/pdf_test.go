package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/pdash/internal/model"
)

func mustView(t *testing.T, in model.ProjectInputs) View {
	t.Helper()
	v, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return v
}

func TestWritePDF_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, mustView(t, model.DefaultInputs())); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with %%PDF-: %q", buf.Bytes()[:8])
	}
	if !bytes.Contains(buf.Bytes(), []byte("%EOF")) {
		t.Fatal("output has no EOF trailer")
	}
}

func TestWritePDF_NoRisksAndNonLatinName(t *testing.T) {
	in := model.DefaultInputs()
	in.Name = "Überlandleitung – Phase 2"
	in.RisksRaw = ""

	var buf bytes.Buffer
	if err := WritePDF(&buf, mustView(t, in)); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf")
	}
}

func TestExportPDF_IntoDirectory(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportPDF(dir, mustView(t, model.DefaultInputs()))
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, FileName))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("exported file is not a pdf")
	}
}

func TestExportPDF_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report.pdf")
	got, err := ExportPDF(path, mustView(t, model.DefaultInputs()))
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
