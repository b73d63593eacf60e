package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/aulaplan/internal/client"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/testutil"
	"github.com/xuri/excelize/v2"
)

func sampleWeeks() []models.Week {
	return []models.Week{
		testutil.NewWeek().WithNumber(1).WithUnit("Redes").WithActivities("Introdução às redes").WithResources("lab, projetor").Build(),
		testutil.NewWeek().WithNumber(2).WithUnit("Lógica").WithActivities(strings.Repeat("Exercícios de fixação ", 40)).Build(),
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(" " + strings.ToUpper(string(f)) + " ")
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Errorf("expected error for unknown format")
	}
	if FormatRemotePDF.Ext() != ".pdf" || FormatXLSX.Ext() != ".xlsx" {
		t.Errorf("unexpected extensions")
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)
	g := testutil.NewGroup().WithName("Turma A - Técnico em TI").Build()
	got := FileName(g, FormatPDF, at)
	if got != "cronograma_turma_a_técnico_em_ti_20260309_140500.pdf" {
		t.Errorf("FileName = %q", got)
	}
	if got := FileName(models.Group{Name: "  --  "}, FormatJSON, at); !strings.HasPrefix(got, "cronograma_turma_") {
		t.Errorf("FileName for blank name = %q", got)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	g := testutil.NewGroup().Build()
	if err := WritePDF(&buf, g, sampleWeeks()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:8])
	}

	buf.Reset()
	if err := WritePDF(&buf, g, nil); err != nil {
		t.Fatalf("WritePDF with no weeks failed: %v", err)
	}
}

func TestWritePDFPaginates(t *testing.T) {
	var weeks []models.Week
	for i := 1; i <= 60; i++ {
		weeks = append(weeks, testutil.NewWeek().WithNumber(i).WithActivities(strings.Repeat("conteúdo ", 30)).Build())
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, testutil.NewGroup().Build(), weeks); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("/Type /Page\n")); n < 2 {
		t.Errorf("expected several pages, got %d", n)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	g := testutil.NewGroup().WithName("Turma B").Build()
	if err := WriteXLSX(&buf, g, sampleWeeks()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v", sheets)
	}
	title, _ := f.GetCellValue(SheetName, "A1")
	if title != Title+" - Turma B" {
		t.Errorf("title = %q", title)
	}
	header, _ := f.GetCellValue(SheetName, "C2")
	if header != "Unidade Curricular" {
		t.Errorf("header C2 = %q", header)
	}
	unit, _ := f.GetCellValue(SheetName, "C3")
	resources, _ := f.GetCellValue(SheetName, "F3")
	number, _ := f.GetCellValue(SheetName, "A4")
	if unit != "Redes" || resources != "lab, projetor" || number != "2" {
		t.Errorf("row values = %q, %q, %q", unit, resources, number)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleWeeks()[:1]); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"unidadeCurricular": "Redes"`) || !strings.Contains(out, "Introdução") {
		t.Errorf("unexpected JSON: %s", out)
	}

	buf.Reset()
	_ = WriteJSON(&buf, nil)
	var decoded []models.Week
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil || decoded == nil || len(decoded) != 0 {
		t.Errorf("empty export = %q, %v", buf.String(), err)
	}
}

func TestWriteRejectsRemoteFormat(t *testing.T) {
	if err := Write(io.Discard, FormatRemotePDF, models.Group{}, nil); err == nil {
		t.Fatalf("expected error for remote format")
	}
}

func TestExporterWriteFileLocal(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(nil, dir, nil)
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	path, err := e.WriteFile(context.Background(), FormatJSON, testutil.NewGroup().Build(), sampleWeeks(), "")
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != "cronograma_turma_a_20260102_030405.json" {
		t.Errorf("path = %q", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("export file missing or empty: %v", err)
	}
}

func TestExporterWriteFileRemote(t *testing.T) {
	backend := testutil.NewBackend(testutil.NewGroup().Build())
	defer backend.Close()
	api, err := client.New(backend.BaseURL(), 2*time.Second)
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "nested", "cronograma.pdf")
	e := NewExporter(api, t.TempDir(), nil)
	path, err := e.WriteFile(context.Background(), FormatRemotePDF, testutil.NewGroup().Build(), nil, out)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("downloaded = %q", data)
	}
}

func TestExporterRemovesFileOnFailure(t *testing.T) {
	backend := testutil.NewBackend(testutil.NewGroup().Build())
	defer backend.Close()
	backend.FailNext = 500
	api, _ := client.New(backend.BaseURL(), 2*time.Second)

	out := filepath.Join(t.TempDir(), "cronograma.json")
	_, err := NewExporter(api, "", nil).WriteFile(context.Background(), FormatRemoteJSON, testutil.NewGroup().Build(), nil, out)
	if !client.IsServer(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("partial file left behind: %v", statErr)
	}

	_, err = NewExporter(nil, "", nil).WriteFile(context.Background(), FormatRemotePDF, models.Group{ID: "1"}, nil, out)
	if err == nil {
		t.Errorf("expected error without a downloader")
	}
}
