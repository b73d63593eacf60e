// Package export writes a group's weeks to files: locally rendered PDF, XLSX
// and JSON, or the backend's own JSON/PDF exports downloaded as-is.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/akyairhashvil/aulaplan/internal/client"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"go.uber.org/zap"
)

// Title heads every rendered document.
const Title = "Aula Planner Pro - Cronograma Completo"

// Columns is the column order shared by the PDF and XLSX tables.
var Columns = []string{"Semana", "Atividades", "Unidade Curricular", "Capacidades", "Conhecimentos", "Recursos"}

type Format string

const (
	FormatPDF        Format = "pdf"
	FormatXLSX       Format = "xlsx"
	FormatJSON       Format = "json"
	FormatRemotePDF  Format = "remote-pdf"
	FormatRemoteJSON Format = "remote-json"
)

// Formats lists every supported format, local ones first.
var Formats = []Format{FormatPDF, FormatXLSX, FormatJSON, FormatRemotePDF, FormatRemoteJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Remote reports the backend export kind for remote formats.
func (f Format) Remote() (client.ExportKind, bool) {
	switch f {
	case FormatRemotePDF:
		return client.ExportPDF, true
	case FormatRemoteJSON:
		return client.ExportJSON, true
	}
	return "", false
}

func (f Format) Ext() string {
	if kind, ok := f.Remote(); ok {
		return kind.Ext()
	}
	return "." + string(f)
}

// row is one table line in column order.
func row(w models.Week) []string {
	return []string{
		fmt.Sprintf("%d", w.WeekNumber),
		w.Activities,
		w.CurricularUnit,
		w.Capabilities,
		w.Knowledge,
		w.Resources,
	}
}

// Write renders weeks of g into out using a local format.
func Write(out io.Writer, f Format, g models.Group, weeks []models.Week) error {
	switch f {
	case FormatPDF:
		return WritePDF(out, g, weeks)
	case FormatXLSX:
		return WriteXLSX(out, g, weeks)
	case FormatJSON:
		return WriteJSON(out, weeks)
	}
	return fmt.Errorf("format %q is not rendered locally", f)
}

// Downloader fetches backend-rendered exports. client.Client implements it.
type Downloader interface {
	DownloadExport(ctx context.Context, kind client.ExportKind, groupID models.ID, w io.Writer) (int64, error)
}

// Exporter writes export files into a directory.
type Exporter struct {
	dl  Downloader
	dir string
	log *zap.Logger
	now func() time.Time
}

func NewExporter(dl Downloader, dir string, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{dl: dl, dir: dir, log: log, now: time.Now}
}

// FileName is the default name for an export of g taken at t.
func FileName(g models.Group, f Format, t time.Time) string {
	return fmt.Sprintf("cronograma_%s_%s%s", slug(g.Name), t.Format("20060102_150405"), f.Ext())
}

func slug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.TrimSuffix(b.String(), "_")
	if s == "" {
		return "turma"
	}
	return s
}

// WriteFile exports g's weeks and returns the written path. An empty path
// means a generated name inside the exporter's directory. Remote formats
// ignore weeks and download the backend's rendition instead.
func (e *Exporter) WriteFile(ctx context.Context, f Format, g models.Group, weeks []models.Week, path string) (string, error) {
	if path == "" {
		path = filepath.Join(e.dir, FileName(g, f, e.now()))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if kind, ok := f.Remote(); ok {
		if e.dl == nil {
			err = fmt.Errorf("format %q needs a backend connection", f)
		} else {
			_, err = e.dl.DownloadExport(ctx, kind, g.ID, file)
		}
	} else {
		err = Write(file, f, g, weeks)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		e.log.Warn("export failed", zap.String("format", string(f)), zap.String("group", g.ID.String()), zap.Error(err))
		return "", err
	}

	e.log.Info("export written", zap.String("format", string(f)), zap.String("path", path), zap.Int("weeks", len(weeks)))
	return path, nil
}
