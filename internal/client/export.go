package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// ExportKind names a backend export endpoint.
type ExportKind string

const (
	ExportJSON ExportKind = "json"
	ExportPDF  ExportKind = "pdf"
)

// Ext is the file extension for downloads of this kind.
func (k ExportKind) Ext() string { return "." + string(k) }

// ExportURL is the download link for a group's export. The backend treats it
// as an opaque resource.
func (c *Client) ExportURL(kind ExportKind, groupID models.ID) string {
	return c.endpoint(url.Values{"group_id": {groupID.String()}}, "export", string(kind))
}

// DownloadExport streams the export into w and returns the bytes written.
func (c *Client) DownloadExport(ctx context.Context, kind ExportKind, groupID models.ID, w io.Writer) (int64, error) {
	switch kind {
	case ExportJSON, ExportPDF:
	default:
		return 0, wrapExportErr("download", groupID, fmt.Errorf("unknown export kind %q", kind))
	}

	resp, err := c.send(ctx, http.MethodGet, c.ExportURL(kind, groupID), nil)
	if err != nil {
		return 0, wrapExportErr("download", groupID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, wrapExportErr("download", groupID, decodeFailure(resp))
	}
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, wrapExportErr("download", groupID, &NetworkError{Err: err})
	}
	return n, nil
}
