package util

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

func DataDir(app string) string {
	return filepath.Join(xdg.DataHome, app)
}

func StateDir(app string) string {
	return filepath.Join(xdg.StateHome, app)
}

func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

func DocumentsDir() string {
	if dir := strings.TrimSpace(xdg.UserDirs.Documents); dir != "" {
		return dir
	}
	return filepath.Join(xdg.Home, "Documents")
}
