package file

import (
	"path/filepath"
	"strings"
)

// Ext returns the lower-case extension of fpath without the leading dot.
// Files named ".env" or "*.env" report "env".
func Ext(fpath string) string {
	base := filepath.Base(fpath)
	if base == ".env" {
		return "env"
	}

	return strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
}
