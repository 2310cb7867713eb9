package transfer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a record file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name, case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be yaml, json or xlsx", s)
	}
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Readable reports whether records can be read back from f.
func (f Format) Readable() bool {
	return f == FormatYAML || f == FormatJSON
}
