package transfer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/schema"
)

// Document is the top-level shape of a record file.
type Document struct {
	Employees []roster.Employee `json:"employees" yaml:"employees"`
}

// Reader decodes record files.
type Reader struct {
	validator *schema.Validator
}

// NewReader compiles the record schema.
func NewReader() (*Reader, error) {
	v, err := schema.New()
	if err != nil {
		return nil, err
	}
	return &Reader{validator: v}, nil
}

// Read decodes, validates and normalizes every record in r.
//
// Schema violations match roster.ErrInvalidInput; an id that appears twice in
// the file matches roster.ErrDuplicateKey. Nothing is returned unless the
// whole file is acceptable.
func (rd *Reader) Read(r io.Reader, f Format) ([]roster.Employee, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var generic any
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if err := rd.validator.ValidateDocument(generic); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := rd.validator.ValidateDocument(generic); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot read %s records", f)
	}

	seen := make(map[string]int, len(doc.Employees))
	out := make([]roster.Employee, 0, len(doc.Employees))
	for i, e := range doc.Employees {
		e = roster.Normalize(e)
		if first, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("%w: %q at records %d and %d", roster.ErrDuplicateKey, e.ID, first, i)
		}
		seen[e.ID] = i
		out = append(out, e)
	}
	return out, nil
}
