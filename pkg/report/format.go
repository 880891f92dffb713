package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	wgerrors "github.com/bastiangx/wordgram/pkg/errors"
)

// Format is an output encoding.
type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatMsgpack}

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if format == known {
			return format, nil
		}
	}
	return "", &wgerrors.ValidationError{
		Field:   "format",
		Value:   name,
		Message: fmt.Sprintf("unknown format %q, expected one of %v", name, Formats),
	}
}

// tabular values can render themselves as terminal tables
type tabular interface {
	tables() string
}

// Encode writes r to w.
func Encode(w io.Writer, r *Report, format Format) error {
	return encode(w, r, format)
}

// EncodeComparison writes c to w.
func EncodeComparison(w io.Writer, c *Comparison, format Format) error {
	return encode(w, c, format)
}

func encode(w io.Writer, v tabular, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	case FormatTable, "":
		_, err := io.WriteString(w, v.tables())
		return err
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

// Decode reads a Report written by Encode in JSON or msgpack.
func Decode(r io.Reader, format Format) (*Report, error) {
	var report Report
	if err := decode(r, &report, format); err != nil {
		return nil, err
	}
	return &report, nil
}

// DecodeComparison reads a Comparison written by EncodeComparison.
func DecodeComparison(r io.Reader, format Format) (*Comparison, error) {
	var comparison Comparison
	if err := decode(r, &comparison, format); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func decode(r io.Reader, v any, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(v)
	default:
		return wgerrors.Invalid("format", fmt.Sprintf("%q cannot be decoded", format))
	}
	if err != nil {
		return fmt.Errorf("decode %s report: %w", format, err)
	}
	return nil
}
