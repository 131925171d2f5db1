// Package output dispatches results to the requested output format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Valid reports whether f is a supported output format.
func Valid(f Format) bool {
	switch f {
	case FormatText, FormatJSON, FormatPlain:
		return true
	}
	return false
}

// TableFormattable results know how to render themselves as an ASCII table.
type TableFormattable interface {
	WriteTable(w io.Writer) error
}

// TextFormattable results know how to render themselves as plain text (one
// record per line). Used for piping output to other tools.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// Write dispatches a result to the appropriate formatter. Text renders an
// ASCII table, JSON uses json.Encoder with indentation, plain emits one
// record per line.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TableFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support table output", result)
		}
		return tf.WriteTable(w)
	case FormatPlain:
		pf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support plain output", result)
		}
		return pf.WriteText(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
