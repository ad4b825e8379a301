package engine

import (
	"fmt"
	"io"
)

// FormatArea renders an area with one digit after the decimal point
func FormatArea(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// WriteArea writes one area line to w
func WriteArea(w io.Writer, v float64) error {
	_, err := fmt.Fprintln(w, FormatArea(v))
	return err
}

// WriteCount writes one vertex-count line to w
func WriteCount(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "%d\n", n)
	return err
}
