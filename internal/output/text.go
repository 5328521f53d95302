// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bowling/internal/scorecard"
)

// WriteText prints the score line, preceded by TSVHeader when header is set.
func WriteText(w io.Writer, r Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	rolls := r.Game.Rolls()
	parts := make([]string, len(rolls))
	for i, p := range rolls {
		parts[i] = strconv.Itoa(p)
	}
	_, err := fmt.Fprintf(w, "%d\t%t\t%s\n", r.Game.Score(), r.Game.Done(), strings.Join(parts, ","))
	return err
}

// WritePretty prints the text line followed by the scorecard block.
func WritePretty(w io.Writer, r Result, header bool) error {
	if err := WriteText(w, r, header); err != nil {
		return err
	}
	_, err := io.WriteString(w, scorecard.Render(r.Game.Frames()))
	return err
}

// Write dispatches on format.
func Write(w io.Writer, format string, r Result, header bool) error {
	switch format {
	case FormatText:
		return WriteText(w, r, header)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatPretty:
		return WritePretty(w, r, header)
	}
	return fmt.Errorf("unknown output format %q", format)
}
