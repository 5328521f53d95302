package output

// Output formats accepted by --output.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// TSVHeader is the canonical header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "score\tcomplete\trolls"

// Valid reports whether format is a known output format.
func Valid(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatPretty:
		return true
	}
	return false
}
