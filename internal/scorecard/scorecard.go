// Package scorecard renders a game as the classic three-row bowling sheet.
package scorecard

import (
	"fmt"
	"strconv"
	"strings"

	"bowling/core/game"
)

// Options control the ASCII rendering.
type Options struct {
	// Prefix is written at the start of every line.
	Prefix string

	// Glyphs
	StrikeGlyph string // default "X"
	SpareGlyph  string // default "/"
	GutterGlyph string // default "-"
}

var DefaultOptions = Options{
	Prefix:      "# ",
	StrikeGlyph: "X",
	SpareGlyph:  "/",
	GutterGlyph: "-",
}

const (
	cellWidth      = 5
	lastCellWidth  = 7
	ballsPerFrame  = 2
	ballsLastFrame = 3
)

// Marks returns one mark per ball in the frame.
func Marks(f game.Frame) []string { return marksWithOptions(f.Rolls, DefaultOptions) }

func marksWithOptions(rolls []int, opt Options) []string {
	out := make([]string, 0, len(rolls))
	fresh, standing := true, game.MaxPins
	for _, p := range rolls {
		switch {
		case fresh && p == game.MaxPins:
			out = append(out, opt.StrikeGlyph)
		case !fresh && p == standing:
			out = append(out, opt.SpareGlyph)
		case p == 0:
			out = append(out, opt.GutterGlyph)
		default:
			out = append(out, strconv.Itoa(p))
		}
		// the rack is reset after a strike or after the second ball
		if fresh && p < game.MaxPins {
			fresh, standing = false, game.MaxPins-p
		} else {
			fresh, standing = true, game.MaxPins
		}
	}
	return out
}

// Render draws all ten frames with DefaultOptions.
func Render(frames []game.Frame) string { return RenderWithOptions(frames, DefaultOptions) }

// RenderWithOptions draws all ten frames. Frames not yet started are blank;
// totals are shown only for frames whose bonus balls are all in.
func RenderWithOptions(frames []game.Frame, opt Options) string {
	var border, numbers, marks, totals strings.Builder
	for i := 0; i < game.Frames; i++ {
		w, balls := cellWidth, ballsPerFrame
		if i == game.Frames-1 {
			w, balls = lastCellWidth, ballsLastFrame
		}
		border.WriteString("+" + strings.Repeat("-", w))
		numbers.WriteString("|" + center(strconv.Itoa(i+1), w))

		cells := make([]string, balls)
		for j := range cells {
			cells[j] = " "
		}
		total := strings.Repeat(" ", w)
		if i < len(frames) {
			copy(cells, marksWithOptions(frames[i].Rolls, opt))
			if frames[i].Scored {
				total = fmt.Sprintf("%*d ", w-1, frames[i].Total)
			}
		}
		marks.WriteString("| " + strings.Join(cells, " ") + " ")
		totals.WriteString("|" + total)
	}
	border.WriteString("+")
	numbers.WriteString("|")
	marks.WriteString("|")
	totals.WriteString("|")

	var b strings.Builder
	for _, line := range []string{border.String(), numbers.String(), marks.String(), totals.String(), border.String()} {
		b.WriteString(opt.Prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func center(s string, w int) string {
	pad := w - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
