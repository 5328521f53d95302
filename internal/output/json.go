// internal/output/json.go
package output

import (
	"io"

	"bowling/core/game"
	"bowling/internal/jsonutil"
	"bowling/internal/scorecard"
	"bowling/pkg/api"
)

// Result is one game as reported to the user. Err is the roll that stopped
// the game early, if any.
type Result struct {
	Game   *game.Game
	Player string
	Err    error
}

// ToAPIGame converts a game to the stable wire schema (v1).
func ToAPIGame(r Result) api.GameV1 {
	frames := r.Game.Frames()
	v := api.GameV1{
		Rolls:    r.Game.Rolls(),
		Frames:   make([]api.FrameV1, 0, len(frames)),
		Score:    r.Game.Score(),
		Complete: r.Game.Done(),
		Player:   r.Player,
	}
	for _, f := range frames {
		v.Frames = append(v.Frames, toAPIFrame(f))
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func toAPIFrame(f game.Frame) api.FrameV1 {
	mark := ""
	switch {
	case f.Strike:
		mark = scorecard.DefaultOptions.StrikeGlyph
	case f.Spare:
		mark = scorecard.DefaultOptions.SpareGlyph
	}
	return api.FrameV1{
		Frame:  f.Number,
		Rolls:  append([]int(nil), f.Rolls...),
		Mark:   mark,
		Score:  f.Score,
		Total:  f.Total,
		Scored: f.Scored,
	}
}

// WriteJSON writes the game as a single indented JSON object.
func WriteJSON(w io.Writer, r Result) error {
	return jsonutil.EncodePretty(w, ToAPIGame(r))
}
