package game

// Frame is a scorecard view of one frame, derived from the recorded rolls.
type Frame struct {
	Number int   // 1-based
	Rolls  []int // real throws only
	Strike bool
	Spare  bool
	Score  int  // frame points, including bonus balls thrown so far
	Total  int  // running total through this frame
	Scored bool // all bonus balls are in; Score is final
}

// Frames returns one Frame per frame started so far. The Score fields add up
// to Score().
func (g *Game) Frames() []Frame {
	var out []Frame
	total := 0
	for r := 0; r < g.nextRoll; {
		f := frameOf(g.bowl[r])
		first := g.bowl[r]
		fr := Frame{Number: f + 1}
		for r < g.nextRoll && frameOf(g.bowl[r]) == f {
			fr.Rolls = append(fr.Rolls, g.pins[g.bowl[r]])
			fr.Score += g.pins[g.bowl[r]] + g.bonus(r)
			r++
		}
		// r is now the first roll after this frame
		switch {
		case f == lastFrame:
			fr.Strike = g.pins[first] == MaxPins
			fr.Spare = !fr.Strike && len(fr.Rolls) > 1 && fr.Rolls[0]+fr.Rolls[1] == MaxPins
			fr.Scored = g.Done()
		case g.isStrikeBeforeLastFrame(first):
			fr.Strike = true
			fr.Scored = r+1 < g.nextRoll
		case len(fr.Rolls) == 2:
			fr.Spare = g.isSpareBeforeLastFrame(first + 1)
			fr.Scored = !fr.Spare || r < g.nextRoll
		}
		total += fr.Score
		fr.Total = total
		out = append(out, fr)
	}
	return out
}
