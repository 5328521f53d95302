package game

const (
	Frames           = 10
	MaxBowls         = 2*Frames + 1 // two per frame plus the tenth-frame bonus ball
	MaxPins          = 10
	MaxLastFramePins = 3 * MaxPins

	lastFrame     = Frames - 1
	firstLastBowl = MaxBowls - 3
)

// Game records one game in progress. The zero value is not ready; use New.
type Game struct {
	pins [MaxBowls]int // pins per bowl
	bowl [MaxBowls]int // bowl index per roll

	nextBowl int
	nextRoll int
}

func New() *Game { return &Game{} }

// Roll records one throw. A rejected throw leaves the game unchanged.
func (g *Game) Roll(pins int) error {
	if pins < 0 {
		return g.reject(pins, -1, ErrInvalidPinCount)
	}
	if g.nextBowl >= MaxBowls {
		return g.reject(pins, lastFrame, ErrGameComplete)
	}

	b := g.nextBowl
	// The overflow checks read the pins array, so the throw is recorded first.
	g.pins[b] = pins

	if err := g.check(b); err != nil {
		g.pins[b] = 0
		return g.reject(pins, frameOf(b), err)
	}

	g.bowl[g.nextRoll] = b
	g.nextRoll++
	g.nextBowl++
	if g.isStrikeBeforeLastFrame(b) {
		// no second ball in this frame
		g.pins[g.nextBowl] = 0
		g.nextBowl++
	}
	return nil
}

func (g *Game) check(b int) error {
	if !inLastFrame(b) {
		if g.pinsInFrame(frameOf(b)) > MaxPins {
			return ErrFrameOverflow
		}
		return nil
	}
	if g.tooManyInLastFrame() {
		return ErrLastFrameOverflow
	}
	if b == MaxBowls-1 && !g.bonusBallEarned() {
		return ErrGameComplete
	}
	return nil
}

func (g *Game) reject(pins, frame int, err error) error {
	return &RollError{Roll: g.nextRoll, Frame: frame, Pins: pins, Err: err}
}

// Score returns the running score of the rolls made so far. Bonus balls that
// have not been thrown yet count as zero.
func (g *Game) Score() int {
	score := 0
	for r := 0; r < g.nextRoll; r++ {
		score += g.pins[g.bowl[r]] + g.bonus(r)
	}
	return score
}

// bonus counts the next two rolls for a strike and the next roll for a spare.
// Rolls, not bowls: the zero slot after a strike is never a bonus ball.
func (g *Game) bonus(r int) int {
	b := g.bowl[r]
	switch {
	case g.isStrikeBeforeLastFrame(b):
		return g.rollPins(r+1) + g.rollPins(r+2)
	case g.isSpareBeforeLastFrame(b):
		return g.rollPins(r + 1)
	}
	return 0
}

func (g *Game) rollPins(r int) int {
	if r >= g.nextRoll {
		return 0
	}
	return g.pins[g.bowl[r]]
}

// Rolls returns the pins knocked down by each throw, in order.
func (g *Game) Rolls() []int {
	out := make([]int, g.nextRoll)
	for r := range out {
		out[r] = g.pins[g.bowl[r]]
	}
	return out
}

// Done reports whether the game admits no further throws.
func (g *Game) Done() bool {
	switch g.nextBowl {
	case MaxBowls:
		return true
	case MaxBowls - 1:
		return !g.bonusBallEarned()
	}
	return false
}

func (g *Game) bonusBallEarned() bool {
	return g.pins[firstLastBowl]+g.pins[firstLastBowl+1] >= MaxPins
}

func (g *Game) pinsInFrame(frame int) int {
	if frame < lastFrame {
		return g.pins[2*frame] + g.pins[2*frame+1]
	}
	return g.pins[firstLastBowl] + g.pins[firstLastBowl+1] + g.pins[firstLastBowl+2]
}

// tooManyInLastFrame treats every cleared rack as zero: the running total
// resets whenever it reaches exactly ten. The bonus ball may only knock pins
// down after a strike or spare in the first two balls.
func (g *Game) tooManyInLastFrame() bool {
	total := 0
	for b := firstLastBowl; b < MaxBowls; b++ {
		total += g.pins[b]
		if total > MaxPins {
			return true
		}
		if total == MaxPins {
			total = 0
		}
	}
	return g.pins[MaxBowls-1] > 0 && !g.bonusBallEarned()
}

func (g *Game) isStrikeBeforeLastFrame(b int) bool {
	return g.pins[b] == MaxPins && b%2 == 0 && !inLastFrame(b)
}

func (g *Game) isSpareBeforeLastFrame(b int) bool {
	return b%2 == 1 && !inLastFrame(b) && g.pins[b]+g.pins[b-1] == MaxPins
}

func inLastFrame(b int) bool { return b >= firstLastBowl }

func frameOf(b int) int {
	if f := b / 2; f < lastFrame {
		return f
	}
	return lastFrame
}
