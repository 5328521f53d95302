package game

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func rollMany(t *testing.T, g *Game, times, pins int) {
	t.Helper()
	for i := 0; i < times; i++ {
		if err := g.Roll(pins); err != nil {
			t.Fatalf("roll %d of %d pins: %v", i+1, pins, err)
		}
	}
}

func rollAll(t *testing.T, g *Game, pins ...int) {
	t.Helper()
	for i, p := range pins {
		if err := g.Roll(p); err != nil {
			t.Fatalf("roll %d of %d pins: %v", i+1, p, err)
		}
	}
}

func TestScoring(t *testing.T) {
	cases := []struct {
		name  string
		rolls []int
		want  int
	}{
		{"gutter game", repeat(20, 0), 0},
		{"single pin every ball", repeat(20, 1), 20},
		{"one spare", append([]int{5, 5, 3}, repeat(17, 0)...), 16},
		{"perfect game", repeat(12, 10), 300},
		{"gutter then turkey", append(repeat(18, 0), 10, 10, 10), 30},
		{"three strikes", append([]int{10, 10, 10}, repeat(14, 0)...), 30 + 20 + 10},
		{"strike in last frame with two bonus balls", append(repeat(18, 0), 10, 5, 5), 20},
		{"spare in last frame with bonus ball", append(repeat(18, 0), 4, 6, 5), 15},
		{"all spares", []int{1, 9, 3, 7, 8, 2, 7, 3, 6, 4, 2, 8, 0, 10, 5, 5, 9, 1, 4, 6, 2}, 146},
		{"strike then open frame", append([]int{10, 3, 4}, repeat(16, 0)...), 24},
		{"nine pin and miss", []int{9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0}, 90},
		{"all fives", repeat(21, 5), 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			rollAll(t, g, tc.rolls...)
			a := assertions.New(t)
			a.So(g.Score(), should.Equal, tc.want)
			a.So(g.Done(), should.BeTrue)
		})
	}
}

func TestRejectedRolls(t *testing.T) {
	cases := []struct {
		name   string
		before []int
		roll   int
		want   error
	}{
		{"negative pins", nil, -1, ErrInvalidPinCount},
		{"eleven pins in one ball", nil, 11, ErrFrameOverflow},
		{"two balls over ten", []int{6}, 5, ErrFrameOverflow},
		{"overflow in a later frame", []int{10, 3}, 8, ErrFrameOverflow},
		{"first two of last frame over ten", append(repeat(18, 0), 6), 5, ErrLastFrameOverflow},
		{"bonus ball after open last frame", append(repeat(18, 0), 1, 1), 1, ErrLastFrameOverflow},
		{"bonus balls after strike over ten", append(repeat(18, 0), 10, 6), 5, ErrLastFrameOverflow},
		{"eleven pins in last frame", repeat(18, 0), 11, ErrLastFrameOverflow},
		{"gutter ball after open last frame", repeat(20, 0), 0, ErrGameComplete},
		{"ball after perfect game", repeat(12, 10), 0, ErrGameComplete},
		{"negative after game complete", repeat(12, 10), -3, ErrInvalidPinCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			rollAll(t, g, tc.before...)
			score, rolls := g.Score(), g.Rolls()

			err := g.Roll(tc.roll)

			a := assertions.New(t)
			a.So(err, should.NotBeNil)
			a.So(errors.Is(err, tc.want), should.BeTrue)
			var re *RollError
			a.So(errors.As(err, &re), should.BeTrue)
			a.So(re.Roll, should.Equal, len(tc.before))
			a.So(re.Pins, should.Equal, tc.roll)
			a.So(g.Score(), should.Equal, score)
			a.So(g.Rolls(), should.Resemble, rolls)
		})
	}
}

func TestRejectedRollCanBeRetried(t *testing.T) {
	g := New()
	rollAll(t, g, 6)
	if err := g.Roll(5); !errors.Is(err, ErrFrameOverflow) {
		t.Fatalf("want frame overflow, got %v", err)
	}
	rollAll(t, g, 4, 3)
	rollMany(t, g, 17, 0)

	a := assertions.New(t)
	a.So(g.Score(), should.Equal, 16)
	a.So(g.Rolls()[:3], should.Resemble, []int{6, 4, 3})
	a.So(g.Done(), should.BeTrue)
}

func TestRollErrorMessage(t *testing.T) {
	g := New()
	rollAll(t, g, 10, 6)
	err := g.Roll(5)
	assertions.New(t).So(err.Error(), should.Equal,
		"roll 3 (frame 2, 5 pins): cannot knock down more than ten pins in a single frame")

	err = g.Roll(-2)
	assertions.New(t).So(err.Error(), should.Equal, "roll 3 (-2 pins): pin count must be non-negative")
}

func TestScoreIsRunningTotal(t *testing.T) {
	g := New()
	a := assertions.New(t)

	rollAll(t, g, 10)
	a.So(g.Score(), should.Equal, 10)
	a.So(g.Score(), should.Equal, 10)

	rollAll(t, g, 7)
	a.So(g.Score(), should.Equal, 24)

	rollAll(t, g, 3)
	a.So(g.Score(), should.Equal, 30)

	rollAll(t, g, 4)
	a.So(g.Score(), should.Equal, 38)
	a.So(g.Done(), should.BeFalse)
}

func TestScoreNeverDecreases(t *testing.T) {
	games := [][]int{
		repeat(12, 10),
		{1, 9, 3, 7, 8, 2, 7, 3, 6, 4, 2, 8, 0, 10, 5, 5, 9, 1, 4, 6, 2},
		{10, 9, 1, 0, 10, 10, 3, 4, 2, 2, 10, 0, 0, 8, 2, 10, 10, 10},
	}
	for _, rolls := range games {
		g := New()
		last := 0
		for i, p := range rolls {
			if err := g.Roll(p); err != nil {
				t.Fatalf("roll %d: %v", i+1, err)
			}
			if s := g.Score(); s < last {
				t.Fatalf("score dropped from %d to %d after roll %d", last, s, i+1)
			} else {
				last = s
			}
		}
	}
}

func TestDone(t *testing.T) {
	cases := []struct {
		name  string
		rolls []int
		want  bool
	}{
		{"new game", nil, false},
		{"nine frames", repeat(18, 0), false},
		{"open tenth", append(repeat(18, 0), 3, 4), true},
		{"spare in tenth", append(repeat(18, 0), 3, 7), false},
		{"strike in tenth", append(repeat(18, 0), 10), false},
		{"strike and one bonus ball", append(repeat(18, 0), 10, 2), false},
		{"strike and two bonus balls", append(repeat(18, 0), 10, 2, 3), true},
		{"eleven strikes", repeat(11, 10), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			rollAll(t, g, tc.rolls...)
			assertions.New(t).So(g.Done(), should.Equal, tc.want)
		})
	}
}

func TestBowlArithmetic(t *testing.T) {
	a := assertions.New(t)
	a.So(frameOf(0), should.Equal, 0)
	a.So(frameOf(17), should.Equal, 8)
	a.So(frameOf(18), should.Equal, 9)
	a.So(frameOf(20), should.Equal, 9)
	a.So(inLastFrame(17), should.BeFalse)
	a.So(inLastFrame(18), should.BeTrue)

	g := New()
	rollAll(t, g, 10, 4, 6)
	a.So(g.nextBowl, should.Equal, 4)
	a.So(g.nextRoll, should.Equal, 3)
	a.So(g.bowl[:3], should.Resemble, []int{0, 2, 3})
	a.So(g.isStrikeBeforeLastFrame(0), should.BeTrue)
	a.So(g.isSpareBeforeLastFrame(3), should.BeTrue)
	a.So(g.isStrikeBeforeLastFrame(2), should.BeFalse)
}

func repeat(times, pins int) []int {
	out := make([]int, times)
	for i := range out {
		out[i] = pins
	}
	return out
}
