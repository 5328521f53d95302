// Package game contains the bowling scoring core. It never imports app, output,
// cli, or rollfile; keep it domain-only.
//
// A game is recorded as bowls (throw slots, including the zero slot written
// after a strike in frames 1-9) and rolls (real throws, each mapped to a bowl).
// Frames are never stored; they are derived from bowl indices.
//
// External outputs must not depend on the internal shape here. Use pkg/api
// for stable wire types.
package game
