// pkg/api/game_v1.go
package api

// GameV1 is the stable JSON schema for one scored game.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GameV1 struct {
	Rolls    []int     `json:"rolls"`
	Frames   []FrameV1 `json:"frames"`
	Score    int       `json:"score"`
	Complete bool      `json:"complete"`
	Player   string    `json:"player,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// FrameV1 is one scorecard frame. Total is only final when Scored is true.
type FrameV1 struct {
	Frame  int    `json:"frame"` // 1-based
	Rolls  []int  `json:"rolls"`
	Mark   string `json:"mark"` // "X" | "/" | "" (open or unfinished)
	Score  int    `json:"score"`
	Total  int    `json:"total"`
	Scored bool   `json:"scored"`
}
