// Package rollfile loads a recorded game from a YAML file:
//
//	player: lane 4
//	rolls: [10, 7, 3, 9, 0]
package rollfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is one recorded game.
type File struct {
	Player string `yaml:"player"`
	Rolls  []int  `yaml:"rolls"`
}

var ErrNoRolls = errors.New("no rolls")

// Parse decodes a game file. Unknown keys are rejected.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, ErrNoRolls
		}
		return f, err
	}
	if len(f.Rolls) == 0 {
		return f, ErrNoRolls
	}
	return f, nil
}

// Load reads path, or stdin when path is "-". Errors name the file.
func Load(path string) (File, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return File{}, err
		}
		defer func() { _ = fh.Close() }()
		r = fh
	}
	f, err := Parse(r)
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
