package brackets

import (
	"fmt"
	"strconv"
	"strings"
)

// Seed assigns a tournament seed label to a team for one season.
// Labels are a region letter followed by a two-digit rank, with a
// trailing lowercase letter for play-in teams (e.g. "W01", "Y16b").
type Seed struct {
	Season int    `json:"season"`
	Label  string `json:"label"`
	TeamID int    `json:"teamId"`
}

// Region returns the bracket region letter of the seed label.
func (s Seed) Region() string {
	if s.Label == "" {
		return ""
	}
	return s.Label[:1]
}

// Number returns the numeric rank encoded in the seed label.
func (s Seed) Number() (int, error) {
	if len(s.Label) < 2 {
		return 0, fmt.Errorf("seed label %q: no numeric rank", s.Label)
	}
	digits := strings.TrimRight(s.Label[1:], "abcdefghijklmnopqrstuvwxyz")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("seed label %q: no numeric rank", s.Label)
	}
	return n, nil
}

// PlayIn reports whether the label carries a play-in suffix.
func (s Seed) PlayIn() bool {
	if s.Label == "" {
		return false
	}
	last := s.Label[len(s.Label)-1]
	return last >= 'a' && last <= 'z'
}

// Slot is one node of the tournament bracket: the named slot and the
// two seeds (or prior slot winners) that feed into it.
type Slot struct {
	Season     int    `json:"season"`
	Name       string `json:"name"`
	StrongSeed string `json:"strongSeed"`
	WeakSeed   string `json:"weakSeed"`
}

// Round returns the bracket round encoded in the slot name ("R1W1" is
// round 1). Play-in slots are named like a seed and report round 0.
func (s Slot) Round() int {
	if len(s.Name) < 2 || s.Name[0] != 'R' {
		return 0
	}
	n, err := strconv.Atoi(s.Name[1:2])
	if err != nil {
		return 0
	}
	return n
}
