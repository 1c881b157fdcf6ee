package obb

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how MinVolumeBox searches for the box
type Strategy int

const (
	// AABB returns the axis-aligned box
	AABB Strategy = iota
	// HullFaces tries a box flush with every hull face
	HullFaces
	// BruteDirection samples directions over a hemisphere
	BruteDirection
	// BruteRotation samples a grid of Euler angles
	BruteRotation
	// Optimized searches every face and edge configuration that can support
	// the minimal box, using antipodal and sidepodal graph searches
	Optimized
)

var strategyNames = [...]string{
	AABB:           "aabb",
	HullFaces:      "hull-faces",
	BruteDirection: "brute-direction",
	BruteRotation:  "brute-rotation",
	Optimized:      "optimized",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// Strategies lists every strategy in declaration order
func Strategies() []Strategy {
	return []Strategy{AABB, HullFaces, BruteDirection, BruteRotation, Optimized}
}

// ParseStrategy resolves a strategy from its name (case-insensitive)
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}
