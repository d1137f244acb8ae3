package viewport

import "strings"

// Region is a set of screen regions owing a repaint.
type Region uint8

const (
	RegionData Region = 1 << iota
	RegionStatus
	RegionPrompt

	RegionNone Region = 0
	RegionAll         = RegionData | RegionStatus | RegionPrompt
)

// Has reports whether every region in r2 is marked in r.
func (r Region) Has(r2 Region) bool {
	return r&r2 == r2
}

func (r Region) String() string {
	if r == RegionNone {
		return "none"
	}
	var parts []string
	if r.Has(RegionData) {
		parts = append(parts, "data")
	}
	if r.Has(RegionStatus) {
		parts = append(parts, "status")
	}
	if r.Has(RegionPrompt) {
		parts = append(parts, "prompt")
	}
	return strings.Join(parts, "|")
}
