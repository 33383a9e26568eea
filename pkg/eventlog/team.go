package eventlog

import "fmt"

// TeamKind says whether a player or half-inning belongs to the visiting or
// the home team. Event files write it as 0 or 1.
type TeamKind uint8

const (
	Visitor TeamKind = 0
	Home    TeamKind = 1
)

// String returns "visitor" or "home".
func (t TeamKind) String() string {
	switch t {
	case Visitor:
		return "visitor"
	case Home:
		return "home"
	default:
		return fmt.Sprintf("TeamKind(%d)", uint8(t))
	}
}

func teamKindOf(value int) (TeamKind, error) {
	switch value {
	case 0:
		return Visitor, nil
	case 1:
		return Home, nil
	default:
		return 0, fmt.Errorf("team indicator %d is neither 0 nor 1", value)
	}
}

// FieldingPosition uses the standard scoring numbers, with 10 for the
// designated hitter. Substitution records also use 11 and 12 for pinch
// hitters and pinch runners.
type FieldingPosition uint8

const (
	Pitcher FieldingPosition = iota + 1
	Catcher
	FirstBase
	SecondBase
	ThirdBase
	ShortStop
	LeftField
	CenterField
	RightField
	DesignatedHitter
	PinchHitter
	PinchRunner
)

//nolint:gochecknoglobals // Read-only lookup table.
var fieldingPositionNames = [...]string{
	Pitcher:          "P",
	Catcher:          "C",
	FirstBase:        "1B",
	SecondBase:       "2B",
	ThirdBase:        "3B",
	ShortStop:        "SS",
	LeftField:        "LF",
	CenterField:      "CF",
	RightField:       "RF",
	DesignatedHitter: "DH",
	PinchHitter:      "PH",
	PinchRunner:      "PR",
}

// String returns the conventional abbreviation, e.g. "SS".
func (p FieldingPosition) String() string {
	if p >= Pitcher && p <= PinchRunner {
		return fieldingPositionNames[p]
	}
	return fmt.Sprintf("FieldingPosition(%d)", uint8(p))
}

func fieldingPositionOf(value int) (FieldingPosition, error) {
	if value < int(Pitcher) || value > int(PinchRunner) {
		return 0, fmt.Errorf("fielding position %d out of range", value)
	}
	return FieldingPosition(value), nil
}
