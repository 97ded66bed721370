package svganim

import (
	"math"
	"strconv"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// PathGeometry describes one subpath by its start point, end point and
// approximate traversed length. Curved commands contribute only the
// straight line distance between their endpoints, a chord length
// approximation.
type PathGeometry struct {
	Start  Tuple
	End    Tuple
	Length float64
}

// paramCounts is the parameter arity of each drawing command, keyed by
// the uppercase letter. Close-path is handled separately and takes no
// parameters.
var paramCounts = map[string]int{
	"M": 2,
	"L": 2,
	"H": 1,
	"V": 1,
	"C": 6,
	"S": 4,
	"Q": 4,
	"T": 2,
	"A": 7,
}

// EvaluateSubpath replays one subpath's commands against a virtual
// cursor and reports its start point, end point and accumulated
// length. Relative commands add to the cursor, move-to commands never
// contribute length, and coordinate pairs following a move-to's first
// pair continue as line-tos. Truncated or malformed parameter runs
// stop the replay early, keeping whatever geometry accumulated to that
// point. The second result is false when no move-to ever established a
// start point; such a subpath yields no geometry at all.
func EvaluateSubpath(sp Subpath) (PathGeometry, bool) {
	var (
		current  Tuple
		start    Tuple
		hasStart bool
		length   float64
		cmd      string
		pending  bool
	)

	i := 0
	for i < len(sp) {
		t := sp[i]
		if t.Kind == TokenLetter {
			cmd = t.Value
			i++
			if cmd == "Z" || cmd == "z" {
				if hasStart {
					length += distance(current, start)
					current = start
				}
				continue
			}
			if cmd == "M" || cmd == "m" {
				pending = true
			}
			continue
		}

		if cmd == "" {
			break
		}

		effective := cmd
		if cmd == "M" || cmd == "m" {
			if pending {
				pending = false
			} else if cmd == "M" {
				effective = "L"
			} else {
				effective = "l"
			}
		}

		arity, known := paramCounts[strings.ToUpper(effective)]
		if !known {
			break
		}
		params, ok := numberRun(sp, i, arity)
		if !ok {
			break
		}
		i += arity

		next := applyCommand(effective, params, current)
		if effective == "M" || effective == "m" {
			if !hasStart {
				start = next
				hasStart = true
			}
			current = next
			continue
		}
		length += distance(current, next)
		current = next
	}

	if !hasStart {
		return PathGeometry{}, false
	}
	return PathGeometry{Start: start, End: current, Length: length}, true
}

// numberRun converts the arity tokens at offset into floats. It fails
// on a truncated run or one interrupted by a non-numeric token.
func numberRun(sp Subpath, offset, arity int) ([]float64, bool) {
	if offset+arity > len(sp) {
		return nil, false
	}
	params := make([]float64, arity)
	for j := range params {
		t := sp[offset+j]
		if t.Kind != TokenNumber {
			return nil, false
		}
		v, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, false
		}
		params[j] = v
	}
	return params, true
}

// applyCommand resolves the cursor position after one command. Curve
// commands use only their final coordinate pair; intermediate control
// points are consumed but do not move the cursor.
func applyCommand(cmd string, params []float64, current Tuple) Tuple {
	x, y := current[0], current[1]
	rel := cmd[0] >= 'a' && cmd[0] <= 'z'

	var nx, ny float64
	switch strings.ToUpper(cmd) {
	case "M", "L", "T":
		nx, ny = params[0], params[1]
	case "H":
		if rel {
			return Tuple{x + params[0], y}
		}
		return Tuple{params[0], y}
	case "V":
		if rel {
			return Tuple{x, y + params[0]}
		}
		return Tuple{x, params[0]}
	case "C":
		nx, ny = params[4], params[5]
	case "S", "Q":
		nx, ny = params[2], params[3]
	case "A":
		nx, ny = params[5], params[6]
	default:
		return current
	}

	if rel {
		return Tuple{x + nx, y + ny}
	}
	return Tuple{nx, ny}
}

func distance(a, b Tuple) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}
