// Package cube implements the compact cubie-level representation of a
// 3x3x3 Rubik's cube: corner/edge vectors, the 18 outer turns, the 9
// whole-cube reorientations, and move/algorithm notation.
package cube

// Face is one of the six faces of the cube.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

// AllFaces enumerates the six faces in notation order.
var AllFaces = [6]Face{Up, Down, Front, Back, Left, Right}

func (f Face) String() string {
	return [...]string{"U", "D", "F", "B", "L", "R"}[f]
}

// Opposite returns the face on the other end of the same axis.
func (f Face) Opposite() Face {
	return [...]Face{Down, Up, Back, Front, Right, Left}[f]
}

// Axis is one of the three whole-cube rotation axes.
type Axis int

const (
	AxisUD Axis = iota
	AxisFB
	AxisLR
)

func (a Axis) String() string {
	return [...]string{"ud", "fb", "lr"}[a]
}

// IsOnAxis reports whether the face lies on the given axis.
func (f Face) IsOnAxis(a Axis) bool {
	switch a {
	case AxisUD:
		return f == Up || f == Down
	case AxisFB:
		return f == Front || f == Back
	case AxisLR:
		return f == Left || f == Right
	}
	return false
}

// faceFromByte parses a WCA face letter.
func faceFromByte(b byte) (Face, bool) {
	switch b {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'F':
		return Front, true
	case 'B':
		return Back, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return 0, false
}
