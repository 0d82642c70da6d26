package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode and Apply for an unrecognized filter.
var ErrUnknownMode = errors.New("unknown filter mode")

// Mode selects one of the transforms.
type Mode int

const (
	ModeGrayscale Mode = iota + 1
	ModeReflect
	ModeBlur
	ModeEdges
)

var modeNames = map[Mode]string{
	ModeGrayscale: "grayscale",
	ModeReflect:   "reflect",
	ModeBlur:      "blur",
	ModeEdges:     "edges",
}

// Modes returns every mode in flag order.
func Modes() []Mode {
	return []Mode{ModeGrayscale, ModeReflect, ModeBlur, ModeEdges}
}

// String returns the long name of the mode, e.g. "blur".
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Flag returns the single-letter command-line flag for the mode.
func (m Mode) Flag() string {
	if name, ok := modeNames[m]; ok {
		return name[:1]
	}
	return ""
}

// ParseMode accepts a long name ("grayscale", "reflect", "blur", "edges") or
// its first letter. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if s == m.String() || s == m.Flag() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Apply runs the transform selected by m on g.
func Apply(m Mode, g *Grid) error {
	switch m {
	case ModeGrayscale:
		Grayscale(g)
	case ModeReflect:
		Reflect(g)
	case ModeBlur:
		Blur(g)
	case ModeEdges:
		EdgeDetect(g)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMode, m)
	}
	return nil
}

// ApplyAll runs the modes in order on the same grid. Every mode is checked
// before the first transform runs, so an unknown mode leaves g untouched.
func ApplyAll(g *Grid, modes ...Mode) error {
	for _, m := range modes {
		if _, ok := modeNames[m]; !ok {
			return fmt.Errorf("%w: %v", ErrUnknownMode, m)
		}
	}
	for _, m := range modes {
		if err := Apply(m, g); err != nil {
			return err
		}
	}
	return nil
}
