// pkg/shape/validation.go
package shape

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Shape content limits for library files
const (
	MaxShapeNameLen = 32
	MaxShapePoints  = 256
)

// Shape names may use alphanumerics, hyphens, and underscores so they stay
// usable as body ids and log fields.
var validShapeNameChars = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// ValidateShapeName checks that a shape name is usable as a body id.
func ValidateShapeName(name string) error {
	if name == "" {
		return fmt.Errorf("shape name cannot be empty")
	}
	if len(name) > MaxShapeNameLen {
		return fmt.Errorf("shape name too long: %d characters (max %d)", len(name), MaxShapeNameLen)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("shape name contains invalid UTF-8 characters")
	}
	if !validShapeNameChars.MatchString(name) {
		return fmt.Errorf("shape name contains invalid characters (only alphanumeric, hyphens, and underscores allowed)")
	}
	return nil
}

// ValidateShape checks a shape definition against the engine's assembly
// preconditions: non-empty points and pin indices that address them.
func ValidateShape(s Shape) error {
	if err := ValidateShapeName(s.Name); err != nil {
		return err
	}
	if len(s.Points) == 0 {
		return fmt.Errorf("shape must have at least one point")
	}
	if len(s.Points) > MaxShapePoints {
		return fmt.Errorf("shape has too many points: %d (max %d)", len(s.Points), MaxShapePoints)
	}
	for _, idx := range s.Pinned {
		if idx < 0 || idx >= len(s.Points) {
			return fmt.Errorf("pin index %d out of range [0, %d)", idx, len(s.Points))
		}
	}
	return nil
}

// ValidateStiffness checks a stiffness value for library files. The engine
// itself does not enforce this range; out-of-range values produce unstable
// behavior rather than an error.
func ValidateStiffness(value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("stiffness must be in [0, 1], got %g", value)
	}
	return nil
}
