// Package dice parses dice notation and draws dice
package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// Presets are the quick picks offered by the custom dice picker
var Presets = []string{
	"d4", "d6", "d8", "d10", "d12", "d20", "d100",
	"2d4", "2d6", "2d8", "2d10",
	"3d4", "3d6", "3d8",
	"4d4", "4d6", "4d8",
}

// ParseNotation parses "<count>d<sides>" such as "2d6" or "d20".
// A missing count means 1. Modifiers and keep/drop are not supported.
func ParseNotation(notation string) (count, sides int, err error) {
	normalized := strings.ToLower(strings.TrimSpace(notation))

	parts := strings.Split(normalized, "d")
	if len(parts) != 2 {
		return 0, 0, errors.InvalidDiceNotationf("invalid dice notation: %q (expected format: XdY)", notation)
	}

	count = 1
	if parts[0] != "" {
		count, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, errors.InvalidDiceNotationf("invalid dice count in notation: %q", notation)
		}
	}

	sides, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.InvalidDiceNotationf("invalid die size in notation: %q", notation)
	}

	if count <= 0 || sides <= 0 {
		return 0, 0, errors.InvalidDiceNotationf("dice count and size must be positive: %q", notation)
	}

	return count, sides, nil
}

// Notation formats a count and die size as "<count>d<sides>"
func Notation(count, sides int) string {
	return fmt.Sprintf("%dd%d", count, sides)
}
