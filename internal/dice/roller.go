package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/dice-companion/internal/dice Roller

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// Roller draws dice. Each draw is uniform over [1, sides].
type Roller interface {
	// RollN returns count individual draws of a die with the given sides
	RollN(count, sides int) ([]int, error)
}

type toolkitRoller struct{}

// NewToolkitRoller returns the default Roller backed by rpg-toolkit
func NewToolkitRoller() Roller {
	return &toolkitRoller{}
}

// RollN draws each die on its own so a d100 is always a single 1-100 draw
func (r *toolkitRoller) RollN(count, sides int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		roll, err := toolkitdice.NewRoll(1, sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create d%d roll", sides)
		}
		out[i] = roll.GetValue()
	}

	return out, nil
}

// Roll validates the dice, draws them and returns the draws and their sum
func Roll(roller Roller, count, sides int) ([]int, int, error) {
	if count < 1 {
		return nil, 0, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	if sides < 1 {
		return nil, 0, errors.InvalidArgumentf("invalid dice size: %d", sides)
	}

	draws, err := roller.RollN(count, sides)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll dice")
	}
	if len(draws) != count {
		return nil, 0, errors.Internalf("roller returned %d dice, expected %d", len(draws), count)
	}

	sum := 0
	for _, d := range draws {
		if d < 1 || d > sides {
			return nil, 0, errors.Internalf("invalid roll %d for d%d", d, sides)
		}
		sum += d
	}

	return draws, sum, nil
}
