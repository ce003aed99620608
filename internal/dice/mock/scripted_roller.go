package dicemock

import (
	"fmt"
	"sync"
)

// ScriptedRoller returns predetermined draws in order
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	index int
}

// NewScriptedRoller creates a roller that replays rolls
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Remaining returns how many scripted draws are left
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.index
}

// RollN implements dice.Roller
func (s *ScriptedRoller) RollN(count, sides int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		if s.index >= len(s.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", s.index, len(s.rolls))
		}
		roll := s.rolls[s.index]
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		out[i] = roll
		s.index++
	}

	return out, nil
}
