package dnd5e

import (
	"fmt"
	"time"
)

// RollKind is what a roll request represents
type RollKind int

// Roll kinds
const (
	RollKindUnspecified RollKind = iota
	RollKindAttack
	RollKindSavingThrow
	RollKindAbilityCheck
	RollKindSkillCheck
	RollKindBasic
	RollKindDamage
	RollKindCustom
)

// String returns the stored name of the kind
func (k RollKind) String() string {
	switch k {
	case RollKindAttack:
		return "attack"
	case RollKindSavingThrow:
		return "saving_throw"
	case RollKindAbilityCheck:
		return "ability_check"
	case RollKindSkillCheck:
		return "skill_check"
	case RollKindBasic:
		return "basic"
	case RollKindDamage:
		return "damage"
	case RollKindCustom:
		return "custom"
	case RollKindUnspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// CanCritical reports whether a natural 20 or 1 on a d20 counts for the kind.
// Skill checks are ability checks made with a skill.
func (k RollKind) CanCritical() bool {
	switch k {
	case RollKindAttack, RollKindSavingThrow, RollKindAbilityCheck, RollKindSkillCheck:
		return true
	case RollKindBasic, RollKindDamage, RollKindCustom, RollKindUnspecified:
		return false
	default:
		return false
	}
}

// D20 is the die every attack, save and check uses
const D20 = 20

// RollRequest describes one roll before it is made. It lives for a single
// roll cycle.
type RollRequest struct {
	ID          string
	Kind        RollKind
	DieSize     int
	DiceCount   int
	Modifier    int
	Description string

	// Weapon is set on attack and damage requests
	Weapon *Weapon
}

// Notation returns the request's dice as "<count>d<sides>"
func (r *RollRequest) Notation() string {
	return fmt.Sprintf("%dd%d", r.DiceCount, r.DieSize)
}

// RollResult is the committed outcome of a request. It is never re-rolled.
type RollResult struct {
	Request *RollRequest

	// Individual draws, in roll order
	Dice []int

	// Sum of Dice
	RawRoll int

	// RawRoll plus the request modifier
	Total int

	IsCriticalHit  bool
	IsCriticalFail bool
	RolledAt       time.Time
}

// IsAttack reports whether the result came from an attack roll
func (r *RollResult) IsAttack() bool {
	return r != nil && r.Request != nil && r.Request.Kind == RollKindAttack
}
