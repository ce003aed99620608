package roll

import (
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
)

// RollBasicInput defines the request for a plain die roll
type RollBasicInput struct {
	DieSize int
}

// RollBasicOutput defines the response for a plain die roll
type RollBasicOutput struct {
	Result *dnd5e.RollResult
}

// RollSavingThrowInput defines the request for a saving throw
type RollSavingThrowInput struct {
	Profile *dnd5e.Profile
	Ability dnd5e.Ability
}

// RollSavingThrowOutput defines the response for a saving throw
type RollSavingThrowOutput struct {
	Result *dnd5e.RollResult
}

// RollCheckInput defines the request for a skill or ability check.
// Name is a skill name or an ability code.
type RollCheckInput struct {
	Profile *dnd5e.Profile
	Name    string
}

// RollCheckOutput defines the response for a skill or ability check
type RollCheckOutput struct {
	Result *dnd5e.RollResult
}

// RollAttackInput defines the request for an attack roll
type RollAttackInput struct {
	Profile     *dnd5e.Profile
	WeaponIndex int
}

// RollAttackOutput defines the response for an attack roll
type RollAttackOutput struct {
	Result *dnd5e.RollResult
	Weapon *dnd5e.Weapon
}

// ResolveAttackOutcomeInput defines the request for turning an attack into damage
type ResolveAttackOutcomeInput struct {
	Result *dnd5e.RollResult
	Weapon *dnd5e.Weapon
	Hit    bool
}

// ResolveAttackOutcomeOutput defines the response for an attack outcome.
// DamageRequest is nil on a miss.
type ResolveAttackOutcomeOutput struct {
	DamageRequest *dnd5e.RollRequest
}

// RollDamageInput defines the request for a damage roll
type RollDamageInput struct {
	Weapon     *dnd5e.Weapon
	IsCritical bool
}

// RollDamageOutput defines the response for a damage roll
type RollDamageOutput struct {
	Result *dnd5e.RollResult
}

// RollCustomInput defines the request for a custom roll
type RollCustomInput struct {
	Count int
	Sides int
}

// RollCustomOutput defines the response for a custom roll
type RollCustomOutput struct {
	Result *dnd5e.RollResult
}

// RollNotationInput defines the request for a custom roll from notation
type RollNotationInput struct {
	Notation string
}

// RollNotationOutput defines the response for a custom roll from notation
type RollNotationOutput struct {
	Result *dnd5e.RollResult
}

// ResolveInput defines the request for resolving a prepared roll request
type ResolveInput struct {
	Request *dnd5e.RollRequest
}

// ResolveOutput defines the response for resolving a prepared roll request
type ResolveOutput struct {
	Result *dnd5e.RollResult
}
