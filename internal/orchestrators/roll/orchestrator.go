// Package roll implements the roll resolution engine
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/dice-companion/internal/orchestrators/roll Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dice-companion/internal/calculators"
	"github.com/KirkDiggler/dice-companion/internal/dice"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dice-companion/internal/pkg/idgen"
)

const (
	// Used when a damage request has no weapon
	fallbackDamageDice = "1d8"
	fallbackDamageType = "slashing"
)

// Service defines the interface for resolving rolls
type Service interface {
	RollBasic(ctx context.Context, input *RollBasicInput) (*RollBasicOutput, error)
	RollSavingThrow(ctx context.Context, input *RollSavingThrowInput) (*RollSavingThrowOutput, error)
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
	ResolveAttackOutcome(ctx context.Context, input *ResolveAttackOutcomeInput) (*ResolveAttackOutcomeOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
	RollCustom(ctx context.Context, input *RollCustomInput) (*RollCustomOutput, error)
	RollNotation(ctx context.Context, input *RollNotationInput) (*RollNotationOutput, error)

	// Resolve draws the dice for any prepared request and classifies the result
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// RollBasic rolls a single die with no modifier
func (o *orchestrator) RollBasic(ctx context.Context, input *RollBasicInput) (*RollBasicOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.resolve(ctx, &dnd5e.RollRequest{
		Kind:        dnd5e.RollKindBasic,
		DieSize:     input.DieSize,
		DiceCount:   1,
		Description: fmt.Sprintf("d%d Roll", input.DieSize),
	})
	if err != nil {
		return nil, err
	}

	return &RollBasicOutput{Result: result}, nil
}

// RollSavingThrow rolls a d20 save with the ability modifier and, when
// trained, the proficiency bonus
func (o *orchestrator) RollSavingThrow(ctx context.Context, input *RollSavingThrowInput) (*RollSavingThrowOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}

	ability, ok := dnd5e.ParseAbility(string(input.Ability))
	if !ok {
		return nil, errors.InvalidArgumentf("unknown ability: %s", input.Ability)
	}

	p := input.Profile
	modifier := calculators.ModifierFor(p.Score(ability))
	if p.HasSavingThrowProficiency(ability) {
		modifier += calculators.ProficiencyBonusFor(p.Level)
	}

	result, err := o.resolve(ctx, &dnd5e.RollRequest{
		Kind:        dnd5e.RollKindSavingThrow,
		DieSize:     dnd5e.D20,
		DiceCount:   1,
		Modifier:    modifier,
		Description: fmt.Sprintf("%s Saving Throw", ability),
	})
	if err != nil {
		return nil, err
	}

	return &RollSavingThrowOutput{Result: result}, nil
}

// RollCheck rolls a skill check when Name is a skill, or a bare ability check
// when Name is an ability code. Only skill checks add proficiency.
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}

	request, err := buildCheckRequest(input.Profile, input.Name)
	if err != nil {
		return nil, err
	}

	result, err := o.resolve(ctx, request)
	if err != nil {
		return nil, err
	}

	return &RollCheckOutput{Result: result}, nil
}

func buildCheckRequest(p *dnd5e.Profile, name string) (*dnd5e.RollRequest, error) {
	if skill, ok := dnd5e.ParseSkill(name); ok {
		ability, err := calculators.AbilityForSkill(string(skill))
		if err != nil {
			return nil, err
		}

		modifier := calculators.ModifierFor(p.Score(ability))
		description := fmt.Sprintf("%s (%s) Check", skill, ability)
		if p.HasSkillProficiency(skill) {
			modifier += calculators.ProficiencyBonusFor(p.Level)
			description += " (Proficient)"
		}

		return &dnd5e.RollRequest{
			Kind:        dnd5e.RollKindSkillCheck,
			DieSize:     dnd5e.D20,
			DiceCount:   1,
			Modifier:    modifier,
			Description: description,
		}, nil
	}

	if ability, ok := dnd5e.ParseAbility(name); ok {
		return &dnd5e.RollRequest{
			Kind:        dnd5e.RollKindAbilityCheck,
			DieSize:     dnd5e.D20,
			DiceCount:   1,
			Modifier:    calculators.ModifierFor(p.Score(ability)),
			Description: fmt.Sprintf("%s Check", ability),
		}, nil
	}

	return nil, errors.UnknownSkillf("unknown skill or ability: %s", name)
}

// RollAttack rolls a d20 attack with the chosen weapon. A profile without
// weapons gets the Longsword and Dagger first.
func (o *orchestrator) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}

	p := input.Profile
	if EnsureDefaultWeapons(p) {
		slog.InfoContext(ctx, "Added default weapons",
			"profile", p.Name,
			"weapons", p.WeaponNames(),
		)
	}

	index := input.WeaponIndex
	if index < 0 || index >= len(p.Weapons) {
		index = 0
	}
	weapon := p.Weapons[index]

	modifier := calculators.ModifierFor(p.Score(weapon.Ability))
	if weapon.Proficient {
		modifier += calculators.ProficiencyBonusFor(p.Level)
	}

	result, err := o.resolve(ctx, &dnd5e.RollRequest{
		Kind:        dnd5e.RollKindAttack,
		DieSize:     dnd5e.D20,
		DiceCount:   1,
		Modifier:    modifier,
		Description: fmt.Sprintf("Attack with %s", weapon.Name),
		Weapon:      &weapon,
	})
	if err != nil {
		return nil, err
	}

	return &RollAttackOutput{
		Result: result,
		Weapon: &weapon,
	}, nil
}

// EnsureDefaultWeapons adds the Longsword and Dagger to a profile with no
// weapons. It reports whether anything was added. The damage bonus is the
// ability modifier at the time the weapons are added.
func EnsureDefaultWeapons(p *dnd5e.Profile) bool {
	if len(p.Weapons) > 0 {
		return false
	}

	p.Weapons = []dnd5e.Weapon{
		{
			Name:        "Longsword",
			Ability:     dnd5e.AbilityStrength,
			Proficient:  true,
			DamageDice:  "1d8",
			DamageBonus: calculators.ModifierFor(p.Score(dnd5e.AbilityStrength)),
			DamageType:  "slashing",
		},
		{
			Name:        "Dagger",
			Ability:     dnd5e.AbilityDexterity,
			Proficient:  true,
			DamageDice:  "1d4",
			DamageBonus: calculators.ModifierFor(p.Score(dnd5e.AbilityDexterity)),
			DamageType:  "piercing",
		},
	}

	return true
}

// ResolveAttackOutcome turns a hit into a damage request. The player
// decides whether the attack hit; a natural 20 doubles the damage dice.
func (o *orchestrator) ResolveAttackOutcome(ctx context.Context, input *ResolveAttackOutcomeInput) (*ResolveAttackOutcomeOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.InvalidArgument("attack result is required")
	}
	if !input.Result.IsAttack() {
		return nil, errors.InvalidArgument("result is not an attack roll")
	}

	if !input.Hit {
		slog.DebugContext(ctx, "Attack missed", "roll_id", input.Result.Request.ID)
		return &ResolveAttackOutcomeOutput{}, nil
	}

	weapon := input.Weapon
	if weapon == nil {
		weapon = input.Result.Request.Weapon
	}

	request, err := buildDamageRequest(weapon, input.Result.IsCriticalHit)
	if err != nil {
		return nil, err
	}

	return &ResolveAttackOutcomeOutput{DamageRequest: request}, nil
}

// RollDamage rolls a weapon's damage dice plus its damage bonus. The bonus
// is never doubled.
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	request, err := buildDamageRequest(input.Weapon, input.IsCritical)
	if err != nil {
		return nil, err
	}

	result, err := o.resolve(ctx, request)
	if err != nil {
		return nil, err
	}

	return &RollDamageOutput{Result: result}, nil
}

func buildDamageRequest(weapon *dnd5e.Weapon, critical bool) (*dnd5e.RollRequest, error) {
	if weapon == nil {
		weapon = &dnd5e.Weapon{
			DamageDice: fallbackDamageDice,
			DamageType: fallbackDamageType,
		}
	}

	count, sides, err := dice.ParseNotation(weapon.DamageDice)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid damage dice for %s", weapon.Name)
	}

	description := "Damage: %s"
	if critical {
		count *= 2
		description = "Critical Damage: %s"
	}

	return &dnd5e.RollRequest{
		Kind:        dnd5e.RollKindDamage,
		DieSize:     sides,
		DiceCount:   count,
		Modifier:    weapon.DamageBonus,
		Description: fmt.Sprintf(description, dice.Notation(count, sides)),
		Weapon:      weapon,
	}, nil
}

// RollCustom rolls count dice of the given size with no modifier
func (o *orchestrator) RollCustom(ctx context.Context, input *RollCustomInput) (*RollCustomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.resolve(ctx, &dnd5e.RollRequest{
		Kind:        dnd5e.RollKindCustom,
		DieSize:     input.Sides,
		DiceCount:   input.Count,
		Description: fmt.Sprintf("%s Roll", dice.Notation(input.Count, input.Sides)),
	})
	if err != nil {
		return nil, err
	}

	return &RollCustomOutput{Result: result}, nil
}

// RollNotation parses notation such as "3d6" and rolls it as a custom roll
func (o *orchestrator) RollNotation(ctx context.Context, input *RollNotationInput) (*RollNotationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count, sides, err := dice.ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	out, err := o.RollCustom(ctx, &RollCustomInput{Count: count, Sides: sides})
	if err != nil {
		return nil, err
	}

	return &RollNotationOutput{Result: out.Result}, nil
}

// Resolve draws the dice for a prepared request
func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("roll request is required")
	}

	result, err := o.resolve(ctx, input.Request)
	if err != nil {
		return nil, err
	}

	return &ResolveOutput{Result: result}, nil
}

func (o *orchestrator) resolve(ctx context.Context, request *dnd5e.RollRequest) (*dnd5e.RollResult, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	if request.ID == "" {
		request.ID = o.idGen.Generate()
	}

	draws, sum, err := dice.Roll(o.roller, request.DiceCount, request.DieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", request.Notation())
	}

	result := &dnd5e.RollResult{
		Request:  request,
		Dice:     draws,
		RawRoll:  sum,
		Total:    sum + request.Modifier,
		RolledAt: o.clock.Now(),
	}

	if request.Kind.CanCritical() && request.DieSize == dnd5e.D20 && request.DiceCount == 1 {
		result.IsCriticalHit = sum == dnd5e.D20
		result.IsCriticalFail = sum == 1
	}

	slog.InfoContext(ctx, "Roll resolved",
		"roll_id", request.ID,
		"kind", request.Kind.String(),
		"description", request.Description,
		"dice", draws,
		"modifier", request.Modifier,
		"total", result.Total,
		"critical_hit", result.IsCriticalHit,
		"critical_fail", result.IsCriticalFail,
	)

	return result, nil
}

func validateRequest(request *dnd5e.RollRequest) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("DieSize", request.DieSize, 1, vb)
	errors.ValidateMin("DiceCount", request.DiceCount, 1, vb)

	switch request.Kind {
	case dnd5e.RollKindAttack, dnd5e.RollKindSavingThrow, dnd5e.RollKindAbilityCheck, dnd5e.RollKindSkillCheck:
		if request.DieSize != dnd5e.D20 {
			vb.Fieldf("DieSize", "must be %d for %s rolls", dnd5e.D20, request.Kind)
		}
	case dnd5e.RollKindBasic, dnd5e.RollKindDamage, dnd5e.RollKindCustom:
	case dnd5e.RollKindUnspecified:
		vb.RequiredField("Kind")
	default:
		vb.InvalidField("Kind", fmt.Sprintf("unknown roll kind %d", int(request.Kind)))
	}

	return vb.Build()
}
