// Package table drives one roll cycle at a time: choosing what to roll,
// rolling it, revealing it and, for attacks, asking whether it hit
package table

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/dice-companion/internal/dice"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/roll"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
	"github.com/KirkDiggler/dice-companion/internal/selection"
)

// Selection titles and options
const (
	TitleSelectDice    = "Select Dice"
	TitleSelectAbility = "Select Ability"
	TitleSelectCheck   = "Select Skill or Ability"
	TitleSelectWeapon  = "Select Weapon"
	TitleConfirmHit    = "Did the attack hit?"

	OptionHit  = "Hit"
	OptionMiss = "Miss"

	// BasicDie is rolled on motion and by a bare basic roll
	BasicDie = dnd5e.D20
)

// Config holds the dependencies for the table controller
type Config struct {
	RollService roll.Service
	ProfileRepo profile.Repository
	Selection   selection.Provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollService == nil {
		vb.RequiredField("RollService")
	}
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.Selection == nil {
		vb.RequiredField("Selection")
	}

	return vb.Build()
}

// Controller holds the active profile and at most one active roll.
// It is safe for use from the motion watcher goroutine.
type Controller struct {
	rolls     roll.Service
	profiles  profile.Repository
	selection selection.Provider

	mu      sync.Mutex
	state   State
	profile *dnd5e.Profile
	active  *dnd5e.RollResult
	weapon  *dnd5e.Weapon
	// bumped by every new roll and by Dismiss; in-flight calls for an
	// older generation must not touch the active roll
	gen     uint64
}

const errRollReplaced = "roll was replaced by a newer roll"

// New creates a controller in the idle state with no active profile
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Controller{
		rolls:     cfg.RollService,
		profiles:  cfg.ProfileRepo,
		selection: cfg.Selection,
		state:     StateIdle,
	}, nil
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the active result, or nil
func (c *Controller) Active() *dnd5e.RollResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ActiveProfile returns the active profile, or nil
func (c *Controller) ActiveProfile() *dnd5e.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// ActivateProfile loads a profile and makes it the active character.
// A missing profile leaves no active character.
func (c *Controller) ActivateProfile(ctx context.Context, name string) (*dnd5e.Profile, error) {
	out, err := c.profiles.Get(ctx, profile.GetInput{Name: name})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.profile = nil
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			return nil, err
		}
		return nil, errors.ProfileLoad(err, "failed to load profile "+name)
	}

	c.profile = out.Profile
	slog.InfoContext(ctx, "Activated profile", "name", out.Profile.Name, "level", out.Profile.Level)

	return out.Profile, nil
}

// RollBasic rolls one die of the given size
func (c *Controller) RollBasic(ctx context.Context, sides int) (*dnd5e.RollResult, error) {
	gen := c.begin()

	out, err := c.rolls.RollBasic(ctx, &roll.RollBasicInput{DieSize: sides})
	if err != nil {
		return nil, c.fail(gen, err)
	}

	return c.commit(gen, out.Result, nil)
}

// OnMotion is the motion trigger: a d20 roll
func (c *Controller) OnMotion(ctx context.Context) (*dnd5e.RollResult, error) {
	return c.RollBasic(ctx, BasicDie)
}

// RollCustom rolls dice notation, asking for it when empty. A cancelled
// selection returns nil with no error.
func (c *Controller) RollCustom(ctx context.Context, notation string) (*dnd5e.RollResult, error) {
	gen := c.begin()

	if notation == "" {
		choice, ok, err := c.choose(ctx, gen, TitleSelectDice, dice.Presets)
		if err != nil || !ok {
			return nil, err
		}
		notation = choice
	}

	out, err := c.rolls.RollNotation(ctx, &roll.RollNotationInput{Notation: notation})
	if err != nil {
		return nil, c.fail(gen, err)
	}

	return c.commit(gen, out.Result, nil)
}

// SavingThrow rolls a save for the active profile, asking for the ability
// when empty
func (c *Controller) SavingThrow(ctx context.Context, ability string) (*dnd5e.RollResult, error) {
	p, gen, err := c.beginForProfile()
	if err != nil {
		return nil, err
	}

	if ability == "" {
		options := make([]string, 0, len(dnd5e.Abilities))
		for _, a := range dnd5e.Abilities {
			options = append(options, a.String())
		}
		choice, ok, err := c.choose(ctx, gen, TitleSelectAbility, options)
		if err != nil || !ok {
			return nil, err
		}
		ability = choice
	}

	out, err := c.rolls.RollSavingThrow(ctx, &roll.RollSavingThrowInput{
		Profile: p,
		Ability: dnd5e.Ability(strings.ToUpper(strings.TrimSpace(ability))),
	})
	if err != nil {
		return nil, c.fail(gen, err)
	}

	return c.commit(gen, out.Result, nil)
}

// Check rolls a skill or ability check for the active profile, asking for
// the name when empty
func (c *Controller) Check(ctx context.Context, name string) (*dnd5e.RollResult, error) {
	p, gen, err := c.beginForProfile()
	if err != nil {
		return nil, err
	}

	if name == "" {
		options := make([]string, 0, len(dnd5e.Skills)+len(dnd5e.Abilities))
		for _, s := range dnd5e.Skills {
			options = append(options, s.String())
		}
		for _, a := range dnd5e.Abilities {
			options = append(options, a.String())
		}
		choice, ok, err := c.choose(ctx, gen, TitleSelectCheck, options)
		if err != nil || !ok {
			return nil, err
		}
		name = choice
	}

	out, err := c.rolls.RollCheck(ctx, &roll.RollCheckInput{Profile: p, Name: name})
	if err != nil {
		return nil, c.fail(gen, err)
	}

	return c.commit(gen, out.Result, nil)
}

// Attack rolls an attack for the active profile. An empty weapon name asks
// for one, unless the profile has no weapons yet, in which case the first
// default weapon is used. A named weapon may also be a default one.
func (c *Controller) Attack(ctx context.Context, weaponName string) (*dnd5e.RollResult, error) {
	p, gen, err := c.beginForProfile()
	if err != nil {
		return nil, err
	}

	// a named weapon may be one of the defaults
	if weaponName != "" && roll.EnsureDefaultWeapons(p) {
		slog.InfoContext(ctx, "Added default weapons", "profile", p.Name, "weapons", p.WeaponNames())
	}

	index := 0
	if len(p.Weapons) > 0 {
		if weaponName == "" {
			choice, ok, err := c.choose(ctx, gen, TitleSelectWeapon, p.WeaponNames())
			if err != nil || !ok {
				return nil, err
			}
			weaponName = choice
		}

		index = weaponIndex(p, weaponName)
		if index < 0 {
			return nil, c.fail(gen, errors.InvalidArgumentf("unknown weapon: %s", weaponName))
		}
	}

	out, err := c.rolls.RollAttack(ctx, &roll.RollAttackInput{Profile: p, WeaponIndex: index})
	if err != nil {
		return nil, c.fail(gen, err)
	}

	return c.commit(gen, out.Result, out.Weapon)
}

func weaponIndex(p *dnd5e.Profile, name string) int {
	for i, w := range p.Weapons {
		if strings.EqualFold(w.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Reveal is called when the roll animation ends. It returns the committed
// result and moves on: attacks wait for a hit decision, everything else
// shows its result.
func (c *Controller) Reveal() (*dnd5e.RollResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRolling:
		if c.active.IsAttack() {
			c.state = StateAwaitingHitDecision
		} else {
			c.state = StateResultShown
		}
	case StateDamageRolling:
		c.state = StateResultShown
	case StateIdle, StateAwaitingSelection, StateResultShown, StateAwaitingHitDecision:
		return nil, errors.FailedPreconditionf("nothing to reveal in state %s", c.state)
	default:
		return nil, errors.FailedPreconditionf("nothing to reveal in state %s", c.state)
	}

	return c.active, nil
}

// DeclareHit records the player's call on the active attack. A hit rolls
// damage and returns it; a miss ends the cycle and returns nil.
func (c *Controller) DeclareHit(ctx context.Context, hit bool) (*dnd5e.RollResult, error) {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	return c.declareHit(ctx, gen, hit)
}

func (c *Controller) declareHit(ctx context.Context, gen uint64, hit bool) (*dnd5e.RollResult, error) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return nil, errors.FailedPrecondition(errRollReplaced)
	}
	if c.state != StateAwaitingHitDecision {
		state := c.state
		c.mu.Unlock()
		return nil, errors.FailedPreconditionf("no attack awaiting a hit decision (state %s)", state)
	}
	attack, weapon := c.active, c.weapon
	c.mu.Unlock()

	outcome, err := c.rolls.ResolveAttackOutcome(ctx, &roll.ResolveAttackOutcomeInput{
		Result: attack,
		Weapon: weapon,
		Hit:    hit,
	})
	if err != nil {
		return nil, err
	}

	if outcome.DamageRequest == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen || c.active != attack {
			return nil, errors.FailedPrecondition(errRollReplaced)
		}
		c.reset()
		return nil, nil
	}

	out, err := c.rolls.Resolve(ctx, &roll.ResolveInput{Request: outcome.DamageRequest})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.active != attack {
		return nil, errors.FailedPrecondition(errRollReplaced)
	}
	c.active = out.Result
	c.state = StateDamageRolling

	return out.Result, nil
}

// ConfirmHit asks the selection provider whether the attack hit and
// declares the answer. Cancelling counts as a miss.
func (c *Controller) ConfirmHit(ctx context.Context) (*dnd5e.RollResult, error) {
	c.mu.Lock()
	gen, state := c.gen, c.state
	c.mu.Unlock()

	if state != StateAwaitingHitDecision {
		return nil, errors.FailedPreconditionf("no attack awaiting a hit decision (state %s)", state)
	}

	choice, ok, err := c.selection.Choose(ctx, TitleConfirmHit, []string{OptionHit, OptionMiss})
	if err != nil {
		return nil, err
	}

	return c.declareHit(ctx, gen, ok && choice == OptionHit)
}

// Dismiss closes the active result and returns to idle
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.gen++
}

// begin discards any active roll and waits for the next one. It returns
// the generation of the new roll.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.gen++
	c.state = StateAwaitingSelection
	return c.gen
}

func (c *Controller) beginForProfile() (*dnd5e.Profile, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.gen++
	if c.profile == nil {
		return nil, c.gen, errors.FailedPrecondition("no active character")
	}
	c.state = StateAwaitingSelection
	return c.profile, c.gen, nil
}

// choose asks the provider without holding the lock. Cancelling returns
// to idle; a newer roll started meanwhile wins.
func (c *Controller) choose(ctx context.Context, gen uint64, title string, options []string) (string, bool, error) {
	choice, ok, err := c.selection.Choose(ctx, title, options)
	if err != nil {
		return "", false, c.fail(gen, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		if !ok {
			return "", false, nil
		}
		return "", false, errors.FailedPrecondition(errRollReplaced)
	}
	if !ok {
		slog.DebugContext(ctx, "Selection cancelled", "title", title)
		c.reset()
		return "", false, nil
	}
	return choice, true, nil
}

func (c *Controller) commit(gen uint64, result *dnd5e.RollResult, weapon *dnd5e.Weapon) (*dnd5e.RollResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, errors.FailedPrecondition(errRollReplaced)
	}
	c.active = result
	c.weapon = weapon
	c.state = StateRolling
	return result, nil
}

func (c *Controller) fail(gen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.gen {
		c.reset()
	}
	return err
}

// reset must be called with the lock held
func (c *Controller) reset() {
	c.active = nil
	c.weapon = nil
	c.state = StateIdle
}
