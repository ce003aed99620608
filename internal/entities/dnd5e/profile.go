// Package dnd5e implements the D&D 5e entities
package dnd5e

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeProfile is the rpg-toolkit entity type of a character profile
const EntityTypeProfile = "character_profile"

// Profile is a simple character sheet. The JSON layout matches the saved
// character files, so field tags must not change.
// NOTE: This is a data-only struct. Modifiers and score clamping live in
// internal/calculators.
type Profile struct {
	Name                     string          `json:"name"`
	Level                    int             `json:"level"`
	Abilities                map[Ability]int `json:"abilities"`
	SavingThrowProficiencies []Ability       `json:"saving_throw_proficiencies"`
	SkillProficiencies       []Skill         `json:"skill_proficiencies"`
	Weapons                  []Weapon        `json:"weapons"`
}

// Weapon is embedded in a profile and has no lifecycle of its own
type Weapon struct {
	Name        string  `json:"name"`
	Ability     Ability `json:"ability"`
	Proficient  bool    `json:"proficient"`
	DamageDice  string  `json:"damage_dice"`
	DamageBonus int     `json:"damage_bonus"`
	DamageType  string  `json:"damage_type"`
}

// NewProfile returns a level 1 profile with every score at 10
func NewProfile(name string) *Profile {
	abilities := make(map[Ability]int, len(Abilities))
	for _, a := range Abilities {
		abilities[a] = DefaultAbilityScore
	}

	return &Profile{
		Name:                     name,
		Level:                    1,
		Abilities:                abilities,
		SavingThrowProficiencies: []Ability{},
		SkillProficiencies:       []Skill{},
		Weapons:                  []Weapon{},
	}
}

// GetID returns the profile name, which doubles as its storage key
func (p *Profile) GetID() string {
	return p.Name
}

// GetType returns the entity type for rpg-toolkit
func (p *Profile) GetType() string {
	return EntityTypeProfile
}

// Score returns the stored score, or 10 when the ability is missing
func (p *Profile) Score(a Ability) int {
	if score, ok := p.Abilities[a]; ok {
		return score
	}
	return DefaultAbilityScore
}

// HasSavingThrowProficiency reports whether the character is trained in the save
func (p *Profile) HasSavingThrowProficiency(a Ability) bool {
	for _, prof := range p.SavingThrowProficiencies {
		if prof == a {
			return true
		}
	}
	return false
}

// HasSkillProficiency reports whether the character is trained in the skill
func (p *Profile) HasSkillProficiency(s Skill) bool {
	for _, prof := range p.SkillProficiencies {
		if prof == s {
			return true
		}
	}
	return false
}

// WeaponNames returns the weapon names in list order
func (p *Profile) WeaponNames() []string {
	names := make([]string, 0, len(p.Weapons))
	for _, w := range p.Weapons {
		names = append(names, w.Name)
	}
	return names
}

// Compile-time check that Profile can be handed to rpg-toolkit
var _ core.Entity = (*Profile)(nil)
