// Package calculators implements the D&D 5e ability and skill math
package calculators

import (
	"strings"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// skillAbilities maps each skill to its governing ability
var skillAbilities = map[dnd5e.Skill]dnd5e.Ability{
	dnd5e.SkillAcrobatics:     dnd5e.AbilityDexterity,
	dnd5e.SkillSleightOfHand:  dnd5e.AbilityDexterity,
	dnd5e.SkillStealth:        dnd5e.AbilityDexterity,
	dnd5e.SkillAnimalHandling: dnd5e.AbilityWisdom,
	dnd5e.SkillInsight:        dnd5e.AbilityWisdom,
	dnd5e.SkillMedicine:       dnd5e.AbilityWisdom,
	dnd5e.SkillPerception:     dnd5e.AbilityWisdom,
	dnd5e.SkillSurvival:       dnd5e.AbilityWisdom,
	dnd5e.SkillArcana:         dnd5e.AbilityIntelligence,
	dnd5e.SkillHistory:        dnd5e.AbilityIntelligence,
	dnd5e.SkillInvestigation:  dnd5e.AbilityIntelligence,
	dnd5e.SkillNature:         dnd5e.AbilityIntelligence,
	dnd5e.SkillReligion:       dnd5e.AbilityIntelligence,
	dnd5e.SkillAthletics:      dnd5e.AbilityStrength,
	dnd5e.SkillDeception:      dnd5e.AbilityCharisma,
	dnd5e.SkillIntimidation:   dnd5e.AbilityCharisma,
	dnd5e.SkillPerformance:    dnd5e.AbilityCharisma,
	dnd5e.SkillPersuasion:     dnd5e.AbilityCharisma,
}

// ModifierFor returns floor((score - 10) / 2)
func ModifierFor(score int) int {
	modifier := (score - 10) / 2
	// Go truncates toward zero
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// ProficiencyBonusFor returns the proficiency bonus for a character level.
// Levels below 1 are not rejected and get +2.
func ProficiencyBonusFor(level int) int {
	switch {
	case level < 5:
		return 2
	case level < 9:
		return 3
	case level < 13:
		return 4
	case level < 17:
		return 5
	default:
		return 6
	}
}

// ClampAbilityScore bounds a score to [1, 30]
func ClampAbilityScore(score int) int {
	return min(max(score, dnd5e.MinAbilityScore), dnd5e.MaxAbilityScore)
}

// AbilityForSkill returns the governing ability of a skill. The name is
// matched case-insensitively.
func AbilityForSkill(skill string) (dnd5e.Ability, error) {
	s, ok := dnd5e.ParseSkill(skill)
	if !ok {
		return "", errors.UnknownSkillf("unknown skill: %s", strings.TrimSpace(skill))
	}

	return skillAbilities[s], nil
}

// SetAbilityScore writes a clamped score into the profile
func SetAbilityScore(p *dnd5e.Profile, ability dnd5e.Ability, score int) {
	if p.Abilities == nil {
		p.Abilities = make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	}
	p.Abilities[ability] = ClampAbilityScore(score)
}

// NormalizeProfile fills missing abilities with 10 and clamps every score
func NormalizeProfile(p *dnd5e.Profile) {
	for _, a := range dnd5e.Abilities {
		SetAbilityScore(p, a, p.Score(a))
	}
	if p.SavingThrowProficiencies == nil {
		p.SavingThrowProficiencies = []dnd5e.Ability{}
	}
	if p.SkillProficiencies == nil {
		p.SkillProficiencies = []dnd5e.Skill{}
	}
	if p.Weapons == nil {
		p.Weapons = []dnd5e.Weapon{}
	}
}
