package testutils

import (
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin Oakenshield"

// CreateTestProfile returns a level 5 fighter: STR 16, DEX 14, CON 14,
// trained in STR and CON saves and in Athletics. It has no weapons.
func CreateTestProfile() *dnd5e.Profile {
	p := dnd5e.NewProfile(TestCharacterName)
	p.Level = 5
	p.Abilities[dnd5e.AbilityStrength] = 16
	p.Abilities[dnd5e.AbilityDexterity] = 14
	p.Abilities[dnd5e.AbilityConstitution] = 14
	p.Abilities[dnd5e.AbilityIntelligence] = 8
	p.SavingThrowProficiencies = []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution}
	p.SkillProficiencies = []dnd5e.Skill{dnd5e.SkillAthletics}
	return p
}

// CreateTestProfileWithWeapons returns CreateTestProfile armed with a
// warhammer and a light crossbow
func CreateTestProfileWithWeapons() *dnd5e.Profile {
	p := CreateTestProfile()
	p.Weapons = []dnd5e.Weapon{
		{
			Name:        "Warhammer",
			Ability:     dnd5e.AbilityStrength,
			Proficient:  true,
			DamageDice:  "1d8",
			DamageBonus: 3,
			DamageType:  "bludgeoning",
		},
		{
			Name:        "Light Crossbow",
			Ability:     dnd5e.AbilityDexterity,
			Proficient:  true,
			DamageDice:  "1d8",
			DamageBonus: 2,
			DamageType:  "piercing",
		},
	}
	return p
}
