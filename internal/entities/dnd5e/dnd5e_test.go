package dnd5e_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
)

func TestParseAbility(t *testing.T) {
	a, ok := dnd5e.ParseAbility(" dex ")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.AbilityDexterity, a)

	_, ok = dnd5e.ParseAbility("LUCK")
	assert.False(t, ok)
}

func TestParseSkill(t *testing.T) {
	s, ok := dnd5e.ParseSkill("animal handling")
	assert.True(t, ok)
	assert.Equal(t, dnd5e.SkillAnimalHandling, s)

	_, ok = dnd5e.ParseSkill("STR")
	assert.False(t, ok)
	assert.Len(t, dnd5e.Skills, 18)
}

func TestRollKind_CanCritical(t *testing.T) {
	testCases := []struct {
		kind     dnd5e.RollKind
		name     string
		critical bool
	}{
		{dnd5e.RollKindAttack, "attack", true},
		{dnd5e.RollKindSavingThrow, "saving_throw", true},
		{dnd5e.RollKindAbilityCheck, "ability_check", true},
		{dnd5e.RollKindSkillCheck, "skill_check", true},
		{dnd5e.RollKindBasic, "basic", false},
		{dnd5e.RollKindDamage, "damage", false},
		{dnd5e.RollKindCustom, "custom", false},
		{dnd5e.RollKindUnspecified, "unspecified", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.kind.String())
			assert.Equal(t, tc.critical, tc.kind.CanCritical())
		})
	}
}

func TestProfile_Defaults(t *testing.T) {
	p := dnd5e.NewProfile("Aria")

	assert.Equal(t, "Aria", p.GetID())
	assert.Equal(t, dnd5e.EntityTypeProfile, p.GetType())
	assert.Equal(t, 1, p.Level)
	for _, a := range dnd5e.Abilities {
		assert.Equal(t, 10, p.Score(a))
	}
	assert.False(t, p.HasSavingThrowProficiency(dnd5e.AbilityStrength))
	assert.False(t, p.HasSkillProficiency(dnd5e.SkillStealth))
}

func TestProfile_MissingAbilityDefaultsToTen(t *testing.T) {
	p := &dnd5e.Profile{Name: "Aria", Abilities: map[dnd5e.Ability]int{dnd5e.AbilityStrength: 16}}

	assert.Equal(t, 16, p.Score(dnd5e.AbilityStrength))
	assert.Equal(t, 10, p.Score(dnd5e.AbilityCharisma))
}

func TestProfile_JSONLayout(t *testing.T) {
	raw := `{
		"name": "Thorin",
		"level": 5,
		"abilities": {"STR": 16, "DEX": 12, "CON": 14, "INT": 8, "WIS": 10, "CHA": 10},
		"saving_throw_proficiencies": ["STR", "CON"],
		"skill_proficiencies": ["Athletics"],
		"weapons": [{"name": "Warhammer", "ability": "STR", "proficient": true, "damage_dice": "1d8", "damage_bonus": 3, "damage_type": "bludgeoning"}]
	}`

	var p dnd5e.Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "Thorin", p.Name)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 16, p.Score(dnd5e.AbilityStrength))
	assert.True(t, p.HasSavingThrowProficiency(dnd5e.AbilityConstitution))
	assert.True(t, p.HasSkillProficiency(dnd5e.SkillAthletics))
	require.Len(t, p.Weapons, 1)
	assert.Equal(t, dnd5e.Weapon{
		Name:        "Warhammer",
		Ability:     dnd5e.AbilityStrength,
		Proficient:  true,
		DamageDice:  "1d8",
		DamageBonus: 3,
		DamageType:  "bludgeoning",
	}, p.Weapons[0])
	assert.Equal(t, []string{"Warhammer"}, p.WeaponNames())
}

func TestRollRequest_Notation(t *testing.T) {
	req := &dnd5e.RollRequest{DiceCount: 2, DieSize: 8}
	assert.Equal(t, "2d8", req.Notation())
}
