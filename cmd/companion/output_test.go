package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/testutils"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &dnd5e.RollResult{
		Request: &dnd5e.RollRequest{
			Kind:        dnd5e.RollKindSavingThrow,
			DieSize:     20,
			DiceCount:   1,
			Modifier:    6,
			Description: "CON Save",
		},
		Dice:          []int{20},
		RawRoll:       20,
		Total:         26,
		IsCriticalHit: true,
	})

	out := buf.String()
	assert.Contains(t, out, "CON Save")
	assert.Contains(t, out, "1d20 [20]")
	assert.Contains(t, out, "Total: 26 (20 +6)")
	assert.Contains(t, out, "CRITICAL HIT!")
}

func TestPrintResultNoModifier(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &dnd5e.RollResult{
		Request:        &dnd5e.RollRequest{Kind: dnd5e.RollKindBasic, DieSize: 20, DiceCount: 1, Description: "d20"},
		Dice:           []int{1},
		RawRoll:        1,
		Total:   1,
	})

	assert.Contains(t, buf.String(), "Total: 1\n")
	assert.NotContains(t, buf.String(), "CRITICAL")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printProfile(&buf, testutils.CreateTestProfileWithWeapons())

	out := buf.String()
	assert.Contains(t, out, testutils.TestCharacterName+" (level 5, proficiency +3)")
	assert.Contains(t, out, "STR 16 (+3)  save +6*")
	assert.Contains(t, out, "INT  8 (-1)  save -1\n")
	assert.Contains(t, out, "Skills: Athletics")
	assert.Contains(t, out, "Weapon 1: Warhammer (STR) 1d8+3 bludgeoning")
}

func TestBuildProfile(t *testing.T) {
	str, dex := 16, 40
	p, err := buildProfile("Mira", 3,
		map[dnd5e.Ability]*int{dnd5e.AbilityStrength: &str, dnd5e.AbilityDexterity: &dex},
		[]string{"str", " dex "}, []string{"sleight of hand"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 16, p.Score(dnd5e.AbilityStrength))
	assert.Equal(t, dnd5e.MaxAbilityScore, p.Score(dnd5e.AbilityDexterity))
	assert.Equal(t, []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity}, p.SavingThrowProficiencies)
	assert.Equal(t, []dnd5e.Skill{dnd5e.SkillSleightOfHand}, p.SkillProficiencies)
}

func TestBuildProfileRejectsUnknownNames(t *testing.T) {
	_, err := buildProfile("Mira", 1, nil, []string{"LUCK"}, nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = buildProfile("Mira", 1, nil, nil, []string{"Juggling"})
	assert.True(t, errors.IsUnknownSkill(err))
}
