package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dice-companion/internal/calculators"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
)

func printResult(w io.Writer, result *dnd5e.RollResult) {
	req := result.Request

	fmt.Fprintf(w, "%s\n", req.Description)
	fmt.Fprintf(w, "  Dice:  %s %v\n", req.Notation(), result.Dice)
	if req.Modifier != 0 {
		fmt.Fprintf(w, "  Total: %d (%d %s)\n", result.Total, result.RawRoll, signed(req.Modifier))
	} else {
		fmt.Fprintf(w, "  Total: %d\n", result.Total)
	}

	switch {
	case result.IsCriticalHit:
		fmt.Fprintln(w, "  CRITICAL HIT!")
	case result.IsCriticalFail:
		fmt.Fprintln(w, "  CRITICAL FAIL!")
	}
}

func printProfile(w io.Writer, p *dnd5e.Profile) {
	prof := calculators.ProficiencyBonusFor(p.Level)

	fmt.Fprintf(w, "%s (level %d, proficiency %s)\n", p.Name, p.Level, signed(prof))
	for _, a := range dnd5e.Abilities {
		score := p.Score(a)
		save := calculators.ModifierFor(score)
		marker := ""
		if p.HasSavingThrowProficiency(a) {
			save += prof
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %2d (%s)  save %s%s\n", a, score, signed(calculators.ModifierFor(score)), signed(save), marker)
	}

	if len(p.SkillProficiencies) > 0 {
		skills := make([]string, 0, len(p.SkillProficiencies))
		for _, s := range p.SkillProficiencies {
			skills = append(skills, s.String())
		}
		fmt.Fprintf(w, "  Skills: %s\n", strings.Join(skills, ", "))
	}

	for i, weapon := range p.Weapons {
		fmt.Fprintf(w, "  Weapon %d: %s (%s) %s%s %s\n",
			i+1, weapon.Name, weapon.Ability, weapon.DamageDice, signedOrEmpty(weapon.DamageBonus), weapon.DamageType)
	}
}

func signed(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func signedOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return signed(n)
}
