package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-companion/internal/calculators"
	"github.com/KirkDiggler/dice-companion/internal/dice"
	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
)

var (
	createLevel  int
	createScores = map[dnd5e.Ability]*int{}
	createSaves  []string
	createSkills []string

	weaponName       string
	weaponAbility    string
	weaponDice       string
	weaponBonus      int
	weaponType       string
	weaponProficient bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage character profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a character with modifiers",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create or replace a character",
	Long: `Create or replace a character. Existing characters are backed up first.

Examples:
  dice-companion profile create "Thorin Oakenshield" --level 5 --str 16 --con 14 --save STR,CON --skill Athletics`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileCreate,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileBackupsCmd = &cobra.Command{
	Use:   "backups NAME",
	Short: "List kept versions of a character (redis store)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileBackups,
}

var profileAddWeaponCmd = &cobra.Command{
	Use:   "add-weapon NAME",
	Short: "Add a weapon to a character",
	Long: `Add a weapon to a character.

Examples:
  dice-companion profile add-weapon "Thorin Oakenshield" --weapon-name Warhammer --ability STR --dice 1d8 --bonus 3 --type bludgeoning --proficient`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAddWeapon,
}

func init() {
	createFlags := profileCreateCmd.Flags()
	createFlags.IntVar(&createLevel, "level", 1, "character level")
	for _, a := range dnd5e.Abilities {
		createScores[a] = createFlags.Int(flagName(a), dnd5e.DefaultAbilityScore, fmt.Sprintf("%s score", a))
	}
	createFlags.StringSliceVar(&createSaves, "save", nil, "saving throw proficiencies (STR,DEX,...)")
	createFlags.StringSliceVar(&createSkills, "skill", nil, "skill proficiencies")

	weaponFlags := profileAddWeaponCmd.Flags()
	weaponFlags.StringVar(&weaponName, "weapon-name", "", "weapon name")
	weaponFlags.StringVar(&weaponAbility, "ability", string(dnd5e.AbilityStrength), "attack ability (STR or DEX)")
	weaponFlags.StringVar(&weaponDice, "dice", "1d8", "damage dice")
	weaponFlags.IntVar(&weaponBonus, "bonus", 0, "damage bonus")
	weaponFlags.StringVar(&weaponType, "type", "slashing", "damage type")
	weaponFlags.BoolVar(&weaponProficient, "proficient", false, "proficient with the weapon")
	_ = profileAddWeaponCmd.MarkFlagRequired("weapon-name")

	profileCmd.AddCommand(
		profileListCmd,
		profileShowCmd,
		profileCreateCmd,
		profileDeleteCmd,
		profileBackupsCmd,
		profileAddWeaponCmd,
	)
}

func flagName(a dnd5e.Ability) string {
	switch a {
	case dnd5e.AbilityStrength:
		return "str"
	case dnd5e.AbilityDexterity:
		return "dex"
	case dnd5e.AbilityConstitution:
		return "con"
	case dnd5e.AbilityIntelligence:
		return "int"
	case dnd5e.AbilityWisdom:
		return "wis"
	case dnd5e.AbilityCharisma:
		return "cha"
	default:
		return string(a)
	}
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		out, err := a.profiles.List(ctx, profile.ListInput{})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(out.Names) == 0 {
			fmt.Fprintln(w, "No characters saved")
			return nil
		}
		for _, name := range out.Names {
			fmt.Fprintln(w, name)
		}
		return nil
	})
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		out, err := a.profiles.Get(ctx, profile.GetInput{Name: args[0]})
		if err != nil {
			return err
		}

		printProfile(cmd.OutOrStdout(), out.Profile)
		return nil
	})
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	p, err := buildProfile(args[0], createLevel, createScores, createSaves, createSkills)
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		out, err := a.profiles.Save(ctx, profile.SaveInput{Profile: p})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if out.BackupCreated {
			fmt.Fprintf(w, "Backed up previous %s\n", out.Profile.Name)
		}
		fmt.Fprintf(w, "Saved %s\n", out.Profile.Name)
		printProfile(w, out.Profile)
		return nil
	})
}

// buildProfile assembles a profile from command line values
func buildProfile(name string, level int, scores map[dnd5e.Ability]*int, saves, skills []string) (*dnd5e.Profile, error) {
	p := dnd5e.NewProfile(name)
	p.Level = level

	for ability, score := range scores {
		if score != nil {
			calculators.SetAbilityScore(p, ability, *score)
		}
	}

	for _, s := range saves {
		ability, ok := dnd5e.ParseAbility(s)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown ability %q", s)
		}
		p.SavingThrowProficiencies = append(p.SavingThrowProficiencies, ability)
	}

	for _, s := range skills {
		skill, ok := dnd5e.ParseSkill(s)
		if !ok {
			return nil, errors.UnknownSkillf("unknown skill %q", s)
		}
		p.SkillProficiencies = append(p.SkillProficiencies, skill)
	}

	return p, nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if _, err := a.profiles.Delete(ctx, profile.DeleteInput{Name: args[0]}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	})
}

func runProfileBackups(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if a.redis == nil {
			return errors.FailedPreconditionf("backups are plain files in %s", filepath.Join(cfg.DataDir, "backups"))
		}

		backups, err := profile.ListBackups(ctx, a.redis, args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(backups) == 0 {
			fmt.Fprintf(w, "No backups for %s\n", args[0])
			return nil
		}
		for _, b := range backups {
			savedAt, err := b.SavedAtTime()
			if err != nil {
				fmt.Fprintf(w, "%s (%d bytes)\n", b.SavedAt, len(b.Data))
				continue
			}
			fmt.Fprintf(w, "%s (%d bytes)\n", savedAt.Format(time.DateTime), len(b.Data))
		}
		return nil
	})
}

func runProfileAddWeapon(cmd *cobra.Command, args []string) error {
	ability, ok := dnd5e.ParseAbility(weaponAbility)
	if !ok {
		return errors.InvalidArgumentf("unknown ability %q", weaponAbility)
	}
	if _, _, err := dice.ParseNotation(weaponDice); err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		got, err := a.profiles.Get(ctx, profile.GetInput{Name: args[0]})
		if err != nil {
			return err
		}

		p := got.Profile
		p.Weapons = append(p.Weapons, dnd5e.Weapon{
			Name:        weaponName,
			Ability:     ability,
			Proficient:  weaponProficient,
			DamageDice:  weaponDice,
			DamageBonus: weaponBonus,
			DamageType:  weaponType,
		})

		out, err := a.profiles.Save(ctx, profile.SaveInput{Profile: p})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", weaponName, out.Profile.Name)
		return nil
	})
}
