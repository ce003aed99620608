package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/roll"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/table"
)

var (
	rollProfile string
	damageIndex int
	damageCrit  bool
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice",
	Long: `Roll dice for the table. Leave the argument off to pick from a list.

Examples:
  dice-companion roll basic
  dice-companion roll custom 2d6
  dice-companion roll save --profile "Thorin Oakenshield" CON
  dice-companion roll check --profile "Thorin Oakenshield" "Sleight of Hand"
  dice-companion roll attack --profile "Thorin Oakenshield" Warhammer`,
}

var rollBasicCmd = &cobra.Command{
	Use:   "basic [SIDES]",
	Short: "Roll a single die (d20 by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRollBasic,
}

var rollCustomCmd = &cobra.Command{
	Use:   "custom [NOTATION]",
	Short: "Roll dice notation such as 2d6 or d100",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRollCustom,
}

var rollSaveCmd = &cobra.Command{
	Use:   "save [ABILITY]",
	Short: "Roll a saving throw",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRollSave,
}

var rollCheckCmd = &cobra.Command{
	Use:   "check [SKILL|ABILITY]",
	Short: "Roll a skill or ability check",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRollCheck,
}

var rollAttackCmd = &cobra.Command{
	Use:   "attack [WEAPON]",
	Short: "Roll an attack, then damage on a hit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRollAttack,
}

var rollDamageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Roll damage for a weapon",
	Args:  cobra.NoArgs,
	RunE:  runRollDamage,
}

func init() {
	for _, c := range []*cobra.Command{rollSaveCmd, rollCheckCmd, rollAttackCmd, rollDamageCmd} {
		c.Flags().StringVar(&rollProfile, "profile", "", "character name")
		_ = c.MarkFlagRequired("profile")
	}
	rollDamageCmd.Flags().IntVar(&damageIndex, "weapon", 1, "weapon number from profile show")
	rollDamageCmd.Flags().BoolVar(&damageCrit, "crit", false, "roll critical damage")

	rollCmd.AddCommand(
		rollBasicCmd,
		rollCustomCmd,
		rollSaveCmd,
		rollCheckCmd,
		rollAttackCmd,
		rollDamageCmd,
	)
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

// reveal shows a committed result. A nil result is a cancelled selection.
func reveal(cmd *cobra.Command, c *table.Controller, rolled *dnd5e.RollResult) error {
	if rolled == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	result, err := c.Reveal()
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func runRollBasic(cmd *cobra.Command, args []string) error {
	sides := table.BasicDie
	if arg := optionalArg(args); arg != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "d"))
		if err != nil {
			return errors.InvalidDiceNotationf("invalid die size %q", arg)
		}
		sides = n
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		result, err := a.table.RollBasic(ctx, sides)
		if err != nil {
			return err
		}
		return reveal(cmd, a.table, result)
	})
}

func runRollCustom(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		result, err := a.table.RollCustom(ctx, optionalArg(args))
		if err != nil {
			return err
		}
		return reveal(cmd, a.table, result)
	})
}

func runRollSave(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if _, err := a.table.ActivateProfile(ctx, rollProfile); err != nil {
			return err
		}

		result, err := a.table.SavingThrow(ctx, optionalArg(args))
		if err != nil {
			return err
		}
		return reveal(cmd, a.table, result)
	})
}

func runRollCheck(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if _, err := a.table.ActivateProfile(ctx, rollProfile); err != nil {
			return err
		}

		result, err := a.table.Check(ctx, optionalArg(args))
		if err != nil {
			return err
		}
		return reveal(cmd, a.table, result)
	})
}

func runRollAttack(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if _, err := a.table.ActivateProfile(ctx, rollProfile); err != nil {
			return err
		}

		result, err := a.table.Attack(ctx, optionalArg(args))
		if err != nil {
			return err
		}
		if err := reveal(cmd, a.table, result); err != nil || result == nil {
			return err
		}

		damage, err := a.table.ConfirmHit(ctx)
		if err != nil {
			return err
		}
		if damage == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Miss")
			return nil
		}
		return reveal(cmd, a.table, damage)
	})
}

func runRollDamage(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		p, err := a.table.ActivateProfile(ctx, rollProfile)
		if err != nil {
			return err
		}

		roll.EnsureDefaultWeapons(p)
		if damageIndex < 1 || damageIndex > len(p.Weapons) {
			return errors.InvalidArgumentf("weapon must be between 1 and %d", len(p.Weapons))
		}

		out, err := a.rolls.RollDamage(ctx, &roll.RollDamageInput{
			Weapon:     &p.Weapons[damageIndex-1],
			IsCritical: damageCrit,
		})
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), out.Result)
		return nil
	})
}
