package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

func newWeaponCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weapon",
		Short: "Add, list, show and delete weapons",
	}
	cmd.AddCommand(
		newWeaponAddCmd(a),
		newWeaponListCmd(a),
		newWeaponShowCmd(a),
		newWeaponDeleteCmd(a),
		newWeaponFilterCmd(a),
		newWeaponTypesCmd(a),
	)
	return cmd
}

func newWeaponAddCmd(a *app) *cobra.Command {
	var (
		weaponType string
		classes    []string
		w          armory.Weapon
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Store a new weapon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			w.Name = args[0]
			w.Type = armory.NormalizeWeaponType(weaponType)
			w.Classes = nil
			for _, c := range classes {
				w.Classes = append(w.Classes, armory.NormalizeSoldierClass(c))
			}
			if err := bench.AddWeapon(cmd.Context(), &w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", w.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&weaponType, "type", "", "weapon type (SMG, ASSAULT_RIFLE, SHOTGUN, DMR, SNIPER_RIFLE, PISTOL)")
	f.StringSliceVar(&classes, "class", nil, "soldier class allowed to use the weapon (repeatable)")
	f.Float64Var(&w.Damage.Chest, "chest", 0, "chest damage per bullet")
	f.Float64Var(&w.Damage.Stomach, "stomach", 0, "stomach damage per bullet")
	f.Float64Var(&w.Damage.Limb, "limb", 0, "limb damage per bullet")
	f.Float64Var(&w.Damage.Foot, "foot", 0, "foot damage per bullet")
	f.Float64Var(&w.RangeMeters, "range", 0, "effective range in meters")
	f.Float64Var(&w.FireRate, "rpm", 0, "fire rate in rounds per minute")
	f.Float64Var(&w.Base.RecoilControl, "recoil", 0, "base recoil control")
	f.Float64Var(&w.Base.HandlingSpeed, "handling", 0, "base handling speed")
	f.Float64Var(&w.Base.ADSStability, "stability", 0, "base ADS stability")
	f.Float64Var(&w.Base.HipFireAccuracy, "hipfire", 0, "base hip-fire accuracy")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}

func newWeaponListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored weapons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().WeaponList(bench.Weapons()))
			return nil
		},
	}
}

func newWeaponShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a weapon with derived stats and its loadout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			w, err := bench.Weapon(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().Weapon(w))
			return nil
		},
	}
}

func newWeaponDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored weapon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			if err := bench.DeleteWeapon(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newWeaponFilterCmd(a *app) *cobra.Command {
	var class, weaponType string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List weapons of one type available to a soldier class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			matches := bench.Filter(armory.NormalizeSoldierClass(class), armory.NormalizeWeaponType(weaponType))
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().WeaponList(matches))
			return nil
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "soldier class")
	cmd.Flags().StringVar(&weaponType, "type", "", "weapon type")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newWeaponTypesCmd(a *app) *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the weapon types stored for a soldier class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range bench.TypesForClass(armory.NormalizeSoldierClass(class)) {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "soldier class")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}
