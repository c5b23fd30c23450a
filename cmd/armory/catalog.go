package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the attachment catalog",
	}
	cmd.AddCommand(newCatalogListCmd(a), newCatalogAddCmd(a), newCatalogRemoveCmd(a))
	return cmd
}

func newCatalogListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every catalog entry, common first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().Catalog(bench.Catalog().Entries()))
			return nil
		},
	}
}

func newCatalogAddCmd(a *app) *cobra.Command {
	var (
		af     attachmentFlags
		weapon string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an attachment to the common catalog or to one weapon's list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			att, err := af.attachment(cmd)
			if err != nil {
				return err
			}
			if err := bench.AddCatalogEntry(cmd.Context(), weapon, att); err != nil {
				return err
			}
			scope := "common catalog"
			if weapon != "" {
				scope = weapon
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", att.Name(), scope)
			return nil
		},
	}
	af.register(cmd)
	cmd.Flags().StringVar(&weapon, "weapon", "", "weapon the entry is specific to (empty for common)")
	return cmd
}

func newCatalogRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <name>",
		Short: "Remove every catalog entry with the given category and name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			c, err := armory.ParseCategory(args[0])
			if err != nil {
				return err
			}
			n, err := bench.RemoveCatalogEntry(cmd.Context(), c, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d catalog entr%s\n", n, plural(n, "y", "ies"))
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
