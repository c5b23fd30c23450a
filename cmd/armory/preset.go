package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage reusable attachment presets",
	}
	cmd.AddCommand(newPresetListCmd(a), newPresetAddCmd(a))
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().Presets(bench.Presets()))
			return nil
		},
	}
}

func newPresetAddCmd(a *app) *cobra.Command {
	var af attachmentFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a preset attachment",
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
			if err := bench.AddPreset(cmd.Context(), att); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added preset %s\n", att.Name())
			return nil
		},
	}
	af.register(cmd)
	return cmd
}
