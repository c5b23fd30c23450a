package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

func newAttachCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Inspect slots and mount or remove attachments",
	}
	cmd.AddCommand(
		newAttachSlotsCmd(a),
		newAttachCandidatesCmd(a),
		newAttachMountCmd(a),
		newAttachAddCmd(a),
		newAttachRemoveCmd(a),
	)
	return cmd
}

func newAttachSlotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slots <weapon>",
		Short: "List the categories still open on a weapon",
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
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().Slots(w))
			return nil
		},
	}
}

func newAttachCandidatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <weapon> <category>",
		Short: "List catalog attachments for a weapon slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			c, err := armory.ParseCategory(args[1])
			if err != nil {
				return err
			}
			list, err := bench.Candidates(args[0], c)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer().Candidates(c, list))
			return nil
		},
	}
}

func newAttachMountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mount <weapon> <category> <number>",
		Short: "Mount the numbered catalog candidate (as listed by candidates)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			c, err := armory.ParseCategory(args[1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("candidate number %q: %w", args[2], err)
			}
			mounted, err := bench.MountCandidate(cmd.Context(), args[0], c, n-1)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mounted %s on %s\n", mounted.Name(), args[0])
			return nil
		},
	}
}

func newAttachAddCmd(a *app) *cobra.Command {
	var af attachmentFlags
	cmd := &cobra.Command{
		Use:   "add <weapon>",
		Short: "Mount a custom attachment that is not in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			att, err := af.attachment(cmd)
			if err != nil {
				return err
			}
			if err := bench.Mount(cmd.Context(), args[0], att); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mounted %s on %s\n", att.Name(), args[0])
			return nil
		},
	}
	af.register(cmd)
	return cmd
}

func newAttachRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <weapon> <attachment>",
		Short: "Remove every mounted attachment with the given name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			n, err := bench.Unmount(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no attachment named %s on %s\n", args[1], args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d attachment(s) from %s\n", n, args[0])
			return nil
		},
	}
}
