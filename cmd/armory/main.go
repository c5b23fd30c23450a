// Package main provides the armory command: a terminal workbench for
// weapons, attachment loadouts and kill-time calculations.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command line against a fresh app and releases the
// backend afterwards.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.shutdown()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "armory",
		Short:         "Weapon and attachment workbench",
		Long:          `armory stores weapons, mounts attachments under the slot compatibility rules, and reports derived handling stats and bullets-to-kill.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "configs/dev.yaml", "path to configuration file")
	root.PersistentFlags().BoolVar(&a.color, "color", false, "colour output with ANSI escapes")

	root.AddCommand(
		newWeaponCmd(a),
		newBTKCmd(a),
		newAttachCmd(a),
		newCatalogCmd(a),
		newPresetCmd(a),
	)
	return root
}
