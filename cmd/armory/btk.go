package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newBTKCmd(a *app) *cobra.Command {
	var health float64
	cmd := &cobra.Command{
		Use:   "btk [weapon...]",
		Short: "Report bullets-to-kill and fastest kill time",
		Long:  `btk reports bullets-to-kill per body part and the fastest kill time for every stored weapon, or only the named ones. Attachments do not affect the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := a.workbench(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("health") {
				health = a.cfg.Calc.DefaultHealth
			}
			if health <= 0 {
				return fmt.Errorf("health must be positive, got %g", health)
			}
			for _, name := range args {
				if _, err := bench.Weapon(name); err != nil {
					return err
				}
			}

			r := a.renderer()
			out := cmd.OutOrStdout()
			for _, rep := range bench.KillReports(health) {
				if len(args) > 0 && !slices.Contains(args, rep.Weapon.Name) {
					continue
				}
				if rep.Err != nil {
					fmt.Fprint(out, r.KillError(rep.Weapon.Name, rep.Err))
					continue
				}
				fmt.Fprint(out, r.KillStats(rep.Weapon.Name, rep.Stats))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&health, "health", 0, "target health (default from calc.default_health)")
	return cmd
}
