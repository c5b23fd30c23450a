package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

// attachmentFlags describes an attachment on the command line.
type attachmentFlags struct {
	name     string
	category string
	mods     armory.Mods
	grip     bool
	drum     bool
}

func (f *attachmentFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "attachment name")
	fs.StringVar(&f.category, "category", "", "attachment category, e.g. TOP_RAIL or MUZZLE")
	fs.IntVar(&f.mods.Recoil, "recoil", 0, "recoil control modifier")
	fs.IntVar(&f.mods.Handling, "handling", 0, "handling speed modifier")
	fs.IntVar(&f.mods.Stability, "stability", 0, "ADS stability modifier")
	fs.IntVar(&f.mods.HipFire, "hipfire", 0, "hip-fire accuracy modifier")
	fs.BoolVar(&f.grip, "grip-support", false, "rear grip accepts a grip mount")
	fs.BoolVar(&f.drum, "drum", false, "magazine is a drum (inferred from the name when unset)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
}

func (f *attachmentFlags) attachment(cmd *cobra.Command) (armory.Attachment, error) {
	opts := []armory.AttachmentOption{armory.WithGripSupport(f.grip)}
	if cmd.Flags().Changed("drum") {
		opts = append(opts, armory.WithDrumMagazine(f.drum))
	}
	return armory.NewAttachment(f.name, f.category, f.mods, opts...)
}
