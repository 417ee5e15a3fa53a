package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmtag/pkg/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gear configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample gear configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			if err := config.CreateSample(path); err != nil {
				return err
			}

			fmt.Printf("wrote sample configuration to %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			fmt.Printf("camera:       %s %s\n", cfg.Gear.Make, cfg.Gear.Model)
			fmt.Printf("lens:         %s (%s)\n", cfg.Gear.LensModel, cfg.Gear.FocalLength)
			fmt.Printf("country:      %s\n", cfg.Gear.Country)
			fmt.Printf("default iso:  %d\n", cfg.Defaults.ISO)
			fmt.Printf("exiftool:     %s\n", cfg.Exiftool.Binary)
			return nil
		},
	})

	return cmd
}
