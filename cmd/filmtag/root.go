package main

import (
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// configPath is bound to the persistent --config flag and shared by all
// subcommands.
var configPath string

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filmtag [folder]",
		Short: "Write film roll sidecar metadata into scanned frames",
		Long: `filmtag matches the scanned frames of a developed film roll to the exposure
records in the folder's JSON sidecar and writes aperture, shutter speed, ISO,
capture time and GPS position into each image via exiftool.

Running filmtag with a bare folder argument is shorthand for "filmtag apply".`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("folder path required")
			}
			return runApply(args[0], &applyOptions{})
		},
	}

	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "gear configuration file path")

	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newSheetCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
