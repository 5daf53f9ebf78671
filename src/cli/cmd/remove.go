package cmd

import (
	"fmt"

	"github.com/sofmeright/imgcraft/src/docker"
	"github.com/sofmeright/imgcraft/src/version"
	"github.com/spf13/cobra"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <image>",
	Aliases: []string{"remove"},
	Short:   "Remove an image built with " + version.ProgName,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := docker.New(logger)
		if err != nil {
			return err
		}
		defer cli.Close()

		if err := cli.Remove(cmd.Context(), args[0], rmForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "force removal")
	rootCmd.AddCommand(rmCmd)
}
