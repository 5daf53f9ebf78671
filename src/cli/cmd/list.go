package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sofmeright/imgcraft/src/docker"
	"github.com/sofmeright/imgcraft/src/version"
	"github.com/spf13/cobra"
)

var listShort bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List images built with " + version.ProgName,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := docker.New(logger)
		if err != nil {
			return err
		}
		defer cli.Close()

		images, err := cli.List(cmd.Context())
		if err != nil {
			return err
		}

		renderImageTable(cmd.OutOrStdout(), images, listShort)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listShort, "short", "s", true, "print short image IDs")
	rootCmd.AddCommand(listCmd)
}

// renderImageTable prints the two-column image table, or the explicit
// none-found message — never an empty table.
func renderImageTable(w io.Writer, images []docker.BuiltImage, short bool) {
	if len(images) == 0 {
		fmt.Fprintf(w, "No images built with %s found.\n", version.ProgName)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Image ID\tImage tags")
	for _, img := range images {
		id := img.ID
		if short {
			id = docker.ShortID(id)
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, strings.Join(img.Tags, ", "))
	}
	tw.Flush()
}
