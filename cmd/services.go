package cmd

import (
	"fmt"
	"io"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the docker services px-valet can configure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printServices(cmd.OutOrStdout(), service.NewRegistry())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func printServices(w io.Writer, registry *service.Registry) {
	for _, group := range service.Groups() {
		title := string(group)
		if group.Required() {
			title += " (required)"
		}
		fmt.Fprintln(w, ui.Bold(title))
		for _, o := range registry.ServiceOptions(group) {
			fmt.Fprintf(w, "  %-18s %s\n", o.Image, ui.Dim(o.Label))
		}
	}
}
