package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campins-go/services/camera/pinmap"
)

func newBoardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List supported boards and their build tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOARD\tTAG\tCHIP\tTITLE")
			for _, b := range pinmap.Boards() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b, b.Tag(), b.Chip().Name, b.Title())
			}
			return w.Flush()
		},
	}
}
