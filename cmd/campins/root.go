package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "campins",
		Short:        "Inspect camera board pin maps",
		Long:         `campins lists the supported camera boards, prints their GPIO assignments and checks every table entry.`,
		SilenceUsage: true,
	}
	root.AddCommand(newBoardsCmd(), newShowCmd(), newCheckCmd())
	return root
}
