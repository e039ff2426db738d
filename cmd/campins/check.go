package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"campins-go/errcode"
	"campins-go/services/camera/pinmap"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every board's pin map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkBoards(cmd.OutOrStdout(), pinmap.Boards(), pinmap.Resolve)
		},
	}
}

// checkBoards reports each board and returns the first failure's code.
func checkBoards(out io.Writer, boards []pinmap.Board, resolve func(pinmap.Board) (pinmap.PinMap, error)) error {
	var first error
	failed := 0
	for _, b := range boards {
		pm, err := resolve(b)
		if err == nil {
			err = pinmap.Validate(b, pm)
		}
		if err != nil {
			if first == nil {
				first = err
			}
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", b, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", b)
	}
	if first != nil {
		return &errcode.E{C: errcode.Of(first), Op: "check", Msg: fmt.Sprintf("%d board(s) failed", failed), Err: first}
	}
	return nil
}
