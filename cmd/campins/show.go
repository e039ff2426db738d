package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"campins-go/errcode"
	"campins-go/services/camera/pinmap"
)

// boardDoc is the exported form of one board.
type boardDoc struct {
	Board string         `json:"board" toml:"board"`
	Tag   string         `json:"tag" toml:"tag"`
	Title string         `json:"title" toml:"title"`
	Chip  string         `json:"chip" toml:"chip"`
	Pins  pinmap.PinMap  `json:"pins" toml:"pins"`
	SD    *pinmap.SDSlot `json:"sd,omitempty" toml:"sd,omitempty"`
}

// newBoardDoc validates pm against b before exporting it.
func newBoardDoc(b pinmap.Board, pm pinmap.PinMap) (boardDoc, error) {
	if err := pinmap.Validate(b, pm); err != nil {
		return boardDoc{}, err
	}
	d := boardDoc{Board: b.String(), Tag: b.Tag(), Title: b.Title(), Chip: b.Chip().Name, Pins: pm}
	if sd, ok := b.SD(); ok {
		d.SD = &sd
	}
	return d, nil
}

func newShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <board>",
		Short: "Print one board's pin map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := pinmap.ParseBoard(args[0])
			if err != nil {
				return err
			}
			pm, err := pinmap.Resolve(b)
			if err != nil {
				return err
			}
			doc, err := newBoardDoc(b, pm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeText(out, b, doc)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "toml":
				return toml.NewEncoder(out).Encode(doc)
			default:
				return errcode.New(errcode.InvalidParams, "show", "unknown format "+strconv.Quote(format))
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or toml")
	return cmd
}

func pinText(pin int) string {
	if pin == pinmap.Unused {
		return "-"
	}
	return "gpio" + strconv.Itoa(pin)
}

func writeText(out io.Writer, b pinmap.Board, doc boardDoc) error {
	fmt.Fprintf(out, "%s (%s, %s)\n", doc.Title, doc.Board, doc.Chip)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	doc.Pins.Each(func(s pinmap.Signal, pin int) {
		fmt.Fprintf(w, "  %s\t%s\n", s, pinText(pin))
	})
	if err := w.Flush(); err != nil {
		return err
	}
	for _, sh := range pinmap.SharedWithSD(b) {
		fmt.Fprintf(out, "note: %s shares gpio%d with SD %s\n", sh.Signal, sh.Pin, sh.Line)
	}
	return nil
}
