package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routesNoColor bool

var routesCmd = &cobra.Command{
	Use:   "routes <route-table.json>",
	Short: "List the routes declared in a route table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(args[0])
		if err != nil {
			return err
		}

		headers := []string{"NAME", "METHOD", "PATH", "REL", "PARAMETERS"}
		var rows [][]string
		for _, d := range reg.Routes() {
			var params []string
			for _, p := range d.Parameters {
				params = append(params, fmt.Sprintf("%s(%s)", p.Name, p.Location))
			}
			rows = append(rows, []string{
				d.Name, d.Method, d.Path, d.Rel, strings.Join(params, ", "),
			})
		}

		renderTable(cmd.OutOrStdout(), headers, rows, routesNoColor)
		return nil
	},
}

func init() {
	routesCmd.Flags().BoolVar(&routesNoColor, "no-color", false, "disable colored output")
}

func renderTable(w io.Writer, headers []string, rows [][]string, noColor bool) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	if noColor {
		bold.DisableColor()
		gray.DisableColor()
	}

	for i, h := range headers {
		bold.Fprint(w, padRight(h, widths[i]))
		if i < len(headers)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)

	for i, width := range widths {
		gray.Fprint(w, strings.Repeat("─", width))
		if i < len(widths)-1 {
			gray.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprint(w, padRight(cell, widths[i]))
				if i < len(row)-1 {
					fmt.Fprint(w, "  ")
				}
			}
		}
		fmt.Fprintln(w)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
