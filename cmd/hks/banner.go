package main

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// printBanner writes the startup banner. Colour follows fatih/color's
// terminal detection.
func printBanner(w io.Writer, addr string) {
	fig := figure.NewColorFigure("HKS", "doom", "green", true)
	if color.NoColor {
		fmt.Fprint(w, fig.String())
	} else {
		fmt.Fprint(w, fig.ColorString())
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Fprintln(w, "════════════════════════════════════════════════")
	_, _ = green.Fprintf(w, "    HACK SOLANA | listening on %s\n", addr)
	_, _ = green.Fprintln(w, "    Scan results are simulated. Not financial advice.")
	_, _ = cyan.Fprintln(w, "════════════════════════════════════════════════")
}
