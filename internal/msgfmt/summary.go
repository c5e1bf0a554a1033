package msgfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"xeplint/internal/driver"
)

// Summary writes one row of severity tallies per linted file, plus a totals
// row. Paths are padded by display width so wide-rune filenames do not break
// the columns.
func Summary(w io.Writer, results []*driver.Result, colorize bool) error {
	pathWidth := 0
	for _, r := range results {
		if width := runewidth.StringWidth(r.Path); width > pathWidth {
			pathWidth = width
		}
	}

	var totalErrors, totalWarnings, totalConventions int
	for _, r := range results {
		totalErrors += r.Errors
		totalWarnings += r.Warnings
		totalConventions += r.Conventions
		if err := summaryRow(w, r.Path, pathWidth, r.Errors, r.Warnings, r.Conventions, colorize); err != nil {
			return err
		}
	}
	if len(results) > 1 {
		return summaryRow(w, "total", pathWidth, totalErrors, totalWarnings, totalConventions, colorize)
	}
	return nil
}

func summaryRow(w io.Writer, path string, pathWidth, errors, warnings, conventions int, colorize bool) error {
	_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n",
		runewidth.FillRight(path, pathWidth),
		tally(errors, "errors", errorColor, colorize),
		tally(warnings, "warnings", warningColor, colorize),
		tally(conventions, "conventions", conventionColor, colorize),
	)
	return err
}

func tally(n int, label string, c *color.Color, colorize bool) string {
	s := fmt.Sprintf("%3d %s", n, label)
	if colorize && n > 0 {
		return c.Sprint(s)
	}
	return s
}
