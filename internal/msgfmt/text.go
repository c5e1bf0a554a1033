// Package msgfmt renders accumulated message records into the output
// formats the CLI offers. The canonical plain form lives on the store
// itself; everything here is presentation on top of it.
package msgfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"xeplint/internal/msg"
)

var (
	errorColor      = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow)
	conventionColor = color.New(color.FgCyan)
)

func levelColor(l msg.Level) *color.Color {
	switch l {
	case msg.Error:
		return errorColor
	case msg.Warning:
		return warningColor
	default:
		return conventionColor
	}
}

// Text writes the canonical line format, optionally coloring the type
// identity by severity. With colorize false the output is byte-identical to
// Store.Render.
func Text(w io.Writer, store *msg.Store, colorize bool) error {
	for _, rec := range store.Sorted() {
		if err := writeMessage(w, rec.Main, colorize); err != nil {
			return err
		}
		for _, rel := range rec.Related {
			if err := writeMessage(w, rel, colorize); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMessage(w io.Writer, m msg.Message, colorize bool) error {
	identity := m.Type.String()
	if colorize {
		identity = levelColor(m.Type.Level).Sprint(identity)
	}
	_, err := fmt.Fprintf(w, "%s: %s: %s\n", m.Location, identity, m.Text())
	return err
}
