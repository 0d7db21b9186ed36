// Package cli has shared utilities and application logic for the cellar CLI
package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	indentation = "  "
	bullet      = "- "
	wrapWidth   = 80
)

// Indented

func IndentedFprintf(indent int, w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "%s%s", makeIndentation(indent), fmt.Sprintf(format, a...))
}

func IndentedFprint(indent int, w io.Writer, a ...any) {
	_, _ = fmt.Fprintf(w, "%s%s", makeIndentation(indent), fmt.Sprint(a...))
}

func IndentedFprintln(indent int, w io.Writer, a ...any) {
	_, _ = fmt.Fprintf(w, "%s%s\n", makeIndentation(indent), fmt.Sprint(a...))
}

// IndentedFprintWrapped prints the provided text wrapped to a fixed width, with every output line
// indented.
func IndentedFprintWrapped(indent int, w io.Writer, text string) {
	wrapped := wordwrap.String(text, wrapWidth-len(makeIndentation(indent)))
	for _, line := range strings.Split(wrapped, "\n") {
		IndentedFprintln(indent, w, line)
	}
}

func IndentedFprintYaml(indent int, w io.Writer, a any) error {
	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(len(indentation))
	if err := encoder.Encode(a); err != nil {
		return errors.Wrapf(err, "couldn't serialize %T as yaml document", a)
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrapf(
			err, "couldn't close yaml encoder after serializing %T as yaml document", a,
		)
	}
	lines := strings.Split(buf.String(), "\n")
	for _, line := range lines[:len(lines)-1] { // last line follows last "\n" and is empty
		IndentedFprintln(indent, w, line)
	}
	return nil
}

func makeIndentation(indent int) string {
	return strings.Repeat(indentation, indent)
}

// Bulleted

func BulletedFprintf(indent int, w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "%s%s", makeBullet(indent), fmt.Sprintf(format, a...))
}

func BulletedFprintln(indent int, w io.Writer, a ...any) {
	_, _ = fmt.Fprintf(w, "%s%s\n", makeBullet(indent), fmt.Sprint(a...))
}

func makeBullet(indent int) string {
	return strings.Repeat(indentation, indent) + bullet
}
