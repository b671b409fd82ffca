// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format selects the output representation of a [Printer].
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported output [Format].
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Printer writes diagnostics to an output stream.
type Printer struct {
	w      io.Writer
	format Format

	location *color.Color
	message  *color.Color
	rule     *color.Color
}

// NewPrinter creates a [Printer] writing in the given format.
// Colors are used in text format only, and only when useColor is set.
func NewPrinter(w io.Writer, format Format, useColor bool) *Printer {
	p := &Printer{
		w:        w,
		format:   format,
		location: color.New(color.Bold),
		message:  color.New(color.FgRed),
		rule:     color.New(color.Faint),
	}

	for _, c := range [...]*color.Color{p.location, p.message, p.rule} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes all diagnostics.
func (p *Printer) Print(diagnostics []Diagnostic) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(diagnostics)

	case FormatText:
		return p.printText(diagnostics)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

func (p *Printer) printText(diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		location := fmt.Sprintf("%s:%s:", d.File, d.Range.Start)

		if _, err := fmt.Fprintf(p.w, "%s %s %s\n",
			p.location.Sprint(location), p.message.Sprint(d.Message), p.rule.Sprintf("(%s)", d.Rule)); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}

	return nil
}

func (p *Printer) printJSON(diagnostics []Diagnostic) error {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(diagnostics); err != nil {
		return fmt.Errorf("encoding diagnostics: %w", err)
	}

	return nil
}
