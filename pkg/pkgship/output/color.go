/*
Copyright 2026 The Pkgship Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package output

import (
	"fmt"
	"io"
	"os"

	colors "github.com/heroku/color"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Color can be used to format text so it can be printed to the terminal in color.
type Color struct {
	color *colors.Color
}

var (
	// Default is the default color, which is no color.
	Default = Color{}
	Red     = Color{color: colors.New(colors.FgRed)}
	Green   = Color{color: colors.New(colors.FgGreen)}
	Yellow  = Color{color: colors.New(colors.FgYellow)}
	Blue    = Color{color: colors.New(colors.FgBlue)}
	Cyan    = Color{color: colors.New(colors.FgCyan)}
)

// IsTerminal will check if the specified output stream is a terminal. This can be changed
// for testing to an arbitrary method.
var IsTerminal = isTerminal

// SetupColors enables or disables colors and returns a writer suitable for
// colored output on every platform.
func SetupColors(out io.Writer, forceColors bool) io.Writer {
	useColors := IsTerminal(out) || forceColors
	colors.Disable(!useColors)

	if f, ok := out.(*os.File); ok && useColors {
		return colorable.NewColorable(f)
	}
	return out
}

// Sprint wraps the operands in the color ANSI escape codes.
func (c Color) Sprint(a ...interface{}) string {
	if c.color == nil {
		return fmt.Sprint(a...)
	}
	return c.color.Sprint(a...)
}

// Sprintf formats according to the format specifier and wraps the result
// in the color ANSI escape codes.
func (c Color) Sprintf(format string, a ...interface{}) string {
	if c.color == nil {
		return fmt.Sprintf(format, a...)
	}
	return c.color.Sprintf(format, a...)
}

// Fprint outputs the operands wrapped in the color to out.
// It returns the number of bytes written and any errors encountered.
func (c Color) Fprint(out io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprint(out, c.Sprint(a...))
}

// Fprintln outputs the operands wrapped in the color to out, followed by a newline.
// It returns the number of bytes written and any errors encountered.
func (c Color) Fprintln(out io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(out, c.Sprint(a...))
}

// Fprintf applies formats according to the format specifier (and the optional interfaces provided),
// wraps the result in the color ANSI escape codes, and outputs the result to out.
// It returns the number of bytes written and any errors encountered.
func (c Color) Fprintf(out io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(out, c.Sprintf(format, a...))
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
