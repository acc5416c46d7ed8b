// SPDX-License-Identifier: MIT
// Package cli: the command interpreter loop and handlers.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/matrix"
	"github.com/katalvlaran/wireframe/polyline"
	"github.com/katalvlaran/wireframe/render"
)

// Frame dimensions for the render command.
const (
	bufferWidth  = 100
	bufferHeight = 100
)

// projectionAngleDeg is the receding angle of the world Y axis in the
// default axonometric projection.
const projectionAngleDeg = 40.0

const helpText = `Available commands:
1. create line - create new polyline
2. add point <line_index> <x y z> <point_name> - add point to polyline
3. merge <line_index1> <line_index2> - merge two polylines
4. render - render all polylines
5. get length <line_index> - get polyline length
6. shift <line_index> <x y z> - shift polyline by vector
7. rotate <line_index> <x y z> <angle_deg> - rotate polyline around axis
8. help - show this help
9. get lines - show all polylines
10. del line <line_index> - delete polyline
11. remove isolated <line_index> - remove the most isolated point
12. exit - exit program
`

// Interpreter holds the polyline scene and the I/O endpoints of one
// interactive session.
type Interpreter struct {
	in    io.Reader
	out   io.Writer
	log   zerolog.Logger
	proj  *matrix.Dense[float64]
	lines []*polyline.Polyline[float64]
}

// New builds an interpreter reading commands from in and writing user
// output to out. Diagnostics go to logger only.
func New(in io.Reader, out io.Writer, logger zerolog.Logger) *Interpreter {
	return &Interpreter{
		in:   in,
		out:  out,
		log:  logger,
		proj: render.Axonometric(projectionAngleDeg * math.Pi / 180),
	}
}

// Run prints the help banner and processes commands until "exit" or the
// input ends. A non-nil return means the input stream itself failed, never
// a command.
func (i *Interpreter) Run() error {
	fmt.Fprint(i.out, helpText)

	sc := bufio.NewScanner(i.in)
	for {
		fmt.Fprint(i.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(i.out, "\nExiting program...")
			break
		}

		tokens := fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "exit" {
			break
		}

		i.execute(tokens)
	}

	return sc.Err()
}

// fields splits on spaces and tabs; kept tiny and allocation-light rather
// than pulling in strings.Fields' full Unicode treatment for ASCII input.
func fields(s string) []string {
	var out []string
	start := -1
	for idx := 0; idx < len(s); idx++ {
		if s[idx] == ' ' || s[idx] == '\t' {
			if start >= 0 {
				out = append(out, s[start:idx])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = idx
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}

	return out
}

// execute dispatches one tokenized command. Unknown input falls through to
// the help hint.
func (i *Interpreter) execute(tokens []string) {
	i.log.Debug().Strs("tokens", tokens).Msg("dispatching command")

	switch tokens[0] {
	case "create":
		if len(tokens) > 1 && tokens[1] == "line" {
			i.createLine()
			return
		}
	case "add":
		if len(tokens) > 1 && tokens[1] == "point" {
			i.addPoint(tokens)
			return
		}
	case "merge":
		i.mergeLines(tokens)
		return
	case "render":
		i.render()
		return
	case "get":
		if len(tokens) > 1 && tokens[1] == "length" {
			i.getLength(tokens)
			return
		}
		if len(tokens) > 1 && tokens[1] == "lines" {
			i.getLines()
			return
		}
	case "shift":
		i.shiftLine(tokens)
		return
	case "rotate":
		i.rotateLine(tokens)
		return
	case "remove":
		if len(tokens) > 1 && tokens[1] == "isolated" {
			i.removeIsolated(tokens)
			return
		}
	case "del":
		if len(tokens) > 1 && tokens[1] == "line" {
			i.deleteLine(tokens)
			return
		}
	case "help":
		fmt.Fprint(i.out, helpText)
		return
	}

	fmt.Fprintln(i.out, "Unknown command. Type 'help' for available commands.")
}

// lineIndex parses and bounds-checks a polyline index token. The boolean
// reports success; failure has already been printed.
func (i *Interpreter) lineIndex(token string) (int, bool) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprintln(i.out, "Error: Invalid arguments")
		return 0, false
	}
	if idx < 0 || idx >= len(i.lines) {
		fmt.Fprintln(i.out, "Error: Invalid line index")
		return 0, false
	}

	return idx, true
}

// floatArgs parses n consecutive float tokens.
func (i *Interpreter) floatArgs(tokens []string, n int) ([]float64, bool) {
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		v, err := strconv.ParseFloat(tokens[k], 64)
		if err != nil {
			fmt.Fprintln(i.out, "Error: Invalid arguments")
			return nil, false
		}
		out[k] = v
	}

	return out, true
}

func (i *Interpreter) createLine() {
	i.lines = append(i.lines, polyline.New[float64]())
	fmt.Fprintf(i.out, "Created new line with index: %d\n", len(i.lines)-1)
}

func (i *Interpreter) addPoint(tokens []string) {
	if len(tokens) < 7 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[2])
	if !ok {
		return
	}
	coords, ok := i.floatArgs(tokens[3:6], 3)
	if !ok {
		return
	}

	pt := geometry.NewPoint3(coords[0], coords[1], coords[2])
	if err := i.lines[idx].AddPoint(pt, tokens[6][0]); err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(i.out, "Point added to line %d\n", idx)
}

func (i *Interpreter) mergeLines(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx1, ok := i.lineIndex(tokens[1])
	if !ok {
		return
	}
	idx2, ok := i.lineIndex(tokens[2])
	if !ok {
		return
	}

	if err := i.lines[idx1].MergeMove(i.lines[idx2]); err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}

	i.lines = append(i.lines[:idx2], i.lines[idx2+1:]...)
	fmt.Fprintf(i.out, "Lines merged. Line %d removed.\n", idx2)
}

func (i *Interpreter) render() {
	buf, err := render.New(bufferWidth, bufferHeight, i.proj)
	if err != nil {
		// Fixed dimensions and a fixed projection shape make this
		// unreachable; surface it anyway rather than panic.
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}

	for _, line := range i.lines {
		if err = buf.AddPolyline(line); err != nil {
			fmt.Fprintf(i.out, "Error: %v\n", err)
			return
		}
	}

	if _, err = buf.WriteTo(i.out); err != nil {
		i.log.Error().Err(err).Msg("writing frame")
		return
	}
	fmt.Fprintln(i.out)
}

func (i *Interpreter) getLength(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[2])
	if !ok {
		return
	}

	fmt.Fprintf(i.out, "Length of line %d: %g\n", idx, i.lines[idx].Length())
}

func (i *Interpreter) getLines() {
	fmt.Fprintf(i.out, "Total lines: %d\n", len(i.lines))
	for idx, line := range i.lines {
		fmt.Fprintf(i.out, "Line %d (points: %d): ", idx, line.Size())
		for j := 0; j < line.Size(); j++ {
			// j stays inside [0, size), so the accessors cannot fail.
			pt, _ := line.Point(j)
			name, _ := line.Name(j)
			row, _ := pt.Row(0)
			fmt.Fprintf(i.out, "%c(%g, %g, %g) ", name, row[0], row[1], row[2])
		}
		fmt.Fprintln(i.out)
	}
}

func (i *Interpreter) shiftLine(tokens []string) {
	if len(tokens) < 5 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[1])
	if !ok {
		return
	}
	coords, ok := i.floatArgs(tokens[2:5], 3)
	if !ok {
		return
	}

	vec, err := geometry.NewVector(coords[0], coords[1], coords[2])
	if err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}
	if err = i.lines[idx].Shift(vec); err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(i.out, "Line %d shifted\n", idx)
}

func (i *Interpreter) rotateLine(tokens []string) {
	if len(tokens) < 6 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[1])
	if !ok {
		return
	}
	args, ok := i.floatArgs(tokens[2:6], 4)
	if !ok {
		return
	}

	axis, err := geometry.NewVector(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}
	angleRad := args[3] * math.Pi / 180
	if err = i.lines[idx].Rotate(axis, angleRad); err != nil {
		fmt.Fprintf(i.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(i.out, "Line %d rotated\n", idx)
}

func (i *Interpreter) removeIsolated(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[2])
	if !ok {
		return
	}

	i.lines[idx].RemoveMostIsolated()
	fmt.Fprintf(i.out, "Removed most isolated point from line %d\n", idx)
}

func (i *Interpreter) deleteLine(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(i.out, "Error: Not enough arguments")
		return
	}
	idx, ok := i.lineIndex(tokens[2])
	if !ok {
		return
	}

	i.lines = append(i.lines[:idx], i.lines[idx+1:]...)
	fmt.Fprintf(i.out, "Line %d deleted\n", idx)
}
