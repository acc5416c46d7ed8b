// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wireframe/cli"
)

// runScript feeds newline-separated commands through a fresh interpreter
// and returns the transcript.
func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	it := cli.New(strings.NewReader(script), &out, zerolog.Nop())
	require.NoError(t, it.Run())

	return out.String()
}

// TestCreateAndLength drives the create/add/get-length path end to end.
func TestCreateAndLength(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"add point 0 0 0 0 A",
		"add point 0 1 0 0 B",
		"add point 0 1 1 0 C",
		"get length 0",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Created new line with index: 0")
	assert.Contains(t, out, "Point added to line 0")
	assert.Contains(t, out, "Length of line 0: 2")
}

// TestGetLines verifies the scene listing names every point.
func TestGetLines(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"add point 0 1 2 3 A",
		"get lines",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Total lines: 1")
	assert.Contains(t, out, "Line 0 (points: 1): A(1, 2, 3)")
}

// TestMerge verifies the move merge consumes and deletes the donor line.
func TestMerge(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"create line",
		"add point 0 0 0 0 A",
		"add point 1 1 0 0 B",
		"merge 0 1",
		"get lines",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Lines merged. Line 1 removed.")
	assert.Contains(t, out, "Total lines: 1")
	assert.Contains(t, out, "Line 0 (points: 2)")
}

// TestMerge_SelfIsRejected verifies merging a line into itself prints an
// error instead of corrupting the scene.
func TestMerge_SelfIsRejected(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"add point 0 0 0 0 A",
		"merge 0 0",
		"get lines",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "Total lines: 1", "the scene must be unchanged after a rejected merge")
}

// TestShiftRotateRemove covers the remaining mutating commands.
func TestShiftRotateRemove(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"add point 0 0 0 0 A",
		"add point 0 1 0 0 B",
		"add point 0 3 0 0 C",
		"shift 0 10 0 0",
		"rotate 0 0 0 1 90",
		"remove isolated 0",
		"get lines",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Line 0 shifted")
	assert.Contains(t, out, "Line 0 rotated")
	assert.Contains(t, out, "Removed most isolated point from line 0")
	assert.Contains(t, out, "Line 0 (points: 2)")
}

// TestDelLine verifies deletion reindexes the scene.
func TestDelLine(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"create line",
		"del line 0",
		"get lines",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Line 0 deleted")
	assert.Contains(t, out, "Total lines: 1")
}

// TestRender verifies a frame reaches the transcript with drawn content.
func TestRender(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"create line",
		"add point 0 -20 0 0 A",
		"add point 0 20 0 0 B",
		"render",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "*", "the frame must contain line characters")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
}

// TestErrors pins the user-facing failure messages: bad indexes, bad
// numbers, missing arguments and unknown commands never crash the loop.
func TestErrors(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"add point 5 0 0 0 A",
		"get length 0",
		"shift abc 1 2 3",
		"add point",
		"frobnicate",
		"create nonsense",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Error: Invalid line index")
	assert.Contains(t, out, "Error: Invalid arguments")
	assert.Contains(t, out, "Error: Not enough arguments")
	assert.Contains(t, out, "Unknown command. Type 'help' for available commands.")
}

// TestEOF verifies running out of input exits cleanly, like the exit
// command.
func TestEOF(t *testing.T) {
	out := runScript(t, "create line\n")
	assert.Contains(t, out, "Exiting program...")
}
