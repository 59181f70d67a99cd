package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	textPosAlive = "x"
	textPosDead  = "o"

	clearCmd = "clear"
)

// RenderMode selects the glyphs used by TerminalRenderer
type RenderMode string

const (
	// RenderASCII draws 'x' for alive and 'o' for dead cells.
	RenderASCII RenderMode = "ascii"
	// RenderBlocks draws full blocks for alive and blanks for dead cells.
	RenderBlocks RenderMode = "blocks"
)

// ParseRenderMode validates a render mode name
func ParseRenderMode(s string) (RenderMode, error) {
	switch mode := RenderMode(strings.ToLower(s)); mode {
	case RenderASCII, RenderBlocks:
		return mode, nil
	default:
		return "", errors.Errorf("[ParseRenderMode] unknown render mode: %q", s)
	}
}

// Renderer draws snapshots for a driver
type Renderer interface {
	Display(s Snapshot) error
	Clear()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out         io.Writer
	Mode        RenderMode
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer, mode RenderMode, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Mode: mode, ClearScreen: clearScreen}
}

// Display renders the snapshot, one line per row, followed by a blank line
func (r *TerminalRenderer) Display(s Snapshot) error {
	alive, dead := textPosAlive, textPosDead
	if r.Mode == RenderBlocks {
		alive, dead = gridPosBlock, gridPosEmpty
	}

	var sb strings.Builder
	for row := range s.Rows() {
		for column := range s.Columns() {
			if s.Alive(row, column) {
				sb.WriteString(alive)
			} else {
				sb.WriteString(dead)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrapf(err, "[Display] failed to write generation %d", s.Generation())
	}
	return nil
}

// Clear clears the terminal screen when ClearScreen is set
func (r *TerminalRenderer) Clear() {
	if !r.ClearScreen {
		return
	}
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
