// Package argvio centralizes the writers, color policy and terminal
// capabilities used by parser output (help menus, error reports, version
// text). A Manager is owned by one parser; tests swap the writers for
// buffers and force the color mode off to get stable output.
package argvio

import (
	stdio "io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects how the manager decides whether to emit ANSI colors.
type ColorMode int

const (
	// ColorAuto enables colors only when writing to a terminal and the
	// NO_COLOR convention is not in effect.
	ColorAuto ColorMode = iota
	// ColorAlways emits colors unconditionally.
	ColorAlways
	// ColorNever suppresses colors unconditionally.
	ColorNever
)

// Manager bundles the input/output streams and rendering policy.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	mode          ColorMode
	widthOverride int

	titleColor *color.Color
	errColor   *color.Color
	warnColor  *color.Color
	keyColor   *color.Color
	faintColor *color.Color
}

// New returns a manager bound to the process stdio with automatic color
// detection.
func New() *Manager {
	return &Manager{
		in:         os.Stdin,
		out:        os.Stdout,
		err:        os.Stderr,
		titleColor: forced(color.Bold),
		errColor:   forced(color.FgRed, color.Bold),
		warnColor:  forced(color.FgYellow),
		keyColor:   forced(color.FgCyan),
		faintColor: forced(color.Faint),
	}
}

// forced builds a color that ignores fatih/color's global TTY heuristics;
// the manager applies its own policy in paint.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the error output writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// Color sets the color policy and returns the manager for chaining.
func (m *Manager) Color(mode ColorMode) *Manager { m.mode = mode; return m }

// WithWidth pins the rendering width, bypassing terminal detection.
func (m *Manager) WithWidth(w int) *Manager { m.widthOverride = w; return m }

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured error output writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// ColorEnabled reports whether output through this manager is colorized.
func (m *Manager) ColorEnabled() bool {
	switch m.mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the rendering width: the pinned override, the terminal width
// of the output stream, or 80 when neither is available.
func (m *Manager) Width() int {
	if m.widthOverride > 0 {
		return m.widthOverride
	}
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

func (m *Manager) paint(c *color.Color, s string) string {
	if !m.ColorEnabled() {
		return s
	}
	return c.Sprint(s)
}

// Title renders section titles (bold).
func (m *Manager) Title(s string) string { return m.paint(m.titleColor, s) }

// ErrorText renders error headers (bold red).
func (m *Manager) ErrorText(s string) string { return m.paint(m.errColor, s) }

// WarnText renders warnings (yellow).
func (m *Manager) WarnText(s string) string { return m.paint(m.warnColor, s) }

// KeyText renders argument keys and usage tokens (cyan).
func (m *Manager) KeyText(s string) string { return m.paint(m.keyColor, s) }

// FaintText renders secondary detail (faint).
func (m *Manager) FaintText(s string) string { return m.paint(m.faintColor, s) }
