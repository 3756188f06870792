package argv

import (
	"fmt"
	stdio "io"
	"strings"
)

// DefaultMenuID is the menu every registered argument joins automatically.
const DefaultMenuID = "main"

// HelpMenu is a named, printable view over a subset of the registered
// arguments. The default menu holds everything; extra menus group arguments
// for help triggers.
type HelpMenu struct {
	id      string
	parser  *Parser
	entries []Argument
}

// ID returns the menu identifier.
func (m *HelpMenu) ID() string { return m.id }

// AddEntry appends arg to the menu, ignoring duplicates.
func (m *HelpMenu) AddEntry(arg Argument) *HelpMenu {
	for _, e := range m.entries {
		if e == arg {
			return m
		}
	}
	m.entries = append(m.entries, arg)
	return m
}

// RemoveEntry drops arg from the menu.
func (m *HelpMenu) RemoveEntry(arg Argument) *HelpMenu {
	for i, e := range m.entries {
		if e == arg {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return m
}

// Entries returns the menu content in registration order.
func (m *HelpMenu) Entries() []Argument {
	out := make([]Argument, len(m.entries))
	copy(out, m.entries)
	return out
}

// Print renders the menu to w: a usage line, the program description on the
// default menu, and one aligned row per visible entry.
func (m *HelpMenu) Print(w stdio.Writer) {
	mgr := m.parser.outputManager()
	width := mgr.Width()

	visible := make([]Argument, 0, len(m.entries))
	for _, a := range m.entries {
		if a.IsFlagSet(Hidden) {
			continue
		}
		visible = append(visible, a)
	}

	usage := make([]string, 0, len(visible))
	for _, a := range visible {
		if tok := a.usageString(); tok != "" {
			usage = append(usage, tok)
		}
	}
	fmt.Fprintf(w, "%s %s %s\n", mgr.Title("Usage:"), m.parser.programName, strings.Join(usage, " "))
	if m.id == DefaultMenuID && m.parser.description != "" {
		fmt.Fprintf(w, "\n%s\n", m.parser.description)
	}
	if len(visible) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", mgr.Title("Options:"))

	shorts := make([]string, len(visible))
	longs := make([]string, len(visible))
	shortW, longW := 0, 0
	for i, a := range visible {
		shorts[i], longs[i] = helpLabels(a)
		if len(shorts[i]) > shortW {
			shortW = len(shorts[i])
		}
		if len(longs[i]) > longW {
			longW = len(longs[i])
		}
	}

	descCol := 2 + shortW + 1 + longW + 2
	for i, a := range visible {
		lines := wrapText(a.Description(), width-descCol)
		fmt.Fprintf(w, "  %s %s  %s\n",
			mgr.KeyText(pad(shorts[i], shortW)),
			mgr.KeyText(pad(longs[i], longW)),
			lines[0])
		for _, cont := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", descCol), cont)
		}
	}
}

// helpLabels splits an entry into its short-key and long-key help columns.
// Value placeholders render in the long column; positionals have no short
// column.
func helpLabels(a Argument) (short, long string) {
	km := a.keyPart()
	vm := a.valuePart()
	if km == nil {
		if pa, ok := a.(*PositionalArgument); ok {
			long = "<" + pa.UsageKey() + ">"
			if vm != nil && vm.maxCount > 1 {
				long += "..."
			}
		}
		return short, long
	}
	short = km.shortLabel()
	long = km.longLabel()
	if vm != nil && (vm.minCount > 0 || len(vm.valueNames) > 0) {
		if long != "" {
			long += " "
		}
		long += vm.valueTokens()
	}
	return short, long
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// wrapText splits s on spaces into lines of at most width characters. It
// always returns at least one line.
func wrapText(s string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}
