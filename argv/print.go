package argv

import (
	"fmt"
	stdio "io"
	"sort"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// PrintHelp renders the named menu (or the default menu) to the output
// stream.
func (p *Parser) PrintHelp(menuID ...string) {
	id := DefaultMenuID
	if len(menuID) > 0 {
		id = menuID[0]
	}
	p.Menu(id).Print(p.out.Out())
}

// PrintVersion writes the program name and version text to the output
// stream.
func (p *Parser) PrintVersion() {
	if p.versionArg == nil {
		return
	}
	fmt.Fprintf(p.out.Out(), "%s %s\n", p.programName, p.versionArg.VersionText())
}

// PrintErrors writes the aggregated error report of the last pass to the
// error stream: per-argument problems first, then constraint violations, then
// unrecognized tokens with optional suggestions.
func (p *Parser) PrintErrors() {
	w := p.out.Err()
	for _, a := range p.ordered {
		p.printArgErrors(w, a)
	}
	for _, c := range p.constraints {
		if c.Violated() {
			fmt.Fprintf(w, "%s %s\n", p.errorLabel(), c.describe())
		}
	}
	for _, tok := range p.unrecognized {
		fmt.Fprintf(w, "%s unrecognized argument %q\n", p.errorLabel(), tok)
		if p.flags.IsSet(Suggestions) {
			if hint := p.suggestFor(tok); hint != "" {
				fmt.Fprintf(w, "  did you mean %q?\n", hint)
			}
		}
	}
}

func (p *Parser) errorLabel() string {
	return p.out.ErrorText(p.errorID + ":")
}

func (p *Parser) printArgErrors(w stdio.Writer, a Argument) {
	if !a.HasErrors() {
		return
	}
	name := p.out.KeyText(a.ErrorName())
	errs := a.ArgErrors()
	if errs.IsSet(ErrArgRequired) {
		fmt.Fprintf(w, "%s %s is required\n", p.errorLabel(), name)
	}
	if errs.IsSet(ErrArgRepeated) {
		fmt.Fprintf(w, "%s %s may appear at most once\n", p.errorLabel(), name)
	}
	vm := a.valuePart()
	if vm != nil {
		if errs.IsSet(ErrArgMinValues) {
			fmt.Fprintf(w, "%s %s expects at least %d value(s)\n", p.errorLabel(), name, vm.minCount)
		}
		if errs.IsSet(ErrArgMaxValues) {
			fmt.Fprintf(w, "%s %s accepts at most %d value(s)\n", p.errorLabel(), name, vm.maxCount)
		}
		if errs.IsSet(ErrArgValues) {
			for _, v := range vm.values {
				if v.HasErrors() {
					fmt.Fprintf(w, "%s %s: %s (%q)\n", p.errorLabel(), name, v.ErrorMessage(), v.Raw())
				}
			}
		}
	}
}

// suggestFor finds the registered key closest to tok, if any is close enough.
func (p *Parser) suggestFor(tok string) string {
	keys := make([]string, 0, len(p.lookup))
	for k := range p.lookup {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fuzzy.SuggestKey(tok, keys, 2)
}
