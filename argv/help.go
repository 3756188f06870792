package argv

import (
	"regexp"
	"strings"
)

// menuTrigger maps a pattern over the help argument's values to a menu id.
type menuTrigger struct {
	re     *regexp.Regexp
	menuID string
}

// HelpArgument prints a help menu when matched. It optionally accepts one
// value; menu triggers pick which registered menu the value selects, falling
// back to the default menu.
type HelpArgument struct {
	baseArgument
	keyMixin
	valueMixin
	triggers []menuTrigger
}

func (a *HelpArgument) keyPart() *keyMixin     { return &a.keyMixin }
func (a *HelpArgument) valuePart() *valueMixin { return &a.valueMixin }

// ErrorName returns the configured error label, defaulting to the canonical
// key.
func (a *HelpArgument) ErrorName() string {
	if a.errorName != "" {
		return a.errorName
	}
	return a.frontKey()
}

func (a *HelpArgument) updateErrorFlags() {
	a.baseArgument.updateErrorFlags()
	a.updateValueErrorFlags(&a.baseArgument)
}

func (a *HelpArgument) usageString() string {
	return "[" + a.frontKey() + "]"
}

// AddMenuTrigger routes help requests whose value matches pattern to the menu
// with the given id. Triggers are checked in registration order.
func (a *HelpArgument) AddMenuTrigger(pattern, menuID string) *HelpArgument {
	re, err := regexp.Compile(pattern)
	if err != nil {
		setupPanic(SetupBadPattern, "pattern %q: %v", pattern, err)
	}
	if _, ok := a.parser.menus[menuID]; !ok {
		setupPanic(SetupMenuNotFound, "help menu %q is not registered", menuID)
	}
	a.triggers = append(a.triggers, menuTrigger{re: re, menuID: menuID})
	return a
}

// selectMenu resolves the menu the last pass asked for.
func (a *HelpArgument) selectMenu() string {
	if len(a.values) == 0 {
		return DefaultMenuID
	}
	raws := make([]string, len(a.values))
	for i, v := range a.values {
		raws[i] = v.Raw()
	}
	joined := strings.Join(raws, " ")
	for _, t := range a.triggers {
		if t.re.MatchString(joined) {
			return t.menuID
		}
	}
	return DefaultMenuID
}

// SetDescription sets the help text.
func (a *HelpArgument) SetDescription(text string) *HelpArgument {
	a.description = text
	return a
}

// SetErrorName overrides the label used in error reports.
func (a *HelpArgument) SetErrorName(name string) *HelpArgument {
	a.errorName = name
	return a
}

// SetFlags adds configuration flags.
func (a *HelpArgument) SetFlags(f ArgFlag) *HelpArgument {
	a.flags.Set(f)
	return a
}

// UnsetFlags removes configuration flags.
func (a *HelpArgument) UnsetFlags(f ArgFlag) *HelpArgument {
	a.flags.Unset(f)
	return a
}

// OnMatch installs a callback invoked once per accepted occurrence.
func (a *HelpArgument) OnMatch(fn func()) *HelpArgument {
	a.onMatch = fn
	return a
}

// InMenus adds the argument to the named help menus.
func (a *HelpArgument) InMenus(ids ...string) *HelpArgument {
	a.parser.addToMenus(a, ids)
	return a
}
