package argv

// PositionalArgument consumes bare tokens by position. Candidates are offered
// to positionals in registration order, skipping the ones already at
// capacity; a token one positional rejects moves on to the next.
type PositionalArgument struct {
	baseArgument
	valueMixin
	usageKey string
}

func (a *PositionalArgument) valuePart() *valueMixin { return &a.valueMixin }

// ErrorName returns the configured error label, defaulting to the usage key.
func (a *PositionalArgument) ErrorName() string {
	if a.errorName != "" {
		return a.errorName
	}
	return a.usageKey
}

// UsageKey returns the identifier the positional was registered under.
func (a *PositionalArgument) UsageKey() string { return a.usageKey }

func (a *PositionalArgument) updateErrorFlags() {
	a.baseArgument.updateErrorFlags()
	a.updateValueErrorFlags(&a.baseArgument)
}

func (a *PositionalArgument) usageString() string {
	core := "<" + a.usageKey + ">"
	if a.maxCount > 1 {
		core += "..."
	}
	if a.flags.IsSet(Mandatory) {
		return core
	}
	return "[" + core + "]"
}

// SetDescription sets the help text.
func (a *PositionalArgument) SetDescription(text string) *PositionalArgument {
	a.description = text
	return a
}

// SetErrorName overrides the label used in error reports.
func (a *PositionalArgument) SetErrorName(name string) *PositionalArgument {
	a.errorName = name
	return a
}

// SetFlags adds configuration flags.
func (a *PositionalArgument) SetFlags(f ArgFlag) *PositionalArgument {
	a.flags.Set(f)
	return a
}

// UnsetFlags removes configuration flags.
func (a *PositionalArgument) UnsetFlags(f ArgFlag) *PositionalArgument {
	a.flags.Unset(f)
	return a
}

// OnMatch installs a callback invoked when the positional starts matching.
func (a *PositionalArgument) OnMatch(fn func()) *PositionalArgument {
	a.onMatch = fn
	return a
}

// BindFound mirrors the found state into out after every pass.
func (a *PositionalArgument) BindFound(out *bool) *PositionalArgument {
	a.foundRef = out
	return a
}

// InMenus adds the argument to the named help menus.
func (a *PositionalArgument) InMenus(ids ...string) *PositionalArgument {
	a.parser.addToMenus(a, ids)
	return a
}

// SetMinMax configures how many values the positional accepts per pass.
func (a *PositionalArgument) SetMinMax(minCount, maxCount int) *PositionalArgument {
	a.setMinMax(minCount, maxCount)
	return a
}

// SetRegexes binds one validation pattern per value position; the last
// pattern covers every later position.
func (a *PositionalArgument) SetRegexes(patterns ...string) *PositionalArgument {
	a.setRegexes(patterns)
	return a
}

// FromEnv registers fallback environment variables consulted when the
// positional received nothing from the command line.
func (a *PositionalArgument) FromEnv(vars ...string) *PositionalArgument {
	a.envVars = vars
	return a
}
