package argv

// KeyValueArgument is a keyed argument that greedily consumes following
// tokens as values, within its configured cardinality. With the
// AssignmentOperator flag (on by default) a "key=value" token supplies the
// first value inline.
type KeyValueArgument struct {
	baseArgument
	keyMixin
	valueMixin
}

func (a *KeyValueArgument) keyPart() *keyMixin     { return &a.keyMixin }
func (a *KeyValueArgument) valuePart() *valueMixin { return &a.valueMixin }

// ErrorName returns the configured error label, defaulting to the canonical
// key.
func (a *KeyValueArgument) ErrorName() string {
	if a.errorName != "" {
		return a.errorName
	}
	return a.frontKey()
}

func (a *KeyValueArgument) updateErrorFlags() {
	a.baseArgument.updateErrorFlags()
	a.updateValueErrorFlags(&a.baseArgument)
}

func (a *KeyValueArgument) usageString() string {
	core := a.frontKey() + " " + a.valueTokens()
	if a.flags.IsSet(Mandatory) {
		return core
	}
	return "[" + core + "]"
}

// SetDescription sets the help text.
func (a *KeyValueArgument) SetDescription(text string) *KeyValueArgument {
	a.description = text
	return a
}

// SetErrorName overrides the label used in error reports.
func (a *KeyValueArgument) SetErrorName(name string) *KeyValueArgument {
	a.errorName = name
	return a
}

// SetFlags adds configuration flags.
func (a *KeyValueArgument) SetFlags(f ArgFlag) *KeyValueArgument {
	a.flags.Set(f)
	return a
}

// UnsetFlags removes configuration flags.
func (a *KeyValueArgument) UnsetFlags(f ArgFlag) *KeyValueArgument {
	a.flags.Unset(f)
	return a
}

// OnMatch installs a callback invoked once per accepted occurrence.
func (a *KeyValueArgument) OnMatch(fn func()) *KeyValueArgument {
	a.onMatch = fn
	return a
}

// BindFound mirrors the found state into out after every pass.
func (a *KeyValueArgument) BindFound(out *bool) *KeyValueArgument {
	a.foundRef = out
	return a
}

// InMenus adds the argument to the named help menus.
func (a *KeyValueArgument) InMenus(ids ...string) *KeyValueArgument {
	a.parser.addToMenus(a, ids)
	return a
}

// SetSubParser delegates everything after this key and its values to sub.
func (a *KeyValueArgument) SetSubParser(sub *Parser) *KeyValueArgument {
	a.sub = sub
	return a
}

// SetMinMax configures how many values the argument accepts per pass.
func (a *KeyValueArgument) SetMinMax(minCount, maxCount int) *KeyValueArgument {
	a.setMinMax(minCount, maxCount)
	return a
}

// SetRegexes binds one validation pattern per value position; the last
// pattern covers every later position. Bad patterns panic with a SetupError.
func (a *KeyValueArgument) SetRegexes(patterns ...string) *KeyValueArgument {
	a.setRegexes(patterns)
	return a
}

// SetValueNames names the value placeholders shown in usage and help output.
func (a *KeyValueArgument) SetValueNames(names ...string) *KeyValueArgument {
	a.valueNames = names
	return a
}

// FromEnv registers fallback environment variables consulted, in order, when
// the argument is absent from the command line. Comma-separated variable
// content fills multi-value arguments.
func (a *KeyValueArgument) FromEnv(vars ...string) *KeyValueArgument {
	a.envVars = vars
	return a
}
