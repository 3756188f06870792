package argv

// KeyArgument is a value-less switch matched by exact key ("-v", "--verbose").
// With the Grouping flag (on by default) single-character short keys can be
// chained in one token.
type KeyArgument struct {
	baseArgument
	keyMixin
}

func (a *KeyArgument) keyPart() *keyMixin { return &a.keyMixin }

// ErrorName returns the configured error label, defaulting to the canonical
// key.
func (a *KeyArgument) ErrorName() string {
	if a.errorName != "" {
		return a.errorName
	}
	return a.frontKey()
}

func (a *KeyArgument) usageString() string {
	if a.flags.IsSet(Mandatory) {
		return a.frontKey()
	}
	return "[" + a.frontKey() + "]"
}

// SetDescription sets the help text.
func (a *KeyArgument) SetDescription(text string) *KeyArgument {
	a.description = text
	return a
}

// SetErrorName overrides the label used in error reports.
func (a *KeyArgument) SetErrorName(name string) *KeyArgument {
	a.errorName = name
	return a
}

// SetFlags adds configuration flags.
func (a *KeyArgument) SetFlags(f ArgFlag) *KeyArgument {
	a.flags.Set(f)
	return a
}

// UnsetFlags removes configuration flags.
func (a *KeyArgument) UnsetFlags(f ArgFlag) *KeyArgument {
	a.flags.Unset(f)
	return a
}

// OnMatch installs a callback invoked once per accepted occurrence.
func (a *KeyArgument) OnMatch(fn func()) *KeyArgument {
	a.onMatch = fn
	return a
}

// BindFound mirrors the found state into out after every pass.
func (a *KeyArgument) BindFound(out *bool) *KeyArgument {
	a.foundRef = out
	return a
}

// InMenus adds the argument to the named help menus.
func (a *KeyArgument) InMenus(ids ...string) *KeyArgument {
	a.parser.addToMenus(a, ids)
	return a
}

// SetSubParser delegates everything after this key to sub: the remaining
// tokens of the pass are handed over as the sub-parser's own command line.
func (a *KeyArgument) SetSubParser(sub *Parser) *KeyArgument {
	a.sub = sub
	return a
}
