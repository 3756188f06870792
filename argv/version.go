package argv

// VersionArgument prints the program version when matched. A parser holds at
// most one.
type VersionArgument struct {
	baseArgument
	keyMixin
	versionText string
}

func (a *VersionArgument) keyPart() *keyMixin { return &a.keyMixin }

// ErrorName returns the configured error label, defaulting to the canonical
// key.
func (a *VersionArgument) ErrorName() string {
	if a.errorName != "" {
		return a.errorName
	}
	return a.frontKey()
}

// VersionText returns the text printed when the argument triggers.
func (a *VersionArgument) VersionText() string { return a.versionText }

func (a *VersionArgument) usageString() string {
	return "[" + a.frontKey() + "]"
}

// SetDescription sets the help text.
func (a *VersionArgument) SetDescription(text string) *VersionArgument {
	a.description = text
	return a
}

// SetErrorName overrides the label used in error reports.
func (a *VersionArgument) SetErrorName(name string) *VersionArgument {
	a.errorName = name
	return a
}

// SetFlags adds configuration flags.
func (a *VersionArgument) SetFlags(f ArgFlag) *VersionArgument {
	a.flags.Set(f)
	return a
}

// UnsetFlags removes configuration flags.
func (a *VersionArgument) UnsetFlags(f ArgFlag) *VersionArgument {
	a.flags.Unset(f)
	return a
}

// OnMatch installs a callback invoked once per accepted occurrence.
func (a *VersionArgument) OnMatch(fn func()) *VersionArgument {
	a.onMatch = fn
	return a
}

// InMenus adds the argument to the named help menus.
func (a *VersionArgument) InMenus(ids ...string) *VersionArgument {
	a.parser.addToMenus(a, ids)
	return a
}
