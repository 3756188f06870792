package argv

import (
	"github.com/dzonerzy/go-argv/internal/flagset"
)

// Argument is the common face of every registered descriptor. Concrete kinds
// (KeyArgument, KeyValueArgument, PositionalArgument, HelpArgument,
// VersionArgument) compose a shared occurrence core with optional key and
// value capabilities.
type Argument interface {
	// Description returns the help text.
	Description() string
	// ErrorName returns the label used in error reports.
	ErrorName() string
	// WasFound reports whether the argument matched at least once in the
	// last pass.
	WasFound() bool
	// Occurrences returns how many times the argument matched.
	Occurrences() int
	// HasErrors reports whether any error flag is set.
	HasErrors() bool
	// ArgErrors returns the accumulated error flags.
	ArgErrors() flagset.Flags[ArgError]
	// IsFlagSet reports whether every bit of f is configured.
	IsFlagSet(f ArgFlag) bool

	// base exposes the shared occurrence core.
	base() *baseArgument
	// keyPart returns the key capability, or nil for key-less kinds.
	keyPart() *keyMixin
	// valuePart returns the value capability, or nil for value-less kinds.
	valuePart() *valueMixin

	// updateErrorFlags refreshes derived error flags after a pass.
	updateErrorFlags()
	// usageString renders the argument's usage-line token.
	usageString() string
}

// baseArgument carries the state every descriptor kind shares: configuration
// flags, accumulated errors, occurrence count, help text and the optional
// on-match callback.
type baseArgument struct {
	parser      *Parser
	flags       flagset.Flags[ArgFlag]
	errs        flagset.Flags[ArgError]
	occurrences int
	description string
	errorName   string
	onMatch     func()
	foundRef    *bool
}

func (b *baseArgument) base() *baseArgument    { return b }
func (b *baseArgument) keyPart() *keyMixin     { return nil }
func (b *baseArgument) valuePart() *valueMixin { return nil }

// Description returns the help text.
func (b *baseArgument) Description() string { return b.description }

// ErrorName returns the label used in error reports.
func (b *baseArgument) ErrorName() string { return b.errorName }

// WasFound reports whether the argument matched at least once.
func (b *baseArgument) WasFound() bool { return b.occurrences > 0 }

// Occurrences returns how many times the argument matched.
func (b *baseArgument) Occurrences() int { return b.occurrences }

// HasErrors reports whether any error flag is set.
func (b *baseArgument) HasErrors() bool { return b.errs.IsNotEmpty() }

// ArgErrors returns the accumulated error flags.
func (b *baseArgument) ArgErrors() flagset.Flags[ArgError] { return b.errs }

// IsFlagSet reports whether every bit of f is configured.
func (b *baseArgument) IsFlagSet(f ArgFlag) bool { return b.flags.IsSet(f) }

// setFound records one occurrence (or resets the count with found=false) and
// reports whether the occurrence was accepted. A rejected occurrence raises
// the repetition error without incrementing the count.
func (b *baseArgument) setFound(found bool) bool {
	if !found {
		b.occurrences = 0
		b.errs.Unset(ErrArgRepeated)
		if b.foundRef != nil {
			*b.foundRef = false
		}
		return true
	}
	if b.flags.IsSet(UniqueInstance) && b.occurrences > 0 {
		b.errs.Set(ErrArgRepeated)
		return false
	}
	b.occurrences++
	if b.foundRef != nil {
		*b.foundRef = true
	}
	return true
}

func (b *baseArgument) executeAction() {
	if b.onMatch != nil {
		b.onMatch()
	}
}

// updateErrorFlags refreshes the flags derived from occurrence state. The
// requiredness error is meaningful only after a completed pass.
func (b *baseArgument) updateErrorFlags() {
	if b.flags.IsSet(Mandatory) && b.occurrences == 0 && b.parser != nil && b.parser.hasParsed {
		b.errs.Set(ErrArgRequired)
	} else {
		b.errs.Unset(ErrArgRequired)
	}
}

func (b *baseArgument) usageString() string { return "" }
