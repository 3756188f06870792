package argv

import (
	"strings"
)

// Key is one spelling of a keyed argument, classified by the prefix tables of
// the owning parser.
type Key struct {
	// Text is the full key as typed, prefix included.
	Text string
	// Long reports whether the key resolved to a long prefix.
	Long bool
}

// keyMixin is the key capability shared by KeyArgument, KeyValueArgument,
// HelpArgument and VersionArgument. The first registered key is canonical: it
// names the argument in usage lines and error reports.
type keyMixin struct {
	keys []Key
	sub  *Parser
}

func newKeyMixin(p *Parser, keys []string) keyMixin {
	if len(keys) == 0 {
		setupPanic(SetupNoKeySpecified, "at least one key is required")
	}
	for _, k := range keys {
		if k == "" {
			setupPanic(SetupNoKeySpecified, "keys must be non-empty")
		}
	}
	km := keyMixin{keys: make([]Key, len(keys))}
	for i, k := range keys {
		km.keys[i] = Key{Text: k}
	}
	km.classifyKeys(p)
	return km
}

// classifyKeys re-resolves every key against the parser prefix tables. The
// parser calls it again whenever the tables change.
func (k *keyMixin) classifyKeys(p *Parser) {
	for i := range k.keys {
		_, long := p.keyPrefix(k.keys[i].Text)
		k.keys[i].Long = long
	}
}

// frontKey returns the canonical key text.
func (k *keyMixin) frontKey() string { return k.keys[0].Text }

// Keys returns a copy of the registered keys.
func (k *keyMixin) Keys() []Key {
	out := make([]Key, len(k.keys))
	copy(out, k.keys)
	return out
}

// shortLabel renders the short keys column ("-c," when long keys follow).
// HelpMenu.Print measures these rendered labels for column alignment, so the
// label is the single source of key width.
func (k *keyMixin) shortLabel() string {
	var short []string
	hasLong := false
	for _, key := range k.keys {
		if key.Long {
			hasLong = true
		} else {
			short = append(short, key.Text)
		}
	}
	label := strings.Join(short, ", ")
	if label != "" && hasLong {
		label += ","
	}
	return label
}

// longLabel renders the long keys column.
func (k *keyMixin) longLabel() string {
	var long []string
	for _, key := range k.keys {
		if key.Long {
			long = append(long, key.Text)
		}
	}
	return strings.Join(long, ", ")
}
