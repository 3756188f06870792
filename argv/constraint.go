package argv

import "strings"

// ConstraintKind selects the relation a constraint enforces over its member
// arguments.
type ConstraintKind int

const (
	// MutuallyExclusive is violated when more than one member was found.
	MutuallyExclusive ConstraintKind = iota
	// OneOrMoreRequired is violated when no member was found.
	OneOrMoreRequired
)

// Constraint is a relation over two or more registered arguments, evaluated
// after every pass. Violations accumulate as parser errors; they never
// interrupt parsing.
type Constraint struct {
	kind     ConstraintKind
	members  []Argument
	violated bool
}

// Kind returns the enforced relation.
func (c *Constraint) Kind() ConstraintKind { return c.kind }

// Violated reports whether the last pass broke the constraint.
func (c *Constraint) Violated() bool { return c.violated }

// Members returns the constrained arguments.
func (c *Constraint) Members() []Argument {
	out := make([]Argument, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Constraint) check() {
	found := 0
	for _, m := range c.members {
		if m.WasFound() {
			found++
		}
	}
	switch c.kind {
	case MutuallyExclusive:
		c.violated = found > 1
	case OneOrMoreRequired:
		c.violated = found == 0
	}
}

func (c *Constraint) reset() { c.violated = false }

func (c *Constraint) describe() string {
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.ErrorName()
	}
	joined := strings.Join(names, ", ")
	switch c.kind {
	case MutuallyExclusive:
		return "arguments " + joined + " are mutually exclusive"
	case OneOrMoreRequired:
		return "at least one of " + joined + " is required"
	}
	return "constraint over " + joined
}
