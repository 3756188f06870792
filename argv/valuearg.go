package argv

import (
	"regexp"
	"strings"

	"github.com/dzonerzy/go-argv/internal/cast"
)

// valueMixin is the value capability shared by KeyValueArgument,
// PositionalArgument and HelpArgument. It stores validated values up to a
// configured cardinality; per-position regexes and casters repeat their last
// entry for positions beyond the configured lists.
type valueMixin struct {
	values     []*Value
	minCount   int
	maxCount   int
	regexes    []*regexp.Regexp
	casters    []cast.Caster
	valueNames []string
	envVars    []string
}

func newValueMixin(minCount, maxCount int) valueMixin {
	if minCount < 0 || maxCount < 1 || minCount > maxCount {
		setupPanic(SetupBadInterval, "invalid cardinality [%d, %d]", minCount, maxCount)
	}
	return valueMixin{minCount: minCount, maxCount: maxCount}
}

func (m *valueMixin) setMinMax(minCount, maxCount int) {
	if minCount < 0 || maxCount < 1 || minCount > maxCount {
		setupPanic(SetupBadInterval, "invalid cardinality [%d, %d]", minCount, maxCount)
	}
	m.minCount, m.maxCount = minCount, maxCount
}

// nextRegex returns the regex bound to the next value position; the last
// configured pattern covers every later position.
func (m *valueMixin) nextRegex() *regexp.Regexp {
	if len(m.regexes) == 0 {
		return nil
	}
	i := len(m.values)
	if i >= len(m.regexes) {
		i = len(m.regexes) - 1
	}
	return m.regexes[i]
}

// nextCaster returns the caster bound to the next value position; the last
// configured caster covers every later position.
func (m *valueMixin) nextCaster() cast.Caster {
	if len(m.casters) == 0 {
		return nil
	}
	i := len(m.values)
	if i >= len(m.casters) {
		i = len(m.casters) - 1
	}
	return m.casters[i]
}

// addValue stores s unconditionally, keeping validation errors on the stored
// Value. At capacity it stores nothing and raises the cardinality error on
// the owner.
func (m *valueMixin) addValue(s string, owner *baseArgument) bool {
	if len(m.values) >= m.maxCount {
		owner.errs.Set(ErrArgMaxValues)
		return false
	}
	m.values = append(m.values, newValue(s, m.nextRegex(), m.nextCaster()))
	return true
}

// tryAddValue stores s only when it validates cleanly and capacity remains.
// Unlike addValue it never corrupts argument state: a rejection leaves no
// value and no error flag behind.
func (m *valueMixin) tryAddValue(s string) bool {
	if len(m.values) >= m.maxCount {
		return false
	}
	v := newValue(s, m.nextRegex(), m.nextCaster())
	if v.HasErrors() {
		return false
	}
	m.values = append(m.values, v)
	return true
}

// addCaster appends c as the validator for the next unbound value position.
// Growing the caster list beyond the current maximum raises the maximum to
// match, so binding three holders accepts three values.
func (m *valueMixin) addCaster(c cast.Caster, grow bool) {
	m.casters = append(m.casters, c)
	if grow && len(m.casters) > m.maxCount {
		m.maxCount = len(m.casters)
	}
}

func (m *valueMixin) setRegexes(patterns []string) {
	regexes := make([]*regexp.Regexp, len(patterns))
	for i, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			setupPanic(SetupBadPattern, "pattern %q: %v", pat, err)
		}
		regexes[i] = re
	}
	m.regexes = regexes
}

// updateValueErrorFlags refreshes the value-derived error flags after a pass
// and trims values beyond the maximum from the back.
func (m *valueMixin) updateValueErrorFlags(b *baseArgument) {
	if b.occurrences > 0 && len(m.values) < m.minCount {
		b.errs.Set(ErrArgMinValues)
	} else {
		b.errs.Unset(ErrArgMinValues)
	}
	if len(m.values) > m.maxCount {
		m.values = m.values[:m.maxCount]
		b.errs.Set(ErrArgMaxValues)
	}
	hasBad := false
	for _, v := range m.values {
		if v.HasErrors() {
			hasBad = true
			break
		}
	}
	if hasBad {
		b.errs.Set(ErrArgValues)
	} else {
		b.errs.Unset(ErrArgValues)
	}
}

// resetValues discards stored values and rolls back holder side effects so a
// parser re-run starts clean.
func (m *valueMixin) resetValues() {
	m.values = nil
	for _, c := range m.casters {
		c.Reset()
	}
}

// Values returns the stored values in acceptance order.
func (m *valueMixin) Values() []*Value {
	out := make([]*Value, len(m.values))
	copy(out, m.values)
	return out
}

// CountValues returns how many values are stored.
func (m *valueMixin) CountValues() int { return len(m.values) }

// valueTokens renders the value placeholders for usage lines and help
// columns, with a trailing ellipsis when more values fit than names exist.
func (m *valueMixin) valueTokens() string {
	if len(m.valueNames) == 0 {
		tok := "<value>"
		if m.maxCount > 1 {
			tok += "..."
		}
		return tok
	}
	parts := make([]string, 0, len(m.valueNames)+1)
	for _, n := range m.valueNames {
		parts = append(parts, "<"+n+">")
	}
	if m.maxCount > len(m.valueNames) {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}

// valueBearing is the constraint satisfied by argument kinds with a value
// capability; the generic binding helpers below preserve the concrete type
// for fluent chaining.
type valueBearing interface {
	Argument
}

// Bind attaches out as the holder for the next value position of a and raises
// the maximum cardinality to cover every bound holder. Binding two scalars
// routes the first value into the first holder and the second into the
// second.
func Bind[T any, A valueBearing](a A, out *T) A {
	vm := a.valuePart()
	if vm == nil {
		setupPanic(SetupNoValues, "argument %q cannot hold values", a.ErrorName())
	}
	vm.addCaster(cast.Scalar(out), true)
	return a
}

// BindAll attaches out as an accumulating holder: every value from its
// position onward is appended. The maximum cardinality is left alone.
func BindAll[T any, A valueBearing](a A, out *[]T) A {
	vm := a.valuePart()
	if vm == nil {
		setupPanic(SetupNoValues, "argument %q cannot hold values", a.ErrorName())
	}
	vm.addCaster(cast.Appender(out), false)
	return a
}

// Check attaches a holderless validator of type T for the next value
// position of a.
func Check[T any, A valueBearing](a A) A {
	vm := a.valuePart()
	if vm == nil {
		setupPanic(SetupNoValues, "argument %q cannot hold values", a.ErrorName())
	}
	vm.addCaster(cast.Checker[T](), false)
	return a
}
