package argv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dzonerzy/go-argv/internal/flagset"
	argvio "github.com/dzonerzy/go-argv/io"
)

// Exit statuses used by the automatic exit behaviors.
const (
	ExitSuccess    = 0
	ExitUsageError = 2
)

// parseState drives the token loop. Each token enters at stateParseString and
// falls through the match attempts in order: exact key, assignment operator,
// grouped short keys, positional, unrecognized.
type parseState int

const (
	stateStart parseState = iota
	stateReadArg
	stateParseString
	stateParseKeyArg
	stateParseEqOperator
	stateParseGroupingArgs
	stateParsePositionalArg
	stateParseUnrecognizedArg
	stateQuit
	stateFinish
)

// Parser owns the registered argument descriptors and runs passes over token
// lists. Registration mistakes panic with a *SetupError; parse-time problems
// only accumulate as error flags, queryable after the pass.
type Parser struct {
	programName string
	description string
	flags       flagset.Flags[ParserFlag]
	errs        flagset.Flags[ParserError]

	ordered     []Argument
	lookup      map[string]Argument
	registry    map[string]Argument
	positionals []*PositionalArgument
	constraints []*Constraint
	menus       map[string]*HelpMenu
	helpArgs    []*HelpArgument
	versionArg  *VersionArgument

	shortPrefixes []string
	longPrefixes  []string

	unrecognized    []string
	maxUnrecognized int
	errorID         string
	defaults        map[string]any

	out    *argvio.Manager
	logger *argvio.Logger
	exit   func(int)

	hasParsed    bool
	lastResolved Argument
}

// NewParser returns an empty parser for the named program. The default
// prefixes are "-" (short) and "--" (long); a default help menu is installed
// under DefaultMenuID.
func NewParser(program, description string) *Parser {
	p := &Parser{
		programName:     program,
		description:     description,
		flags:           flagset.Of(DefaultParserFlags),
		lookup:          make(map[string]Argument),
		registry:        make(map[string]Argument),
		menus:           make(map[string]*HelpMenu),
		shortPrefixes:   []string{"-"},
		longPrefixes:    []string{"--"},
		maxUnrecognized: 1,
		errorID:         "error",
		out:             argvio.New(),
		exit:            os.Exit,
	}
	p.menus[DefaultMenuID] = &HelpMenu{id: DefaultMenuID, parser: p}
	return p
}

// SetFlags adds parser flags.
func (p *Parser) SetFlags(f ParserFlag) *Parser {
	p.flags.Set(f)
	if f&ColoredOutput != 0 {
		p.out.Color(argvio.ColorAuto)
	}
	return p
}

// UnsetFlags removes parser flags.
func (p *Parser) UnsetFlags(f ParserFlag) *Parser {
	p.flags.Unset(f)
	if f&ColoredOutput != 0 {
		p.out.Color(argvio.ColorNever)
	}
	return p
}

// IsFlagSet reports whether every bit of f is configured.
func (p *Parser) IsFlagSet(f ParserFlag) bool { return p.flags.IsSet(f) }

// SetPrefixes replaces the key prefix tables and reclassifies every
// registered key.
func (p *Parser) SetPrefixes(short, long []string) *Parser {
	for _, pfx := range append(append([]string{}, short...), long...) {
		if pfx == "" {
			setupPanic(SetupBadPrefix, "prefixes must be non-empty")
		}
	}
	p.shortPrefixes = append([]string{}, short...)
	p.longPrefixes = append([]string{}, long...)
	for _, a := range p.ordered {
		if km := a.keyPart(); km != nil {
			km.classifyKeys(p)
		}
	}
	return p
}

// SetMaxUnrecognized caps how many unrecognized tokens are kept per pass.
func (p *Parser) SetMaxUnrecognized(n int) *Parser {
	if n < 0 {
		n = 0
	}
	p.maxUnrecognized = n
	return p
}

// SetErrorID replaces the "error" label prefixing error report lines.
func (p *Parser) SetErrorID(id string) *Parser {
	p.errorID = id
	return p
}

// OnExit replaces the process exit hook used by the ExitOn* behaviors.
func (p *Parser) OnExit(fn func(code int)) *Parser {
	p.exit = fn
	return p
}

// Trace toggles parse tracing through the parser's output manager.
func (p *Parser) Trace(enable bool) *Parser {
	if enable {
		p.logger = argvio.NewLogger(p.out).WithLevel(argvio.LevelDebug).WithScope("argv")
	} else {
		p.logger = nil
	}
	return p
}

// IO returns the output manager for stream and color configuration.
func (p *Parser) IO() *argvio.Manager { return p.out }

// ProgramName returns the name used in usage lines and error reports.
func (p *Parser) ProgramName() string { return p.programName }

func (p *Parser) trace(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}

func (p *Parser) outputManager() *argvio.Manager { return p.out }

// register indexes a keyed or positional argument under its query names.
func (p *Parser) register(a Argument, names []string, keyed bool) {
	for _, name := range names {
		if _, exists := p.registry[name]; exists {
			setupPanic(SetupKeyExists, "key %q is already registered", name)
		}
	}
	for _, name := range names {
		p.registry[name] = a
		if keyed {
			p.lookup[name] = a
		}
	}
	p.ordered = append(p.ordered, a)
	p.menus[DefaultMenuID].AddEntry(a)
}

// AddKeyArgument registers a value-less switch under the given keys. The
// first key is canonical.
func (p *Parser) AddKeyArgument(keys ...string) *KeyArgument {
	a := &KeyArgument{}
	a.baseArgument = baseArgument{parser: p, flags: flagset.Of(DefaultKeyArgFlags)}
	a.keyMixin = newKeyMixin(p, keys)
	p.register(a, keys, true)
	return a
}

// AddKeyValueArgument registers a keyed argument accepting one value by
// default; SetMinMax and the binding helpers widen the cardinality.
func (p *Parser) AddKeyValueArgument(keys ...string) *KeyValueArgument {
	a := &KeyValueArgument{}
	a.baseArgument = baseArgument{parser: p, flags: flagset.Of(DefaultKeyValueArgFlags)}
	a.keyMixin = newKeyMixin(p, keys)
	a.valueMixin = newValueMixin(1, 1)
	p.register(a, keys, true)
	return a
}

// AddPositionalArgument registers a positional consuming one mandatory value
// by default; the usage key names it in queries, usage lines and errors.
func (p *Parser) AddPositionalArgument(usageKey string) *PositionalArgument {
	if usageKey == "" {
		setupPanic(SetupNoValueID, "positional arguments need a usage key")
	}
	a := &PositionalArgument{usageKey: usageKey}
	a.baseArgument = baseArgument{parser: p, flags: flagset.Of(DefaultPositionalArgFlags)}
	a.valueMixin = newValueMixin(1, 1)
	p.register(a, []string{usageKey}, false)
	p.positionals = append(p.positionals, a)
	return a
}

// AddHelpArgument registers a help switch that prints a menu when matched. It
// optionally accepts one value routed through menu triggers.
func (p *Parser) AddHelpArgument(keys ...string) *HelpArgument {
	a := &HelpArgument{}
	a.baseArgument = baseArgument{
		parser:      p,
		flags:       flagset.Of(DefaultHelpArgFlags),
		description: "print this help menu and exit",
	}
	a.keyMixin = newKeyMixin(p, keys)
	a.valueMixin = newValueMixin(0, 1)
	p.register(a, keys, true)
	p.helpArgs = append(p.helpArgs, a)
	return a
}

// AddVersionArgument registers the version switch. A parser holds at most
// one.
func (p *Parser) AddVersionArgument(version string, keys ...string) *VersionArgument {
	if p.versionArg != nil {
		setupPanic(SetupVersionExists, "a version argument is already registered")
	}
	a := &VersionArgument{versionText: version}
	a.baseArgument = baseArgument{
		parser:      p,
		flags:       flagset.Of(DefaultVersionArgFlags),
		description: "print the program version and exit",
	}
	a.keyMixin = newKeyMixin(p, keys)
	p.register(a, keys, true)
	p.versionArg = a
	return a
}

// AddConstraint registers a relation over previously registered arguments,
// named by key or usage key. Constraints need at least two distinct members;
// mutually exclusive members cannot be mandatory.
func (p *Parser) AddConstraint(kind ConstraintKind, keys ...string) *Constraint {
	var members []Argument
	for _, k := range keys {
		arg := p.argByKey(k)
		dup := false
		for _, m := range members {
			if m == arg {
				dup = true
				break
			}
		}
		if !dup {
			members = append(members, arg)
		}
	}
	if len(members) < 2 {
		setupPanic(SetupBadConstraint, "constraints need at least two distinct arguments")
	}
	if kind == MutuallyExclusive {
		for _, m := range members {
			if m.IsFlagSet(Mandatory) {
				setupPanic(SetupBadConstraint,
					"mandatory argument %q cannot be mutually exclusive", m.ErrorName())
			}
		}
	}
	c := &Constraint{kind: kind, members: members}
	p.constraints = append(p.constraints, c)
	return c
}

// AddHelpMenu registers an extra, initially empty help menu.
func (p *Parser) AddHelpMenu(id string) *HelpMenu {
	if id == "" {
		setupPanic(SetupMenuNotFound, "menu ids must be non-empty")
	}
	if _, exists := p.menus[id]; exists {
		setupPanic(SetupKeyExists, "help menu %q is already registered", id)
	}
	m := &HelpMenu{id: id, parser: p}
	p.menus[id] = m
	return m
}

// Menu returns the registered menu with the given id.
func (p *Parser) Menu(id string) *HelpMenu {
	m, ok := p.menus[id]
	if !ok {
		setupPanic(SetupMenuNotFound, "help menu %q is not registered", id)
	}
	return m
}

func (p *Parser) addToMenus(a Argument, ids []string) {
	for _, id := range ids {
		p.Menu(id).AddEntry(a)
	}
}

// keyPrefix resolves the longest configured prefix of tok. On equal length
// the long table wins.
func (p *Parser) keyPrefix(tok string) (prefix string, long bool) {
	for _, pfx := range p.longPrefixes {
		if strings.HasPrefix(tok, pfx) && len(pfx) > len(prefix) {
			prefix, long = pfx, true
		}
	}
	for _, pfx := range p.shortPrefixes {
		if strings.HasPrefix(tok, pfx) && len(pfx) > len(prefix) {
			prefix, long = pfx, false
		}
	}
	return prefix, long
}

// matchAssignment splits "key=value" tokens. The operator must sit past the
// second byte with a non-empty value, and the key must resolve to a
// value-bearing argument with the AssignmentOperator flag.
func (p *Parser) matchAssignment(tok string) (Argument, string, bool) {
	idx := strings.Index(tok, "=")
	if idx <= 1 || idx == len(tok)-1 {
		return nil, "", false
	}
	arg, ok := p.lookup[tok[:idx]]
	if !ok || arg.valuePart() == nil || !arg.IsFlagSet(AssignmentOperator) {
		return nil, "", false
	}
	return arg, tok[idx+1:], true
}

// groupChain resolves a token like "-abc" into its component grouping keys.
// Every character after the prefix must resolve, or the token is not a chain.
func (p *Parser) groupChain(tok string) ([]Argument, bool) {
	prefix, _ := p.keyPrefix(tok)
	if prefix == "" {
		return nil, false
	}
	body := tok[len(prefix):]
	if len(body) < 2 {
		return nil, false
	}
	chain := make([]Argument, 0, len(body))
	for _, r := range body {
		arg, ok := p.lookup[prefix+string(r)]
		if !ok || !arg.IsFlagSet(Grouping) {
			return nil, false
		}
		chain = append(chain, arg)
	}
	return chain, true
}

// ParseOSArgs runs a pass over the process command line.
func (p *Parser) ParseOSArgs() { p.Parse(os.Args) }

// Parse runs one pass over args, where args[0] is the program name. A pass
// never fails midway: every problem is recorded as error flags on the parser
// and its arguments. Re-running Parse resets all previous parse state first.
func (p *Parser) Parse(args []string) {
	st := stateStart
	i := 0
	var tok string
	var matched Argument
	var inline string
	var hasInline bool

	for st != stateFinish {
		switch st {
		case stateStart:
			p.resetParseState()
			if p.programName == "" && len(args) > 0 {
				p.programName = filepath.Base(args[0])
			}
			i = 1
			st = stateReadArg

		case stateReadArg:
			if i >= len(args) {
				st = stateQuit
				continue
			}
			tok = args[i]
			p.trace("token %d: %q", i, tok)
			st = stateParseString

		case stateParseString:
			if arg, ok := p.lookup[tok]; ok && arg.keyPart() != nil {
				matched, hasInline = arg, false
				st = stateParseKeyArg
			} else {
				st = stateParseEqOperator
			}

		case stateParseKeyArg:
			if hasInline {
				i = p.handleKeyArgument(matched, &inline, args, i)
			} else {
				i = p.handleKeyArgument(matched, nil, args, i)
			}
			st = stateReadArg

		case stateParseEqOperator:
			if arg, val, ok := p.matchAssignment(tok); ok {
				p.trace("assignment: %q", tok)
				matched, inline, hasInline = arg, val, true
				st = stateParseKeyArg
			} else {
				st = stateParseGroupingArgs
			}

		case stateParseGroupingArgs:
			if chain, ok := p.groupChain(tok); ok {
				p.trace("grouped keys: %q", tok)
				for n, ga := range chain {
					if n == len(chain)-1 {
						i = p.handleKeyArgument(ga, nil, args, i)
					} else {
						p.handleKeyArgument(ga, nil, nil, i)
					}
				}
				st = stateReadArg
			} else {
				st = stateParsePositionalArg
			}

		case stateParsePositionalArg:
			if p.acceptPositional(tok) {
				i++
				st = stateReadArg
			} else {
				st = stateParseUnrecognizedArg
			}

		case stateParseUnrecognizedArg:
			p.trace("unrecognized: %q", tok)
			if len(p.unrecognized) < p.maxUnrecognized {
				p.unrecognized = append(p.unrecognized, tok)
			}
			i++
			st = stateReadArg

		case stateQuit:
			p.finishParse()
			st = stateFinish
		}
	}
}

// handleKeyArgument records one occurrence of arg and, for value-bearing
// kinds, greedily consumes following tokens as values: forced while below the
// minimum, validity-gated after, stopping at the first rejection. It returns
// the index of the next unconsumed token. A nil args slice limits handling to
// the occurrence itself (grouped inner keys).
func (p *Parser) handleKeyArgument(arg Argument, inline *string, args []string, i int) int {
	next := i + 1
	b := arg.base()
	p.lastResolved = arg
	if !b.setFound(true) {
		return next
	}
	b.executeAction()

	if vm := arg.valuePart(); vm != nil {
		if inline != nil {
			vm.addValue(*inline, b)
		}
		for args != nil && next < len(args) {
			cand := args[next]
			if !p.consumableAsValue(arg, cand) {
				break
			}
			if len(vm.values) < vm.minCount {
				vm.addValue(cand, b)
			} else if !vm.tryAddValue(cand) {
				break
			}
			next++
		}
	}

	if km := arg.keyPart(); km != nil && km.sub != nil && args != nil {
		next += p.delegateSubParser(km, args, next)
	}
	return next
}

// consumableAsValue reports whether cand may be consumed as a value of arg.
// Prefixed tokens need ValuesWithPrefix. KeysAsValues lifts only the
// registered-key check: assignment-shaped and group-chain tokens always keep
// their own handling.
func (p *Parser) consumableAsValue(arg Argument, cand string) bool {
	if prefix, _ := p.keyPrefix(cand); prefix != "" && !arg.IsFlagSet(ValuesWithPrefix) {
		return false
	}
	if _, ok := p.lookup[cand]; ok && !arg.IsFlagSet(KeysAsValues) {
		return false
	}
	if _, _, ok := p.matchAssignment(cand); ok {
		return false
	}
	if _, ok := p.groupChain(cand); ok {
		return false
	}
	return true
}

// acceptPositional offers tok to the registered positionals in order. The
// occurrence and action fire once per uninterrupted run of tokens landing in
// the same positional.
func (p *Parser) acceptPositional(tok string) bool {
	prefix, _ := p.keyPrefix(tok)
	for _, pa := range p.positionals {
		vm := &pa.valueMixin
		if len(vm.values) >= vm.maxCount {
			continue
		}
		if prefix != "" && !pa.IsFlagSet(ValuesWithPrefix) {
			continue
		}
		accepted := false
		if len(vm.values) < vm.minCount {
			vm.addValue(tok, &pa.baseArgument)
			accepted = true
		} else {
			accepted = vm.tryAddValue(tok)
		}
		if !accepted {
			continue
		}
		if p.lastResolved != Argument(pa) {
			pa.setFound(true)
			pa.executeAction()
		}
		p.lastResolved = pa
		p.trace("positional %q took %q", pa.usageKey, tok)
		return true
	}
	return false
}

// delegateSubParser hands the remaining tokens to the sub-parser as its own
// command line and reports how many were consumed.
func (p *Parser) delegateSubParser(km *keyMixin, args []string, from int) int {
	if from > len(args) {
		return 0
	}
	rest := args[from:]
	subArgs := make([]string, 0, len(rest)+1)
	subArgs = append(subArgs, km.frontKey())
	subArgs = append(subArgs, rest...)
	p.trace("delegating %d token(s) to sub-parser %q", len(rest), km.frontKey())
	km.sub.Parse(subArgs)
	return len(rest)
}

// finishParse completes a pass: defaults injection, error flag refresh,
// constraint checks and the automatic output behaviors.
func (p *Parser) finishParse() {
	p.hasParsed = true
	p.applyDefaults()
	for _, a := range p.ordered {
		a.updateErrorFlags()
	}
	for _, c := range p.constraints {
		c.check()
	}
	p.refreshParserErrors()
	p.autoOutputs()
}

func (p *Parser) refreshParserErrors() {
	p.errs.Clear()
	for _, a := range p.ordered {
		if a.HasErrors() {
			p.errs.Set(ErrParserArgs)
			break
		}
	}
	if len(p.unrecognized) > 0 {
		p.errs.Set(ErrParserUnrecognized)
	}
	for _, c := range p.constraints {
		if c.Violated() {
			p.errs.Set(ErrParserConstraints)
			break
		}
	}
}

func (p *Parser) autoOutputs() {
	for _, h := range p.helpArgs {
		if h.WasFound() {
			p.PrintHelp(h.selectMenu())
			if p.flags.IsSet(ExitOnHelp) {
				p.exit(ExitSuccess)
			}
			return
		}
	}
	if p.versionArg != nil && p.versionArg.WasFound() {
		p.PrintVersion()
		if p.flags.IsSet(ExitOnVersion) {
			p.exit(ExitSuccess)
		}
		return
	}
	if !p.HasErrors() {
		return
	}
	if p.flags.IsSet(AutoPrintErrors) {
		p.PrintErrors()
	}
	if p.flags.IsSet(HelpOnError) {
		p.PrintHelp(DefaultMenuID)
	}
	if p.flags.IsSet(ExitOnError) {
		p.exit(ExitUsageError)
	}
}

// resetParseState clears everything a previous pass accumulated, so repeated
// passes over the same tokens yield the same result.
func (p *Parser) resetParseState() {
	p.errs.Clear()
	p.unrecognized = p.unrecognized[:0]
	p.hasParsed = false
	p.lastResolved = nil
	for _, a := range p.ordered {
		b := a.base()
		b.setFound(false)
		b.errs.Clear()
		if vm := a.valuePart(); vm != nil {
			vm.resetValues()
		}
	}
	for _, c := range p.constraints {
		c.reset()
	}
}
