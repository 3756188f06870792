package argv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultsFile loads fallback values from a TOML or YAML file, keyed by the
// prefix-stripped canonical key (or the usage key for positionals). File
// values rank below the command line and environment variables. The file is
// loaded eagerly; unreadable or malformed files are programmer errors.
func (p *Parser) DefaultsFile(path string) *Parser {
	data, err := os.ReadFile(path)
	if err != nil {
		setupPanic(SetupBadDefaultsFile, "reading %q: %v", path, err)
	}
	values := make(map[string]any)
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			setupPanic(SetupBadDefaultsFile, "parsing %q: %v", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			setupPanic(SetupBadDefaultsFile, "parsing %q: %v", path, err)
		}
	default:
		setupPanic(SetupBadDefaultsFile, "%q: unsupported format (want .toml, .yaml or .yml)", path)
	}
	p.defaults = values
	return p
}

// applyDefaults fills value-bearing arguments absent from the pass:
// environment variables first, then the defaults file. Injected values run
// the same validation pipeline as command-line tokens.
func (p *Parser) applyDefaults() {
	for _, a := range p.ordered {
		vm := a.valuePart()
		if vm == nil || a.WasFound() {
			continue
		}
		if _, isHelp := a.(*HelpArgument); isHelp {
			continue
		}
		if raw, ok := firstEnv(vm.envVars); ok {
			p.injectDefault(a, vm, splitEnvList(raw, vm))
			continue
		}
		if p.defaults == nil {
			continue
		}
		raw, ok := p.defaults[p.defaultsKeyFor(a)]
		if !ok {
			continue
		}
		p.injectDefault(a, vm, defaultStrings(raw))
	}
}

func (p *Parser) injectDefault(a Argument, vm *valueMixin, vals []string) {
	b := a.base()
	b.setFound(true)
	for _, v := range vals {
		vm.addValue(v, b)
	}
	p.trace("defaults: %q <- %v", a.ErrorName(), vals)
}

// defaultsKeyFor names an argument in the defaults file: the canonical key
// without its prefix, or the usage key for positionals.
func (p *Parser) defaultsKeyFor(a Argument) string {
	km := a.keyPart()
	if km == nil {
		if pa, ok := a.(*PositionalArgument); ok {
			return pa.UsageKey()
		}
		return a.ErrorName()
	}
	front := km.frontKey()
	prefix, _ := p.keyPrefix(front)
	return strings.TrimPrefix(front, prefix)
}

func firstEnv(vars []string) (string, bool) {
	for _, name := range vars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// splitEnvList splits comma-separated environment content for multi-value
// arguments.
func splitEnvList(raw string, vm *valueMixin) []string {
	if vm.maxCount <= 1 {
		return []string{raw}
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// defaultStrings renders a decoded defaults entry as value tokens.
func defaultStrings(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}
