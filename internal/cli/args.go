package cli

import (
	"strings"

	"github.com/pkg/errors"
)

// Per-subcommand argument specs: every switch has a short and a long
// spelling, and is either a bare flag or an option taking a value.

type argKind int

const (
	flagArg argKind = iota
	optionArg
)

type argSpec struct {
	name  string
	short byte
	long  string
	kind  argKind
}

// help is accepted by every subcommand.
var helpSpec = argSpec{name: "help", short: 'h', long: "help", kind: flagArg}

var (
	addSpecs = []argSpec{
		{name: "tag", short: 't', long: "tag", kind: optionArg},
	}
	logSpecs = []argSpec{
		{name: "tag", short: 't', long: "tag", kind: optionArg},
		{name: "done", short: 'd', long: "done", kind: flagArg},
		{name: "undone", short: 'u', long: "undone", kind: flagArg},
	}
	rmSpecs = []argSpec{
		{name: "done", short: 'd', long: "done", kind: flagArg},
	}
	tagSpecs = []argSpec{
		{name: "create", short: 'c', long: "create", kind: optionArg},
		{name: "prune", short: 'p', long: "prune", kind: flagArg},
	}
	editSpecs []argSpec
)

type parsedArgs struct {
	options map[string]string
	flags   map[string]bool
	values  []string
}

func (p *parsedArgs) option(name string) (string, bool) {
	v, ok := p.options[name]
	return v, ok
}

func (p *parsedArgs) flag(name string) bool { return p.flags[name] }

// parseArgs splits tokens into switches and positional values. Short
// flags concatenate ("-ud"); an option consumes the following token.
func parseArgs(args []string, specs []argSpec) (*parsedArgs, error) {
	specs = append(specs, helpSpec)
	p := &parsedArgs{
		options: make(map[string]string),
		flags:   make(map[string]bool),
	}

	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case strings.HasPrefix(tok, "--"):
			name := tok[2:]
			sp := findLong(specs, name)
			if sp == nil {
				return nil, errors.Errorf("unknown argument %q", tok)
			}
			if sp.kind == flagArg {
				p.flags[sp.name] = true
				continue
			}
			if i+1 >= len(args) {
				return nil, errors.Errorf("switch %q requires a value", tok)
			}
			i++
			p.options[sp.name] = args[i]

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			for _, c := range []byte(tok[1:]) {
				sp := findShort(specs, c)
				if sp == nil {
					return nil, errors.Errorf("unknown argument %q", "-"+string(c))
				}
				if sp.kind == flagArg {
					p.flags[sp.name] = true
					continue
				}
				if i+1 >= len(args) {
					return nil, errors.Errorf("switch %q requires a value", "-"+string(c))
				}
				i++
				p.options[sp.name] = args[i]
			}

		default:
			p.values = append(p.values, tok)
		}
	}
	return p, nil
}

func findLong(specs []argSpec, long string) *argSpec {
	for i := range specs {
		if specs[i].long == long {
			return &specs[i]
		}
	}
	return nil
}

func findShort(specs []argSpec, short byte) *argSpec {
	for i := range specs {
		if specs[i].short == short {
			return &specs[i]
		}
	}
	return nil
}
