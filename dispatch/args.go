package dispatch

import (
	"fmt"
	"strings"

	"github.com/poiesic/ledger/core"
)

// argSchema declares the value flags a command accepts. Tokens that are
// not part of a --name value pair make up the free keyword.
type argSchema struct {
	flags []string
}

func (s argSchema) declares(name string) bool {
	for _, f := range s.flags {
		if f == name {
			return true
		}
	}
	return false
}

// request is a parsed command line.
type request struct {
	flags map[string]string
	terms []string

	// ignored holds flags the command does not declare. Their values are
	// still consumed.
	ignored []string
}

// flag returns the value given for a declared flag, or "".
func (r *request) flag(name string) string {
	return r.flags[name]
}

// keyword joins the free tokens with single spaces.
func (r *request) keyword() string {
	return strings.Join(r.terms, " ")
}

// first returns the first free token, or "".
func (r *request) first() string {
	if len(r.terms) == 0 {
		return ""
	}
	return r.terms[0]
}

// parse splits raw command arguments. Both "--name value" and
// "--name=value" are accepted. A declared flag without a value is reported
// as core.ErrMissingInput.
func (s argSchema) parse(args []string) (*request, error) {
	req := &request{flags: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "--") || len(tok) == 2 {
			req.terms = append(req.terms, tok)
			continue
		}

		name, value, inline := strings.Cut(tok[2:], "=")
		if !inline {
			if i+1 >= len(args) {
				if s.declares(name) {
					return nil, fmt.Errorf("%w: --%s needs a value", core.ErrMissingInput, name)
				}
				req.ignored = append(req.ignored, name)
				continue
			}
			i++
			value = args[i]
		}

		if s.declares(name) {
			req.flags[name] = value
		} else {
			req.ignored = append(req.ignored, name)
		}
	}
	return req, nil
}

var (
	productArgs = argSchema{flags: []string{"id", "supplier", "category"}}
	keywordArgs = argSchema{}
)
