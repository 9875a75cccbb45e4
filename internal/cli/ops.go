package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/linkform/internal/form"
	"github.com/idilsaglam/linkform/internal/model"
)

// op is one list operation given on the command line. Positions are
// 1-based like the rows printed by `check`.
type op struct {
	name string
	args []string
}

func (o op) String() string {
	if len(o.args) == 0 {
		return o.name
	}
	return o.name + " " + strings.Join(o.args, " ")
}

var opArity = map[string]int{
	"append":  2, // title url
	"prepend": 2, // title url
	"insert":  3, // pos title url
	"remove":  1, // pos
	"swap":    2, // i j
	"move":    2, // from to
	"update":  3, // pos title url
	"replace": -1,
}

func parseOp(s string) (op, error) {
	words, err := splitWords(s)
	if err != nil {
		return op{}, err
	}
	if len(words) == 0 {
		return op{}, usageErrorf("empty operation")
	}
	o := op{name: strings.ToLower(words[0]), args: words[1:]}
	n, known := opArity[o.name]
	if !known {
		return op{}, usageErrorf("unknown operation %q", words[0])
	}
	if n < 0 {
		if len(o.args)%2 != 0 {
			return op{}, usageErrorf("replace: expected title/url pairs, got %d words", len(o.args))
		}
	} else if len(o.args) != n {
		return op{}, usageErrorf("%s: expected %d arguments, got %d", o.name, n, len(o.args))
	}
	return o, nil
}

func parseOps(args []string) ([]op, error) {
	out := make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// position converts a 1-based row number to a list index.
func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageErrorf("not a number: %s", s)
	}
	return n - 1, nil
}

// apply runs o against f. applied is false when the list ignored the
// call (out-of-range positions).
func (o op) apply(f *form.Form) (applied bool, err error) {
	pos := make([]int, 0, 2)
	link := func(from int) model.Link {
		return model.Link{Title: o.args[from], URL: o.args[from+1]}
	}
	switch o.name {
	case "remove", "swap", "move", "insert", "update":
		count := 1
		if o.name == "swap" || o.name == "move" {
			count = 2
		}
		for _, a := range o.args[:count] {
			p, err := position(a)
			if err != nil {
				return false, fmt.Errorf("%s: %w", o.name, err)
			}
			pos = append(pos, p)
		}
	}

	switch o.name {
	case "append":
		f.Append(link(0))
		return true, nil
	case "prepend":
		f.Prepend(link(0))
		return true, nil
	case "insert":
		f.Insert(pos[0], link(1))
		return true, nil
	case "remove":
		return f.Remove(pos[0]), nil
	case "swap":
		return f.Swap(pos[0], pos[1]), nil
	case "move":
		return f.Move(pos[0], pos[1]), nil
	case "update":
		return f.Update(pos[0], link(1)), nil
	case "replace":
		links := make([]model.Link, 0, len(o.args)/2)
		for i := 0; i+1 < len(o.args); i += 2 {
			links = append(links, link(i))
		}
		f.Replace(links)
		return true, nil
	}
	return false, usageErrorf("unknown operation %q", o.name)
}
