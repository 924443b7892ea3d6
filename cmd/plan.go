package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/bancaday/banca"
	"github.com/bancaday/banca/renderer"
)

type planCmd struct {
	path     string
	currency string
}

func (*planCmd) Name() string { return "plan" }
func (*planCmd) Synopsis() string {
	return "compute a settlement plan from a JSON balance snapshot"
}
func (*planCmd) Usage() string {
	return `banca plan [-path <jsonpath>] [-c <currency>] < balances.json

  Reads a JSON object mapping participant names to net balances from stdin
  and prints the transfers that settle it. Use -path to select the balance
  object inside a larger document, such as an exported day summary.

Usage Examples:
# From a plain snapshot.
$ echo '{"Alice":120,"Bob":-80,"Carol":10}' | banca plan

# From an exported day summary.
$ banca plan -path '$.balances' < day.json

`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath to the balance object inside the document")
	f.StringVar(&c.currency, "c", Currency(), "Display currency for the plan amounts")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		return subcommands.ExitFailure
	}

	balances, err := balancesFromJSON(data, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	view := renderer.NewPlan(banca.Plan(balances), c.currency)
	printMarkdown(renderer.RenderPlan(view))
	return subcommands.ExitSuccess
}

// balancesFromJSON extracts a name-to-amount object from a JSON document.
// Names are sorted before insertion: a JSON object carries no order, and the
// plan must not depend on map iteration.
func balancesFromJSON(data []byte, path string) (*banca.Balances, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	if path != "" {
		got, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("jsonpath %q: %w", path, err)
		}
		// A single-match path may come back wrapped in a one-element list.
		if list, ok := got.([]interface{}); ok && len(list) == 1 {
			got = list[0]
		}
		doc = got
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("balances must be a JSON object of name to amount")
	}

	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	b := banca.NewBalances()
	for _, name := range names {
		v, ok := obj[name].(float64)
		if !ok {
			return nil, fmt.Errorf("balance for %q is not a number", name)
		}
		b.Set(name, v)
	}
	return b, nil
}
