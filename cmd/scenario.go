package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/bancaday/banca"
	"github.com/bancaday/banca/renderer"
)

type scenarioCmd struct{}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "walk through a worked three-player example" }
func (*scenarioCmd) Usage() string {
	return `banca scenario

Plays a complete three-player day and prints each step, to show how stakes,
debts and the final settlement plan relate.
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := banca.NewDay([]string{"Alice", "Bob", "Carol"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var doc strings.Builder
	currency := Currency()

	doc.WriteString("# A worked game day\n\n")
	doc.WriteString("Alice, Bob and Carol play one session. Alice stakes 100 and Carol 50,\n")
	doc.WriteString("both paid up front. Bob stakes 100 on credit, fronted by Alice, the host.\n")
	doc.WriteString("The pot closes at 300.\n\n")

	contributions := []banca.Contribution{
		{Name: "Alice", Amount: 100, Paid: true},
		{Name: "Bob", Amount: 100, Paid: false},
		{Name: "Carol", Amount: 50, Paid: true},
	}
	balances, err := day.CloseSession(contributions, 300, "Alice")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	doc.WriteString("Everyone's share of the pot is proportional to their stake, and Bob's\n")
	doc.WriteString("unpaid 100 moves from him to Alice:\n\n")
	doc.WriteString(renderer.RenderBalances(renderer.NewBalances("Balances", balances, currency)))

	doc.WriteString("\nClosing the day corrects any accumulated rounding and plans the\n")
	doc.WriteString("transfers that settle every balance:\n\n")
	doc.WriteString(renderer.RenderSummary(renderer.NewSummary(day.CloseDay(), currency)))

	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
