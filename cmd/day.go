package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/subcommands"

	"github.com/bancaday/banca"
	"github.com/bancaday/banca/excel"
	"github.com/bancaday/banca/renderer"
)

type dayCmd struct {
	participants string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "run an interactive game day" }
func (*dayCmd) Usage() string {
	return `banca day -p <name,name,...>

  Starts an interactive game day with the given roster. Sessions are
  recorded one at a time: stake the buy-ins, pick the host, close with the
  final pot. Balances live in memory for the duration of the process; use
  'export' to keep a record before quitting.

Usage Examples:
$ banca day -p "Alice,Bob,Carol"

`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.participants, "p", "", "Comma-separated roster, at least two names")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := banca.NewDay(strings.Split(c.participants, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	repl := &dayREPL{day: day, currency: Currency(), out: os.Stdout, show: printMarkdown}
	return repl.run(os.Stdin)
}

// dayREPL holds the state of one interactive day: the ledger itself plus the
// session in progress (pending stakes and chosen host), which only becomes
// part of the ledger on 'close'.
type dayREPL struct {
	day      *banca.Day
	currency string
	out      io.Writer
	show     func(string) // markdown sink, glamour on a terminal

	host   string
	stakes []banca.Contribution
}

func (r *dayREPL) run(in io.Reader) subcommands.ExitStatus {
	fmt.Fprintf(r.out, "Game day with %s. Type 'help' for commands.\n", strings.Join(r.day.Participants(), ", "))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "banca> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			break
		}
		if err := r.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
	fmt.Fprintln(r.out)
	return subcommands.ExitSuccess
}

func (r *dayREPL) dispatch(command string, args []string) error {
	switch command {
	case "help":
		fmt.Fprint(r.out, dayHelp)
		return nil
	case "stake":
		return r.stake(args)
	case "host":
		return r.setHost(args)
	case "close":
		return r.close(args)
	case "exit":
		return r.exit(args)
	case "confirm":
		return r.confirm(args)
	case "balances":
		r.show(renderer.RenderBalances(renderer.NewBalances("Balances", r.day.Balances(), r.currency)))
		return nil
	case "history":
		r.show(renderer.RenderHistory(renderer.NewHistory(r.day.Sessions(), r.currency)))
		return nil
	case "summary":
		r.show(renderer.RenderSummary(renderer.NewSummary(r.day.CloseDay(), r.currency)))
		return nil
	case "export":
		return r.export(args)
	case "reset":
		return r.reset(args)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", command)
	}
}

const dayHelp = `Commands:
  stake <name> <amount> [paid]  record a buy-in for the session in progress
  host <name>                   pick who fronts the unpaid stakes
  close <final>                 close the session with the counted final pot
  exit <name> [in-progress]     preview the settlement for a leaving player
  confirm <name> [in-progress]  apply the exit and drop the player
  balances                      show net balances
  history                       show the closed sessions
  summary                       show the day summary and settlement plan
  export <file.xlsx|file.json>  write the day summary to a file
  reset [name,name,...]         start a fresh day, dropping all state
  quit                          leave (balances are not persisted)
`

// reset drops the whole day, the way the original game sheet starts over. A
// new roster can be given; otherwise the current one carries over at zero.
func (r *dayREPL) reset(args []string) error {
	names := r.day.Participants()
	if len(args) > 0 {
		names = strings.Split(strings.Join(args, ","), ",")
	}
	day, err := banca.NewDay(names)
	if err != nil {
		return err
	}
	r.day = day
	r.stakes = nil
	r.host = ""

	fmt.Fprintf(r.out, "Fresh day with %s.\n", strings.Join(day.Participants(), ", "))
	return nil
}

func (r *dayREPL) stake(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: stake <name> <amount> [paid]")
	}
	name := args[0]
	if !r.day.HasParticipant(name) {
		return fmt.Errorf("%w: %q", banca.ErrParticipantNotFound, name)
	}
	amount, err := banca.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("stake must be positive, got %v", args[1])
	}
	paid := len(args) > 2 && args[2] == "paid"
	r.stakes = append(r.stakes, banca.Contribution{Name: name, Amount: amount, Paid: paid})

	fmt.Fprintf(r.out, "Staked %s for %s (%d stakes pending).\n", banca.M(amount, r.currency), name, len(r.stakes))
	return nil
}

func (r *dayREPL) setHost(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: host <name>")
	}
	if !r.day.HasParticipant(args[0]) {
		return fmt.Errorf("%w: %q", banca.ErrParticipantNotFound, args[0])
	}
	r.host = args[0]
	fmt.Fprintf(r.out, "%s hosts the session in progress.\n", r.host)
	return nil
}

func (r *dayREPL) close(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: close <final>")
	}
	final, err := banca.ParseFinalAmount(args[0])
	if err != nil {
		return err
	}

	balances, err := r.day.CloseSession(r.stakes, final, r.host)
	if err != nil {
		return err
	}
	r.stakes = nil
	r.host = ""

	r.show(renderer.RenderBalances(renderer.NewBalances("Balances", balances, r.currency)))
	return nil
}

func (r *dayREPL) exit(args []string) error {
	name, inProgress, err := r.exitArgs(args)
	if err != nil {
		return err
	}
	plan, err := r.day.PlanExit(name, inProgress, r.host)
	if err != nil {
		return err
	}
	r.show(renderer.RenderExit(renderer.NewExit(plan, r.currency)))
	return nil
}

func (r *dayREPL) confirm(args []string) error {
	name, inProgress, err := r.exitArgs(args)
	if err != nil {
		return err
	}
	if err := r.day.ConfirmExit(name, inProgress, r.host); err != nil {
		return err
	}
	r.stakes = slices.DeleteFunc(r.stakes, func(c banca.Contribution) bool { return c.Name == name })

	fmt.Fprintf(r.out, "%s has left the day.\n", name)
	r.show(renderer.RenderBalances(renderer.NewBalances("Balances", r.day.Balances(), r.currency)))
	return nil
}

// exitArgs resolves the leaving player's in-progress amount: explicit when
// given, otherwise the sum of their pending stakes.
func (r *dayREPL) exitArgs(args []string) (name string, inProgress float64, err error) {
	if len(args) < 1 || len(args) > 2 {
		return "", 0, fmt.Errorf("usage: exit|confirm <name> [in-progress]")
	}
	name = args[0]
	if len(args) == 2 {
		inProgress, err = banca.ParseAmount(args[1])
		return name, inProgress, err
	}
	for _, c := range r.stakes {
		if c.Name == name {
			inProgress += c.Amount
		}
	}
	return name, inProgress, nil
}

func (r *dayREPL) export(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <file.xlsx|file.json>")
	}
	filename := args[0]
	summary := r.day.CloseDay()

	var data []byte
	var err error
	switch filepath.Ext(filename) {
	case ".xlsx":
		data, err = excel.SummaryXLSX(summary, r.day.Sessions(), r.currency)
	case ".json":
		data, err = json.MarshalIndent(summary, "", "  ")
	default:
		return fmt.Errorf("unsupported export format %q, use .xlsx or .json", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Day summary written to %s\n", filename)
	return nil
}
