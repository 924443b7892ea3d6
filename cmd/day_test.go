package cmd

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/bancaday/banca"
)

func newTestREPL(t *testing.T, names ...string) (*dayREPL, *bytes.Buffer) {
	t.Helper()
	day, err := banca.NewDay(names)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	out := &bytes.Buffer{}
	repl := &dayREPL{day: day, currency: "BRL", out: out}
	repl.show = func(md string) { out.WriteString(md) }
	return repl, out
}

func TestDayREPLSession(t *testing.T) {
	repl, out := newTestREPL(t, "Alice", "Bob", "Carol")

	script := strings.Join([]string{
		"stake Alice 100 paid",
		"stake Bob 100",
		"stake Carol 50 paid",
		"host Alice",
		"close 300",
		"quit",
	}, "\n")
	repl.run(strings.NewReader(script))

	for name, want := range map[string]float64{"Alice": 120, "Bob": -80, "Carol": 10} {
		got, ok := repl.day.Balance(name)
		if !ok {
			t.Fatalf("no balance for %q", name)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("balance for %q = %v, want %v", name, got, want)
		}
	}
	if len(repl.stakes) != 0 || repl.host != "" {
		t.Errorf("session in progress not cleared after close: %v, host %q", repl.stakes, repl.host)
	}

	text := out.String()
	for _, want := range []string{"+R$120,00", "-R$80,00", "+R$10,00"} {
		if !strings.Contains(text, want) {
			t.Errorf("output does not show %q:\n%s", want, text)
		}
	}
}

func TestDayREPLErrorsKeepState(t *testing.T) {
	repl, out := newTestREPL(t, "Alice", "Bob")

	script := strings.Join([]string{
		"stake Alice 100 paid",
		"stake Mallory 100", // not on the roster
		"close 150",         // no host selected, but Alice's stake is paid
		"frobnicate",
		"quit",
	}, "\n")
	repl.run(strings.NewReader(script))

	text := out.String()
	if !strings.Contains(text, "Error:") {
		t.Fatalf("expected errors in output:\n%s", text)
	}
	if !strings.Contains(text, "unknown command") {
		t.Errorf("unknown command not reported:\n%s", text)
	}

	// Mallory's rejected stake must not linger; the close with no host must
	// not have gone through either.
	for _, c := range repl.stakes {
		if c.Name == "Mallory" {
			t.Errorf("rejected stake recorded: %+v", c)
		}
	}
	if got := len(repl.day.Sessions()); got != 0 {
		t.Errorf("close without a host recorded %d sessions", got)
	}
}

func TestDayREPLExitFlow(t *testing.T) {
	repl, _ := newTestREPL(t, "Alice", "Bob", "Carol")

	script := strings.Join([]string{
		"stake Alice 100 paid",
		"stake Bob 100 paid",
		"stake Carol 50 paid",
		"host Alice",
		"close 300",
		"exit Bob",
		"confirm Bob",
		"quit",
	}, "\n")
	repl.run(strings.NewReader(script))

	if repl.day.HasParticipant("Bob") {
		t.Fatal("Bob still on the roster after confirm")
	}
	// All stakes paid: Alice +20, Bob +20, Carol +10. Bob leaves at his day
	// balance; the others keep theirs until the day closes.
	got, _ := repl.day.Balance("Alice")
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("Alice balance = %v, want 20", got)
	}
}

func TestDayREPLReset(t *testing.T) {
	repl, _ := newTestREPL(t, "Alice", "Bob")

	script := strings.Join([]string{
		"stake Alice 100 paid",
		"stake Bob 50 paid",
		"host Alice",
		"close 200",
		"stake Alice 10",
		"reset",
		"quit",
	}, "\n")
	repl.run(strings.NewReader(script))

	if len(repl.stakes) != 0 || repl.host != "" {
		t.Errorf("reset left session state behind: %v, host %q", repl.stakes, repl.host)
	}
	if got := len(repl.day.Sessions()); got != 0 {
		t.Errorf("reset kept %d sessions", got)
	}
	if got, _ := repl.day.Balance("Alice"); got != 0 {
		t.Errorf("reset kept a balance of %v for Alice", got)
	}
}

func TestDayREPLResetNewRoster(t *testing.T) {
	repl, _ := newTestREPL(t, "Alice", "Bob")

	repl.run(strings.NewReader("reset Carol,Dan,Eve\nquit\n"))

	want := []string{"Carol", "Dan", "Eve"}
	got := repl.day.Participants()
	if len(got) != len(want) {
		t.Fatalf("roster = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roster = %v, want %v", got, want)
		}
	}
}
