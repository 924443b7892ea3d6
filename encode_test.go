package banca

import (
	"encoding/json"
	"testing"
)

func TestBalances_MarshalJSON_RosterOrder(t *testing.T) {
	// encoding/json would sort the names; the engine's order must survive.
	b := balancesOf("Zoe", 1.0, "Alice", -2.5, "Bob", 1.5)
	got, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Zoe":1,"Alice":-2.5,"Bob":1.5}`
	if string(got) != want {
		t.Errorf("Marshal(balances) = %s, want %s", got, want)
	}
}

func TestSession_MarshalJSON(t *testing.T) {
	s := Session{
		Host:        "Alice",
		FinalAmount: 300,
		Contributions: []Contribution{
			{Name: "Alice", Amount: 100, Paid: true},
			{Name: "Bob", Amount: 100, Paid: false},
		},
		TotalInvested: 200,
	}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"host":"Alice","totalInvested":200,"finalAmount":300,"result":100,` +
		`"contributions":[{"name":"Alice","amount":100,"paid":true},{"name":"Bob","amount":100,"paid":false}]}`
	if string(got) != want {
		t.Errorf("Marshal(session) = %s, want %s", got, want)
	}
}

func TestDaySummary_MarshalJSON(t *testing.T) {
	day := &Day{balances: balancesOf("Alice", 120.0, "Bob", -80.0, "Carol", 10.0)}
	got, err := json.Marshal(day.CloseDay())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"balances":{"Alice":70,"Bob":-80,"Carol":10},"drift":50,"reference":"Alice",` +
		`"plan":[{"from":"Bob","to":"Alice","amount":70},{"from":"Bob","to":"Carol","amount":10}],` +
		`"sessions":0,"totalInvested":0,"totalResult":0}`
	if string(got) != want {
		t.Errorf("Marshal(summary) = %s, want %s", got, want)
	}
}

func TestDaySummary_MarshalJSON_NoDrift(t *testing.T) {
	day := &Day{balances: balancesOf("Alice", 25.0, "Bob", -25.0)}
	got, err := json.Marshal(day.CloseDay())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"balances":{"Alice":25,"Bob":-25},` +
		`"plan":[{"from":"Bob","to":"Alice","amount":25}],` +
		`"sessions":0,"totalInvested":0,"totalResult":0}`
	if string(got) != want {
		t.Errorf("Marshal(summary) = %s, want %s", got, want)
	}
}
