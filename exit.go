package banca

import "fmt"

// ExitPlan summarizes what settling a leaving participant looks like, before
// anything is committed.
type ExitPlan struct {
	Name       string     // the leaving participant
	DayBalance float64    // accumulated balance from closed sessions
	InProgress float64    // value already entered into the still-open session
	Net        float64    // DayBalance + InProgress
	Transfers  []Transfer // suggested transfers touching the leaver only
}

// PlanExit computes the effect of a mid-day exit without committing it.
// The leaver is credited with inProgress, the value they have entered into
// the not-yet-closed session, and currentHost is debited by the same amount
// (unless the leaver hosts the open session themselves), modeling an immediate
// cash handback before the session formally closes. The settlement plan for
// that temporary snapshot is filtered to transfers touching the leaver.
func (d *Day) PlanExit(leaving string, inProgress float64, currentHost string) (*ExitPlan, error) {
	if err := d.validateExit(leaving, inProgress, currentHost); err != nil {
		return nil, err
	}

	snapshot := d.balances.Clone()
	applyExitAdjustment(snapshot, leaving, inProgress, currentHost)

	var mine []Transfer
	for _, t := range Plan(snapshot) {
		if t.From == leaving || t.To == leaving {
			mine = append(mine, t)
		}
	}

	balance, _ := d.balances.Get(leaving)
	return &ExitPlan{
		Name:       leaving,
		DayBalance: balance,
		InProgress: inProgress,
		Net:        balance + inProgress,
		Transfers:  mine,
	}, nil
}

// ConfirmExit commits the exit adjustment to the real balance store, then
// removes the leaver from the active roster and deletes their balance entry.
// It does not execute the suggested transfers; it only records the one-time
// adjustment and removes the participant from future sessions.
//
// An exit can be confirmed at most once: a second call for the same name fails
// with ErrParticipantNotFound because the balance entry is gone.
func (d *Day) ConfirmExit(leaving string, inProgress float64, currentHost string) error {
	if err := d.validateExit(leaving, inProgress, currentHost); err != nil {
		return err
	}
	applyExitAdjustment(d.balances, leaving, inProgress, currentHost)
	d.balances.Remove(leaving)
	return nil
}

func (d *Day) validateExit(leaving string, inProgress float64, currentHost string) error {
	if !d.balances.Has(leaving) {
		return fmt.Errorf("%w: %q", ErrParticipantNotFound, leaving)
	}
	// The host only matters when there is open-session cash to hand back.
	if inProgress != 0 && leaving != currentHost && !d.balances.Has(currentHost) {
		return fmt.Errorf("%w: %q", ErrNoHostSelected, currentHost)
	}
	return nil
}

func applyExitAdjustment(b *Balances, leaving string, inProgress float64, currentHost string) {
	b.add(leaving, inProgress)
	if leaving != currentHost {
		b.add(currentHost, -inProgress)
	}
}
