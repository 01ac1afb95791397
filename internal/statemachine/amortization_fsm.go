package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/fintera-amortization/internal/models"
)

// AmortizationFSM wraps a scheduled period with its settlement state machine.
// COMPLETED is terminal.
type AmortizationFSM struct {
	entry *models.AmortizationEntry
	fsm   *fsm.FSM
}

// NewAmortizationFSM creates a new amortization entry state machine
func NewAmortizationFSM(entry *models.AmortizationEntry) *AmortizationFSM {
	afsm := &AmortizationFSM{entry: entry}

	afsm.fsm = fsm.NewFSM(
		string(entry.PaymentStatus),
		fsm.Events{
			{Name: "settle", Src: []string{string(models.AmortizationStatusPending)}, Dst: string(models.AmortizationStatusCompleted)},
		},
		fsm.Callbacks{},
	)

	return afsm
}

// Settle marks the period COMPLETED
func (a *AmortizationFSM) Settle(ctx context.Context) error {
	if a.entry.IsSettled() {
		return fmt.Errorf("%w: period %s already settled", ErrInvalidTransition, a.entry.AmortizationPeriod)
	}

	if err := a.fsm.Event(ctx, "settle"); err != nil {
		return fmt.Errorf("%w: failed to settle period %s: %v", ErrInvalidTransition, a.entry.AmortizationPeriod, err)
	}

	a.entry.PaymentStatus = models.AmortizationStatus(a.fsm.Current())
	return nil
}

// Current returns the current state
func (a *AmortizationFSM) Current() string {
	return a.fsm.Current()
}
