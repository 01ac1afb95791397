package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/fintera-amortization/internal/models"
)

// ErrInvalidTransition is wrapped by every rejected event.
var ErrInvalidTransition = errors.New("transición de estado inválida")

// PaymentFSM wraps a payment with its state machine
type PaymentFSM struct {
	payment *models.Payment
	fsm     *fsm.FSM
}

// NewPaymentFSM creates a new payment state machine
func NewPaymentFSM(payment *models.Payment) *PaymentFSM {
	pfsm := &PaymentFSM{
		payment: payment,
	}

	pfsm.fsm = fsm.NewFSM(
		string(payment.Status),
		fsm.Events{
			// draft → confirmed (journal batch posted)
			{Name: "confirm", Src: []string{string(models.PaymentStatusDraft)}, Dst: string(models.PaymentStatusConfirmed)},

			// draft/confirmed → cancelled (confirmed ones get a reversal batch)
			{Name: "cancel", Src: []string{string(models.PaymentStatusDraft), string(models.PaymentStatusConfirmed)}, Dst: string(models.PaymentStatusCancelled)},
		},
		fsm.Callbacks{},
	)

	return pfsm
}

// Confirm transitions payment to confirmed state
func (p *PaymentFSM) Confirm(ctx context.Context) error {
	if !p.payment.MayConfirm() {
		return fmt.Errorf("%w: payment cannot be confirmed in state %s", ErrInvalidTransition, p.payment.Status)
	}

	if err := p.fsm.Event(ctx, "confirm"); err != nil {
		return fmt.Errorf("failed to confirm payment: %w", err)
	}

	p.payment.Status = models.PaymentStatus(p.fsm.Current())
	return nil
}

// Cancel transitions payment to cancelled state
func (p *PaymentFSM) Cancel(ctx context.Context) error {
	if !p.payment.MayCancel() {
		return fmt.Errorf("%w: payment cannot be cancelled in state %s", ErrInvalidTransition, p.payment.Status)
	}

	if err := p.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("failed to cancel payment: %w", err)
	}

	p.payment.Status = models.PaymentStatus(p.fsm.Current())
	return nil
}

// Current returns the current state
func (p *PaymentFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *PaymentFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
