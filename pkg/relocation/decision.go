package relocation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coffeetrail/stockrelay/pkg/notify"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
)

type DecisionHandlerOptionFN func(*DecisionHandler)

// DecisionHandler applies a destination manager's accept or decline to a
// pending transfer request. A request moves to a terminal state exactly
// once; the store enforces the pending precondition, and the handler
// refuses a second decision on the same id while one is still in flight.
type DecisionHandler struct {
	transferRequestStor stor.TransferRequestStor
	notifier            notify.Notifier
	onDecided           func()
	inFlight            sync.Map
}

func NewDecisionHandler(transferRequestStor stor.TransferRequestStor, notifier notify.Notifier, optFNs ...DecisionHandlerOptionFN) *DecisionHandler {
	h := &DecisionHandler{
		transferRequestStor: transferRequestStor,
		notifier:            notifier,
		onDecided:           func() {},
	}

	for _, optfn := range optFNs {
		optfn(h)
	}

	return h
}

// WithOnDecided sets a callback run after a decision is confirmed by the
// store, typically a pending feed refresh so the decided item disappears.
func WithOnDecided(f func()) DecisionHandlerOptionFN {
	return func(h *DecisionHandler) {
		h.onDecided = f
	}
}

// Accept marks the transfer as received. Empty notes default to the
// canonical acknowledgement for the destination location.
func (h *DecisionHandler) Accept(id int, notes string) (*srmodel.TransferRequest, error) {
	release, err := h.markInFlight(id)
	if err != nil {
		return nil, err
	}
	defer release()

	if notes == "" {
		tr, err := h.transferRequestStor.GetTransferRequestByID(id)
		if err != nil {
			return nil, h.reportFailure(id, "accept", err)
		}
		notes = srmodel.DefaultAcceptNote(tr.DestinationLocation)
	}

	decided, err := h.transferRequestStor.ApplyDecision(id, stor.Decision{
		Status: srmodel.StatusReceived,
		Notes:  notes,
	})
	if err != nil {
		return nil, h.reportFailure(id, "accept", err)
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Transfer accepted",
		Description: fmt.Sprintf("Stock from %s has been marked as received.", decided.SourceLocation),
		Variant:     notify.VariantSuccess,
	})
	h.onDecided()

	return decided, nil
}

// Decline marks the transfer as declined. A decline reason is mandatory;
// an empty one is rejected before any store write.
func (h *DecisionHandler) Decline(id int, notes string) (*srmodel.TransferRequest, error) {
	if notes == "" {
		err := validationError("notes", "a reason is required to decline a transfer")
		h.notifier.Notify(notify.Notification{
			Title:       "Decline reason required",
			Description: "Enter a reason before declining the transfer.",
			Variant:     notify.VariantDestructive,
		})
		return nil, err
	}

	release, err := h.markInFlight(id)
	if err != nil {
		return nil, err
	}
	defer release()

	decided, err := h.transferRequestStor.ApplyDecision(id, stor.Decision{
		Status: srmodel.StatusDeclined,
		Notes:  notes,
	})
	if err != nil {
		return nil, h.reportFailure(id, "decline", err)
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Transfer declined",
		Description: fmt.Sprintf("The transfer from %s has been declined.", decided.SourceLocation),
		Variant:     notify.VariantSuccess,
	})
	h.onDecided()

	return decided, nil
}

// markInFlight reserves id for a single in-flight decision. It returns the
// release func on success, mirroring the disabled accept/decline controls
// while a request is outstanding.
func (h *DecisionHandler) markInFlight(id int) (func(), error) {
	if _, loaded := h.inFlight.LoadOrStore(id, struct{}{}); loaded {
		h.notifier.Notify(notify.Notification{
			Title:       "Decision already in progress",
			Description: "Another decision for this transfer is still being saved. Wait for it to finish, then refresh.",
			Variant:     notify.VariantDestructive,
		})
		return nil, ErrDecisionInFlight
	}
	return func() { h.inFlight.Delete(id) }, nil
}

func (h *DecisionHandler) reportFailure(id int, action string, err error) error {
	switch {
	case errors.Is(err, stor.ErrAlreadyProcessed):
		h.notifier.Notify(notify.Notification{
			Title:       "Transfer already processed",
			Description: "This transfer was already accepted or declined by another session. Refresh to see its current state.",
			Variant:     notify.VariantDestructive,
		})
		return err
	case errors.Is(err, stor.ErrNotFound):
		h.notifier.Notify(notify.Notification{
			Title:       "Transfer not found",
			Description: "The transfer no longer exists. Refresh the pending list.",
			Variant:     notify.VariantDestructive,
		})
		return err
	default:
		// The record stays pending until a fresh read says otherwise; we
		// never flip local state on an unconfirmed write.
		h.notifier.Notify(notify.Notification{
			Title:       "Decision not saved",
			Description: fmt.Sprintf("Could not %s the transfer. Try again.", action),
			Variant:     notify.VariantDestructive,
		})
		return fmt.Errorf("applying %s to transfer %d: %w", action, id, err)
	}
}
