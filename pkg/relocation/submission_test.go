package relocation_test

import (
	"errors"
	"testing"

	"github.com/coffeetrail/stockrelay/pkg/notify"
	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/stretchr/testify/require"
)

func validSubmission() relocation.SubmissionRequest {
	return relocation.SubmissionRequest{
		Manager:             "Alice",
		SourceLocation:      "Kampala",
		DestinationLocation: "Mbarara",
		CoffeeType:          "arabica",
		QualityGrade:        "Bugisu AA",
		Quantity:            "50",
		Unit:                "kg",
		Reason:              "restocking",
	}
}

func TestSubmission_Submit(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	notifier := notify.NewCaptureNotifier()
	submission := relocation.NewSubmission(s, srmodel.DefaultCatalog(), notifier)

	created, err := submission.Submit(validSubmission())
	require.NoError(t, err)
	require.Equal(t, srmodel.StatusPending, created.Status)
	require.Equal(t, "50", created.Quantity.String())

	last, ok := notifier.Last()
	require.True(t, ok)
	require.Equal(t, notify.VariantSuccess, last.Variant)

	pending, err := s.ListPendingForDestination("Mbarara")
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestSubmission_ValidationFailures(t *testing.T) {
	var tests = []struct {
		name   string
		mutate func(req *relocation.SubmissionRequest)
	}{
		{name: "zero quantity", mutate: func(req *relocation.SubmissionRequest) { req.Quantity = "0" }},
		{name: "negative quantity", mutate: func(req *relocation.SubmissionRequest) { req.Quantity = "-5" }},
		{name: "malformed quantity", mutate: func(req *relocation.SubmissionRequest) { req.Quantity = "fifty" }},
		{name: "missing manager", mutate: func(req *relocation.SubmissionRequest) { req.Manager = "" }},
		{name: "missing destination", mutate: func(req *relocation.SubmissionRequest) { req.DestinationLocation = "" }},
		{name: "same source and destination", mutate: func(req *relocation.SubmissionRequest) { req.DestinationLocation = "Kampala" }},
		{name: "unknown coffee type", mutate: func(req *relocation.SubmissionRequest) { req.CoffeeType = "liberica" }},
		{name: "grade not valid for type", mutate: func(req *relocation.SubmissionRequest) { req.CoffeeType = "robusta" }},
		{name: "unknown unit", mutate: func(req *relocation.SubmissionRequest) { req.Unit = "pallets" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := stor.NewInMemoryTransferRequestStor(nil)
			notifier := notify.NewCaptureNotifier()
			submission := relocation.NewSubmission(s, srmodel.DefaultCatalog(), notifier)

			req := validSubmission()
			test.mutate(&req)

			_, err := submission.Submit(req)
			require.True(t, relocation.IsValidationError(err), "expected validation error, got %v", err)

			// No record is created on a validation failure.
			records, err := s.ListTransferRequests(stor.ListFilter{})
			require.NoError(t, err)
			require.Len(t, records, 0)

			last, ok := notifier.Last()
			require.True(t, ok)
			require.Equal(t, notify.VariantDestructive, last.Variant)
		})
	}
}

func TestSubmission_StoreFailure(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	s.ErrToReturn = errors.New("db unreachable")
	notifier := notify.NewCaptureNotifier()
	submission := relocation.NewSubmission(s, srmodel.DefaultCatalog(), notifier)

	created, err := submission.Submit(validSubmission())
	require.Error(t, err)
	require.False(t, relocation.IsValidationError(err))

	// nil return tells the caller to keep the form state for a retry.
	require.Nil(t, created)

	last, ok := notifier.Last()
	require.True(t, ok)
	require.Equal(t, notify.VariantDestructive, last.Variant)
}
