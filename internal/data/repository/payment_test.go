package repository

import (
	"context"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

func testPayment(jobID string) *domain.Payment {
	return &domain.Payment{
		ID:          utils.NanoID(),
		JobID:       jobID,
		CustomerID:  "cust-1",
		LaborerID:   "lab-1",
		AmountCents: 250000,
		Method:      "cash",
		CreatedAt:   time.Now(),
	}
}

func TestPaymentSingleSettlement(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first := testPayment("job-1")
	inserted, err := repos.Payments.CreateCompleted(ctx, first)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !inserted {
		t.Fatal("first settlement rejected")
	}

	// A second completed payment on the same job must be refused.
	second := testPayment("job-1")
	inserted, err = repos.Payments.CreateCompleted(ctx, second)
	if err != nil {
		t.Fatalf("duplicate create errored: %v", err)
	}
	if inserted {
		t.Fatal("duplicate settlement accepted")
	}

	got, err := repos.Payments.GetByJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("settled payment = %s, want %s", got.ID, first.ID)
	}

	// Another job settles independently.
	inserted, err = repos.Payments.CreateCompleted(ctx, testPayment("job-2"))
	if err != nil || !inserted {
		t.Fatalf("second job settlement: inserted=%v err=%v", inserted, err)
	}

	payments, err := repos.Payments.ListByUser(ctx, "lab-1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(payments) != 2 {
		t.Errorf("payments for laborer = %d, want 2", len(payments))
	}
}
