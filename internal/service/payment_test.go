package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

func seededJob(jobs *fakeJobRepo, status domain.JobStatus, laborerID string) *domain.Job {
	now := time.Now()
	job := &domain.Job{
		ID:          utils.NanoID(),
		Slug:        "fence-" + utils.NanoString(6),
		Title:       "Fix the fence",
		Description: "desc",
		BudgetCents: 250000,
		Status:      status,
		CustomerID:  testCustomer.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if laborerID != "" {
		job.LaborerID = &laborerID
	}
	_ = jobs.Create(context.Background(), job)
	return job
}

func newPaymentFixture() (*PaymentService, *fakeJobRepo, *fakeNotificationRepo) {
	jobs := newFakeJobRepo()
	notes := &fakeNotificationRepo{}
	notifier := NewNotificationService(notes, nil, logger.StdLogger())
	return NewPaymentService(newFakePaymentRepo(), jobs, notifier, logger.StdLogger()), jobs, notes
}

func paymentReq() *RecordPaymentRequest {
	return &RecordPaymentRequest{AmountCents: 250000, Method: "cash"}
}

func TestRecordPayment(t *testing.T) {
	svc, jobs, notes := newPaymentFixture()
	ctx := context.Background()

	job := seededJob(jobs, domain.StatusCompleted, testLaborer.ID)

	payment, err := svc.Record(ctx, testCustomer, job.ID, paymentReq())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if payment.Status != domain.PaymentCompleted {
		t.Errorf("status = %s", payment.Status)
	}
	if payment.LaborerID != testLaborer.ID {
		t.Errorf("laborer_id = %s", payment.LaborerID)
	}
	// The laborer hears about the settlement.
	if got := len(notes.forUser(testLaborer.ID)); got != 1 {
		t.Errorf("laborer notifications = %d, want 1", got)
	}

	// Second settlement is refused.
	if _, err := svc.Record(ctx, testCustomer, job.ID, paymentReq()); !errors.Is(err, ErrDuplicatePayment) {
		t.Errorf("duplicate: got %v, want ErrDuplicatePayment", err)
	}
}

func TestRecordPaymentGuards(t *testing.T) {
	svc, jobs, _ := newPaymentFixture()
	ctx := context.Background()

	completed := seededJob(jobs, domain.StatusCompleted, testLaborer.ID)
	inProgress := seededJob(jobs, domain.StatusInProgress, testLaborer.ID)

	// Only the owning customer settles.
	if _, err := svc.Record(ctx, testLaborer, completed.ID, paymentReq()); !errors.Is(err, ErrForbidden) {
		t.Errorf("laborer pays: got %v, want ErrForbidden", err)
	}
	other := domain.Actor{ID: "cust-2", Role: domain.RoleCustomer}
	if _, err := svc.Record(ctx, other, completed.ID, paymentReq()); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign customer pays: got %v, want ErrForbidden", err)
	}

	// Not completed yet.
	if _, err := svc.Record(ctx, testCustomer, inProgress.ID, paymentReq()); !errors.Is(err, ErrJobNotCompleted) {
		t.Errorf("pay in progress: got %v, want ErrJobNotCompleted", err)
	}

	if _, err := svc.Record(ctx, testCustomer, "missing", paymentReq()); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing job: got %v, want ErrNotFound", err)
	}
}
