package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

func newMessageFixture() (*MessageService, *fakeJobRepo, *fakeNotificationRepo) {
	jobs := newFakeJobRepo()
	notes := &fakeNotificationRepo{}
	notifier := NewNotificationService(notes, nil, logger.StdLogger())
	return NewMessageService(&fakeMessageRepo{}, jobs, notifier, logger.StdLogger()), jobs, notes
}

func TestSendMessageNotifiesCounterparty(t *testing.T) {
	svc, jobs, notes := newMessageFixture()
	ctx := context.Background()

	job := seededJob(jobs, domain.StatusAssigned, testLaborer.ID)

	if _, err := svc.Send(ctx, testCustomer, job.ID, &SendMessageRequest{Body: "when can you start?"}); err != nil {
		t.Fatalf("customer send: %v", err)
	}
	if got := len(notes.forUser(testLaborer.ID)); got != 1 {
		t.Errorf("laborer notifications = %d, want 1", got)
	}
	if got := len(notes.forUser(testCustomer.ID)); got != 0 {
		t.Errorf("sender notified about own message, got %d", got)
	}

	if _, err := svc.Send(ctx, testLaborer, job.ID, &SendMessageRequest{Body: "tomorrow morning"}); err != nil {
		t.Fatalf("laborer send: %v", err)
	}
	if got := len(notes.forUser(testCustomer.ID)); got != 1 {
		t.Errorf("customer notifications = %d, want 1", got)
	}
	if got := notes.forUser(testCustomer.ID)[0].Category; got != "message" {
		t.Errorf("category = %q, want message", got)
	}
}

func TestSendMessageGuards(t *testing.T) {
	svc, jobs, notes := newMessageFixture()
	ctx := context.Background()

	job := seededJob(jobs, domain.StatusAssigned, testLaborer.ID)
	body := &SendMessageRequest{Body: "hello"}

	if _, err := svc.Send(ctx, testLaborer2, job.ID, body); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider send = %v, want ErrForbidden", err)
	}
	if _, err := svc.Send(ctx, testCustomer, "missing", body); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing job = %v, want ErrNotFound", err)
	}
	if got := len(notes.notifications); got != 0 {
		t.Errorf("notifications = %d, want 0", got)
	}
}

func TestSendMessageOnUnassignedJobSkipsLaborer(t *testing.T) {
	svc, jobs, notes := newMessageFixture()
	ctx := context.Background()

	job := seededJob(jobs, domain.StatusOpen, "")

	if _, err := svc.Send(ctx, testCustomer, job.ID, &SendMessageRequest{Body: "bumping this"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := len(notes.notifications); got != 0 {
		t.Errorf("notifications = %d, want 0", got)
	}

	if _, err := svc.Send(ctx, testAdmin, job.ID, &SendMessageRequest{Body: "please add photos"}); err != nil {
		t.Fatalf("admin send: %v", err)
	}
	if got := len(notes.forUser(testCustomer.ID)); got != 1 {
		t.Errorf("customer notifications = %d, want 1", got)
	}
}
