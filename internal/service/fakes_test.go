package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
)

// Map-backed fakes with the same guard semantics as the SQL
// repositories.

type fakeJobRepo struct {
	mu     sync.Mutex
	jobs   map[string]*domain.Job
	events []*domain.JobStatusEvent
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Get(_ context.Context, id string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) GetBySlug(_ context.Context, slug string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, job := range f.jobs {
		if job.Slug == slug {
			copied := *job
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeJobRepo) List(_ context.Context, filter repository.JobFilter, _ string, limit int) ([]*domain.Job, int, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var jobs []*domain.Job
	for _, job := range f.jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && job.CustomerID != filter.CustomerID {
			continue
		}
		if filter.LaborerID != "" && !job.IsAssignedLaborer(filter.LaborerID) {
			continue
		}
		copied := *job
		jobs = append(jobs, &copied)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })

	total := len(jobs)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, total, "", nil
}

func (f *fakeJobRepo) ConditionalUpdateStatus(_ context.Context, jobID string, expected, next domain.JobStatus, laborerID *string, event *domain.JobStatusEvent) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	job, ok := f.jobs[jobID]
	if !ok || job.Status != expected {
		return false, nil
	}
	job.Status = next
	job.UpdatedAt = time.Now()
	if laborerID != nil {
		job.LaborerID = laborerID
	}
	f.events = append(f.events, event)
	return true, nil
}

func (f *fakeJobRepo) AppendStatusEvent(_ context.Context, event *domain.JobStatusEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeJobRepo) StatusEvents(_ context.Context, jobID string) ([]*domain.JobStatusEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []*domain.JobStatusEvent
	for _, ev := range f.events {
		if ev.JobID == jobID {
			events = append(events, ev)
		}
	}
	return events, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, role domain.Role) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*domain.User
	for _, user := range f.users {
		if role != "" && user.Role != role {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Active = active
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment // keyed by job ID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (f *fakePaymentRepo) CreateCompleted(_ context.Context, p *domain.Payment) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.payments[p.JobID]; exists {
		return false, nil
	}
	p.Status = domain.PaymentCompleted
	copied := *p
	f.payments[p.JobID] = &copied
	return true, nil
}

func (f *fakePaymentRepo) GetByJob(_ context.Context, jobID string) (*domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[jobID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID string) ([]*domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var payments []*domain.Payment
	for _, p := range f.payments {
		if p.CustomerID == userID || p.LaborerID == userID {
			copied := *p
			payments = append(payments, &copied)
		}
	}
	return payments, nil
}

type ratingKey struct {
	jobID    string
	reviewer string
}

type fakeRatingRepo struct {
	mu      sync.Mutex
	ratings map[ratingKey]*domain.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[ratingKey]*domain.Rating)}
}

func (f *fakeRatingRepo) Create(_ context.Context, rating *domain.Rating) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ratingKey{rating.JobID, rating.ReviewerID}
	if _, exists := f.ratings[key]; exists {
		return false, nil
	}
	copied := *rating
	f.ratings[key] = &copied
	return true, nil
}

func (f *fakeRatingRepo) GetByJobAndReviewer(_ context.Context, jobID, reviewerID string) (*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rating, ok := f.ratings[ratingKey{jobID, reviewerID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *rating
	return &copied, nil
}

func (f *fakeRatingRepo) ListByReviewee(_ context.Context, revieweeID string) ([]*domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ratings []*domain.Rating
	for _, rating := range f.ratings {
		if rating.RevieweeID == revieweeID {
			copied := *rating
			ratings = append(ratings, &copied)
		}
	}
	return ratings, nil
}

func (f *fakeRatingRepo) AverageForReviewee(_ context.Context, revieweeID string) (float64, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum, count := 0, 0
	for _, rating := range f.ratings {
		if rating.RevieweeID == revieweeID {
			sum += rating.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *n
	f.notifications = append(f.notifications, &copied)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Notification
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		copied := *n
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) forUser(userID string) []*domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *msg
	f.messages = append(f.messages, &copied)
	return nil
}

func (f *fakeMessageRepo) ListByJob(_ context.Context, jobID, cursor string, limit int) ([]*domain.Message, int, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Message
	for _, msg := range f.messages {
		if msg.JobID == jobID {
			copied := *msg
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, "", nil
}
