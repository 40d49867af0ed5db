package domain

import "time"

// Message is one job-scoped chat line between the job's parties.
type Message struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is one settlement record. A job carries at most one completed
// payment.
type Payment struct {
	ID          string        `json:"id"`
	JobID       string        `json:"job_id"`
	CustomerID  string        `json:"customer_id"`
	LaborerID   string        `json:"laborer_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Rating is post-completion feedback, one per reviewer per job.
type Rating struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	ReviewerID string    `json:"reviewer_id"`
	RevieweeID string    `json:"reviewee_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is a fire-and-forget user alert.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Service is a labor service category.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	RateCents   int64     `json:"rate_cents,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Skill is a laborer skill tag.
type Skill struct {
	ID        string    `json:"id"`
	LaborerID string    `json:"laborer_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketStatus is the state of a support ticket.
type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

// SupportTicket is a user-filed support request.
type SupportTicket struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Subject   string       `json:"subject"`
	Body      string       `json:"body"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
