package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DocumentType is the content store type used for persisted submissions.
const DocumentType = "contactMessage"

// Status tracks a stored message through the editorial inbox. The site only
// ever writes StatusNew; later transitions happen in the CMS.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// Submission is the raw form input.
type Submission struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Message is a persisted submission.
type Message struct {
	bun.BaseModel `bun:"table:contact_messages,alias:cm"`

	ID         uuid.UUID `bun:",pk,type:uuid"              json:"id"`
	Name       string    `bun:"name,notnull"               json:"name"`
	Email      string    `bun:"email,notnull"              json:"email"`
	Subject    string    `bun:"subject,notnull"            json:"subject"`
	Body       string    `bun:"message,notnull"            json:"message"`
	Status     Status    `bun:"status,notnull"             json:"status"`
	ReceivedAt time.Time `bun:"received_at,notnull"        json:"receivedAt"`
}

// NewMessage builds the record stored for sub, received at the given time.
func NewMessage(sub Submission, receivedAt time.Time) *Message {
	sub = sub.Trimmed()
	return &Message{
		Name:       sub.Name,
		Email:      sub.Email,
		Subject:    sub.Subject,
		Body:       sub.Message,
		Status:     StatusNew,
		ReceivedAt: receivedAt.UTC(),
	}
}

// Document renders the message as a content store document.
func (m *Message) Document() map[string]any {
	doc := map[string]any{
		"_type":      DocumentType,
		"name":       m.Name,
		"email":      m.Email,
		"subject":    m.Subject,
		"message":    m.Body,
		"receivedAt": m.ReceivedAt.UTC().Format(time.RFC3339Nano),
		"status":     string(m.Status),
	}
	if m.ID != uuid.Nil {
		doc["_id"] = m.ID.String()
	}
	return doc
}

// Submission returns the form fields the message was built from.
func (m *Message) Submission() Submission {
	return Submission{Name: m.Name, Email: m.Email, Subject: m.Subject, Message: m.Body}
}

// Result is the public outcome of a submission.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Outcome carries the details of a submission beyond the public Result.
type Outcome struct {
	Result          Result
	MessageID       string
	NotificationErr error
}
