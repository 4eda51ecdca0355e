package contact

import (
	"context"
	"sync"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/socialsync/internal/storage"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

// Store persists contact messages and returns the assigned identifier.
type Store interface {
	Save(ctx context.Context, msg *Message) (string, error)
}

// SanityStore writes messages as contactMessage documents through the
// content store's mutation API.
type SanityStore struct {
	creator interfaces.DocumentCreator
}

// NewSanityStore wraps creator.
func NewSanityStore(creator interfaces.DocumentCreator) *SanityStore {
	return &SanityStore{creator: creator}
}

// Save implements Store.
func (s *SanityStore) Save(ctx context.Context, msg *Message) (string, error) {
	if s == nil || s.creator == nil {
		return "", ErrStoreRequired
	}
	return s.creator.CreateDocument(ctx, msg.Document())
}

// NewMessageRepository builds the go-repository-bun repository for messages.
func NewMessageRepository(db *bun.DB) repository.Repository[*Message] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Message]{
		NewRecord: func() *Message { return &Message{} },
		GetID: func(m *Message) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Message, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(m *Message) string {
			return m.ID.String()
		},
	})
}

// BunStore keeps messages in the contact_messages table.
type BunStore struct {
	db       *bun.DB
	messages repository.Repository[*Message]
	newID    func() uuid.UUID
}

// NewBunStore wires a store over db.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{
		db:       db,
		messages: NewMessageRepository(db),
		newID:    uuid.New,
	}
}

// Migrate creates the contact_messages table when missing.
func (s *BunStore) Migrate(ctx context.Context) error {
	return storage.Migrate(ctx, s.db, (*Message)(nil))
}

// Save implements Store.
func (s *BunStore) Save(ctx context.Context, msg *Message) (string, error) {
	if msg.ID == uuid.Nil {
		msg.ID = s.newID()
	}
	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return "", err
	}
	return created.ID.String(), nil
}

// Get loads a stored message by id.
func (s *BunStore) Get(ctx context.Context, id string) (*Message, error) {
	return s.messages.GetByID(ctx, id)
}

// MemoryStore keeps messages in memory.
type MemoryStore struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailWith makes subsequent saves return err. A nil err restores normal behaviour.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, msg *Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	s.messages = append(s.messages, *msg)
	return msg.ID.String(), nil
}

// Messages returns a copy of the stored messages in insertion order.
func (s *MemoryStore) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
