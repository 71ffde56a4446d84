package conversation

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "jan-server/services/messaging-api/internal/domain/conversation"
)

// InMemoryStore keeps conversations and messages in process. It is
// thread-safe and meant for demos and tests.
type InMemoryStore struct {
	mu            sync.RWMutex
	now           func() time.Time
	nextConvID    uint
	nextMessageID uint
	conversations map[uint]domain.Conversation
	messages      map[uint][]domain.Message
}

// NewInMemoryStore returns an empty store. now may be nil.
func NewInMemoryStore(now func() time.Time) *InMemoryStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &InMemoryStore{
		now:           now,
		nextConvID:    1,
		nextMessageID: 1,
		conversations: make(map[uint]domain.Conversation),
		messages:      make(map[uint][]domain.Message),
	}
}

// Conversations exposes the store as a domain.Repository.
func (s *InMemoryStore) Conversations() *InMemoryRepository {
	return &InMemoryRepository{store: s}
}

// Messages exposes the store as a domain.MessageRepository.
func (s *InMemoryStore) Messages() *InMemoryMessageRepository {
	return &InMemoryMessageRepository{store: s}
}

// InMemoryRepository is the conversation view of an InMemoryStore.
type InMemoryRepository struct {
	store *InMemoryStore
}

func (r *InMemoryRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	conv.ID = s.nextConvID
	conv.CreatedAt = now
	conv.UpdatedAt = now
	s.nextConvID++
	s.conversations[conv.ID] = *conv
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, conv *domain.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conv.ID]; !ok {
		return conversationNotFound(ctx, conv.ID)
	}
	conv.UpdatedAt = s.now()
	s.conversations[conv.ID] = *conv
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, conversationNotFound(ctx, id)
	}
	return &conv, nil
}

func (r *InMemoryRepository) ListByParticipant(ctx context.Context, userID uint) ([]*domain.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Conversation, 0)
	for _, conv := range s.conversations {
		if conv.HasParticipant(userID) {
			result = append(result, &conv)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *InMemoryRepository) HasMessages(ctx context.Context, id uint) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.messages[id]) > 0, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return conversationNotFound(ctx, id)
	}
	delete(s.messages, id)
	delete(s.conversations, id)
	return nil
}

// InMemoryMessageRepository is the message view of an InMemoryStore.
type InMemoryMessageRepository struct {
	store *InMemoryStore
}

func (r *InMemoryMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[msg.ConversationID]; !ok {
		return conversationNotFound(ctx, msg.ConversationID)
	}
	msg.ID = s.nextMessageID
	s.nextMessageID++
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], *msg)
	return nil
}

func (r *InMemoryMessageRepository) FindByID(ctx context.Context, conversationID, id uint) (*domain.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, msg := range s.messages[conversationID] {
		if msg.ID == id {
			return &msg, nil
		}
	}
	return nil, messageNotFound(ctx, conversationID, id)
}

func (r *InMemoryMessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*domain.Message, error) {
	return r.collect(conversationID, func(*domain.Message) bool { return true }), nil
}

func (r *InMemoryMessageRepository) ListAfter(ctx context.Context, conversationID uint, checkpoint *domain.Message) ([]*domain.Message, error) {
	return r.collect(conversationID, func(m *domain.Message) bool { return m.After(checkpoint) }), nil
}

func (r *InMemoryMessageRepository) Delete(ctx context.Context, conversationID, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[conversationID]
	for i := range msgs {
		if msgs[i].ID == id {
			s.messages[conversationID] = append(msgs[:i:i], msgs[i+1:]...)
			return nil
		}
	}
	return messageNotFound(ctx, conversationID, id)
}

func (r *InMemoryMessageRepository) collect(conversationID uint, keep func(*domain.Message) bool) []*domain.Message {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Message, 0)
	for _, msg := range s.messages[conversationID] {
		if keep(&msg) {
			result = append(result, &msg)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[j].After(result[i]) })
	return result
}
