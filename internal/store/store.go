// Package store holds the in-memory inbox state: the filtered conversation
// list, the selected conversation, and its message thread. It is rebuilt from
// the server on every run and owns no persistence.
//
// Two sequence counters guard against out-of-order network resolutions: a list
// response is dropped when a newer filter state has been issued, and a thread
// response is dropped when a different conversation has been selected since.
package store

import (
	"context"
	"sync"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

// API is the slice of the remote client the store reads through.
type API interface {
	ListChannels(ctx context.Context) ([]models.Channel, error)
	ListConversations(ctx context.Context, filter models.ConversationFilter) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
}

type Store struct {
	mu  sync.Mutex
	api API

	channels       []models.Channel
	channelsLoaded bool

	conversations []models.Conversation
	selected      *models.Conversation
	messages      []models.Message

	filter    models.ConversationFilter
	listSeq   uint64
	selectSeq uint64
}

func New(api API) *Store {
	return &Store{api: api}
}

// LoadChannels fetches the channel reference data once per session.
// Subsequent calls return the cached set.
func (s *Store) LoadChannels(ctx context.Context) ([]models.Channel, error) {
	s.mu.Lock()
	if s.channelsLoaded {
		channels := append([]models.Channel(nil), s.channels...)
		s.mu.Unlock()
		return channels, nil
	}
	s.mu.Unlock()

	channels, err := s.api.ListChannels(ctx)
	if err != nil {
		return nil, &models.LoadError{What: "channels", Err: err}
	}

	s.mu.Lock()
	s.channels = channels
	s.channelsLoaded = true
	s.mu.Unlock()
	return append([]models.Channel(nil), channels...), nil
}

// LoadList replaces the conversation list with the server result for filter.
// On failure the previous list stays available. A response that resolves after
// a newer filter state was issued is discarded.
func (s *Store) LoadList(ctx context.Context, filter models.ConversationFilter) error {
	s.mu.Lock()
	s.listSeq++
	seq := s.listSeq
	s.filter = filter
	s.mu.Unlock()

	conversations, err := s.api.ListConversations(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.listSeq {
		// a newer filter state was issued while this request was in flight
		return nil
	}
	if err != nil {
		return &models.LoadError{What: "conversations", Err: err}
	}
	s.conversations = conversations
	return nil
}

// Select switches to the conversation with the given id, clears the thread,
// and loads its messages. Last selected wins: if another Select lands while
// this one's responses are in flight, those responses are discarded.
func (s *Store) Select(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.selectSeq++
	seq := s.selectSeq
	s.messages = nil
	s.selected = nil
	if entry := s.findLocked(id); entry != nil {
		clone := *entry
		s.selected = &clone
	}
	needDetail := s.selected == nil
	s.mu.Unlock()

	var detail *models.Conversation
	if needDetail {
		// not in the current list window, fetch the detail directly
		conv, err := s.api.GetConversation(ctx, id)
		if superseded, ferr := s.finishSelect(seq, err, "conversation"); superseded || ferr != nil {
			return ferr
		}
		detail = conv
	}

	messages, err := s.api.ListMessages(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.selectSeq {
		return nil
	}
	if err != nil {
		return &models.LoadError{What: "messages", Err: err}
	}
	if detail != nil {
		s.selected = detail
	}
	s.messages = messages
	return nil
}

// finishSelect checks whether a selection step is still current and wraps its
// error. superseded means the result must be discarded without error.
func (s *Store) finishSelect(seq uint64, err error, what string) (superseded bool, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.selectSeq {
		return true, nil
	}
	if err != nil {
		return false, &models.LoadError{What: what, Err: err}
	}
	return false, nil
}

// ApplyIncomingMessage appends the message to the open thread when it belongs
// to the selected conversation, and always refreshes the matching list entry's
// preview. A preview older than the one already shown does not supersede it.
func (s *Store) ApplyIncomingMessage(conversationID int64, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil && s.selected.ID == conversationID {
		s.messages = append(s.messages, msg)
		s.applyPreviewLocked(s.selected, msg)
	}
	if entry := s.findLocked(conversationID); entry != nil {
		s.applyPreviewLocked(entry, msg)
	}
}

func (s *Store) applyPreviewLocked(conv *models.Conversation, msg models.Message) {
	if conv.LastMessage != nil && msg.CreatedAt.Before(conv.LastMessage.CreatedAt) {
		return
	}
	conv.LastMessage = msg.Preview()
	conv.LastActivity = msg.CreatedAt
}

// ApplyStatusChange replaces the matching list entry with the server-returned
// conversation and, when it is the selected one, the selection too.
func (s *Store) ApplyStatusChange(updated models.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID == updated.ID {
			s.conversations[i] = updated
			break
		}
	}
	if s.selected != nil && s.selected.ID == updated.ID {
		clone := updated
		s.selected = &clone
	}
}

// Conversations returns a snapshot of the current list.
func (s *Store) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Conversation(nil), s.conversations...)
}

// Selected returns a copy of the selected conversation, or nil.
func (s *Store) Selected() *models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	clone := *s.selected
	return &clone
}

// SelectedID returns the selected conversation id, or 0.
func (s *Store) SelectedID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0
	}
	return s.selected.ID
}

// Messages returns a snapshot of the open thread in server creation order.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// Filter returns the last issued filter state.
func (s *Store) Filter() models.ConversationFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Store) findLocked(id int64) *models.Conversation {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return &s.conversations[i]
		}
	}
	return nil
}
