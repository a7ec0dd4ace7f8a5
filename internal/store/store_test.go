package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

type fakeAPI struct {
	mu sync.Mutex

	channels      []models.Channel
	conversations map[string][]models.Conversation
	messages      map[int64][]models.Message
	listErr       error

	// blockMessages holds a gate per conversation id; ListMessages waits on
	// it before returning, letting tests control resolution order.
	blockMessages map[int64]chan struct{}
	// blockList gates list responses per search term.
	blockList map[string]chan struct{}

	listCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		conversations: map[string][]models.Conversation{},
		messages:      map[int64][]models.Message{},
		blockMessages: map[int64]chan struct{}{},
		blockList:     map[string]chan struct{}{},
	}
}

func (f *fakeAPI) ListChannels(ctx context.Context) ([]models.Channel, error) {
	return f.channels, nil
}

func (f *fakeAPI) ListConversations(ctx context.Context, filter models.ConversationFilter) ([]models.Conversation, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.blockList[filter.Search]
	result := f.conversations[filter.Search]
	err := f.listErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *fakeAPI) GetConversation(ctx context.Context, id int64) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, convs := range f.conversations {
		for _, conv := range convs {
			if conv.ID == id {
				clone := conv
				return &clone, nil
			}
		}
	}
	return nil, fmt.Errorf("conversation %d not found", id)
}

func (f *fakeAPI) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	f.mu.Lock()
	gate := f.blockMessages[conversationID]
	result := f.messages[conversationID]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return result, nil
}

func conv(id int64, status models.ConversationStatus) models.Conversation {
	return models.Conversation{
		ID:      id,
		Status:  status,
		Contact: models.Contact{ID: id * 100, Name: fmt.Sprintf("contact-%d", id)},
		Channel: models.Channel{ID: 1, Name: "web chat", ChannelType: models.ChannelChat},
	}
}

func msg(id int64, convID int64, content string, at time.Time) models.Message {
	return models.Message{
		ID:             id,
		ConversationID: convID,
		SenderType:     models.SenderContact,
		MessageType:    models.MessageText,
		Content:        content,
		CreatedAt:      at,
	}
}

func TestLoadList(t *testing.T) {
	t.Parallel()

	t.Run("replaces list with server result", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive), conv(2, models.StatusWaiting)}
		s := New(api)

		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))
		assert.Len(t, s.Conversations(), 2)
	})

	t.Run("keeps stale list on failure", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive)}
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))

		api.mu.Lock()
		api.listErr = fmt.Errorf("boom")
		api.mu.Unlock()

		err := s.LoadList(t.Context(), models.ConversationFilter{Search: "x"})
		var loadErr *models.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Len(t, s.Conversations(), 1, "previous list must stay available")
	})

	t.Run("late response for superseded filter is discarded", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations["old"] = []models.Conversation{conv(1, models.StatusActive)}
		api.conversations["invoice"] = []models.Conversation{conv(2, models.StatusWaiting)}
		gate := make(chan struct{})
		api.blockList["old"] = gate
		s := New(api)

		done := make(chan error, 1)
		go func() {
			done <- s.LoadList(t.Context(), models.ConversationFilter{Search: "old"})
		}()

		// wait for the first query to be in flight
		require.Eventually(t, func() bool {
			api.mu.Lock()
			defer api.mu.Unlock()
			return api.listCalls == 1
		}, time.Second, time.Millisecond)

		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{Search: "invoice"}))
		close(gate)
		require.NoError(t, <-done)

		convs := s.Conversations()
		require.Len(t, convs, 1)
		assert.Equal(t, int64(2), convs[0].ID, "list must reflect the last issued filter")
		assert.Equal(t, "invoice", s.Filter().Search)
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("loads thread for selected conversation", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive)}
		api.messages[1] = []models.Message{msg(10, 1, "hello", time.Now())}
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))

		require.NoError(t, s.Select(t.Context(), 1))
		require.NotNil(t, s.Selected())
		assert.Equal(t, int64(1), s.Selected().ID)
		require.Len(t, s.Messages(), 1)
		assert.Equal(t, "hello", s.Messages()[0].Content)
	})

	t.Run("falls back to detail fetch when not in list", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations["hidden"] = []models.Conversation{conv(7, models.StatusResolved)}
		api.messages[7] = []models.Message{msg(70, 7, "archived", time.Now())}
		s := New(api)

		require.NoError(t, s.Select(t.Context(), 7))
		require.NotNil(t, s.Selected())
		assert.Equal(t, int64(7), s.Selected().ID)
		require.Len(t, s.Messages(), 1)
	})

	t.Run("last selected wins when responses arrive out of order", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive), conv(2, models.StatusActive)}
		api.messages[1] = []models.Message{msg(10, 1, "thread A", time.Now())}
		api.messages[2] = []models.Message{msg(20, 2, "thread B", time.Now())}
		gateA := make(chan struct{})
		api.blockMessages[1] = gateA
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))

		done := make(chan error, 1)
		go func() {
			done <- s.Select(t.Context(), 1)
		}()

		require.Eventually(t, func() bool {
			sel := s.Selected()
			return sel != nil && sel.ID == 1
		}, time.Second, time.Millisecond)

		require.NoError(t, s.Select(t.Context(), 2))
		close(gateA) // A's thread resolves after B was selected
		require.NoError(t, <-done)

		require.NotNil(t, s.Selected())
		assert.Equal(t, int64(2), s.Selected().ID)
		require.Len(t, s.Messages(), 1)
		assert.Equal(t, "thread B", s.Messages()[0].Content, "stale thread must be discarded")
	})
}

func TestApplyIncomingMessage(t *testing.T) {
	t.Parallel()

	t.Run("preserves append order", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive)}
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))
		require.NoError(t, s.Select(t.Context(), 1))

		base := time.Now()
		for i := 0; i < 50; i++ {
			s.ApplyIncomingMessage(1, msg(int64(i), 1, fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Second)))
		}

		messages := s.Messages()
		require.Len(t, messages, 50)
		for i, m := range messages {
			assert.Equal(t, fmt.Sprintf("m%d", i), m.Content)
		}
	})

	t.Run("updates list entry preview even when not selected", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive), conv(2, models.StatusActive)}
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))
		require.NoError(t, s.Select(t.Context(), 1))

		at := time.Now()
		s.ApplyIncomingMessage(2, msg(99, 2, "ping", at))

		assert.Empty(t, s.Messages(), "unselected conversation must not touch the open thread")
		for _, c := range s.Conversations() {
			if c.ID == 2 {
				require.NotNil(t, c.LastMessage)
				assert.Equal(t, "ping", c.LastMessage.Content)
				assert.Equal(t, at, c.LastActivity)
			}
		}
	})

	t.Run("older preview does not supersede newer one", func(t *testing.T) {
		api := newFakeAPI()
		api.conversations[""] = []models.Conversation{conv(1, models.StatusActive)}
		s := New(api)
		require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))

		now := time.Now()
		s.ApplyIncomingMessage(1, msg(2, 1, "newer", now))
		s.ApplyIncomingMessage(1, msg(1, 1, "older", now.Add(-time.Minute)))

		c := s.Conversations()[0]
		require.NotNil(t, c.LastMessage)
		assert.Equal(t, "newer", c.LastMessage.Content)
	})
}

func TestApplyStatusChange(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.conversations[""] = []models.Conversation{conv(1, models.StatusActive), conv(2, models.StatusActive)}
	s := New(api)
	require.NoError(t, s.LoadList(t.Context(), models.ConversationFilter{}))
	require.NoError(t, s.Select(t.Context(), 1))

	updated := conv(1, models.StatusResolved)
	s.ApplyStatusChange(updated)

	require.NotNil(t, s.Selected())
	assert.Equal(t, models.StatusResolved, s.Selected().Status)
	for _, c := range s.Conversations() {
		if c.ID == 1 {
			assert.Equal(t, models.StatusResolved, c.Status)
		} else {
			assert.Equal(t, models.StatusActive, c.Status)
		}
	}
}
