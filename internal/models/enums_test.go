package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConversationStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"active", "waiting", "resolved", "closed"} {
		status, err := ParseConversationStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	_, err := ParseConversationStatus("all")
	assert.Error(t, err, "the filter pseudo value is not a storable status")
	_, err = ParseConversationStatus("archived")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusClosed.Terminal())
	assert.False(t, StatusActive.Terminal())
	assert.False(t, StatusWaiting.Terminal())
	assert.False(t, StatusResolved.Terminal())
}

func TestMessageSummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  Message
		want string
	}{
		{"text", Message{MessageType: MessageText, Content: "hola"}, "hola"},
		{"image", Message{MessageType: MessageImage, AttachmentName: "id.png"}, "[image] id.png"},
		{"file", Message{MessageType: MessageFile, AttachmentName: "bill.pdf"}, "[file] bill.pdf"},
		{"system", Message{MessageType: MessageSystem, Content: "agent assigned"}, "[system] agent assigned"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.msg.Summary())
		})
	}
}

func TestMessagePreview(t *testing.T) {
	t.Parallel()

	at := time.Now()
	msg := Message{
		MessageType: MessageText,
		SenderType:  SenderContact,
		SenderName:  "Maria",
		Content:     "sigue pendiente",
		CreatedAt:   at,
	}
	preview := msg.Preview()
	assert.Equal(t, "sigue pendiente", preview.Content)
	assert.Equal(t, SenderContact, preview.SenderType)
	assert.Equal(t, "Maria", preview.SenderName)
	assert.Equal(t, at, preview.CreatedAt)
}
