package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupConversations(t *testing.T) {
	me := "user-1"
	messages := []Message{
		{ID: "m1", ConversationID: "conv-a", SenderID: "user-2", ReceiverID: me, Content: "newest in a"},
		{ID: "m2", ConversationID: "conv-b", SenderID: me, ReceiverID: "user-3", Content: "newest in b"},
		{ID: "m3", ConversationID: "conv-a", SenderID: me, ReceiverID: "user-2", Content: "older in a"},
	}

	conversations := GroupConversations(messages, me)
	require.Len(t, conversations, 2)

	// First-seen message wins as preview, order follows the feed.
	assert.Equal(t, "conv-a", conversations[0].ID)
	assert.Equal(t, "newest in a", conversations[0].Preview.Content)
	assert.Equal(t, "user-2", conversations[0].OtherUserID)

	assert.Equal(t, "conv-b", conversations[1].ID)
	assert.Equal(t, "user-3", conversations[1].OtherUserID)
}

func TestGroupConversationsEmpty(t *testing.T) {
	assert.Empty(t, GroupConversations(nil, "user-1"))
}

func TestGroupConversationsOtherParticipant(t *testing.T) {
	// When the current user is the receiver, the other participant is the
	// sender, and vice versa.
	msgs := []Message{{ConversationID: "c", SenderID: "a", ReceiverID: "b"}}

	asB := GroupConversations(msgs, "b")
	assert.Equal(t, "a", asB[0].OtherUserID)

	asA := GroupConversations(msgs, "a")
	assert.Equal(t, "b", asA[0].OtherUserID)
}
