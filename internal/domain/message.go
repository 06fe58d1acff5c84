package domain

// Message is a single chat message from the recent-message feed.
type Message struct {
	ID             string `json:"id"`
	SenderID       string `json:"sender_id"`
	ReceiverID     string `json:"receiver_id"`
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

// MessageList is the list response shape for the conversations feed.
type MessageList struct {
	Total    int       `json:"total"`
	Messages []Message `json:"messages"`
}

// Conversation is a client-side grouping of messages sharing a conversation
// id. It is constructed fresh on every render and never persisted.
type Conversation struct {
	ID          string
	Preview     Message
	OtherUserID string
}

// ShortID returns the first eight characters of the conversation id.
func (c Conversation) ShortID() string {
	if len(c.ID) <= 8 {
		return c.ID
	}
	return c.ID[:8]
}

// GroupConversations folds a flat recent-message list into conversations,
// keeping the first-seen message per conversation id as the preview (the
// feed is most-recent-first, so first seen is newest). The other participant
// is whichever of sender/receiver is not the current user. Order follows
// first appearance in the feed.
func GroupConversations(messages []Message, currentUserID string) []Conversation {
	seen := make(map[string]bool, len(messages))
	var conversations []Conversation

	for _, msg := range messages {
		if seen[msg.ConversationID] {
			continue
		}
		seen[msg.ConversationID] = true

		other := msg.SenderID
		if msg.SenderID == currentUserID {
			other = msg.ReceiverID
		}

		conversations = append(conversations, Conversation{
			ID:          msg.ConversationID,
			Preview:     msg,
			OtherUserID: other,
		})
	}

	return conversations
}
