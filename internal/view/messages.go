package view

import (
	"context"
	"fmt"

	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// Messages resolves the conversations view: the caller's recent messages
// collapsed to one entry per conversation, newest first. Read-only; replies
// go through whatever channel started the conversation.
func Messages(ctx context.Context, env Env, _ router.Route) (Result, error) {
	user, redirect := gateUser(env)
	if redirect != nil {
		return *redirect, nil
	}

	list, err := env.Service.Conversations(ctx, listLimit)
	if err != nil {
		list = domain.MessageList{}
	}

	conversations := domain.GroupConversations(list.Messages, user.ID)

	result := Result{Title: "Messages"}

	if len(conversations) == 0 {
		result.Footer = emptyState("No conversations yet.")
		return result, nil
	}

	for _, c := range conversations {
		result.Entries = append(result.Entries, Entry{Text: conversationCard(c)})
	}

	return result, nil
}

func conversationCard(c domain.Conversation) string {
	return cardStyle.Render(fmt.Sprintf("%s\n%s",
		mutedStyle.Render("With "+c.OtherUserID),
		c.Preview.Content,
	))
}
