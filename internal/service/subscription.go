package service

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ChatMemberClient is the slice of the Telegram bot API needed to check
// channel membership. *tele.Bot satisfies it.
type ChatMemberClient interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// channel adapts a channel username to a telebot recipient
type channel string

func (c channel) Recipient() string { return string(c) }

// SubscriptionService checks whether a user is subscribed to the channel
type SubscriptionService struct {
	client  ChatMemberClient
	channel string
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(client ChatMemberClient, channelUsername string, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		client:  client,
		channel: channelUsername,
		logger:  logger,
	}
}

// IsSubscribed reports whether the user is a member of the channel.
// Any platform or network error is treated as "not subscribed".
func (s *SubscriptionService) IsSubscribed(userID int64) bool {
	member, err := s.client.ChatMemberOf(channel(s.channel), &tele.User{ID: userID})
	if err != nil {
		s.logger.Warn("Failed to check subscription",
			zap.Int64("user_id", userID),
			zap.String("channel", s.channel),
			zap.Error(err),
		)
		return false
	}

	switch member.Role {
	case tele.Creator, tele.Administrator, tele.Member:
		return true
	default:
		return false
	}
}
