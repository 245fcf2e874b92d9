package service

import (
	"fmt"
	"testing"

	"phrasebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

func TestSubscriptionService_IsSubscribed(t *testing.T) {
	tests := []struct {
		name       string
		role       tele.MemberStatus
		mockError  error
		subscribed bool
	}{
		{
			name:       "member",
			role:       tele.Member,
			subscribed: true,
		},
		{
			name:       "administrator",
			role:       tele.Administrator,
			subscribed: true,
		},
		{
			name:       "creator",
			role:       tele.Creator,
			subscribed: true,
		},
		{
			name:       "left the channel",
			role:       tele.Left,
			subscribed: false,
		},
		{
			name:       "kicked",
			role:       tele.Kicked,
			subscribed: false,
		},
		{
			name:       "platform error fails closed",
			mockError:  fmt.Errorf("api error"),
			subscribed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(testutil.MockChatMemberClient)
			if tt.mockError != nil {
				client.On("ChatMemberOf", mock.Anything, mock.Anything).Return(nil, tt.mockError)
			} else {
				client.On("ChatMemberOf", mock.Anything, mock.Anything).
					Return(&tele.ChatMember{Role: tt.role}, nil)
			}

			service := NewSubscriptionService(client, "@testchannel", testutil.NewTestLogger())

			assert.Equal(t, tt.subscribed, service.IsSubscribed(123))
			client.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_ChannelRecipient(t *testing.T) {
	client := new(testutil.MockChatMemberClient)
	client.On("ChatMemberOf",
		mock.MatchedBy(func(chat tele.Recipient) bool { return chat.Recipient() == "@testchannel" }),
		mock.MatchedBy(func(user tele.Recipient) bool { return user.Recipient() == "123" }),
	).Return(&tele.ChatMember{Role: tele.Member}, nil)

	service := NewSubscriptionService(client, "@testchannel", testutil.NewTestLogger())

	assert.True(t, service.IsSubscribed(123))
	client.AssertExpectations(t)
}
