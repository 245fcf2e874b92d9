package testutil

import (
	"phrasebot/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockPhraseRepository is a mock for PhraseRepository
type MockPhraseRepository struct {
	mock.Mock
}

func (m *MockPhraseRepository) Save(text string) (int, error) {
	args := m.Called(text)
	return args.Int(0), args.Error(1)
}

func (m *MockPhraseRepository) GetByID(id int) (*domain.Phrase, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Phrase), args.Error(1)
}

func (m *MockPhraseRepository) GetAll() ([]domain.Phrase, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Phrase), args.Error(1)
}

func (m *MockPhraseRepository) GetRandom() (*domain.Phrase, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Phrase), args.Error(1)
}

func (m *MockPhraseRepository) DeleteByID(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPhraseRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

// MockChatMemberClient is a mock for the subscription checker's bot client
type MockChatMemberClient struct {
	mock.Mock
}

func (m *MockChatMemberClient) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	args := m.Called(chat, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.ChatMember), args.Error(1)
}
