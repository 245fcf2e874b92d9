package service

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"phrasebot/internal/domain"
	"phrasebot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestPhraseService_Add(t *testing.T) {
	mockRepo := new(testutil.MockPhraseRepository)
	mockRepo.On("Save", "Новая фраза").Return(5, nil)

	service := NewPhraseService(mockRepo)

	id, err := service.Add("Новая фраза")

	assert.NoError(t, err)
	assert.Equal(t, 5, id)
	mockRepo.AssertExpectations(t)
}

func TestPhraseService_Random(t *testing.T) {
	tests := []struct {
		name          string
		mockReturn    *domain.Phrase
		mockError     error
		expectedText  string
		expectedError bool
	}{
		{
			name:         "phrase found",
			mockReturn:   &domain.Phrase{ID: 1, Text: "Вдохновение рядом"},
			expectedText: "Вдохновение рядом",
		},
		{
			name:         "empty store falls back",
			mockReturn:   nil,
			expectedText: EmptyStoreText,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockPhraseRepository)
			mockRepo.On("GetRandom").Return(tt.mockReturn, tt.mockError)

			service := NewPhraseService(mockRepo)

			text, err := service.Random()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPhraseService_DeletePage(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		start        int
		expectedIDs  []int
		expectedPrev bool
		expectedNext bool
	}{
		{
			name:         "first page of seven",
			total:        7,
			start:        0,
			expectedIDs:  []int{1, 2, 3},
			expectedPrev: false,
			expectedNext: true,
		},
		{
			name:         "middle page of seven",
			total:        7,
			start:        3,
			expectedIDs:  []int{4, 5, 6},
			expectedPrev: true,
			expectedNext: true,
		},
		{
			name:         "last page of seven",
			total:        7,
			start:        6,
			expectedIDs:  []int{7},
			expectedPrev: true,
			expectedNext: false,
		},
		{
			name:         "exactly one page",
			total:        3,
			start:        0,
			expectedIDs:  []int{1, 2, 3},
			expectedPrev: false,
			expectedNext: false,
		},
		{
			name:         "empty store",
			total:        0,
			start:        0,
			expectedIDs:  []int{},
			expectedPrev: false,
			expectedNext: false,
		},
		{
			name:         "negative start clamps to zero",
			total:        4,
			start:        -3,
			expectedIDs:  []int{1, 2, 3},
			expectedPrev: false,
			expectedNext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockPhraseRepository)
			mockRepo.On("GetAll").Return(testutil.NewTestPhrases(tt.total), nil)

			service := NewPhraseService(mockRepo)

			page, err := service.DeletePage(tt.start)

			assert.NoError(t, err)
			ids := make([]int, 0, len(page.Phrases))
			for _, p := range page.Phrases {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedPrev, page.HasPrev)
			assert.Equal(t, tt.expectedNext, page.HasNext)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPhraseService_ImportText(t *testing.T) {
	mockRepo := new(testutil.MockPhraseRepository)
	mockRepo.On("Save", "A").Return(1, nil)
	mockRepo.On("Save", "B").Return(2, nil)
	mockRepo.On("Save", "").Return(3, nil)

	service := NewPhraseService(mockRepo)

	added, err := service.ImportText(`"A", "B", ""`)

	assert.NoError(t, err)
	assert.Equal(t, 3, added)
	mockRepo.AssertExpectations(t)
}

func TestPhraseService_ImportText_NoQuotes(t *testing.T) {
	mockRepo := new(testutil.MockPhraseRepository)

	service := NewPhraseService(mockRepo)

	added, err := service.ImportText("просто текст без кавычек")

	assert.NoError(t, err)
	assert.Equal(t, 0, added)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestPhraseService_ImportText_SaveError(t *testing.T) {
	mockRepo := new(testutil.MockPhraseRepository)
	mockRepo.On("Save", "A").Return(1, nil)
	mockRepo.On("Save", "B").Return(0, fmt.Errorf("db error"))

	service := NewPhraseService(mockRepo)

	added, err := service.ImportText(`"A" "B" "C"`)

	assert.Error(t, err)
	assert.Equal(t, 1, added)
	mockRepo.AssertExpectations(t)
}

func TestFormatList(t *testing.T) {
	phrases := []domain.Phrase{
		{ID: 10, Text: "первая"},
		{ID: 12, Text: "вторая"},
	}

	text := FormatList(phrases)

	assert.Equal(t, "Список ваших фраз:\n\n1. первая\n2. вторая", text)
}

func TestFormatList_Empty(t *testing.T) {
	text := FormatList(nil)

	// Header only, no numbered entries
	assert.Equal(t, "Список ваших фраз:\n", text)
	assert.NotContains(t, text, "1.")
}

func TestSplitMessage_ShortText(t *testing.T) {
	chunks := SplitMessage("короткий текст", MaxMessageLen)

	assert.Equal(t, []string{"короткий текст"}, chunks)
}

func TestSplitMessage_SplitsOnLineBoundaries(t *testing.T) {
	var lines []string
	for i := 1; i <= 200; i++ {
		lines = append(lines, fmt.Sprintf("%d. %s", i, strings.Repeat("ф", 40)))
	}
	text := strings.Join(lines, "\n")

	chunks := SplitMessage(text, MaxMessageLen)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), MaxMessageLen)
	}

	// Concatenation reproduces the input, so no line loses its numbering
	assert.Equal(t, text, strings.Join(chunks, ""))

	// No chunk starts mid-line
	for i, chunk := range chunks {
		if i == 0 {
			continue
		}
		assert.True(t, strings.HasSuffix(chunks[i-1], "\n"),
			"chunk %d should begin at a line boundary", i)
		_ = chunk
	}
}

func TestSplitMessage_OversizedLine(t *testing.T) {
	long := strings.Repeat("а", 250)

	chunks := SplitMessage(long, 100)

	assert.Len(t, chunks, 3)
	assert.Equal(t, long, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
	}
}

func TestSplitMessage_EmptyText(t *testing.T) {
	chunks := SplitMessage("", MaxMessageLen)

	assert.Equal(t, []string{""}, chunks)
}
