package domain

// Phrase represents a single inspirational phrase
type Phrase struct {
	ID   int
	Text string
}
