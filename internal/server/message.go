package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of message
type MessageType string

const (
	// Client → Server
	TypeScore MessageType = "score"
	TypeLevel MessageType = "level"

	// Server → Client
	TypeScoreResult MessageType = "score_result"
	TypeLevelResult MessageType = "level_result"
	TypeError       MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

// ScoreData asks the server to classify and score a played hand. Cards use
// the text notation from the deck package ("Kh:foil:red-seal"); played order
// is the slice order and is significant.
type ScoreData struct {
	Cards     []string `json:"cards"`
	Held      []string `json:"held,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
	Seed      string   `json:"seed,omitempty"`
}

// LevelData applies one level card to a hand type in the session's tracker
type LevelData struct {
	HandType string `json:"handType"`
}

// Server → Client Messages

// ScoreResultData carries the outcome of a scoring pass
type ScoreResultData struct {
	HandType     string      `json:"handType"`
	ScoringCards []string    `json:"scoringCards"`
	Chips        int         `json:"chips"`
	Mult         float64     `json:"mult"`
	Score        float64     `json:"score"`
	LuckyRolls   []LuckyRoll `json:"luckyRolls,omitempty"`
}

// LuckyRoll reports one Lucky card's probability draw during a scoring pass
type LuckyRoll struct {
	Card  string  `json:"card"`
	Index int     `json:"index"`
	Roll  float64 `json:"roll"`
	Hit   bool    `json:"hit"`
}

// LevelResultData reports a hand type's state after a level card
type LevelResultData struct {
	HandType string  `json:"handType"`
	Level    int     `json:"level"`
	Chips    int     `json:"chips"`
	Mult     float64 `json:"mult"`
}

// ErrorData reports a request failure
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
