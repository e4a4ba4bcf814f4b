package models

import "time"

// SessionState tracks where a session is in its lifecycle. Submitting an
// answer is only legal while a question is pending.
type SessionState string

const (
	StateAwaitingNext    SessionState = "awaiting_next"
	StateQuestionPending SessionState = "question_pending"
	StateComplete        SessionState = "complete"
)

type GameSession struct {
	ID            string         `bson:"_id" json:"id"`
	Questions     []Question     `bson:"questions" json:"questions"`
	Cursor        int            `bson:"cursor" json:"cursor"`
	Answers       []AnswerRecord `bson:"answers" json:"answers"`
	Score         int            `bson:"score" json:"score"`
	CorrectCount  int            `bson:"correct_count" json:"correct_count"`
	State         SessionState   `bson:"state" json:"state"`
	QuestionStart time.Time      `bson:"question_start" json:"question_start"`
	StartedAt     time.Time      `bson:"started_at" json:"started_at"`

	// Version counts committed updates. The Mongo-backed store bumps it on
	// every write and filters on the previous value, so two racing updates
	// cannot both land on the same snapshot.
	Version int64 `bson:"version" json:"version"`
}

func (s *GameSession) Complete() bool {
	return s.State == StateComplete
}

// Clone returns an independent copy so callers can mutate the result
// without touching stored state.
func (s *GameSession) Clone() *GameSession {
	c := *s
	c.Questions = make([]Question, len(s.Questions))
	copy(c.Questions, s.Questions)
	c.Answers = make([]AnswerRecord, len(s.Answers))
	copy(c.Answers, s.Answers)
	return &c
}
