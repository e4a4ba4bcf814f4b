package models

// AnswerRecord is the evaluated outcome of one submitted answer. Records are
// appended in question order and never mutated.
type AnswerRecord struct {
	UserAnswer    int     `bson:"user_answer" json:"user_answer"`
	CorrectAnswer int     `bson:"correct_answer" json:"correct_answer"`
	IsCorrect     bool    `bson:"is_correct" json:"is_correct"`
	TimeTaken     float64 `bson:"time_taken" json:"time_taken"`
	Points        int     `bson:"points" json:"points"`
}
