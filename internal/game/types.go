package game

import "errors"

const (
	TotalQuestions = 20

	// AccuracyPoints is the fixed reward for a correct answer; the speed
	// bonus (0-3) comes on top, so one question is worth at most 8 and a
	// perfect game 160.
	AccuracyPoints   = 5
	MaxPossibleScore = 160

	operandMin = 1
	operandMax = 10
)

var (
	ErrGameComplete = errors.New("game already complete")
	ErrInvalidInput = errors.New("invalid input")
)

// QuestionView is what the client sees when a question is issued. The
// product stays server-side.
type QuestionView struct {
	QuestionNumber int `json:"question_number"`
	Num1           int `json:"num1"`
	Num2           int `json:"num2"`
	TotalQuestions int `json:"total_questions"`
}

// AnswerResult is the evaluation of one submitted answer.
type AnswerResult struct {
	IsCorrect      bool    `json:"is_correct"`
	CorrectAnswer  int     `json:"correct_answer"`
	TimeTaken      float64 `json:"time_taken"`
	AccuracyPoints int     `json:"accuracy_points"`
	SpeedBonus     int     `json:"speed_bonus"`
	QuestionScore  int     `json:"question_score"`
	TotalScore     int     `json:"total_score"`
	GameComplete   bool    `json:"game_complete"`
}
