package models

// ResultsSummary is the aggregate view returned by get-results. It can be
// requested mid-game; accuracy is always relative to the full question count.
type ResultsSummary struct {
	CorrectCount       int            `json:"correct_count"`
	TotalQuestions     int            `json:"total_questions"`
	AccuracyPercentage float64        `json:"accuracy_percentage"`
	TotalTime          float64        `json:"total_time"`
	FinalScore         int            `json:"final_score"`
	MaxPossibleScore   int            `json:"max_possible_score"`
	Answers            []AnswerRecord `json:"answers"`
}
