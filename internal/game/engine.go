package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mathgame-service/internal/models"
	"mathgame-service/internal/store"

	"github.com/google/uuid"
)

// Engine owns the question/answer/score lifecycle. All session state lives
// in the store; the engine itself is stateless and safe for concurrent use.
type Engine struct {
	store store.SessionStore
	now   func() time.Time
	intn  func(n int) int
}

func NewEngine(st store.SessionStore) *Engine {
	return &Engine{
		store: st,
		now:   time.Now,
		intn:  rand.Intn,
	}
}

// StartSession generates a fresh 20-question session and persists it.
// Operands are drawn independently per question, so repeated pairs are
// expected.
func (e *Engine) StartSession(ctx context.Context) (*models.GameSession, error) {
	questions := make([]models.Question, TotalQuestions)
	for i := range questions {
		n1 := operandMin + e.intn(operandMax-operandMin+1)
		n2 := operandMin + e.intn(operandMax-operandMin+1)
		questions[i] = models.Question{Num1: n1, Num2: n2, Answer: n1 * n2}
	}

	session := &models.GameSession{
		Questions: questions,
		Answers:   []models.AnswerRecord{},
		State:     models.StateAwaitingNext,
		StartedAt: e.now(),
	}

	// UUIDs make collisions a formality, but the store still gets the
	// final say.
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		session.ID = uuid.NewString()
		err = e.store.Create(ctx, session)
		if !errors.Is(err, store.ErrDuplicateKey) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// NextQuestion issues the question at the cursor and starts its timer.
// Calling it again before submitting re-issues the same question with a
// fresh timer.
func (e *Engine) NextQuestion(ctx context.Context, sessionID string) (*QuestionView, error) {
	var view QuestionView
	err := e.store.Update(ctx, sessionID, func(s *models.GameSession) error {
		if s.Complete() {
			return ErrGameComplete
		}
		q := s.Questions[s.Cursor]
		s.QuestionStart = e.now()
		s.State = models.StateQuestionPending
		view = QuestionView{
			QuestionNumber: s.Cursor + 1,
			Num1:           q.Num1,
			Num2:           q.Num2,
			TotalQuestions: TotalQuestions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// SubmitAnswer evaluates the pending question, applies the scoring policy
// and advances the cursor. The whole mutation is applied atomically via the
// store, so a rejected submit leaves the session exactly as it was.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionID string, submitted any) (*AnswerResult, error) {
	var result AnswerResult
	err := e.store.Update(ctx, sessionID, func(s *models.GameSession) error {
		if s.Complete() {
			return ErrGameComplete
		}
		if s.State != models.StateQuestionPending {
			return fmt.Errorf("no question pending: %w", ErrInvalidInput)
		}
		answer, err := coerceInt(submitted)
		if err != nil {
			return err
		}

		q := s.Questions[s.Cursor]
		elapsed := e.now().Sub(s.QuestionStart).Seconds()
		isCorrect := answer == q.Answer

		accuracy := 0
		bonus := 0
		if isCorrect {
			accuracy = AccuracyPoints
			bonus = speedBonus(elapsed)
		}
		score := accuracy + bonus

		s.Answers = append(s.Answers, models.AnswerRecord{
			UserAnswer:    answer,
			CorrectAnswer: q.Answer,
			IsCorrect:     isCorrect,
			TimeTaken:     elapsed,
			Points:        score,
		})
		s.Score += score
		if isCorrect {
			s.CorrectCount++
		}
		s.Cursor++
		s.QuestionStart = time.Time{}
		if s.Cursor >= TotalQuestions {
			s.State = models.StateComplete
		} else {
			s.State = models.StateAwaitingNext
		}

		result = AnswerResult{
			IsCorrect:      isCorrect,
			CorrectAnswer:  q.Answer,
			TimeTaken:      round2(elapsed),
			AccuracyPoints: accuracy,
			SpeedBonus:     bonus,
			QuestionScore:  score,
			TotalScore:     s.Score,
			GameComplete:   s.Complete(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetResults summarizes the session so far. It does not require the game to
// be finished; accuracy is always measured against the full 20 questions.
func (e *Engine) GetResults(ctx context.Context, sessionID string) (*models.ResultsSummary, error) {
	s, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	totalTime := 0.0
	for _, a := range s.Answers {
		totalTime += a.TimeTaken
	}

	return &models.ResultsSummary{
		CorrectCount:       s.CorrectCount,
		TotalQuestions:     TotalQuestions,
		AccuracyPercentage: round1(float64(s.CorrectCount) / TotalQuestions * 100),
		TotalTime:          round2(totalTime),
		FinalScore:         s.Score,
		MaxPossibleScore:   MaxPossibleScore,
		Answers:            s.Answers,
	}, nil
}
