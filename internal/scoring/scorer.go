// Package scoring grades a candidate's answers against an exam's question bank.
//
// Score is a pure function: it reads the exam, never mutates it, and leaves
// persistence of the returned Result to the caller.
package scoring

import (
	"errors"
	"time"

	"github.com/stemsi/skills-assessment/internal/model"
)

var (
	ErrExamRequired    = errors.New("exam is required")
	ErrAnswersRequired = errors.New("answers are required")
)

// Score grades answers against exam and stamps the result with submittedAt.
//
// Questions are visited subject by subject in declaration order, so Outcomes
// is reproducible for identical inputs. Only the exam's own questions are
// iterated; answers for unknown question ids never reach any count.
//
// A nil answers map is rejected; an empty one scores every question as unanswered.
func Score(exam *model.Exam, answers model.AnswerMap, submittedAt time.Time) (*model.Result, error) {
	if exam == nil {
		return nil, ErrExamRequired
	}
	if answers == nil {
		return nil, ErrAnswersRequired
	}

	result := &model.Result{
		SubmittedAt:   submittedAt.UTC(),
		SubjectScores: make([]model.SubjectScore, 0, len(exam.Subjects)),
		Outcomes:      make([]model.QuestionOutcome, 0, exam.QuestionCount()),
	}

	totalAnswered := 0
	totalCorrect := 0
	totalUnanswered := 0

	for _, subject := range exam.Subjects {
		correctInSubject := 0

		for _, q := range subject.Questions {
			outcome := model.QuestionOutcome{
				Question: q.Clone(),
				Status:   model.OutcomeUnanswered,
			}

			selected, ok := answers[q.ID]
			switch {
			case !ok:
				totalUnanswered++
			case selected == q.CorrectOptionIndex:
				outcome.UserAnswer = &selected
				outcome.Status = model.OutcomeCorrect
				totalAnswered++
				totalCorrect++
				correctInSubject++
			default:
				outcome.UserAnswer = &selected
				outcome.Status = model.OutcomeIncorrect
				totalAnswered++
			}

			result.Outcomes = append(result.Outcomes, outcome)
		}

		result.SubjectScores = append(result.SubjectScores, model.SubjectScore{
			SubjectName:  subject.Name,
			ScorePercent: percent(correctInSubject, len(subject.Questions)),
		})
	}

	result.TotalQuestions = len(result.Outcomes)
	result.CorrectCount = totalCorrect
	// Incorrect is derived from answered minus correct, not counted on its own.
	result.IncorrectCount = totalAnswered - totalCorrect
	result.UnansweredCount = totalUnanswered
	result.TotalScorePercent = percent(totalCorrect, result.TotalQuestions)

	return result, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
