package model

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMalformedAnswers is returned when a submission payload cannot be read as an AnswerMap.
var ErrMalformedAnswers = errors.New("malformed answers")

// AnswerMap maps Question.ID to the selected option index.
// A missing key means the question was left unanswered.
type AnswerMap map[int]int

// OutcomeStatus classifies one question within one submission.
type OutcomeStatus string

const (
	OutcomeCorrect    OutcomeStatus = "correct"
	OutcomeIncorrect  OutcomeStatus = "incorrect"
	OutcomeUnanswered OutcomeStatus = "unanswered"
)

// QuestionOutcome is the graded view of a single question.
type QuestionOutcome struct {
	Question   Question      `json:"question"`
	UserAnswer *int          `json:"user_answer"`
	Status     OutcomeStatus `json:"status"`
}

// SubjectScore is the percentage of correct answers within one subject.
type SubjectScore struct {
	SubjectName  string  `json:"subject_name"`
	ScorePercent float64 `json:"score_percent"`
}

// Result is the scored record of one (candidate, exam) submission.
type Result struct {
	SubmittedAt       time.Time         `json:"submitted_at"`
	SubjectScores     []SubjectScore    `json:"subject_scores"`
	TotalScorePercent float64           `json:"total_score_percent"`
	TotalQuestions    int               `json:"total_questions"`
	CorrectCount      int               `json:"correct_count"`
	IncorrectCount    int               `json:"incorrect_count"`
	UnansweredCount   int               `json:"unanswered_count"`
	Outcomes          []QuestionOutcome `json:"outcomes"`
}

// Clone returns a deep copy so stored results cannot be mutated through a caller's reference.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.SubjectScores = append([]SubjectScore(nil), r.SubjectScores...)
	out.Outcomes = make([]QuestionOutcome, len(r.Outcomes))
	for i, o := range r.Outcomes {
		o.Question = o.Question.Clone()
		if o.UserAnswer != nil {
			v := *o.UserAnswer
			o.UserAnswer = &v
		}
		out.Outcomes[i] = o
	}
	return &out
}

// ExamResult is a stored Result tagged with the exam it belongs to.
type ExamResult struct {
	ExamID string `json:"exam_id"`
	*Result
}

// SubmitAnswersRequest is the payload for submitting an exam.
// Keys are question ids in canonical decimal form; values are option indexes.
// Unanswered questions are left out of the map.
type SubmitAnswersRequest struct {
	Answers map[string]*int `json:"answers" binding:"required,dive,keys,question_id,endkeys"`
}

// ParseQuestionID parses a question id map key. Only the canonical decimal
// spelling is accepted, so "0101" and "+101" never alias question 101.
func ParseQuestionID(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	if err != nil || strconv.Itoa(id) != key {
		return 0, false
	}
	return id, true
}

// AnswerMap converts the wire payload into an AnswerMap.
// The result is never nil for a bound request, so an empty object scores as all-unanswered.
func (r *SubmitAnswersRequest) AnswerMap() (AnswerMap, error) {
	if r.Answers == nil {
		return nil, nil
	}
	answers := make(AnswerMap, len(r.Answers))
	for key, value := range r.Answers {
		id, ok := ParseQuestionID(key)
		if !ok {
			return nil, fmt.Errorf("%w: question id %q is not a canonical integer", ErrMalformedAnswers, key)
		}
		if _, dup := answers[id]; dup {
			return nil, fmt.Errorf("%w: question id %d answered twice", ErrMalformedAnswers, id)
		}
		if value == nil {
			return nil, fmt.Errorf("%w: answer for question %d is null", ErrMalformedAnswers, id)
		}
		answers[id] = *value
	}
	return answers, nil
}
