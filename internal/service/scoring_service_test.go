package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stemsi/skills-assessment/internal/model"
)

func TestScoringService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.scoring.Submit(ctx, "candidate-1", "l1-aptitude", model.AnswerMap{101: 1, 102: 0, 201: 3})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.CorrectCount != 2 || res.IncorrectCount != 1 || res.UnansweredCount != 1 || res.TotalQuestions != 4 {
		t.Errorf("counts = %+v", res)
	}
	if res.TotalScorePercent != 50 {
		t.Errorf("total = %v, want 50", res.TotalScorePercent)
	}
	want := map[string]float64{"java": 50, "python": 100, "sql": 0}
	for _, s := range res.SubjectScores {
		if want[s.SubjectName] != s.ScorePercent {
			t.Errorf("subject %s = %v, want %v", s.SubjectName, s.ScorePercent, want[s.SubjectName])
		}
	}
	if !res.SubmittedAt.Equal(fixedNow) {
		t.Errorf("submitted at = %v", res.SubmittedAt)
	}

	stored, err := f.results.Get(ctx, "candidate-1", "l1-aptitude")
	if err != nil {
		t.Fatalf("result not stored: %v", err)
	}
	if stored.CorrectCount != 2 {
		t.Errorf("stored correct = %d", stored.CorrectCount)
	}
}

func TestScoringService_SubmitErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		candidate string
		exam      string
		answers   model.AnswerMap
		want      error
	}{
		{"unknown candidate", "nobody", "l1-aptitude", model.AnswerMap{}, ErrCandidateNotFound},
		{"unknown exam", "candidate-1", "l9-missing", model.AnswerMap{}, ErrExamNotFound},
		{"nil answers", "candidate-1", "l1-aptitude", nil, ErrAnswersRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.scoring.Submit(ctx, tc.candidate, tc.exam, tc.answers)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if all, _ := f.results.ListByCandidate(ctx, tc.candidate); len(all) != 0 {
				t.Errorf("failed submission stored a result: %v", all)
			}
		})
	}
}

func TestScoringService_EmptyExam(t *testing.T) {
	f := newFixture(t)

	res, err := f.scoring.Submit(context.Background(), "candidate-1", "l3-nodejs", model.AnswerMap{1: 0})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.TotalQuestions != 0 || res.TotalScorePercent != 0 || math.IsNaN(res.TotalScorePercent) {
		t.Errorf("result = %+v", res)
	}
}

func TestScoringService_ResubmitOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.scoring.Submit(ctx, "candidate-1", "l2-react", model.AnswerMap{401: 0}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := f.scoring.Submit(ctx, "candidate-1", "l2-react", model.AnswerMap{401: 1, 402: 2}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	results, err := f.scoring.ListResults(ctx, "candidate-1")
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 1 || results[0].CorrectCount != 2 {
		t.Errorf("results = %+v, want one entry with the second submission", results)
	}
}

func TestScoringService_GetResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.scoring.GetResult(ctx, "candidate-1", "l1-aptitude"); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("before submit: got %v, want ErrResultNotFound", err)
	}

	if _, err := f.scoring.Submit(ctx, "candidate-1", "l1-aptitude", model.AnswerMap{101: 1, 102: 0, 201: 3}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, err := f.scoring.GetResult(ctx, "candidate-1", "l1-aptitude")
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if got.ExamID != "l1-aptitude" || got.CorrectCount != 2 || got.UnansweredCount != 1 {
		t.Errorf("result = %+v", got)
	}

	tests := []struct {
		name      string
		candidate string
		exam      string
		want      error
	}{
		{"unknown candidate", "nobody", "l1-aptitude", ErrCandidateNotFound},
		{"unknown exam", "candidate-1", "nope", ErrExamNotFound},
		{"other candidate", "candidate-2", "l1-aptitude", ErrResultNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.scoring.GetResult(ctx, tt.candidate, tt.exam); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScoringService_ListResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.scoring.ListResults(ctx, "candidate-2")
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("want empty non-nil slice, got %v", empty)
	}

	_, _ = f.scoring.Submit(ctx, "candidate-2", "l2-react", model.AnswerMap{})
	_, _ = f.scoring.Submit(ctx, "candidate-2", "l1-aptitude", model.AnswerMap{})
	_, _ = f.scoring.Submit(ctx, "candidate-1", "l3-nodejs", model.AnswerMap{})

	results, err := f.scoring.ListResults(ctx, "candidate-2")
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 2 || results[0].ExamID != "l1-aptitude" || results[1].ExamID != "l2-react" {
		t.Errorf("results = %+v, want l1-aptitude then l2-react", results)
	}

	if _, err := f.scoring.ListResults(ctx, "nobody"); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("unknown candidate: got %v", err)
	}
}
