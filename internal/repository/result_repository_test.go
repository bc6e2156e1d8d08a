package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stemsi/skills-assessment/internal/model"
)

func sampleResult(correct int) *model.Result {
	answer := 1
	return &model.Result{
		SubmittedAt:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SubjectScores:     []model.SubjectScore{{SubjectName: "java", ScorePercent: float64(correct) * 50}},
		TotalScorePercent: float64(correct) * 50,
		TotalQuestions:    2,
		CorrectCount:      correct,
		IncorrectCount:    2 - correct,
		Outcomes: []model.QuestionOutcome{
			{Question: model.Question{ID: 101, Options: []string{"a", "b"}, CorrectOptionIndex: 1}, UserAnswer: &answer, Status: model.OutcomeCorrect},
		},
	}
}

func TestMemoryResultRepository_PutGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResultRepository()

	if _, err := repo.Get(ctx, "c1", "e1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before put: got %v, want ErrNotFound", err)
	}

	if err := repo.Put(ctx, "c1", "e1", sampleResult(1)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := repo.Get(ctx, "c1", "e1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CorrectCount != 1 {
		t.Errorf("correct = %d, want 1", got.CorrectCount)
	}
}

func TestMemoryResultRepository_Overwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResultRepository()

	_ = repo.Put(ctx, "c1", "e1", sampleResult(0))
	_ = repo.Put(ctx, "c1", "e1", sampleResult(2))

	got, err := repo.Get(ctx, "c1", "e1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CorrectCount != 2 {
		t.Errorf("correct = %d, want latest write 2", got.CorrectCount)
	}

	all, _ := repo.ListByCandidate(ctx, "c1")
	if len(all) != 1 {
		t.Errorf("got %d results, want 1 after overwrite", len(all))
	}
}

func TestMemoryResultRepository_ListByCandidate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResultRepository()

	_ = repo.Put(ctx, "c1", "e1", sampleResult(1))
	_ = repo.Put(ctx, "c1", "e2", sampleResult(2))
	_ = repo.Put(ctx, "c2", "e1", sampleResult(0))

	all, err := repo.ListByCandidate(ctx, "c1")
	if err != nil {
		t.Fatalf("ListByCandidate: %v", err)
	}
	if len(all) != 2 || all["e1"] == nil || all["e2"] == nil {
		t.Errorf("unexpected results for c1: %v", all)
	}

	none, err := repo.ListByCandidate(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByCandidate: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("want empty non-nil map, got %v", none)
	}
}

func TestMemoryResultRepository_Isolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResultRepository()

	in := sampleResult(1)
	_ = repo.Put(ctx, "c1", "e1", in)
	in.CorrectCount = 99
	*in.Outcomes[0].UserAnswer = 7

	out, _ := repo.Get(ctx, "c1", "e1")
	if out.CorrectCount != 1 || *out.Outcomes[0].UserAnswer != 1 {
		t.Fatalf("stored result changed through caller reference: %+v", out)
	}

	out.Outcomes[0].Question.Options[0] = "changed"
	again, _ := repo.Get(ctx, "c1", "e1")
	if again.Outcomes[0].Question.Options[0] != "a" {
		t.Errorf("stored result changed through returned copy")
	}
}

func TestMemoryResultRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResultRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cand := fmt.Sprintf("c%d", i%5)
			_ = repo.Put(ctx, cand, "e1", sampleResult(i%3))
			_, _ = repo.ListByCandidate(ctx, cand)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		got, err := repo.Get(ctx, fmt.Sprintf("c%d", i), "e1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.CorrectCount+got.IncorrectCount != got.TotalQuestions {
			t.Errorf("torn result: %+v", got)
		}
	}
}
