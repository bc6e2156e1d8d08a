package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Exams) != 3 {
		t.Fatalf("got %d exams, want 3", len(c.Exams))
	}
	first := c.Exams[0]
	if first.ID != "l1-aptitude" {
		t.Errorf("first exam = %q, want l1-aptitude", first.ID)
	}

	var names []string
	for _, s := range first.Subjects {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "java,python,sql" {
		t.Errorf("subject order = %s, want java,python,sql", got)
	}
	if q := first.Subjects[0].Questions[1]; q.ID != 102 || q.CorrectOptionIndex != 2 {
		t.Errorf("question = %+v, want id 102 correct 2", q)
	}

	if len(c.Candidates) == 0 || c.Candidates[0].ID != "candidate-1" {
		t.Errorf("candidates = %+v", c.Candidates)
	}
	if len(c.Users) == 0 || c.Users[0].Password == "" {
		t.Errorf("users missing or without password")
	}
	if len(c.GeneratedQuestions) == 0 {
		t.Errorf("no generated questions seeded")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
candidates:
  - {id: c-1, name: Test, email: t@example.com}
exams:
  - id: e-1
    name: Test Exam
    schedule_date: "2025-01-02"
    subjects:
      - name: go
        questions:
          - {id: 1, prompt: p, options: [a, b], correct_option_index: 0}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Exams) != 1 || c.Exams[0].QuestionCount() != 1 {
		t.Errorf("unexpected catalog: %+v", c.Exams)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "correct option out of range",
			doc: `
exams:
  - id: e
    subjects:
      - name: s
        questions:
          - {id: 1, prompt: p, options: [a, b], correct_option_index: 2}
`,
			want: "out of range",
		},
		{
			name: "duplicate question id across subjects",
			doc: `
exams:
  - id: e
    subjects:
      - name: s1
        questions:
          - {id: 1, prompt: p, options: [a], correct_option_index: 0}
      - name: s2
        questions:
          - {id: 1, prompt: q, options: [a], correct_option_index: 0}
`,
			want: "duplicate question id 1",
		},
		{
			name: "duplicate subject",
			doc: `
exams:
  - id: e
    subjects:
      - {name: s, questions: []}
      - {name: s, questions: []}
`,
			want: "duplicate subject",
		},
		{
			name: "duplicate exam",
			doc: `
exams:
  - {id: e, subjects: []}
  - {id: e, subjects: []}
`,
			want: "duplicate exam id",
		},
		{
			name: "bad schedule date",
			doc: `
exams:
  - {id: e, schedule_date: "15/10/2025", subjects: []}
`,
			want: "schedule_date",
		},
		{
			name: "duplicate candidate",
			doc: `
candidates:
  - {id: c, name: a, email: a@example.com}
  - {id: c, name: b, email: b@example.com}
`,
			want: "duplicate candidate id",
		},
		{
			name: "unknown role",
			doc: `
users:
  - {id: 1, first_name: a, email: a@example.com, role: Owner}
`,
			want: "unknown role",
		},
		{
			name: "duplicate email ignores case",
			doc: `
users:
  - {id: 1, first_name: a, email: A@example.com, role: Admin}
  - {id: 2, first_name: b, email: a@example.com, role: Admin}
`,
			want: "duplicate user email",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("got %v, want ErrInvalidCatalog", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("exams:\n  - {id: e, answer_key: [1]}\n"))
	if err == nil {
		t.Fatal("expected decode error for unknown field")
	}
	if errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("unknown field should fail decoding, not validation: %v", err)
	}
}
