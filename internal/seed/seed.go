// Package seed loads the in-memory catalog the service boots with: the
// question bank, the candidate and user registries, assessment templates and
// the manager dashboard records.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stemsi/skills-assessment/internal/model"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrInvalidCatalog wraps every validation failure reported by Validate.
var ErrInvalidCatalog = errors.New("invalid seed catalog")

// Catalog is the full seed document.
type Catalog struct {
	Candidates         []model.Candidate         `yaml:"candidates"`
	Exams              []model.Exam              `yaml:"exams"`
	Users              []model.User              `yaml:"users"`
	Subjects           []string                  `yaml:"subjects"`
	Templates          []model.Template          `yaml:"templates"`
	GeneratedQuestions []model.GeneratedQuestion `yaml:"generated_questions"`
	Dashboard          []model.DashboardRecord   `yaml:"dashboard"`
}

// Load reads the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the scorer and registries rely on.
func (c *Catalog) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	candidateIDs := make(map[string]struct{}, len(c.Candidates))
	for _, cand := range c.Candidates {
		if cand.ID == "" {
			fail("candidate with empty id")
			continue
		}
		if _, dup := candidateIDs[cand.ID]; dup {
			fail("duplicate candidate id %q", cand.ID)
		}
		candidateIDs[cand.ID] = struct{}{}
	}

	examIDs := make(map[string]struct{}, len(c.Exams))
	for _, exam := range c.Exams {
		if exam.ID == "" {
			fail("exam with empty id")
			continue
		}
		if _, dup := examIDs[exam.ID]; dup {
			fail("duplicate exam id %q", exam.ID)
		}
		examIDs[exam.ID] = struct{}{}

		if exam.ScheduleDate != "" {
			if _, err := time.Parse(model.ScheduleDateLayout, exam.ScheduleDate); err != nil {
				fail("exam %q: schedule_date %q is not YYYY-MM-DD", exam.ID, exam.ScheduleDate)
			}
		}
		if exam.TimeLimitMinutes < 0 {
			fail("exam %q: negative time limit", exam.ID)
		}

		subjectNames := make(map[string]struct{}, len(exam.Subjects))
		questionIDs := make(map[int]struct{})
		for _, subject := range exam.Subjects {
			if _, dup := subjectNames[subject.Name]; dup {
				fail("exam %q: duplicate subject %q", exam.ID, subject.Name)
			}
			subjectNames[subject.Name] = struct{}{}

			for _, q := range subject.Questions {
				if _, dup := questionIDs[q.ID]; dup {
					fail("exam %q: duplicate question id %d", exam.ID, q.ID)
				}
				questionIDs[q.ID] = struct{}{}

				if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
					fail("exam %q: question %d correct option %d out of range [0,%d)",
						exam.ID, q.ID, q.CorrectOptionIndex, len(q.Options))
				}
			}
		}
	}

	userIDs := make(map[int]struct{}, len(c.Users))
	emails := make(map[string]struct{}, len(c.Users))
	for _, u := range c.Users {
		if _, dup := userIDs[u.ID]; dup {
			fail("duplicate user id %d", u.ID)
		}
		userIDs[u.ID] = struct{}{}

		email := strings.ToLower(u.Email)
		if _, dup := emails[email]; dup {
			fail("duplicate user email %q", u.Email)
		}
		emails[email] = struct{}{}

		if !u.Role.Valid() {
			fail("user %d: unknown role %q", u.ID, u.Role)
		}
	}

	templateIDs := make(map[int]struct{}, len(c.Templates))
	for _, t := range c.Templates {
		if _, dup := templateIDs[t.ID]; dup {
			fail("duplicate template id %d", t.ID)
		}
		templateIDs[t.ID] = struct{}{}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
