package model

// ScheduleDateLayout is the calendar-date format used for exam schedule dates.
const ScheduleDateLayout = "2006-01-02"

// Exam represents a scheduled assessment and its question bank.
// Subjects are ordered; scoring walks them in declaration order.
type Exam struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	SkillLevel       string    `json:"skill_level" yaml:"skill_level"`
	TimeLimitMinutes int       `json:"time_limit_minutes" yaml:"time_limit_minutes"`
	ScheduleDate     string    `json:"schedule_date" yaml:"schedule_date"`
	Subjects         []Subject `json:"subjects" yaml:"subjects"`
}

// QuestionCount returns the number of questions across all subjects.
func (e *Exam) QuestionCount() int {
	n := 0
	for _, s := range e.Subjects {
		n += len(s.Questions)
	}
	return n
}

// Clone returns a deep copy of the exam.
func (e Exam) Clone() Exam {
	subjects := make([]Subject, len(e.Subjects))
	for i, s := range e.Subjects {
		questions := make([]Question, len(s.Questions))
		for j, q := range s.Questions {
			questions[j] = q.Clone()
		}
		subjects[i] = Subject{Name: s.Name, Questions: questions}
	}
	e.Subjects = subjects
	return e
}

// Summary returns the catalog entry for the exam.
func (e *Exam) Summary() ExamSummary {
	return ExamSummary{
		ID:           e.ID,
		Name:         e.Name,
		SkillLevel:   e.SkillLevel,
		ScheduleDate: e.ScheduleDate,
	}
}

// Public returns the exam paper with every answer key stripped.
func (e *Exam) Public() PublicExam {
	subjects := make([]PublicSubject, len(e.Subjects))
	for i, s := range e.Subjects {
		questions := make([]PublicQuestion, len(s.Questions))
		for j, q := range s.Questions {
			questions[j] = q.Public()
		}
		subjects[i] = PublicSubject{Name: s.Name, Questions: questions}
	}
	return PublicExam{
		ID:               e.ID,
		Name:             e.Name,
		SkillLevel:       e.SkillLevel,
		TimeLimitMinutes: e.TimeLimitMinutes,
		ScheduleDate:     e.ScheduleDate,
		Subjects:         subjects,
	}
}

// ExamSummary is the catalog listing of an exam (no questions).
type ExamSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SkillLevel   string `json:"skill_level"`
	ScheduleDate string `json:"schedule_date"`
}

// PublicSubject is a subject as shown on the candidate's exam paper.
type PublicSubject struct {
	Name      string           `json:"name"`
	Questions []PublicQuestion `json:"questions"`
}

// PublicExam is the exam paper sent to candidates (no correct answers).
type PublicExam struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SkillLevel       string          `json:"skill_level"`
	TimeLimitMinutes int             `json:"time_limit_minutes"`
	ScheduleDate     string          `json:"schedule_date"`
	Subjects         []PublicSubject `json:"subjects"`
}
