package model

// Question is a single multiple-choice question owned by the question bank.
// CorrectOptionIndex is the grading key; it is only ever serialized inside a
// scored Result, never on the candidate-facing exam paper.
type Question struct {
	ID                 int      `json:"id" yaml:"id"`
	Prompt             string   `json:"prompt" yaml:"prompt"`
	Options            []string `json:"options" yaml:"options"`
	CorrectOptionIndex int      `json:"correct_option_index" yaml:"correct_option_index"`
}

// PublicQuestion is a question without the correct answer, sent to candidates.
type PublicQuestion struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Public projects the question onto its candidate-facing view.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: append([]string(nil), q.Options...),
	}
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
