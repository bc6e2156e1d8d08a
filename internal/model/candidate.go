package model

// Candidate is an exam-taking identity addressed by the candidate routes.
type Candidate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// HubCandidate is a candidate-role user as listed in the assessment hub.
type HubCandidate struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
}
