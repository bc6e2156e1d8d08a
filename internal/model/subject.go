package model

// Subject groups the questions of one topic inside an exam.
type Subject struct {
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// CreateSubjectRequest is the payload for adding a subject name to the catalog.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
