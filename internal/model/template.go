package model

// TemplateSubject is one weighted subject line of an assessment template.
type TemplateSubject struct {
	ID         string `json:"id" yaml:"id" binding:"omitempty,max=50"`
	Subject    string `json:"subject" yaml:"subject" binding:"required,min=1,max=100"`
	Weight     int    `json:"weight" yaml:"weight" binding:"min=0,max=100"`
	Difficulty string `json:"difficulty" yaml:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
}

// Template is an assessment blueprint managers schedule exams from.
type Template struct {
	ID       int               `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Subjects []TemplateSubject `json:"subjects" yaml:"subjects"`
}

// CreateTemplateRequest is the payload for creating a template.
type CreateTemplateRequest struct {
	Name     string            `json:"name" binding:"required,min=3,max=255"`
	Subjects []TemplateSubject `json:"subjects" binding:"omitempty,dive"`
}

// UpdateTemplateRequest is a partial update; nil fields are left unchanged.
type UpdateTemplateRequest struct {
	Name     *string           `json:"name" binding:"omitempty,min=3,max=255"`
	Subjects []TemplateSubject `json:"subjects" binding:"omitempty,dive"`
}
