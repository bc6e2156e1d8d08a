package model

import "time"

// ScheduledAssessment is an exam scheduled by a manager for a set of candidates.
type ScheduledAssessment struct {
	ScheduleID    string    `json:"schedule_id"`
	CreatedAt     time.Time `json:"created_at"`
	TemplateID    int       `json:"template_id"`
	SkillLevel    string    `json:"skill_level,omitempty"`
	CandidateIDs  []string  `json:"candidate_ids"`
	ScheduledDate string    `json:"scheduled_date,omitempty"`
	TimeLimit     int       `json:"time_limit_minutes,omitempty"`
	QuestionIDs   []string  `json:"question_ids,omitempty"`
}

// ScheduleExamRequest is the payload for scheduling an exam.
type ScheduleExamRequest struct {
	TemplateID    int      `json:"template_id" binding:"required,min=1"`
	SkillLevel    string   `json:"skill_level" binding:"omitempty,max=50"`
	CandidateIDs  []string `json:"candidate_ids" binding:"required,min=1,dive,required"`
	ScheduledDate string   `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	TimeLimit     int      `json:"time_limit_minutes" binding:"omitempty,min=1,max=480"`
	QuestionIDs   []string `json:"question_ids" binding:"omitempty,dive,required"`
}

// GenerateQuestionsRequest asks for a question draft for a template at a skill level.
type GenerateQuestionsRequest struct {
	TemplateID int    `json:"template_id" binding:"required,min=1"`
	SkillLevel string `json:"skill_level" binding:"required,max=50"`
}

// GeneratedQuestion is a drafted question awaiting manager review.
// Options are keyed by letter ("A".."D").
type GeneratedQuestion struct {
	Question      string            `json:"question" yaml:"question"`
	Options       map[string]string `json:"options" yaml:"options"`
	CorrectAnswer string            `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string            `json:"explanation" yaml:"explanation"`
}
