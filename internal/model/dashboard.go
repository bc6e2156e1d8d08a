package model

// ExamHistoryEntry is one past or upcoming attempt on the manager dashboard.
type ExamHistoryEntry struct {
	ExamID   int    `json:"exam_id" yaml:"exam_id"`
	Level    string `json:"level" yaml:"level"`
	Template string `json:"template" yaml:"template"`
	Score    int    `json:"score" yaml:"score"`
	Status   string `json:"status" yaml:"status"`
	Date     string `json:"date" yaml:"date"`
}

// DashboardRecord summarizes one report's assessment standing.
type DashboardRecord struct {
	ID               int                `json:"id" yaml:"id"`
	EmployeeID       string             `json:"employee_id" yaml:"employee_id"`
	Name             string             `json:"name" yaml:"name"`
	Project          string             `json:"project" yaml:"project"`
	CurrentLevel     string             `json:"current_level" yaml:"current_level"`
	AssessmentStatus string             `json:"assessment_status" yaml:"assessment_status"`
	ExamHistory      []ExamHistoryEntry `json:"exam_history" yaml:"exam_history"`
}
