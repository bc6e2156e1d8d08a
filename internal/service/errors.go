package service

import "errors"

// Domain Errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrExamNotFound      = errors.New("exam not found")
	ErrAnswersRequired   = errors.New("answers are required")
	ErrResultNotFound    = errors.New("result not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")

	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template subjects")
	ErrSubjectExists    = errors.New("subject already exists")
	ErrNoCandidates     = errors.New("at least one candidate is required")
)
