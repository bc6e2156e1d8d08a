package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrUserInactive       ErrCode = "USER_INACTIVE"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"
	ErrAnswersRequired   ErrCode = "ANSWERS_REQUIRED"
	ErrMalformedAnswers  ErrCode = "MALFORMED_ANSWERS"
	ErrInvalidTemplate   ErrCode = "INVALID_TEMPLATE"
	ErrCandidatesMissing ErrCode = "CANDIDATES_REQUIRED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrCandidateNotFound ErrCode = "CANDIDATE_NOT_FOUND"
	ErrExamNotFound      ErrCode = "EXAM_NOT_FOUND"
	ErrUserNotFound      ErrCode = "USER_NOT_FOUND"
	ErrTemplateNotFound  ErrCode = "TEMPLATE_NOT_FOUND"
	ErrResultNotFound    ErrCode = "RESULT_NOT_FOUND"
	ErrConflict          ErrCode = "CONFLICT"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrUserInactive:
		return "This account is inactive."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrAnswersRequired:
		return "Answers are required."
	case ErrMalformedAnswers:
		return "Answers must map integer question IDs to option indexes."
	case ErrInvalidTemplate:
		return "Template subjects are invalid."
	case ErrCandidatesMissing:
		return "At least one candidate is required."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrCandidateNotFound:
		return "Candidate not found."
	case ErrExamNotFound:
		return "Exam not found."
	case ErrUserNotFound:
		return "User not found."
	case ErrTemplateNotFound:
		return "Template not found."
	case ErrResultNotFound:
		return "No result has been submitted for this exam."
	case ErrConflict:
		return "Resource already exists."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
