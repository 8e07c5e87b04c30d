package usecase

// Códigos usados nas respostas de erro da API.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeLeadNotFound    = "LEAD_NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeAlreadyInFunnel = "ALREADY_IN_FUNNEL"
	CodeInvalidFile     = "INVALID_FILE"
	CodeDatabase        = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
