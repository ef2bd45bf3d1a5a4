package errors

import "errors"

// Taxonomia de erros
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUnauthenticated = errors.New("error.unauthenticated")
	ErrForbidden       = errors.New("error.forbidden")
	ErrNotFound        = errors.New("error.not_found")
	ErrValidation      = errors.New("error.validation")
	ErrUpstream        = errors.New("error.upstream")
)

// Business errors
var (
	ErrUserNotFound       = &DomainError{Type: ProblemTypeNotFound, Message: "error.user_not_found", Err: ErrNotFound}
	ErrClientNotFound     = &DomainError{Type: ProblemTypeNotFound, Message: "error.client_not_found", Err: ErrNotFound}
	ErrDocumentNotFound   = &DomainError{Type: ProblemTypeNotFound, Message: "error.document_not_found", Err: ErrNotFound}
	ErrInvalidCredentials = &DomainError{Type: ProblemTypeUnauthorized, Message: "error.invalid_credentials", Err: ErrUnauthenticated}
	ErrNoClientAccess     = &DomainError{Type: ProblemTypeForbidden, Message: "error.no_client_access", Err: ErrForbidden}
	ErrAdminOnly          = &DomainError{Type: ProblemTypeForbidden, Message: "error.admin_only", Err: ErrForbidden}
	ErrNotDocumentOwner   = &DomainError{Type: ProblemTypeForbidden, Message: "error.not_document_owner", Err: ErrForbidden}
)

// Upload errors (resultado estruturado do upload)
var (
	ErrMissingFile        = &DomainError{Type: ProblemTypeValidation, Message: "error.upload.missing_file", Err: ErrValidation}
	ErrFileTooLarge       = &DomainError{Type: ProblemTypeValidation, Message: "error.upload.too_large", Err: ErrValidation}
	ErrInvalidStorageKey  = &DomainError{Type: ProblemTypeValidation, Message: "error.upload.invalid_storage_key", Err: ErrValidation}
	ErrStorageUnavailable = &DomainError{Type: ProblemTypeUpstream, Message: "error.upload.storage_failed", Err: ErrUpstream}
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeUpstream     = "/problems/upstream-error"
)

// DomainError representa um erro de domínio com contexto adicional.
// Message é a chave i18n; Err é a categoria da taxonomia (ou a causa).
type DomainError struct {
	Type    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Upstream embrulha uma falha de storage ou persistência
func Upstream(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeUpstream,
		Message: message,
		Err:     errors.Join(ErrUpstream, cause),
	}
}

// MessageKey retorna a chave i18n mais específica disponível para o erro
func MessageKey(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	for _, base := range []error{ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrValidation, ErrUpstream} {
		if errors.Is(err, base) {
			return base.Error()
		}
	}
	return "error.internal.detail"
}
