package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ActionResult é a resposta das mutações. Changed=false indica que a
// entrada foi ignorada (dados ausentes, duplicados ou inválidos).
type ActionResult struct {
	OK      bool `json:"ok"`
	Changed bool `json:"changed"`
}

// UploadResult é o resultado estruturado do upload
type UploadResult struct {
	OK       bool              `json:"ok"`
	Error    string            `json:"error,omitempty"`
	Document *DocumentResponse `json:"document,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// ErrorResponseFromError traduz um erro de domínio para status HTTP e
// problem details. Erros fora da taxonomia viram 500.
func ErrorResponseFromError(c *gin.Context, err error) (int, ErrorResponse) {
	var (
		status      int
		problemType string
		titleKey    string
	)

	switch {
	case stderrors.Is(err, errors.ErrUnauthenticated):
		status, problemType, titleKey = http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title"
	case stderrors.Is(err, errors.ErrForbidden):
		status, problemType, titleKey = http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title"
	case stderrors.Is(err, errors.ErrNotFound):
		status, problemType, titleKey = http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title"
	case stderrors.Is(err, errors.ErrValidation):
		status, problemType, titleKey = http.StatusBadRequest, errors.ProblemTypeValidation, "error.validation.title"
	case stderrors.Is(err, errors.ErrUpstream):
		status, problemType, titleKey = http.StatusBadGateway, errors.ProblemTypeUpstream, "error.upstream.title"
	default:
		return http.StatusInternalServerError, InternalErrorResponseI18n(c)
	}

	var de *errors.DomainError
	if stderrors.As(err, &de) && de.Type != "" {
		problemType = de.Type
	}

	return status, NewErrorResponseI18n(c, problemType, titleKey, errors.MessageKey(err), status)
}
