package http

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
)

const (
	// ClientsPath é o destino dos navegadores sem acesso ao recurso pedido
	ClientsPath      = "/clients"
	adminClientsPath = "/admin/clients"
	adminUsersPath   = "/admin/users"
)

// actor retorna a identidade da sessão. Rotas atrás do gate sempre têm uma;
// a ausência é tratada como não autenticado.
func actor(c *gin.Context) (ports.SessionIdentity, bool) {
	identity := middleware.CurrentSession(c)
	if identity == nil {
		respondError(c, nil, errors.ErrUnauthenticated)
		return ports.SessionIdentity{}, false
	}
	return *identity, true
}

// respondError traduz o erro de domínio. Navegadores sem sessão ou sem
// acesso são redirecionados; clientes JSON recebem problem details.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if !middleware.WantsJSON(c) {
		switch {
		case stderrors.Is(err, errors.ErrUnauthenticated):
			c.Redirect(http.StatusSeeOther, middleware.LoginPath)
			c.Abort()
			return
		case stderrors.Is(err, errors.ErrForbidden):
			c.Redirect(http.StatusSeeOther, ClientsPath)
			c.Abort()
			return
		}
	}

	status, response := dto.ErrorResponseFromError(c, err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"error", err,
		)
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, response)
}

// respondAction responde uma mutação: 303 para o navegador, ActionResult
// para clientes JSON
func respondAction(c *gin.Context, logger ports.Logger, redirectTo string, changed bool, err error) {
	if err != nil {
		respondError(c, logger, err)
		return
	}

	if !middleware.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, redirectTo)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResult{OK: true, Changed: changed})
}

// respondValidation responde 400 com os campos rejeitados pelo binding
func respondValidation(c *gin.Context, err error) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, validationErrors(err)))
}

func validationErrors(err error) []dto.ValidationError {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return []dto.ValidationError{{Field: "body", Message: err.Error()}}
	}

	result := make([]dto.ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		result = append(result, dto.ValidationError{
			Field:   lowerFirst(fe.Field()),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			Tag:     fe.Tag(),
		})
	}
	return result
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// uploadFailure devolve o resultado estruturado do upload com a mensagem traduzida
func uploadFailure(c *gin.Context, logger ports.Logger, maxBytes int64, err error) {
	status, _ := dto.ErrorResponseFromError(c, err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("upload failed", "path", c.Request.URL.Path, "error", err)
	}

	var message string
	if stderrors.Is(err, errors.ErrFileTooLarge) {
		message = dto.TError(c, err, map[string]interface{}{"MaxMB": maxBytes >> 20})
	} else {
		message = dto.TError(c, err)
	}

	c.AbortWithStatusJSON(status, dto.UploadResult{OK: false, Error: message})
}
