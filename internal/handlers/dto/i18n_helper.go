package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/i18n"
)

// T traduz key no idioma negociado pelo middleware. Sem serviço i18n no
// contexto a própria chave é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		return key
	}
	return service.T(languageOr(c, service.GetDefaultLanguage()), key, params...)
}

// TError traduz a mensagem de um erro de domínio
func TError(c *gin.Context, err error, params ...map[string]interface{}) string {
	return T(c, errors.MessageKey(err), params...)
}

// GetLanguage retorna o idioma negociado para a requisição
func GetLanguage(c *gin.Context) string {
	fallback := "en"
	if service := i18nService(c); service != nil {
		fallback = service.GetDefaultLanguage()
	}
	return languageOr(c, fallback)
}

func i18nService(c *gin.Context) *i18n.Service {
	value, ok := c.Get(middleware.I18nServiceContextKey)
	if !ok {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}

func languageOr(c *gin.Context, fallback string) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallback
}
