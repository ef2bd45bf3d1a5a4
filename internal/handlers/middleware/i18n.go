package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// LanguageCookie guarda a escolha explícita de idioma do navegador
const LanguageCookie = "lang"

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Cookie lang
// 3. Accept-Language header (preferência do browser)
// 4. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.supported(c.Query("lang"))

		if lang == "" {
			if cookie, err := c.Cookie(LanguageCookie); err == nil {
				lang = m.supported(cookie)
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

func (m *I18nMiddleware) supported(lang string) string {
	if lang != "" && m.i18nService.IsLanguageSupported(lang) {
		return lang
	}
	return ""
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado.
// Aceita a variação sem região (pt-PT -> pt) e a variação regional de um
// idioma base (pt -> pt-BR).
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" || lang == "*" {
			continue
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		base := lang
		if idx := strings.Index(lang, "-"); idx != -1 {
			base = lang[:idx]
			if m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}

		for _, candidate := range m.i18nService.GetSupportedLanguages() {
			if strings.HasPrefix(candidate, base+"-") {
				return candidate
			}
		}
	}

	return ""
}
