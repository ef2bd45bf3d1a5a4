package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/i18n"
)

const (
	// SessionContextKey guarda a *ports.SessionIdentity da requisição
	SessionContextKey = "session_identity"

	// LoginPath é o único caminho acessível sem sessão
	LoginPath = "/login"
)

// SessionVerifier valida o token de sessão
type SessionVerifier interface {
	Authenticate(token string) (*ports.SessionIdentity, error)
}

// SessionMiddleware protege as rotas da aplicação
type SessionMiddleware struct {
	verifier   SessionVerifier
	cookieName string
	public     map[string]struct{}
}

// NewSessionMiddleware cria o gate. Só LoginPath fica liberado.
func NewSessionMiddleware(verifier SessionVerifier, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		verifier:   verifier,
		cookieName: cookieName,
		public:     map[string]struct{}{LoginPath: {}},
	}
}

// RequireSession autentica pelo cookie ou pelo header Authorization: Bearer.
// Sem sessão, navegadores são redirecionados para /login e clientes JSON
// recebem 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := m.identify(c)
		if identity != nil {
			c.Set(SessionContextKey, identity)
			c.Next()
			return
		}

		if _, ok := m.public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		if !WantsJSON(c) {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		AbortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title", errors.ErrUnauthenticated.Error())
	}
}

// OptionalSession identifica o usuário quando há sessão válida, sem
// bloquear a requisição; o handler decide o que responder
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity := m.identify(c); identity != nil {
			c.Set(SessionContextKey, identity)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) identify(c *gin.Context) *ports.SessionIdentity {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		return nil
	}

	identity, err := m.verifier.Authenticate(token)
	if err != nil {
		return nil
	}
	return identity
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// CurrentSession retorna a identidade autenticada ou nil
func CurrentSession(c *gin.Context) *ports.SessionIdentity {
	value, ok := c.Get(SessionContextKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*ports.SessionIdentity)
	return identity
}

// WantsJSON distingue clientes de API de navegadores: Accept JSON, corpo
// JSON, token Bearer ou requisição via fetch/XHR
func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") || strings.Contains(accept, problems.ProblemMediaType) {
		return true
	}
	if strings.HasPrefix(c.ContentType(), "application/json") {
		return true
	}
	if bearerToken(c.GetHeader("Authorization")) != "" {
		return true
	}
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// AbortWithProblem responde um problem details traduzido sem depender do pacote dto
func AbortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	translate := func(key string) string { return key }
	if svc, ok := c.Get(I18nServiceContextKey); ok {
		if service, ok := svc.(*i18n.Service); ok {
			lang := c.GetString(LanguageContextKey)
			translate = func(key string) string { return service.T(lang, key) }
		}
	}

	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, translate(detailKey))
	problem.Type = baseURL + problemType
	problem.Title = translate(titleKey)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}
