package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/i18n"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/logging"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/realtime"
	"github.com/rafabene/docrepo-backend/internal/services"
)

const (
	testCookie = "docrepo_session"
	adminToken = "admin-token"
	staffToken = "staff-token"
)

var (
	adminIdentity = ports.SessionIdentity{UserID: "admin-1", Role: string(entities.RoleAdmin)}
	staffIdentity = ports.SessionIdentity{UserID: "staff-1", Role: string(entities.RoleStaff)}
)

type stubVerifier map[string]ports.SessionIdentity

func (v stubVerifier) Authenticate(token string) (*ports.SessionIdentity, error) {
	identity, ok := v[token]
	if !ok {
		return nil, errors.ErrUnauthenticated
	}
	return &identity, nil
}

// testApp monta o router completo com stubs no lugar dos serviços
type testApp struct {
	router    *gin.Engine
	auth      *stubAuth
	clients   *stubClients
	users     *stubUsers
	documents *stubDocuments
	members   *stubMembers
	folders   *stubFolders
	access    *stubAccess
	hub       *realtime.Hub
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, middleware.RegisterValidators())

	i18nService, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	logger := logging.Nop()
	app := &testApp{
		auth:      &stubAuth{},
		clients:   &stubClients{},
		users:     &stubUsers{},
		documents: &stubDocuments{},
		members:   &stubMembers{},
		folders:   &stubFolders{},
		access:    &stubAccess{allowed: map[string]bool{}},
		hub:       realtime.NewHub(logger),
	}

	router := gin.New()
	router.UseRawPath = true
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

	session := middleware.NewSessionMiddleware(stubVerifier{
		adminToken: adminIdentity,
		staffToken: staffIdentity,
	}, testCookie)

	RegisterRoutes(router, Handlers{
		Auth:      NewAuthHandler(app.auth, app.users, CookieSettings{Name: testCookie}, logger),
		Clients:   NewClientHandler(app.clients, logger),
		Users:     NewUserHandler(app.users, logger),
		Documents: NewDocumentHandler(app.documents, 1<<20, logger),
		Members:   NewMemberHandler(app.members, logger),
		Folders:   NewFolderHandler(app.folders, logger),
		Realtime:  NewRealtimeHandler(app.hub, app.access, nil, logger),
	}, session)

	app.router = router
	return app
}

// do executa a requisição. token vazio envia sem sessão; jsonClient
// marca a requisição como vinda de um cliente de API.
func (a *testApp) do(method, path, token string, jsonClient bool, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	if jsonClient {
		req.Header.Set("Accept", "application/json")
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func mustEmail(t *testing.T, raw string) valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(raw)
	require.NoError(t, err)
	return email
}

// Stubs

type stubAuth struct {
	session *services.Session
	err     error
}

func (s *stubAuth) Login(_ context.Context, email, password string) (*services.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.session == nil || email == "" || password == "" {
		return nil, errors.ErrInvalidCredentials
	}
	return s.session, nil
}

type stubClients struct {
	visible     []*entities.Client
	detail      *services.ClientDetail
	err         error
	created     bool
	createdWith *string
	deletedID   string
}

func (s *stubClients) CreateClient(_ context.Context, actor ports.SessionIdentity, name string) (bool, error) {
	if actor.Role != string(entities.RoleAdmin) {
		return false, errors.ErrAdminOnly
	}
	s.createdWith = &name
	return s.created, s.err
}

func (s *stubClients) DeleteClient(_ context.Context, actor ports.SessionIdentity, clientID string) error {
	if actor.Role != string(entities.RoleAdmin) {
		return errors.ErrAdminOnly
	}
	s.deletedID = clientID
	return s.err
}

func (s *stubClients) ListVisibleClients(context.Context, ports.SessionIdentity) ([]*entities.Client, error) {
	return s.visible, s.err
}

func (s *stubClients) ListAllClients(_ context.Context, actor ports.SessionIdentity) ([]*entities.Client, error) {
	if actor.Role != string(entities.RoleAdmin) {
		return nil, errors.ErrAdminOnly
	}
	return s.visible, s.err
}

func (s *stubClients) GetClientDetail(context.Context, ports.SessionIdentity, string) (*services.ClientDetail, error) {
	return s.detail, s.err
}

type stubUsers struct {
	user        *entities.User
	users       []*entities.User
	err         error
	created     bool
	createInput services.CreateUserInput
	filters     repositories.UserFilters
	password    string
}

func (s *stubUsers) GetUser(context.Context, string) (*entities.User, error) {
	if s.user == nil {
		return nil, errors.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUsers) CreateUser(_ context.Context, _ ports.SessionIdentity, input services.CreateUserInput) (bool, error) {
	s.createInput = input
	return s.created, s.err
}

func (s *stubUsers) DeleteUser(context.Context, ports.SessionIdentity, string) error {
	return s.err
}

func (s *stubUsers) ResetPassword(_ context.Context, _ ports.SessionIdentity, _ string, password string) (bool, error) {
	s.password = password
	return len(password) >= services.MinPasswordLength, s.err
}

func (s *stubUsers) ListUsers(_ context.Context, _ ports.SessionIdentity, filters repositories.UserFilters) ([]*entities.User, error) {
	s.filters = filters
	return s.users, s.err
}

type stubDocuments struct {
	document    *entities.Document
	ticket      *services.UploadTicket
	url         string
	err         error
	upload      services.UploadInput
	uploadBody  string
	register    services.RegisterInput
	disposition ports.Disposition
}

func (s *stubDocuments) Upload(_ context.Context, _ ports.SessionIdentity, input services.UploadInput) (*entities.Document, error) {
	s.upload = input
	if input.Body != nil {
		data, _ := io.ReadAll(input.Body)
		s.uploadBody = string(data)
	}
	return s.document, s.err
}

func (s *stubDocuments) PrepareUpload(context.Context, ports.SessionIdentity, string, string, string) (*services.UploadTicket, error) {
	return s.ticket, s.err
}

func (s *stubDocuments) Register(_ context.Context, _ ports.SessionIdentity, input services.RegisterInput) (*entities.Document, error) {
	s.register = input
	return s.document, s.err
}

func (s *stubDocuments) Delete(context.Context, ports.SessionIdentity, string) error {
	return s.err
}

func (s *stubDocuments) ResolveURL(_ context.Context, _ ports.SessionIdentity, _ string, disposition ports.Disposition) (string, error) {
	s.disposition = disposition
	return s.url, s.err
}

type stubMembers struct {
	changed bool
	err     error
	email   string
}

func (s *stubMembers) AddMember(_ context.Context, _ ports.SessionIdentity, _, email string) (bool, error) {
	s.email = email
	return s.changed, s.err
}

func (s *stubMembers) RemoveMember(context.Context, ports.SessionIdentity, string, string) (bool, error) {
	return s.changed, s.err
}

type stubFolders struct {
	changed bool
	err     error
	name    string
}

func (s *stubFolders) CreateFolder(_ context.Context, _ ports.SessionIdentity, _, name string) (bool, error) {
	s.name = name
	return s.changed, s.err
}

func (s *stubFolders) DeleteFolder(_ context.Context, _ ports.SessionIdentity, _, name string) (bool, error) {
	s.name = name
	return s.changed, s.err
}

type stubAccess struct {
	mu      sync.Mutex
	allowed map[string]bool
}

func (s *stubAccess) CanAccess(_ context.Context, userID string, role entities.Role, clientID string) (bool, error) {
	if role == entities.RoleAdmin {
		return true, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowed[clientID+"|"+userID], nil
}

func (s *stubAccess) set(clientID, userID string, allowed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowed[clientID+"|"+userID] = allowed
}

func sampleDocument() *entities.Document {
	folder := "Contratos"
	return &entities.Document{
		ID:           "doc-1",
		ClientID:     "client-1",
		UploaderID:   staffIdentity.UserID,
		OriginalName: "contrato.pdf",
		StorageKey:   "client-1/6b1f1f0e-8c55-4a7e-9f7d-1c1b2f3e4d5a.pdf",
		MimeType:     "application/pdf",
		Size:         5,
		FolderPath:   &folder,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}
