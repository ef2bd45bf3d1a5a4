package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/docrepo-backend/docs"
	httphandlers "github.com/rafabene/docrepo-backend/internal/handlers/http"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/config"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/i18n"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/logging"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/metrics"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/realtime"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/sanitize"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/security"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/storage/s3store"
	"github.com/rafabene/docrepo-backend/internal/services"
)

const bcryptCost = 12

// @title        docrepo API
// @version      1.0
// @description  Repositório de documentos por cliente com acesso por membership.
// @BasePath     /
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting docrepo backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Object storage
	storage, err := s3store.NewGateway(context.Background(), &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to configure object storage", "error", err)
		log.Fatal(err)
	}

	sessions, err := security.NewJWTSessions(cfg.JWT.Secret, cfg.JWT.SessionTTL)
	if err != nil {
		logger.Error("failed to configure sessions", "error", err)
		log.Fatal(err)
	}

	if err := middleware.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	folderRepo := postgres.NewFolderRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infra compartilhada pelos serviços
	recorder := metrics.NewRecorder()
	hub := realtime.NewHub(logger)
	sanitizer := sanitize.NewSanitizer()
	hasher := security.NewBcryptHasher(bcryptCost)

	// Inicializar services
	policy := services.NewAccessPolicy(memberRepo, recorder, logger)
	authService := services.NewAuthService(userRepo, hasher, sessions, logger)
	userService := services.NewUserService(userRepo, memberRepo, uow, hasher, policy, sanitizer, logger)
	clientService := services.NewClientService(clientRepo, memberRepo, folderRepo, documentRepo, uow, policy, sanitizer, hub, logger)
	documentService := services.NewDocumentService(documentRepo, clientRepo, storage, policy, sanitizer, hub, recorder, services.DocumentLimits{
		MaxUploadBytes: cfg.Upload.MaxBytes,
		SignedURLTTL:   cfg.Storage.SignedURLTTL,
		UploadURLTTL:   cfg.Storage.UploadURLTTL,
	}, logger)
	memberService := services.NewMemberService(memberRepo, clientRepo, userRepo, policy, hub, logger)
	folderService := services.NewFolderService(folderRepo, clientRepo, policy, sanitizer, hub, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Auth: httphandlers.NewAuthHandler(authService, userService, httphandlers.CookieSettings{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.JWT.CookieSecure,
		}, logger),
		Clients:   httphandlers.NewClientHandler(clientService, logger),
		Users:     httphandlers.NewUserHandler(userService, logger),
		Documents: httphandlers.NewDocumentHandler(documentService, cfg.Upload.MaxBytes, logger),
		Members:   httphandlers.NewMemberHandler(memberService, logger),
		Folders:   httphandlers.NewFolderHandler(folderService, logger),
		Realtime:  httphandlers.NewRealtimeHandler(hub, policy, originChecker(cfg.CORS.AllowedOrigins), logger),
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.UseRawPath = true
	router.MaxMultipartMemory = 8 << 20

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check, métricas e docs ficam fora do gate de sessão
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(recorder.Handler()))
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	session := middleware.NewSessionMiddleware(authService, cfg.JWT.CookieName)
	httphandlers.RegisterRoutes(router, handlers, session)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// originChecker libera o websocket para as mesmas origens do CORS.
// Sem lista explícita vale a checagem padrão de mesma origem.
func originChecker(allowed string) func(r *http.Request) bool {
	origins := make(map[string]struct{})
	for _, o := range strings.Split(allowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = struct{}{}
		}
	}
	if len(origins) == 0 {
		return nil
	}
	if _, ok := origins["*"]; ok {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := origins[origin]; ok {
			return true
		}
		return strings.EqualFold(strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://"), r.Host)
	}
}
