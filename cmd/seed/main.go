package main

import (
	"context"
	"log"
	"time"

	"github.com/rafabene/docrepo-backend/internal/infrastructure/config"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/logging"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/metrics"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/sanitize"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/security"
	"github.com/rafabene/docrepo-backend/internal/services"
)

// seed cria o ADMIN inicial a partir de SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD.
// Rodar de novo redefine a senha e o role do mesmo email.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	userRepo := postgres.NewUserRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	policy := services.NewAccessPolicy(memberRepo, metrics.NewRecorder(), logger)
	userService := services.NewUserService(
		userRepo,
		memberRepo,
		postgres.NewUnitOfWork(db),
		security.NewBcryptHasher(12),
		policy,
		sanitize.NewSanitizer(),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := userService.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		logger.Error("seed failed", "error", err)
		log.Fatal(err)
	}

	logger.Info("seed finished", "user_id", user.ID, "email", user.Email.String())
}
