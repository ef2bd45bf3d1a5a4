package services

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// Variantes de upload, usadas como label de métrica
const (
	UploadBuffered = "buffered"
	UploadDirect   = "direct"
)

// DocumentLimits agrupa limites e validades configuráveis
type DocumentLimits struct {
	MaxUploadBytes int64
	SignedURLTTL   time.Duration
	UploadURLTTL   time.Duration
}

// DocumentService contém o ciclo de vida dos documentos: upload, registro,
// exclusão e resolução de URLs assinadas
type DocumentService struct {
	documentRepo repositories.DocumentRepository
	clientRepo   repositories.ClientRepository
	storage      ports.ObjectStorage
	policy       *AccessPolicy
	sanitizer    ports.TextSanitizer
	revalidator  ports.Revalidator
	metrics      ports.Metrics
	limits       DocumentLimits
	logger       ports.Logger
}

// NewDocumentService cria um novo DocumentService
func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	clientRepo repositories.ClientRepository,
	storage ports.ObjectStorage,
	policy *AccessPolicy,
	sanitizer ports.TextSanitizer,
	revalidator ports.Revalidator,
	metrics ports.Metrics,
	limits DocumentLimits,
	logger ports.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		clientRepo:   clientRepo,
		storage:      storage,
		policy:       policy,
		sanitizer:    sanitizer,
		revalidator:  revalidator,
		metrics:      metrics,
		limits:       limits,
		logger:       logger,
	}
}

// UploadInput é o arquivo recebido pelo upload bufferizado. Body nil
// significa que o campo file não veio.
type UploadInput struct {
	ClientID    string
	Filename    string
	ContentType string
	FolderPath  string
	Body        io.Reader
}

// Upload lê o arquivo em memória, grava no storage e só então cria a linha.
// Se a linha falhar o objeto fica órfão.
func (s *DocumentService) Upload(ctx context.Context, actor ports.SessionIdentity, input UploadInput) (*entities.Document, error) {
	if err := s.requireClient(ctx, actor, input.ClientID); err != nil {
		return nil, err
	}

	name, err := valueobjects.NormalizeFileName(input.Filename)
	if input.Body == nil || err != nil {
		return nil, errors.ErrMissingFile
	}

	var buf bytes.Buffer
	read, err := buf.ReadFrom(io.LimitReader(input.Body, s.limits.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if read > s.limits.MaxUploadBytes {
		return nil, errors.ErrFileTooLarge
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = entities.DefaultMimeType
	}

	document := &entities.Document{
		ClientID:     input.ClientID,
		UploaderID:   actor.UserID,
		OriginalName: name,
		StorageKey:   valueobjects.NewStorageKey(input.ClientID, name).String(),
		MimeType:     contentType,
		Size:         read,
		FolderPath:   s.folderPath(input.FolderPath),
	}
	if err := document.Validate(); err != nil {
		return nil, errors.ErrMissingFile
	}

	if err := s.storage.Put(ctx, document.StorageKey, bytes.NewReader(buf.Bytes()), read, contentType); err != nil {
		s.metrics.StorageFailure("put")
		s.logger.Error("failed to store object", "storage_key", document.StorageKey, "error", err)
		return nil, errors.Upstream(errors.ErrStorageUnavailable.Message, err)
	}

	if err := s.persist(ctx, document, UploadBuffered); err != nil {
		return nil, err
	}
	return document, nil
}

// UploadTicket autoriza o navegador a enviar o arquivo direto ao storage.
// Headers precisam ir no PUT exatamente como estão.
type UploadTicket struct {
	StorageKey string
	UploadURL  string
	Method     string
	Headers    map[string]string
	ExpiresAt  time.Time
}

// PrepareUpload gera a chave e a URL assinada de PUT para o upload direto
func (s *DocumentService) PrepareUpload(ctx context.Context, actor ports.SessionIdentity, clientID, filename, contentType string) (*UploadTicket, error) {
	if err := s.requireClient(ctx, actor, clientID); err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = entities.DefaultMimeType
	}

	name, err := valueobjects.NormalizeFileName(filename)
	if err != nil {
		return nil, errors.ErrMissingFile
	}

	key := valueobjects.NewStorageKey(clientID, name)
	signed, err := s.storage.SignedUploadURL(ctx, key.String(), contentType, s.limits.UploadURLTTL)
	if err != nil {
		s.metrics.StorageFailure("presign_put")
		return nil, errors.Upstream(errors.ErrStorageUnavailable.Message, err)
	}

	return &UploadTicket{
		StorageKey: key.String(),
		UploadURL:  signed.URL,
		Method:     signed.Method,
		Headers:    signed.Headers,
		ExpiresAt:  time.Now().Add(s.limits.UploadURLTTL),
	}, nil
}

// RegisterInput descreve um objeto já enviado direto ao storage. Tamanho e
// tipo informados pelo navegador perdem para os que o storage gravou.
type RegisterInput struct {
	ClientID     string
	StorageKey   string
	OriginalName string
	MimeType     string
	Size         int64
	FolderPath   string
}

// Register cria a linha de um documento enviado pelo upload direto
func (s *DocumentService) Register(ctx context.Context, actor ports.SessionIdentity, input RegisterInput) (*entities.Document, error) {
	if err := s.requireClient(ctx, actor, input.ClientID); err != nil {
		return nil, err
	}

	key, err := valueobjects.ParseStorageKey(input.ClientID, input.StorageKey)
	if err != nil {
		return nil, errors.ErrInvalidStorageKey
	}

	name, err := valueobjects.NormalizeFileName(input.OriginalName)
	if err != nil {
		return nil, errors.ErrMissingFile
	}

	info, err := s.storage.Stat(ctx, key.String())
	if stderrors.Is(err, ports.ErrObjectNotFound) {
		return nil, errors.ErrInvalidStorageKey
	}
	if err != nil {
		s.metrics.StorageFailure("head")
		return nil, errors.Upstream(errors.ErrStorageUnavailable.Message, err)
	}
	if info.Size > s.limits.MaxUploadBytes {
		s.logger.Warn("direct upload above limit", "storage_key", key.String(), "size", info.Size)
		return nil, errors.ErrFileTooLarge
	}

	mimeType := info.ContentType
	if mimeType == "" {
		mimeType = input.MimeType
	}
	if mimeType == "" {
		mimeType = entities.DefaultMimeType
	}

	document := &entities.Document{
		ClientID:     input.ClientID,
		UploaderID:   actor.UserID,
		OriginalName: name,
		StorageKey:   key.String(),
		MimeType:     mimeType,
		Size:         info.Size,
		FolderPath:   s.folderPath(input.FolderPath),
	}
	if err := document.Validate(); err != nil {
		return nil, errors.ErrMissingFile
	}

	if err := s.persist(ctx, document, UploadDirect); err != nil {
		return nil, err
	}
	return document, nil
}

// Delete remove o objeto e depois a linha. Falha no storage é só logada:
// a linha sempre sai.
func (s *DocumentService) Delete(ctx context.Context, actor ports.SessionIdentity, documentID string) error {
	document, err := s.find(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.policy.RequireAccess(ctx, actor, document.ClientID); err != nil {
		return err
	}
	if !s.policy.CanDeleteDocument(actor, document) {
		s.metrics.AccessDenied("not_owner")
		return errors.ErrNotDocumentOwner
	}

	if err := s.storage.Delete(ctx, document.StorageKey); err != nil {
		s.metrics.StorageFailure("delete")
		s.logger.Warn("failed to delete object, removing row anyway",
			"document_id", document.ID,
			"storage_key", document.StorageKey,
			"error", err,
		)
	}

	if err := s.documentRepo.Delete(ctx, document.ID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.metrics.DocumentDeleted()
	s.logger.Info("document deleted", "document_id", document.ID, "client_id", document.ClientID, "by", actor.UserID)
	s.revalidator.Revalidate(ctx, document.ClientID, RefreshDocuments)
	return nil
}

// ResolveURL confere o acesso e devolve uma URL assinada nova para
// visualização (inline) ou download (attachment)
func (s *DocumentService) ResolveURL(ctx context.Context, actor ports.SessionIdentity, documentID string, disposition ports.Disposition) (string, error) {
	document, err := s.find(ctx, documentID)
	if err != nil {
		return "", err
	}
	if err := s.policy.RequireAccess(ctx, actor, document.ClientID); err != nil {
		return "", err
	}

	opts := ports.SignOptions{Disposition: disposition, TTL: s.limits.SignedURLTTL}
	if disposition == ports.DispositionAttachment {
		opts.Filename = document.OriginalName
	}

	url, err := s.storage.SignedURL(ctx, document.StorageKey, opts)
	if err != nil {
		s.metrics.StorageFailure("presign_get")
		return "", errors.Upstream(errors.ErrStorageUnavailable.Message, err)
	}
	return url, nil
}

func (s *DocumentService) find(ctx context.Context, documentID string) (*entities.Document, error) {
	document, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	if document == nil {
		return nil, errors.ErrDocumentNotFound
	}
	return document, nil
}

// requireClient verifica acesso e existência do cliente, nessa ordem
func (s *DocumentService) requireClient(ctx context.Context, actor ports.SessionIdentity, clientID string) error {
	if err := s.policy.RequireAccess(ctx, actor, clientID); err != nil {
		return err
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return errors.ErrClientNotFound
	}
	return nil
}

func (s *DocumentService) persist(ctx context.Context, document *entities.Document, variant string) error {
	if err := s.documentRepo.Create(ctx, document); err != nil {
		s.logger.Error("failed to create document row, object is orphaned",
			"storage_key", document.StorageKey,
			"error", err,
		)
		return fmt.Errorf("failed to create document: %w", err)
	}

	s.metrics.DocumentStored(variant)
	s.logger.Info("document stored",
		"document_id", document.ID,
		"client_id", document.ClientID,
		"variant", variant,
		"size", document.Size,
	)
	s.revalidator.Revalidate(ctx, document.ClientID, RefreshDocuments)
	return nil
}

func (s *DocumentService) folderPath(raw string) *string {
	return valueobjects.NormalizeFolderPath(s.sanitizer.Clean(raw))
}
