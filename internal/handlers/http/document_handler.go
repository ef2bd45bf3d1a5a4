package http

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
	"github.com/rafabene/docrepo-backend/internal/services"
)

type documentService interface {
	Upload(ctx context.Context, actor ports.SessionIdentity, input services.UploadInput) (*entities.Document, error)
	PrepareUpload(ctx context.Context, actor ports.SessionIdentity, clientID, filename, contentType string) (*services.UploadTicket, error)
	Register(ctx context.Context, actor ports.SessionIdentity, input services.RegisterInput) (*entities.Document, error)
	Delete(ctx context.Context, actor ports.SessionIdentity, documentID string) error
	ResolveURL(ctx context.Context, actor ports.SessionIdentity, documentID string, disposition ports.Disposition) (string, error)
}

// multipartOverhead cobre cabeçalhos e boundaries do formulário
const multipartOverhead = 1 << 20

// DocumentHandler lida com upload, exclusão e acesso aos documentos
type DocumentHandler struct {
	documents      documentService
	maxUploadBytes int64
	logger         ports.Logger
}

// NewDocumentHandler cria um novo DocumentHandler
func NewDocumentHandler(documents documentService, maxUploadBytes int64, logger ports.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents:      documents,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload godoc
// @Summary      Upload de documento
// @Description  Envia o arquivo pelo servidor (campo "file") com pasta opcional (campo "folderPath")
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        clientId    path      string  true   "ID do cliente"
// @Param        file        formData  file    true   "Arquivo"
// @Param        folderPath  formData  string  false  "Pasta"
// @Success      200         {object}  dto.UploadResult
// @Failure      400         {object}  dto.UploadResult
// @Failure      403         {object}  dto.UploadResult
// @Failure      502         {object}  dto.UploadResult
// @Router       /clients/{clientId}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	input := services.UploadInput{
		ClientID:   c.Param("clientId"),
		FolderPath: c.PostForm("folderPath"),
	}
	if err == nil {
		file, openErr := header.Open()
		if openErr != nil {
			uploadFailure(c, h.logger, h.maxUploadBytes, openErr)
			return
		}
		defer file.Close()

		input.Filename = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
		input.Body = file
	} else if isBodyTooLarge(err) {
		uploadFailure(c, h.logger, h.maxUploadBytes, errors.ErrFileTooLarge)
		return
	}

	document, err := h.documents.Upload(c.Request.Context(), identity, input)
	if err != nil {
		uploadFailure(c, h.logger, h.maxUploadBytes, err)
		return
	}

	response := dto.ToDocumentResponse(document, true)
	c.JSON(http.StatusOK, dto.UploadResult{OK: true, Document: &response})
}

// PrepareUpload godoc
// @Summary      URL assinada para upload direto
// @Description  Gera a storage key e uma URL de PUT; depois do envio o navegador chama /documents/register
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        clientId  path      string                    true  "ID do cliente"
// @Param        request   body      dto.PrepareUploadRequest  true  "Arquivo"
// @Success      200       {object}  dto.PrepareUploadResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      502       {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/uploads [post]
func (h *DocumentHandler) PrepareUpload(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.PrepareUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, err)
		return
	}

	ticket, err := h.documents.PrepareUpload(c.Request.Context(), identity, c.Param("clientId"), req.Filename, req.ContentType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PrepareUploadResponse{
		StorageKey: ticket.StorageKey,
		UploadURL:  ticket.UploadURL,
		Method:     ticket.Method,
		Headers:    ticket.Headers,
		ExpiresAt:  ticket.ExpiresAt,
	})
}

// Register godoc
// @Summary      Registrar upload direto
// @Description  Cria o documento para um objeto já enviado ao storage; tamanho e tipo vêm do que o storage gravou
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        clientId  path      string                       true  "ID do cliente"
// @Param        request   body      dto.RegisterDocumentRequest  true  "Objeto enviado"
// @Success      200       {object}  dto.UploadResult
// @Failure      400       {object}  dto.UploadResult
// @Failure      403       {object}  dto.UploadResult
// @Router       /clients/{clientId}/documents/register [post]
func (h *DocumentHandler) Register(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.RegisterDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		uploadFailure(c, h.logger, h.maxUploadBytes, errors.ErrInvalidStorageKey)
		return
	}

	document, err := h.documents.Register(c.Request.Context(), identity, services.RegisterInput{
		ClientID:     c.Param("clientId"),
		StorageKey:   req.StorageKey,
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		Size:         req.Size,
		FolderPath:   req.FolderPath,
	})
	if err != nil {
		uploadFailure(c, h.logger, h.maxUploadBytes, err)
		return
	}

	response := dto.ToDocumentResponse(document, true)
	c.JSON(http.StatusOK, dto.UploadResult{OK: true, Document: &response})
}

// Delete godoc
// @Summary      Excluir documento
// @Description  ADMIN ou o próprio uploader; falha ao apagar o objeto no storage não impede a exclusão
// @Tags         documents
// @Produce      json
// @Param        documentId  path      string  true  "ID do documento"
// @Success      200         {object}  dto.ActionResult
// @Failure      403         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /documents/{documentId} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	err := h.documents.Delete(c.Request.Context(), identity, c.Param("documentId"))
	respondAction(c, h.logger, ClientsPath, err == nil, err)
}

// View godoc
// @Summary      Visualizar documento
// @Description  Reconfere o acesso e redireciona para uma URL assinada nova (inline)
// @Tags         documents
// @Param        documentId  path  string  true  "ID do documento"
// @Success      302
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /documents/{documentId}/view [get]
func (h *DocumentHandler) View(c *gin.Context) {
	h.redirectToObject(c, ports.DispositionInline)
}

// Download godoc
// @Summary      Baixar documento
// @Description  Reconfere o acesso e redireciona para uma URL assinada nova (attachment com o nome original)
// @Tags         documents
// @Param        documentId  path  string  true  "ID do documento"
// @Success      302
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /documents/{documentId}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	h.redirectToObject(c, ports.DispositionAttachment)
}

// redirectToObject responde os erros só com o status, sem redirect para /login.
// A rota fica fora do gate, atrás de OptionalSession.
func (h *DocumentHandler) redirectToObject(c *gin.Context, disposition ports.Disposition) {
	identity := middleware.CurrentSession(c)
	if identity == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	url, err := h.documents.ResolveURL(c.Request.Context(), *identity, c.Param("documentId"), disposition)
	if err != nil {
		status, _ := dto.ErrorResponseFromError(c, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("failed to sign document url", "document_id", c.Param("documentId"), "error", err)
		}
		c.AbortWithStatus(status)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, url)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return stderrors.As(err, &maxErr)
}
