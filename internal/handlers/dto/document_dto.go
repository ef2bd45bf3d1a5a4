package dto

import (
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
)

// PrepareUploadRequest pede uma URL assinada para upload direto
type PrepareUploadRequest struct {
	Filename    string `form:"filename" json:"filename" binding:"required,max=255"`
	ContentType string `form:"contentType" json:"contentType" binding:"max=255"`
}

// PrepareUploadResponse devolve a chave e a URL de PUT. O navegador envia
// exatamente os headers listados, que fazem parte da assinatura.
type PrepareUploadResponse struct {
	StorageKey string            `json:"storageKey"`
	UploadURL  string            `json:"uploadUrl"`
	Method     string            `json:"method"`
	Headers    map[string]string `json:"headers"`
	ExpiresAt  time.Time         `json:"expiresAt"`
}

// RegisterDocumentRequest registra um objeto já enviado ao storage
type RegisterDocumentRequest struct {
	StorageKey   string `form:"storageKey" json:"storageKey" binding:"required,storagekey"`
	OriginalName string `form:"originalName" json:"originalName" binding:"required,max=255"`
	MimeType     string `form:"mimeType" json:"mimeType" binding:"max=255"`
	// Size é só informativo: vale o tamanho gravado no storage
	Size         int64  `form:"size" json:"size" binding:"min=0"`
	FolderPath   string `form:"folderPath" json:"folderPath" binding:"omitempty,folderpath"`
}

// DocumentResponse representa um documento na listagem
type DocumentResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	FolderPath   *string   `json:"folderPath"`
	UploaderID   string    `json:"uploaderId"`
	CreatedAt    time.Time `json:"createdAt"`
	CanDelete    bool      `json:"canDelete"`
	ViewURL      string    `json:"viewUrl"`
	DownloadURL  string    `json:"downloadUrl"`
}

// ToDocumentResponse converte um documento; as URLs apontam para os
// endpoints que reconferem acesso, nunca direto para o storage
func ToDocumentResponse(document *entities.Document, canDelete bool) DocumentResponse {
	return DocumentResponse{
		ID:           document.ID,
		OriginalName: document.OriginalName,
		MimeType:     document.MimeType,
		Size:         document.Size,
		FolderPath:   document.FolderPath,
		UploaderID:   document.UploaderID,
		CreatedAt:    document.CreatedAt,
		CanDelete:    canDelete,
		ViewURL:      "/documents/" + document.ID + "/view",
		DownloadURL:  "/documents/" + document.ID + "/download",
	}
}
