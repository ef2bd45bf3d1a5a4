package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
)

type folderService interface {
	CreateFolder(ctx context.Context, actor ports.SessionIdentity, clientID, name string) (bool, error)
	DeleteFolder(ctx context.Context, actor ports.SessionIdentity, clientID, name string) (bool, error)
}

// FolderHandler cria e remove pastas explícitas
type FolderHandler struct {
	folders folderService
	logger  ports.Logger
}

// NewFolderHandler cria um novo FolderHandler
func NewFolderHandler(folders folderService, logger ports.Logger) *FolderHandler {
	return &FolderHandler{folders: folders, logger: logger}
}

// Create godoc
// @Summary      Criar pasta
// @Description  Qualquer usuário com acesso ao cliente; pasta existente é ignorada
// @Tags         folders
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        clientId  path      string                   true  "ID do cliente"
// @Param        request   body      dto.CreateFolderRequest  true  "Nome da pasta"
// @Success      200       {object}  dto.ActionResult
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateFolderRequest
	if err := c.ShouldBind(&req); err != nil {
		req = dto.CreateFolderRequest{}
	}

	clientID := c.Param("clientId")
	changed, err := h.folders.CreateFolder(c.Request.Context(), identity, clientID, req.Name)
	respondAction(c, h.logger, clientPath(clientID), changed, err)
}

// Delete godoc
// @Summary      Excluir pasta (admin)
// @Description  Remove apenas o rótulo explícito; documentos não são afetados
// @Tags         folders
// @Produce      json
// @Param        clientId    path      string  true  "ID do cliente"
// @Param        folderName  path      string  true  "Nome da pasta (URL-encoded)"
// @Success      200         {object}  dto.ActionResult
// @Failure      403         {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/folders/{folderName} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	clientID := c.Param("clientId")
	changed, err := h.folders.DeleteFolder(c.Request.Context(), identity, clientID, c.Param("folderName"))
	respondAction(c, h.logger, clientPath(clientID), changed, err)
}
