package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
	"github.com/rafabene/docrepo-backend/internal/services"
)

type clientService interface {
	CreateClient(ctx context.Context, actor ports.SessionIdentity, name string) (bool, error)
	DeleteClient(ctx context.Context, actor ports.SessionIdentity, clientID string) error
	ListVisibleClients(ctx context.Context, actor ports.SessionIdentity) ([]*entities.Client, error)
	ListAllClients(ctx context.Context, actor ports.SessionIdentity) ([]*entities.Client, error)
	GetClientDetail(ctx context.Context, actor ports.SessionIdentity, clientID string) (*services.ClientDetail, error)
}

// ClientHandler lida com requisições HTTP relacionadas a clientes
type ClientHandler struct {
	clients clientService
	logger  ports.Logger
}

// NewClientHandler cria um novo ClientHandler
func NewClientHandler(clients clientService, logger ports.Logger) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		logger:  logger,
	}
}

// ListVisible godoc
// @Summary      Clientes visíveis
// @Description  ADMIN vê todos os clientes; STAFF vê os clientes dos quais é membro
// @Tags         clients
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) ListVisible(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	clients, err := h.clients.ListVisibleClients(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// Detail godoc
// @Summary      Detalhe do cliente
// @Description  Documentos agrupados por pasta, pastas vazias e, para ADMIN, os membros
// @Tags         clients
// @Produce      json
// @Param        clientId  path      string  true  "ID do cliente"
// @Success      200       {object}  dto.ClientDetailResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /clients/{clientId} [get]
func (h *ClientHandler) Detail(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	detail, err := h.clients.GetClientDetail(c.Request.Context(), identity, c.Param("clientId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDetailResponse(detail))
}

// ListAll godoc
// @Summary      Todos os clientes (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/clients [get]
func (h *ClientHandler) ListAll(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	clients, err := h.clients.ListAllClients(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// Create godoc
// @Summary      Criar cliente (admin)
// @Description  Nome vazio ou duplicado é ignorado (changed=false)
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      dto.CreateClientRequest  true  "Cliente"
// @Success      200      {object}  dto.ActionResult
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /admin/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		// Entrada inválida vira no-op no serviço, depois da checagem de papel
		req = dto.CreateClientRequest{}
	}

	changed, err := h.clients.CreateClient(c.Request.Context(), identity, req.Name)
	respondAction(c, h.logger, adminClientsPath, changed, err)
}

// Delete godoc
// @Summary      Excluir cliente (admin)
// @Description  Remove documentos, membros, pastas e o próprio cliente numa transação
// @Tags         admin
// @Produce      json
// @Param        clientId  path      string  true  "ID do cliente"
// @Success      200       {object}  dto.ActionResult
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /admin/clients/{clientId} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	err := h.clients.DeleteClient(c.Request.Context(), identity, c.Param("clientId"))
	respondAction(c, h.logger, adminClientsPath, err == nil, err)
}
