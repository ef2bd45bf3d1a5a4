package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
)

type memberService interface {
	AddMember(ctx context.Context, actor ports.SessionIdentity, clientID, email string) (bool, error)
	RemoveMember(ctx context.Context, actor ports.SessionIdentity, clientID, userID string) (bool, error)
}

// MemberHandler concede e revoga o acesso de STAFF a um cliente
type MemberHandler struct {
	members memberService
	logger  ports.Logger
}

// NewMemberHandler cria um novo MemberHandler
func NewMemberHandler(members memberService, logger ports.Logger) *MemberHandler {
	return &MemberHandler{members: members, logger: logger}
}

// Add godoc
// @Summary      Adicionar membro (admin)
// @Description  Resolve o usuário pelo email; email desconhecido é ignorado
// @Tags         members
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        clientId  path      string                 true  "ID do cliente"
// @Param        request   body      dto.AddMemberRequest   true  "Email do usuário"
// @Success      200       {object}  dto.ActionResult
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		req = dto.AddMemberRequest{}
	}

	clientID := c.Param("clientId")
	changed, err := h.members.AddMember(c.Request.Context(), identity, clientID, req.Email)
	respondAction(c, h.logger, clientPath(clientID), changed, err)
}

// Remove godoc
// @Summary      Remover membro (admin)
// @Tags         members
// @Produce      json
// @Param        clientId  path      string  true  "ID do cliente"
// @Param        userId    path      string  true  "ID do usuário"
// @Success      200       {object}  dto.ActionResult
// @Failure      403       {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/members/{userId} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	clientID := c.Param("clientId")
	changed, err := h.members.RemoveMember(c.Request.Context(), identity, clientID, c.Param("userId"))
	respondAction(c, h.logger, clientPath(clientID), changed, err)
}

func clientPath(clientID string) string {
	return ClientsPath + "/" + clientID
}
