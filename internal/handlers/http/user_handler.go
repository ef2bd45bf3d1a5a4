package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
	"github.com/rafabene/docrepo-backend/internal/services"
)

type userService interface {
	CreateUser(ctx context.Context, actor ports.SessionIdentity, input services.CreateUserInput) (bool, error)
	DeleteUser(ctx context.Context, actor ports.SessionIdentity, userID string) error
	ResetPassword(ctx context.Context, actor ports.SessionIdentity, userID, password string) (bool, error)
	ListUsers(ctx context.Context, actor ports.SessionIdentity, filters repositories.UserFilters) ([]*entities.User, error)
}

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	users  userService
	logger ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(users userService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// CreateUser godoc
// @Summary      Criar usuário (admin)
// @Description  Email e senha obrigatórios; email duplicado é ignorado; role padrão STAFF
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      dto.CreateUserRequest  true  "Usuário"
// @Success      200      {object}  dto.ActionResult
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		req = dto.CreateUserRequest{}
	}

	changed, err := h.users.CreateUser(c.Request.Context(), identity, services.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	respondAction(c, h.logger, adminUsersPath, changed, err)
}

// DeleteUser godoc
// @Summary      Excluir usuário (admin)
// @Description  Remove as memberships e o usuário; documentos enviados por ele permanecem
// @Tags         admin
// @Produce      json
// @Param        userId  path      string  true  "ID do usuário"
// @Success      200     {object}  dto.ActionResult
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /admin/users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	err := h.users.DeleteUser(c.Request.Context(), identity, c.Param("userId"))
	respondAction(c, h.logger, adminUsersPath, err == nil, err)
}

// ResetPassword godoc
// @Summary      Redefinir senha (admin)
// @Description  Senhas com menos de 8 caracteres são ignoradas
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        userId   path      string                     true  "ID do usuário"
// @Param        request  body      dto.ResetPasswordRequest   true  "Nova senha"
// @Success      200      {object}  dto.ActionResult
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /admin/users/{userId}/password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		req = dto.ResetPasswordRequest{}
	}

	changed, err := h.users.ResetPassword(c.Request.Context(), identity, c.Param("userId"), req.Password)
	respondAction(c, h.logger, adminUsersPath, changed, err)
}

// ListUsers godoc
// @Summary      Listar usuários (admin)
// @Tags         admin
// @Produce      json
// @Param        role      query     string  false  "ADMIN ou STAFF"
// @Param        page      query     int     false  "Página (começa em 1)"
// @Param        pageSize  query     int     false  "Itens por página (máx. 500)"
// @Success      200       {array}   dto.UserResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err)
		return
	}

	filters := repositories.UserFilters{Page: query.Page, PageSize: query.PageSize}
	if query.Role != "" {
		role := entities.Role(query.Role)
		filters.Role = &role
	}

	users, err := h.users.ListUsers(c.Request.Context(), identity, filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
