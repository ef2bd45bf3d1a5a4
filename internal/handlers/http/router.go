package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
)

// Handlers agrupa os handlers da aplicação
type Handlers struct {
	Auth      *AuthHandler
	Clients   *ClientHandler
	Users     *UserHandler
	Documents *DocumentHandler
	Members   *MemberHandler
	Folders   *FolderHandler
	Realtime  *RealtimeHandler
}

// RegisterRoutes monta a superfície da aplicação. Tudo passa pelo gate de
// sessão, exceto as URLs de documento, que respondem 401/403/404 sozinhas.
func RegisterRoutes(router gin.IRouter, h Handlers, session *middleware.SessionMiddleware) {
	app := router.Group("", session.RequireSession())
	{
		app.GET(middleware.LoginPath, h.Auth.Session)
		app.POST(middleware.LoginPath, h.Auth.Login)
		app.POST("/logout", h.Auth.Logout)

		clients := app.Group("/clients")
		{
			clients.GET("", h.Clients.ListVisible)
			clients.GET("/:clientId", h.Clients.Detail)

			clients.POST("/:clientId/documents", h.Documents.Upload)
			clients.POST("/:clientId/uploads", h.Documents.PrepareUpload)
			clients.POST("/:clientId/documents/register", h.Documents.Register)

			clients.POST("/:clientId/members", h.Members.Add)
			clients.DELETE("/:clientId/members/:userId", h.Members.Remove)

			clients.POST("/:clientId/folders", h.Folders.Create)
			clients.DELETE("/:clientId/folders/:folderName", h.Folders.Delete)
		}

		app.DELETE("/documents/:documentId", h.Documents.Delete)
		app.GET("/ws/clients/:clientId", h.Realtime.Stream)

		admin := app.Group("/admin")
		{
			admin.GET("/clients", h.Clients.ListAll)
			admin.POST("/clients", h.Clients.Create)
			admin.DELETE("/clients/:clientId", h.Clients.Delete)

			admin.GET("/users", h.Users.ListUsers)
			admin.POST("/users", h.Users.CreateUser)
			admin.DELETE("/users/:userId", h.Users.DeleteUser)
			admin.POST("/users/:userId/password", h.Users.ResetPassword)
		}
	}

	files := router.Group("/documents", session.OptionalSession())
	{
		files.GET("/:documentId/view", h.Documents.View)
		files.GET("/:documentId/download", h.Documents.Download)
	}
}
