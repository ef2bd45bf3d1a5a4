package dto

import (
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/services"
)

// CreateClientRequest cria um cliente pelo nome
type CreateClientRequest struct {
	Name string `form:"name" json:"name" binding:"required,max=200"`
}

// AddMemberRequest concede acesso pelo email do usuário
type AddMemberRequest struct {
	Email string `form:"email" json:"email" binding:"required"`
}

// CreateFolderRequest cria uma pasta explícita
type CreateFolderRequest struct {
	Name string `form:"name" json:"name" binding:"required,folderpath"`
}

// ClientResponse é um item da listagem de clientes
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DocumentCount int64     `json:"documentCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToClientResponses converte a listagem de clientes
func ToClientResponses(clients []*entities.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ClientResponse{
			ID:            c.ID,
			Name:          c.Name,
			DocumentCount: c.DocumentCount,
			CreatedAt:     c.CreatedAt,
		}
	}
	return responses
}

// FolderGroupResponse agrupa os documentos de uma pasta; Folder vazio é a raiz
type FolderGroupResponse struct {
	Folder    string             `json:"folder"`
	Documents []DocumentResponse `json:"documents"`
}

// MemberResponse é um membro do cliente com os dados do usuário
type MemberResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientDetailResponse é a visão completa de um cliente
type ClientDetailResponse struct {
	Client       ClientResponse        `json:"client"`
	Groups       []FolderGroupResponse `json:"groups"`
	Folders      []string              `json:"folders"`
	EmptyFolders []string              `json:"emptyFolders"`
	Members      []MemberResponse      `json:"members,omitempty"`
	CanManage    bool                  `json:"canManage"`
}

// ToClientDetailResponse converte a visão montada pelo serviço
func ToClientDetailResponse(detail *services.ClientDetail) ClientDetailResponse {
	response := ClientDetailResponse{
		Client: ClientResponse{
			ID:            detail.Client.ID,
			Name:          detail.Client.Name,
			DocumentCount: detail.Client.DocumentCount,
			CreatedAt:     detail.Client.CreatedAt,
		},
		Groups:       make([]FolderGroupResponse, len(detail.Groups)),
		Folders:      detail.Folders,
		EmptyFolders: make([]string, len(detail.EmptyFolders)),
		CanManage:    detail.CanManage,
	}

	for i, group := range detail.Groups {
		docs := make([]DocumentResponse, len(group.Documents))
		for j, d := range group.Documents {
			docs[j] = ToDocumentResponse(d, detail.Deletable[d.ID])
		}
		response.Groups[i] = FolderGroupResponse{Folder: group.Folder, Documents: docs}
	}

	for i, f := range detail.EmptyFolders {
		response.EmptyFolders[i] = f.Name
	}

	if detail.Members != nil {
		response.Members = make([]MemberResponse, len(detail.Members))
		for i, m := range detail.Members {
			member := MemberResponse{UserID: m.UserID, CreatedAt: m.CreatedAt}
			if m.User != nil {
				member.Email = m.User.Email.String()
				member.Name = m.User.Name
			}
			response.Members[i] = member
		}
	}

	return response
}
