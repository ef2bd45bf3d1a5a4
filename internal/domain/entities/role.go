package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Administração
	PermissionClientsManage Permission = "clients.manage"
	PermissionUsersManage   Permission = "users.manage"
	PermissionMembersManage Permission = "members.manage"
	PermissionFoldersDelete Permission = "folders.delete"

	// Documentos de qualquer uploader
	PermissionDocumentsDeleteAny Permission = "documents.delete_any"

	// Visibilidade total de clientes, sem consultar memberships
	PermissionClientsViewAll Permission = "clients.view_all"
)

// RolePermissions mapeia roles para suas permissões.
// STAFF não tem permissões globais: o acesso vem de ClientMember.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionClientsManage,
		PermissionUsersManage,
		PermissionMembersManage,
		PermissionFoldersDelete,
		PermissionDocumentsDeleteAny,
		PermissionClientsViewAll,
	},
	RoleStaff: {},
}

// ParseRole converte texto livre em Role; qualquer valor diferente de ADMIN vira STAFF
func ParseRole(value string) Role {
	if Role(value) == RoleAdmin {
		return RoleAdmin
	}
	return RoleStaff
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
