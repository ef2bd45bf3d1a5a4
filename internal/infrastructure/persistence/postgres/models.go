package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         *string `gorm:"type:varchar(500)"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(20);not null;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// ClientModel é o model GORM para clientes (tenants)
type ClientModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(200);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

func (ClientModel) TableName() string {
	return "clients"
}

// ClientMemberModel é o model GORM para o vínculo cliente/usuário
type ClientMemberModel struct {
	ID        string     `gorm:"type:uuid;primaryKey"`
	ClientID  string     `gorm:"type:uuid;not null;uniqueIndex:idx_client_members_client_user,priority:1"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_client_members_client_user,priority:2;index"`
	CreatedAt int64      `gorm:"autoCreateTime:milli"`
	User      *UserModel `gorm:"foreignKey:UserID"`
}

func (ClientMemberModel) TableName() string {
	return "client_members"
}

// ClientFolderModel é o model GORM para pastas explícitas
type ClientFolderModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ClientID  string `gorm:"type:uuid;not null;uniqueIndex:idx_client_folders_client_name,priority:1"`
	Name      string `gorm:"type:varchar(500);not null;uniqueIndex:idx_client_folders_client_name,priority:2"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

func (ClientFolderModel) TableName() string {
	return "client_folders"
}

// DocumentModel é o model GORM para metadados de documentos.
// uploader_id não tem foreign key: documentos sobrevivem à exclusão do usuário.
type DocumentModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	ClientID     string  `gorm:"type:uuid;not null;index:idx_documents_client_folder,priority:1"`
	UploaderID   string  `gorm:"type:uuid;not null;index"`
	OriginalName string  `gorm:"type:varchar(500);not null"`
	StorageKey   string  `gorm:"type:varchar(600);uniqueIndex;not null"`
	MimeType     string  `gorm:"type:varchar(255);not null"`
	Size         int64   `gorm:"not null"`
	FolderPath   *string `gorm:"type:varchar(500);index:idx_documents_client_folder,priority:2"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli"`
}

func (DocumentModel) TableName() string {
	return "documents"
}

// allModels é a lista usada no AutoMigrate
func allModels() []any {
	return []any{
		&UserModel{},
		&ClientModel{},
		&ClientMemberModel{},
		&ClientFolderModel{},
		&DocumentModel{},
	}
}

// IDs são gerados na aplicação para não depender de gen_random_uuid()

func (m *UserModel) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *ClientModel) BeforeCreate(*gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *ClientMemberModel) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *ClientFolderModel) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *DocumentModel) BeforeCreate(*gorm.DB) error     { ensureID(&m.ID); return nil }

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
