package services_test

import (
	"context"

	. "github.com/onsi/gomega"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/logging"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/sanitize"
	"github.com/rafabene/docrepo-backend/internal/services"
)

const maxUploadBytes = 1024

// fixture monta os serviços sobre fakes em memória
type fixture struct {
	ctx         context.Context
	store       *memoryStore
	storage     *fakeStorage
	uow         *fakeUnitOfWork
	revalidator *fakeRevalidator
	metrics     *fakeMetrics

	users     fakeUserRepo
	clients   fakeClientRepo
	members   fakeMemberRepo
	folders   fakeFolderRepo
	documents fakeDocumentRepo

	policy          *services.AccessPolicy
	authService     *services.AuthService
	userService     *services.UserService
	clientService   *services.ClientService
	documentService *services.DocumentService
	memberService   *services.MemberService
	folderService   *services.FolderService
}

func newFixture() *fixture {
	store := newMemoryStore()
	f := &fixture{
		ctx:         context.Background(),
		store:       store,
		storage:     newFakeStorage(store),
		uow:         &fakeUnitOfWork{},
		revalidator: &fakeRevalidator{},
		metrics:     newFakeMetrics(),
		users:       fakeUserRepo{store},
		clients:     fakeClientRepo{store},
		members:     fakeMemberRepo{store},
		folders:     fakeFolderRepo{store},
		documents:   fakeDocumentRepo{store},
	}

	log := logging.Nop()
	sanitizer := sanitize.NewSanitizer()

	f.policy = services.NewAccessPolicy(f.members, f.metrics, log)
	f.authService = services.NewAuthService(f.users, fakeHasher{}, fakeSessions{}, log)
	f.userService = services.NewUserService(f.users, f.members, f.uow, fakeHasher{}, f.policy, sanitizer, log)
	f.clientService = services.NewClientService(f.clients, f.members, f.folders, f.documents, f.uow, f.policy, sanitizer, f.revalidator, log)
	f.documentService = services.NewDocumentService(f.documents, f.clients, f.storage, f.policy, sanitizer, f.revalidator, f.metrics,
		services.DocumentLimits{MaxUploadBytes: maxUploadBytes}, log)
	f.memberService = services.NewMemberService(f.members, f.clients, f.users, f.policy, f.revalidator, log)
	f.folderService = services.NewFolderService(f.folders, f.clients, f.policy, sanitizer, f.revalidator, log)

	return f
}

func (f *fixture) user(email string, role entities.Role) ports.SessionIdentity {
	parsed, err := valueobjects.NewEmail(email)
	Expect(err).NotTo(HaveOccurred())

	u := &entities.User{Email: parsed, PasswordHash: "hashed:secret123", Role: role}
	created, err := f.users.CreateIfAbsent(f.ctx, u)
	Expect(err).NotTo(HaveOccurred())
	Expect(created).To(BeTrue())
	return ports.SessionIdentity{UserID: u.ID, Role: string(role)}
}

func (f *fixture) client(name string) string {
	c := &entities.Client{Name: name}
	created, err := f.clients.CreateIfAbsent(f.ctx, c)
	Expect(err).NotTo(HaveOccurred())
	Expect(created).To(BeTrue())
	return c.ID
}

func (f *fixture) grant(clientID string, actor ports.SessionIdentity) {
	_, err := f.members.AddIfAbsent(f.ctx, clientID, actor.UserID)
	Expect(err).NotTo(HaveOccurred())
}

func (f *fixture) document(clientID string, uploader ports.SessionIdentity, name string, folder *string) *entities.Document {
	d := &entities.Document{
		ClientID:     clientID,
		UploaderID:   uploader.UserID,
		OriginalName: name,
		StorageKey:   valueobjects.NewStorageKey(clientID, name).String(),
		MimeType:     "application/pdf",
		Size:         10,
		FolderPath:   folder,
	}
	Expect(f.documents.Create(f.ctx, d)).To(Succeed())
	f.storage.objects[d.StorageKey] = []byte("content")
	return d
}

func (f *fixture) documentCount(clientID string) int {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.countDocuments(clientID)
}

func strPtr(s string) *string { return &s }
