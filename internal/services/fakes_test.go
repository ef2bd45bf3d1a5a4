package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

var errNotFound = errors.New("record not found")

// memoryStore simula o banco relacional em memória
type memoryStore struct {
	mu        sync.Mutex
	seq       int
	clock     time.Time
	users     map[string]*entities.User
	clients   map[string]*entities.Client
	members   map[string]*entities.ClientMember
	folders   map[string]*entities.ClientFolder
	documents map[string]*entities.Document

	documentCreateErr error
	// staleEmailLookup faz FindByEmail não enxergar ninguém, como numa
	// inserção concorrente entre a consulta e o insert
	staleEmailLookup bool
	// rowsLeftOnClientDelete registra documentos e membros ainda presentes
	// quando a linha do cliente é removida
	rowsLeftOnClientDelete int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clock:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     make(map[string]*entities.User),
		clients:   make(map[string]*entities.Client),
		members:   make(map[string]*entities.ClientMember),
		folders:   make(map[string]*entities.ClientFolder),
		documents: make(map[string]*entities.Document),
	}
}

func (s *memoryStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func pairKey(a, b string) string { return a + "|" + b }

func (s *memoryStore) countDocuments(clientID string) int {
	n := 0
	for _, d := range s.documents {
		if d.ClientID == clientID {
			n++
		}
	}
	return n
}

// ---- users

type fakeUserRepo struct{ s *memoryStore }

func (r fakeUserRepo) CreateIfAbsent(_ context.Context, user *entities.User) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email.String() == user.Email.String() {
			return false, nil
		}
	}
	if user.ID == "" {
		user.ID = r.s.nextID("user")
	}
	user.CreatedAt = r.s.tick()
	copied := *user
	r.s.users[user.ID] = &copied
	return true, nil
}

func (r fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.staleEmailLookup {
		return nil, nil
	}
	for _, u := range r.s.users {
		if u.Email.String() == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r fakeUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r fakeUserRepo) Upsert(ctx context.Context, user *entities.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email.String())
	if existing == nil {
		_, err := r.CreateIfAbsent(ctx, user)
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := r.s.users[existing.ID]
	stored.PasswordHash = user.PasswordHash
	stored.Role = user.Role
	*user = *stored
	return nil
}

func (r fakeUserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return errNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r fakeUserRepo) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]*entities.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if filters.Role != nil && u.Role != *filters.Role {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// ---- clients

type fakeClientRepo struct{ s *memoryStore }

func (r fakeClientRepo) CreateIfAbsent(_ context.Context, client *entities.Client) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.Name == client.Name {
			return false, nil
		}
	}
	client.ID = r.s.nextID("client")
	client.CreatedAt = r.s.tick()
	copied := *client
	r.s.clients[client.ID] = &copied
	return true, nil
}

func (r fakeClientRepo) FindByID(_ context.Context, id string) (*entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.clients[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r fakeClientRepo) FindByName(_ context.Context, name string) (*entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r fakeClientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return errNotFound
	}
	r.s.rowsLeftOnClientDelete += r.s.countDocuments(id)
	for _, m := range r.s.members {
		if m.ClientID == id {
			r.s.rowsLeftOnClientDelete++
		}
	}
	delete(r.s.clients, id)
	return nil
}

func (r fakeClientRepo) ListAll(_ context.Context) ([]*entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(*entities.Client) bool { return true }), nil
}

func (r fakeClientRepo) ListForMember(_ context.Context, userID string) ([]*entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(c *entities.Client) bool {
		_, ok := r.s.members[pairKey(c.ID, userID)]
		return ok
	}), nil
}

func (r fakeClientRepo) sorted(keep func(*entities.Client) bool) []*entities.Client {
	clients := make([]*entities.Client, 0)
	for _, c := range r.s.clients {
		if !keep(c) {
			continue
		}
		copied := *c
		copied.DocumentCount = int64(r.s.countDocuments(c.ID))
		clients = append(clients, &copied)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients
}

// ---- members

type fakeMemberRepo struct{ s *memoryStore }

func (r fakeMemberRepo) Exists(_ context.Context, clientID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.members[pairKey(clientID, userID)]
	return ok, nil
}

func (r fakeMemberRepo) AddIfAbsent(_ context.Context, clientID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey(clientID, userID)
	if _, ok := r.s.members[key]; ok {
		return false, nil
	}
	r.s.members[key] = &entities.ClientMember{
		ID:        r.s.nextID("member"),
		ClientID:  clientID,
		UserID:    userID,
		CreatedAt: r.s.tick(),
	}
	return true, nil
}

func (r fakeMemberRepo) Remove(_ context.Context, clientID, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey(clientID, userID)
	if _, ok := r.s.members[key]; !ok {
		return 0, nil
	}
	delete(r.s.members, key)
	return 1, nil
}

func (r fakeMemberRepo) DeleteByClient(_ context.Context, clientID string) (int64, error) {
	return r.deleteWhere(func(m *entities.ClientMember) bool { return m.ClientID == clientID }), nil
}

func (r fakeMemberRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	return r.deleteWhere(func(m *entities.ClientMember) bool { return m.UserID == userID }), nil
}

func (r fakeMemberRepo) deleteWhere(match func(*entities.ClientMember) bool) int64 {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, m := range r.s.members {
		if match(m) {
			delete(r.s.members, k)
			n++
		}
	}
	return n
}

func (r fakeMemberRepo) ListByClient(_ context.Context, clientID string) ([]*entities.ClientMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	members := make([]*entities.ClientMember, 0)
	for _, m := range r.s.members {
		if m.ClientID != clientID {
			continue
		}
		copied := *m
		copied.User = r.s.users[m.UserID]
		members = append(members, &copied)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].CreatedAt.Before(members[j].CreatedAt) })
	return members, nil
}

// ---- folders

type fakeFolderRepo struct{ s *memoryStore }

func (r fakeFolderRepo) CreateIfAbsent(_ context.Context, clientID, name string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey(clientID, name)
	if _, ok := r.s.folders[key]; ok {
		return false, nil
	}
	r.s.folders[key] = &entities.ClientFolder{
		ID:        r.s.nextID("folder"),
		ClientID:  clientID,
		Name:      name,
		CreatedAt: r.s.tick(),
	}
	return true, nil
}

func (r fakeFolderRepo) DeleteByName(_ context.Context, clientID, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey(clientID, name)
	if _, ok := r.s.folders[key]; !ok {
		return 0, nil
	}
	delete(r.s.folders, key)
	return 1, nil
}

func (r fakeFolderRepo) DeleteByClient(_ context.Context, clientID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, f := range r.s.folders {
		if f.ClientID == clientID {
			delete(r.s.folders, k)
			n++
		}
	}
	return n, nil
}

func (r fakeFolderRepo) ListByClient(_ context.Context, clientID string) ([]*entities.ClientFolder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	folders := make([]*entities.ClientFolder, 0)
	for _, f := range r.s.folders {
		if f.ClientID == clientID {
			folders = append(folders, f)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

// ---- documents

type fakeDocumentRepo struct{ s *memoryStore }

func (r fakeDocumentRepo) Create(_ context.Context, document *entities.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.documentCreateErr != nil {
		return r.s.documentCreateErr
	}
	document.ID = r.s.nextID("doc")
	document.CreatedAt = r.s.tick()
	copied := *document
	r.s.documents[document.ID] = &copied
	return nil
}

func (r fakeDocumentRepo) FindByID(_ context.Context, id string) (*entities.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.documents[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (r fakeDocumentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.documents[id]; !ok {
		return errNotFound
	}
	delete(r.s.documents, id)
	return nil
}

func (r fakeDocumentRepo) DeleteByClient(_ context.Context, clientID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, d := range r.s.documents {
		if d.ClientID == clientID {
			delete(r.s.documents, id)
			n++
		}
	}
	return n, nil
}

func (r fakeDocumentRepo) ListByClient(_ context.Context, clientID string) ([]*entities.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	documents := make([]*entities.Document, 0)
	for _, d := range r.s.documents {
		if d.ClientID == clientID {
			documents = append(documents, d)
		}
	}
	sort.Slice(documents, func(i, j int) bool {
		a, b := documents[i], documents[j]
		if (a.FolderPath == nil) != (b.FolderPath == nil) {
			return b.FolderPath == nil
		}
		if a.Folder() != b.Folder() {
			return a.Folder() < b.Folder()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return documents, nil
}

// ---- unit of work

type fakeUnitOfWork struct{ transactions int }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	u.transactions++
	return fn(ctx)
}

// ---- object storage

type fakeStorage struct {
	objects    map[string][]byte
	types      map[string]string
	putErr     error
	statErr    error
	deleteErr  error
	signErr    error
	lastSigned ports.SignOptions

	store *memoryStore
	// rowsAtLastPut é quantos documentos existiam no momento do último Put
	rowsAtLastPut  int
	deleteAttempts int
}

func newFakeStorage(store *memoryStore) *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte), types: make(map[string]string), store: store}
}

func (f *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.store.mu.Lock()
	f.rowsAtLastPut = len(f.store.documents)
	f.store.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleteAttempts++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) SignedURL(_ context.Context, key string, opts ports.SignOptions) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.lastSigned = opts
	return "https://storage.test/" + key + "?disposition=" + string(opts.Disposition), nil
}

func (f *fakeStorage) SignedUploadURL(_ context.Context, key, contentType string, _ time.Duration) (*ports.SignedUpload, error) {
	if f.signErr != nil {
		return nil, f.signErr
	}
	return &ports.SignedUpload{
		URL:     "https://storage.test/" + key + "?upload=1",
		Method:  "PUT",
		Headers: map[string]string{"Content-Type": contentType},
	}, nil
}

func (f *fakeStorage) Stat(_ context.Context, key string) (*ports.ObjectInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, ports.ErrObjectNotFound
	}
	return &ports.ObjectInfo{Size: int64(len(data)), ContentType: f.types[key]}, nil
}

// browserPut simula o PUT do navegador na URL assinada
func (f *fakeStorage) browserPut(key, contentType string, data []byte) {
	f.objects[key] = data
	f.types[key] = contentType
}

// ---- security

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Compare(hash, password string) bool  { return hash == "hashed:"+password }

type fakeSessions struct{}

func (fakeSessions) Issue(identity ports.SessionIdentity) (string, time.Time, error) {
	return "token:" + identity.UserID + ":" + identity.Role, time.Now().Add(time.Hour), nil
}

func (fakeSessions) Verify(token string) (*ports.SessionIdentity, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, errors.New("invalid token")
	}
	return &ports.SessionIdentity{UserID: parts[1], Role: parts[2]}, nil
}

// ---- notifications

type refreshEvent struct{ clientID, kind string }

type fakeRevalidator struct{ events []refreshEvent }

func (f *fakeRevalidator) Revalidate(_ context.Context, clientID, kind string) {
	f.events = append(f.events, refreshEvent{clientID, kind})
}

type fakeMetrics struct {
	stored          map[string]int
	deleted         int
	storageFailures map[string]int
	denied          map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		stored:          make(map[string]int),
		storageFailures: make(map[string]int),
		denied:          make(map[string]int),
	}
}

func (m *fakeMetrics) DocumentStored(variant string)   { m.stored[variant]++ }
func (m *fakeMetrics) DocumentDeleted()                { m.deleted++ }
func (m *fakeMetrics) StorageFailure(operation string) { m.storageFailures[operation]++ }
func (m *fakeMetrics) AccessDenied(reason string)      { m.denied[reason]++ }
