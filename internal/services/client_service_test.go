package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/services"
)

var _ = Describe("ClientService", func() {
	var (
		f     *fixture
		admin ports.SessionIdentity
		staff ports.SessionIdentity
	)

	BeforeEach(func() {
		f = newFixture()
		admin = f.user("admin@example.com", entities.RoleAdmin)
		staff = f.user("staff@example.com", entities.RoleStaff)
	})

	Describe("CreateClient", func() {
		It("cria o cliente com nome limpo", func() {
			created, err := f.clientService.CreateClient(f.ctx, admin, "  <b>Acme</b> ")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			client, err := f.clients.FindByName(f.ctx, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(client).NotTo(BeNil())
		})

		It("nome repetido é no-op sem erro", func() {
			f.client("Acme")

			created, err := f.clientService.CreateClient(f.ctx, admin, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			all, err := f.clients.ListAll(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("nome vazio é no-op sem erro", func() {
			created, err := f.clientService.CreateClient(f.ctx, admin, "   ")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
		})

		It("STAFF não cria clientes", func() {
			_, err := f.clientService.CreateClient(f.ctx, staff, "Acme")
			Expect(err).To(MatchError(domainerrors.ErrAdminOnly))
		})
	})

	Describe("DeleteClient", func() {
		It("remove documentos, membros e pastas antes do cliente", func() {
			clientID := f.client("Acme")
			other := f.client("Globex")
			f.grant(clientID, staff)
			f.grant(other, staff)
			f.document(clientID, staff, "a.pdf", strPtr("Contratos"))
			f.document(clientID, admin, "b.pdf", nil)
			kept := f.document(other, staff, "c.pdf", nil)
			_, _ = f.folders.CreateIfAbsent(f.ctx, clientID, "Vazia")

			Expect(f.clientService.DeleteClient(f.ctx, admin, clientID)).To(Succeed())

			Expect(f.store.rowsLeftOnClientDelete).To(BeZero())
			Expect(f.uow.transactions).To(Equal(1))
			Expect(f.documentCount(clientID)).To(BeZero())

			ok, _ := f.members.Exists(f.ctx, clientID, staff.UserID)
			Expect(ok).To(BeFalse())
			folders, _ := f.folders.ListByClient(f.ctx, clientID)
			Expect(folders).To(BeEmpty())

			stillThere, _ := f.documents.FindByID(f.ctx, kept.ID)
			Expect(stillThere).NotTo(BeNil())
			ok, _ = f.members.Exists(f.ctx, other, staff.UserID)
			Expect(ok).To(BeTrue())

			Expect(f.storage.objects).To(HaveLen(3), "objetos no storage não são removidos")
			Expect(f.revalidator.events).To(ContainElement(refreshEvent{clientID, services.RefreshClient}))
		})

		It("cliente inexistente retorna ErrClientNotFound", func() {
			err := f.clientService.DeleteClient(f.ctx, admin, "client-404")
			Expect(err).To(MatchError(domainerrors.ErrClientNotFound))
		})

		It("STAFF não remove clientes", func() {
			clientID := f.client("Acme")
			f.grant(clientID, staff)

			err := f.clientService.DeleteClient(f.ctx, staff, clientID)
			Expect(err).To(MatchError(domainerrors.ErrAdminOnly))

			client, _ := f.clients.FindByID(f.ctx, clientID)
			Expect(client).NotTo(BeNil())
		})
	})

	Describe("ListVisibleClients", func() {
		It("ADMIN vê todos, STAFF só os seus, ordenados por nome", func() {
			zeta := f.client("Zeta")
			f.client("Alpha")
			acme := f.client("Acme")
			f.grant(zeta, staff)
			f.grant(acme, staff)
			f.document(acme, staff, "a.pdf", nil)

			all, err := f.clientService.ListVisibleClients(f.ctx, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Name).To(Equal("Acme"))
			Expect(all[0].DocumentCount).To(Equal(int64(1)))

			mine, err := f.clientService.ListVisibleClients(f.ctx, staff)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(2))
			Expect(mine[0].Name).To(Equal("Acme"))
			Expect(mine[1].Name).To(Equal("Zeta"))
		})

		It("listagem administrativa exige ADMIN", func() {
			_, err := f.clientService.ListAllClients(f.ctx, staff)
			Expect(err).To(MatchError(domainerrors.ErrAdminOnly))
		})
	})

	Describe("GetClientDetail", func() {
		var clientID string

		BeforeEach(func() {
			clientID = f.client("Acme")
			f.grant(clientID, staff)
			f.document(clientID, staff, "raiz.pdf", nil)
			f.document(clientID, admin, "contrato.pdf", strPtr("Contratos"))
			f.document(clientID, staff, "nota.pdf", strPtr("Fiscal"))
			_, _ = f.folders.CreateIfAbsent(f.ctx, clientID, "Contratos")
			_, _ = f.folders.CreateIfAbsent(f.ctx, clientID, "Vazia")
		})

		It("pastas são a união das explícitas com as dos documentos", func() {
			detail, err := f.clientService.GetClientDetail(f.ctx, staff, clientID)
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.Folders).To(Equal([]string{"Contratos", "Fiscal", "Vazia"}))
			Expect(detail.EmptyFolders).To(HaveLen(1))
			Expect(detail.EmptyFolders[0].Name).To(Equal("Vazia"))
		})

		It("agrupa por pasta com a raiz por último", func() {
			detail, err := f.clientService.GetClientDetail(f.ctx, staff, clientID)
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.Groups).To(HaveLen(3))
			Expect(detail.Groups[0].Folder).To(Equal("Contratos"))
			Expect(detail.Groups[1].Folder).To(Equal("Fiscal"))
			Expect(detail.Groups[2].Folder).To(Equal(""))
			Expect(detail.Client.DocumentCount).To(Equal(int64(3)))
		})

		It("STAFF não vê membros e só pode excluir o que enviou", func() {
			detail, err := f.clientService.GetClientDetail(f.ctx, staff, clientID)
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.CanManage).To(BeFalse())
			Expect(detail.Members).To(BeNil())
			for _, group := range detail.Groups {
				for _, d := range group.Documents {
					Expect(detail.Deletable[d.ID]).To(Equal(d.UploaderID == staff.UserID))
				}
			}
		})

		It("ADMIN vê membros com dados do usuário", func() {
			detail, err := f.clientService.GetClientDetail(f.ctx, admin, clientID)
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.CanManage).To(BeTrue())
			Expect(detail.Members).To(HaveLen(1))
			Expect(detail.Members[0].User).NotTo(BeNil())
			Expect(detail.Members[0].User.Email.String()).To(Equal("staff@example.com"))
		})

		It("STAFF sem acesso recebe ErrNoClientAccess", func() {
			outsider := f.user("outsider@example.com", entities.RoleStaff)

			_, err := f.clientService.GetClientDetail(f.ctx, outsider, clientID)
			Expect(err).To(MatchError(domainerrors.ErrNoClientAccess))
		})

		It("ADMIN em cliente inexistente recebe ErrClientNotFound", func() {
			_, err := f.clientService.GetClientDetail(f.ctx, admin, "client-404")
			Expect(err).To(MatchError(domainerrors.ErrClientNotFound))
		})
	})
})
