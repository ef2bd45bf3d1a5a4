package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/services"
)

var _ = Describe("UserService", func() {
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

	Describe("CreateUser", func() {
		It("cria STAFF por padrão com email normalizado", func() {
			created, err := f.userService.CreateUser(f.ctx, admin, services.CreateUserInput{
				Email:    "  Nova@Example.com ",
				Name:     "Nova",
				Password: "segredo123",
				Role:     "qualquer",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			user, _ := f.users.FindByEmail(f.ctx, "nova@example.com")
			Expect(user).NotTo(BeNil())
			Expect(user.Role).To(Equal(entities.RoleStaff))
			Expect(user.PasswordHash).To(Equal("hashed:segredo123"))
			Expect(user.DisplayName()).To(Equal("Nova"))
		})

		It("cria ADMIN quando pedido", func() {
			created, err := f.userService.CreateUser(f.ctx, admin, services.CreateUserInput{
				Email: "boss@example.com", Password: "segredo123", Role: "ADMIN",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			user, _ := f.users.FindByEmail(f.ctx, "boss@example.com")
			Expect(user.IsAdmin()).To(BeTrue())
			Expect(user.Name).To(BeNil())
		})

		It("email inserido por outra requisição depois da consulta é no-op", func() {
			f.store.staleEmailLookup = true

			created, err := f.userService.CreateUser(f.ctx, admin, services.CreateUserInput{
				Email: "staff@example.com", Password: "segredo123",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			f.store.staleEmailLookup = false
			user, _ := f.users.FindByEmail(f.ctx, "staff@example.com")
			Expect(user.ID).To(Equal(staff.UserID))
			Expect(f.store.users).To(HaveLen(2))
		})

		DescribeTable("entradas inválidas são no-op",
			func(input services.CreateUserInput) {
				created, err := f.userService.CreateUser(f.ctx, admin, input)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
			},
			Entry("sem email", services.CreateUserInput{Password: "segredo123"}),
			Entry("sem senha", services.CreateUserInput{Email: "x@example.com"}),
			Entry("email inválido", services.CreateUserInput{Email: "invalido", Password: "segredo123"}),
			Entry("email já cadastrado", services.CreateUserInput{Email: "STAFF@example.com", Password: "segredo123"}),
		)

		It("STAFF não cria usuários", func() {
			_, err := f.userService.CreateUser(f.ctx, staff, services.CreateUserInput{Email: "x@example.com", Password: "segredo123"})
			Expect(err).To(MatchError(domainerrors.ErrAdminOnly))
		})
	})

	Describe("DeleteUser", func() {
		It("remove memberships antes do usuário", func() {
			acme := f.client("Acme")
			globex := f.client("Globex")
			f.grant(acme, staff)
			f.grant(globex, staff)

			Expect(f.userService.DeleteUser(f.ctx, admin, staff.UserID)).To(Succeed())

			user, _ := f.users.FindByID(f.ctx, staff.UserID)
			Expect(user).To(BeNil())
			Expect(f.store.members).To(BeEmpty())
			Expect(f.uow.transactions).To(Equal(1))
		})

		It("usuário inexistente retorna ErrUserNotFound", func() {
			err := f.userService.DeleteUser(f.ctx, admin, "user-404")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("ResetPassword", func() {
		It("senha curta é no-op", func() {
			changed, err := f.userService.ResetPassword(f.ctx, admin, staff.UserID, "1234567")
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			user, _ := f.users.FindByID(f.ctx, staff.UserID)
			Expect(user.PasswordHash).To(Equal("hashed:secret123"))
		})

		It("troca o hash com oito caracteres ou mais", func() {
			changed, err := f.userService.ResetPassword(f.ctx, admin, staff.UserID, "12345678")
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			user, _ := f.users.FindByID(f.ctx, staff.UserID)
			Expect(user.PasswordHash).To(Equal("hashed:12345678"))
		})

		It("usuário inexistente retorna ErrUserNotFound", func() {
			_, err := f.userService.ResetPassword(f.ctx, admin, "user-404", "12345678")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		It("filtra por role", func() {
			role := entities.RoleStaff
			users, err := f.userService.ListUsers(f.ctx, admin, repositories.UserFilters{Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].ID).To(Equal(staff.UserID))
		})
	})

	Describe("SeedAdmin", func() {
		It("cria o admin e depois redefine senha e role", func() {
			user, err := f.userService.SeedAdmin(f.ctx, "root@example.com", "primeira1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsAdmin()).To(BeTrue())

			Expect(f.users.UpdatePasswordHash(f.ctx, user.ID, "outra")).To(Succeed())

			again, err := f.userService.SeedAdmin(f.ctx, "ROOT@example.com", "segunda2")
			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).To(Equal(user.ID))
			Expect(again.PasswordHash).To(Equal("hashed:segunda2"))
		})

		It("promove um STAFF existente", func() {
			user, err := f.userService.SeedAdmin(f.ctx, "staff@example.com", "segredo123")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(staff.UserID))
			Expect(user.Role).To(Equal(entities.RoleAdmin))
		})
	})
})

var _ = Describe("AuthService", func() {
	var f *fixture

	BeforeEach(func() {
		f = newFixture()
		f.user("staff@example.com", entities.RoleStaff)
	})

	It("normaliza o email e emite sessão", func() {
		session, err := f.authService.Login(f.ctx, "  Staff@Example.COM ", "secret123")
		Expect(err).NotTo(HaveOccurred())
		Expect(session.User.Email.String()).To(Equal("staff@example.com"))

		identity, err := f.authService.Authenticate(session.Token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.UserID).To(Equal(session.User.ID))
		Expect(identity.Role).To(Equal(string(entities.RoleStaff)))
	})

	DescribeTable("credenciais inválidas",
		func(email, password string) {
			_, err := f.authService.Login(f.ctx, email, password)
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
		},
		Entry("senha errada", "staff@example.com", "errada"),
		Entry("usuário desconhecido", "ghost@example.com", "secret123"),
		Entry("email vazio", "", "secret123"),
		Entry("senha vazia", "staff@example.com", ""),
	)

	It("token vazio não autentica", func() {
		_, err := f.authService.Authenticate("")
		Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
	})
})
