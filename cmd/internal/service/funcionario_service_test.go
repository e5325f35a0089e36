package service

import (
	"net/http"
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"testing"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type funcionarioRepoStub struct {
	findByIDFn      func(id uint) (*entity.Funcionario, error)
	findByEmailFn   func(email string) (*entity.Funcionario, error)
	existsByEmailFn func(email string) (bool, error)
	findPageFn      func(offset, limit int) ([]*entity.Funcionario, int64, error)
	saveFn          func(funcionario *entity.Funcionario) error
	deleteFn        func(funcionario *entity.Funcionario) error
}

func (s *funcionarioRepoStub) FindByID(id uint) (*entity.Funcionario, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, nil
}

func (s *funcionarioRepoStub) FindByEmail(email string) (*entity.Funcionario, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(email)
	}
	return nil, nil
}

func (s *funcionarioRepoStub) ExistsByEmail(email string) (bool, error) {
	if s.existsByEmailFn != nil {
		return s.existsByEmailFn(email)
	}
	return false, nil
}

func (s *funcionarioRepoStub) FindPage(offset, limit int) ([]*entity.Funcionario, int64, error) {
	if s.findPageFn != nil {
		return s.findPageFn(offset, limit)
	}
	return nil, 0, nil
}

func (s *funcionarioRepoStub) Save(funcionario *entity.Funcionario) error {
	if s.saveFn != nil {
		return s.saveFn(funcionario)
	}
	return nil
}

func (s *funcionarioRepoStub) Delete(funcionario *entity.Funcionario) error {
	if s.deleteFn != nil {
		return s.deleteFn(funcionario)
	}
	return nil
}

type limiterStub struct {
	allow bool
}

func (l *limiterStub) Allow(string) bool {
	return l.allow
}

var serviceSecret = []byte("service-test-secret")

func newFuncionarioService(repo *funcionarioRepoStub) *DefaultFuncionarioService {
	validate := validator.New()
	return NewFuncionarioService(repo, validate, serviceSecret, nil)
}

func hashOf(t *testing.T, senha string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &funcionarioRepoStub{
		findByEmailFn: func(email string) (*entity.Funcionario, error) {
			return &entity.Funcionario{ID: 1, Email: email, Senha: hashOf(t, "right")}, nil
		},
	}
	svc := newFuncionarioService(repo)

	resp, apierr := svc.Login(&LoginRequest{Email: "a@b.com", Senha: "wrong"})
	if resp != nil {
		t.Fatal("expected no token on bad credentials")
	}
	if apierr == nil || apierr.Code() != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", apierr)
	}
	if apierr.Error() != "Email ou senha incorretos" {
		t.Fatalf("unexpected message: %s", apierr.Error())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newFuncionarioService(&funcionarioRepoStub{})

	resp, apierr := svc.Login(&LoginRequest{Email: "nobody@b.com", Senha: "whatever"})
	if resp != nil {
		t.Fatal("expected no token for unknown account")
	}
	if apierr == nil || apierr.Code() != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", apierr)
	}
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	repo := &funcionarioRepoStub{
		findByEmailFn: func(email string) (*entity.Funcionario, error) {
			return &entity.Funcionario{ID: 7, Email: email, Senha: hashOf(t, "s3cret!"), Autoridade: 2}, nil
		},
	}
	svc := newFuncionarioService(repo)

	resp, apierr := svc.Login(&LoginRequest{Email: "admin@b.com", Senha: "s3cret!"})
	if apierr != nil {
		t.Fatalf("login failed: %v", apierr)
	}

	data, err := utils.ParseToken(resp.Token, serviceSecret)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if data.ID != 7 || data.Autoridade != 2 {
		t.Fatalf("unexpected claims: %+v", data)
	}
}

func TestLoginThrottled(t *testing.T) {
	svc := newFuncionarioService(&funcionarioRepoStub{})
	svc.LoginLimiter = &limiterStub{allow: false}

	_, apierr := svc.Login(&LoginRequest{Email: "a@b.com", Senha: "whatever"})
	if apierr == nil || apierr.Code() != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", apierr)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &funcionarioRepoStub{
		existsByEmailFn: func(email string) (bool, error) {
			return true, nil
		},
	}
	svc := newFuncionarioService(repo)

	_, apierr := svc.Register(&RegisterRequest{
		Nome:       "Ana",
		Email:      "ana@b.com",
		Senha:      "super-senha",
		Autoridade: 1,
	})
	if apierr == nil || apierr.Code() != http.StatusConflict {
		t.Fatalf("expected 409, got %v", apierr)
	}
	if apierr.Error() != "Email já cadastrado" {
		t.Fatalf("unexpected message: %s", apierr.Error())
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	var saved *entity.Funcionario
	repo := &funcionarioRepoStub{
		saveFn: func(funcionario *entity.Funcionario) error {
			funcionario.ID = 3
			saved = funcionario
			return nil
		},
	}
	svc := newFuncionarioService(repo)

	resp, apierr := svc.Register(&RegisterRequest{
		Nome:       "Ana",
		Email:      "ana@b.com",
		Senha:      "super-senha",
		Autoridade: 2,
	})
	if apierr != nil {
		t.Fatalf("register failed: %v", apierr)
	}

	if saved == nil || saved.Senha == "super-senha" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.Senha), []byte("super-senha")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if resp.ID != 3 || resp.Autoridade != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUpdateProfileKeepsPasswordWhenBlank(t *testing.T) {
	stored := &entity.Funcionario{ID: 1, Nome: "Ana", Email: "ana@b.com", Senha: hashOf(t, "old")}
	repo := &funcionarioRepoStub{
		findByIDFn: func(id uint) (*entity.Funcionario, error) {
			return stored, nil
		},
	}
	svc := newFuncionarioService(repo)

	_, apierr := svc.UpdateProfile(1, &UpdateProfileRequest{Nome: "Ana Maria", Email: "ana@b.com"})
	if apierr != nil {
		t.Fatalf("update failed: %v", apierr)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.Senha), []byte("old")); err != nil {
		t.Fatal("password should be unchanged when novaSenha is empty")
	}
	if stored.Nome != "Ana Maria" {
		t.Fatalf("unexpected nome: %s", stored.Nome)
	}
}
