package repository

import (
	"petshop/cmd/internal/domain/entity"
	"reflect"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&entity.Funcionario{},
		&entity.Tutor{},
		&entity.Pet{},
		&entity.Servico{},
		&entity.Atendimento{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTutorWithPets(t *testing.T, db *gorm.DB, nome, cpf string, petNomes ...string) *entity.Tutor {
	t.Helper()

	tutorRepo := NewTutorRepository(db)
	tutor := &entity.Tutor{Nome: nome, CPF: cpf}
	if err := tutorRepo.Save(tutor); err != nil {
		t.Fatalf("save tutor: %v", err)
	}

	petRepo := NewPetRepository(db)
	for _, petNome := range petNomes {
		pet := &entity.Pet{Nome: petNome, Idade: 2, Porte: "medio", TutorID: tutor.ID}
		if err := petRepo.Save(pet); err != nil {
			t.Fatalf("save pet: %v", err)
		}
	}
	return tutor
}

func TestTutorDeleteCascadesToPets(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex", "Bidu")

	tutorRepo := NewTutorRepository(db)
	if err := tutorRepo.DeleteWithPets(tutor); err != nil {
		t.Fatalf("delete tutor: %v", err)
	}

	petRepo := NewPetRepository(db)
	count, err := petRepo.CountByTutorID(tutor.ID)
	if err != nil {
		t.Fatalf("count pets: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero pets after cascade delete, got %d", count)
	}

	gone, err := tutorRepo.FindByID(tutor.ID)
	if err != nil {
		t.Fatalf("find tutor: %v", err)
	}
	if gone != nil {
		t.Fatal("tutor should be gone")
	}
}

func TestFuncionarioDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewFuncionarioRepository(db)

	first := &entity.Funcionario{Nome: "Ana", Email: "ana@b.com", Senha: "x", Autoridade: 1}
	if err := repo.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := &entity.Funcionario{Nome: "Outra Ana", Email: "ana@b.com", Senha: "y", Autoridade: 1}
	if err := repo.Save(second); err == nil {
		t.Fatal("expected unique violation for duplicate email")
	}
}

func TestAtendimentoSaveRejectsMissingPet(t *testing.T) {
	db := setupDB(t)
	repo := NewAtendimentoRepository(db)

	atendimento := &entity.Atendimento{Data: 1000, ValorTotal: 80, PetID: 999}
	if err := repo.Save(atendimento, nil); err == nil {
		t.Fatal("expected foreign key failure for missing pet")
	}

	_, total, err := repo.FindPage(0, 5)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if total != 0 {
		t.Fatalf("no atendimento row should exist, got %d", total)
	}
}

func TestAtendimentoSaveRejectsMissingServico(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex")

	petRepo := NewPetRepository(db)
	pets, err := petRepo.FindByTutorCPF(tutor.CPF)
	if err != nil || len(pets) != 1 {
		t.Fatalf("seed pet lookup failed: %v", err)
	}

	repo := NewAtendimentoRepository(db)
	atendimento := &entity.Atendimento{Data: 1000, ValorTotal: 80, PetID: pets[0].ID}
	if err := repo.Save(atendimento, []uint{42}); err == nil {
		t.Fatal("expected foreign key failure for missing servico")
	}

	// The transaction rolls the atendimento row back with the join row.
	_, total, err := repo.FindPage(0, 5)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if total != 0 {
		t.Fatalf("no atendimento row should exist, got %d", total)
	}
}

func TestAtendimentoSaveRejectsRepeatedServico(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex")

	petRepo := NewPetRepository(db)
	pets, err := petRepo.FindByTutorCPF(tutor.CPF)
	if err != nil || len(pets) != 1 {
		t.Fatalf("seed pet lookup failed: %v", err)
	}

	servicoRepo := NewServicoRepository(db)
	banho := &entity.Servico{Nome: "Banho", Valor: 50, TempoGasto: 30}
	if err := servicoRepo.Save(banho); err != nil {
		t.Fatalf("save servico: %v", err)
	}

	repo := NewAtendimentoRepository(db)
	atendimento := &entity.Atendimento{Data: 1000, ValorTotal: 100, PetID: pets[0].ID}
	if err := repo.Save(atendimento, []uint{banho.ID, banho.ID}); err == nil {
		t.Fatal("expected key violation for repeated servico id")
	}

	// The join table's composite key rejects the second row and the
	// transaction rolls the atendimento back with it.
	_, total, err := repo.FindPage(0, 5)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if total != 0 {
		t.Fatalf("no atendimento row should exist, got %d", total)
	}
}

func TestAtendimentoSaveAndReload(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex")

	petRepo := NewPetRepository(db)
	pets, err := petRepo.FindByTutorCPF(tutor.CPF)
	if err != nil || len(pets) != 1 {
		t.Fatalf("seed pet lookup failed: %v", err)
	}

	servicoRepo := NewServicoRepository(db)
	banho := &entity.Servico{Nome: "Banho", Valor: 50, TempoGasto: 30}
	tosa := &entity.Servico{Nome: "Tosa", Valor: 30, TempoGasto: 45}
	if err := servicoRepo.Save(banho); err != nil {
		t.Fatalf("save servico: %v", err)
	}
	if err := servicoRepo.Save(tosa); err != nil {
		t.Fatalf("save servico: %v", err)
	}

	repo := NewAtendimentoRepository(db)
	atendimento := &entity.Atendimento{Data: 1740840600000, ValorTotal: 80, PetID: pets[0].ID}
	if err := repo.Save(atendimento, []uint{banho.ID, tosa.ID}); err != nil {
		t.Fatalf("save atendimento: %v", err)
	}

	loaded, err := repo.FindByID(atendimento.ID)
	if err != nil {
		t.Fatalf("find atendimento: %v", err)
	}
	if loaded == nil {
		t.Fatal("atendimento not found")
	}
	if loaded.Pet == nil || loaded.Pet.Nome != "Rex" {
		t.Fatalf("pet not preloaded: %+v", loaded.Pet)
	}
	if loaded.Pet.Tutor == nil || loaded.Pet.Tutor.Nome != "Maria" {
		t.Fatalf("tutor not preloaded: %+v", loaded.Pet.Tutor)
	}
	if len(loaded.Servicos) != 2 {
		t.Fatalf("expected 2 servicos, got %d", len(loaded.Servicos))
	}

	// Reading again without intervening writes returns identical data.
	again, err := repo.FindByID(atendimento.ID)
	if err != nil {
		t.Fatalf("find atendimento again: %v", err)
	}
	if !reflect.DeepEqual(loaded, again) {
		t.Fatal("repeated reads should return identical data")
	}
}

func TestAtendimentoUpdateReplacesServicoSet(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex", "Bidu")

	petRepo := NewPetRepository(db)
	pets, err := petRepo.FindByTutorCPF(tutor.CPF)
	if err != nil || len(pets) != 2 {
		t.Fatalf("seed pet lookup failed: %v", err)
	}

	servicoRepo := NewServicoRepository(db)
	banho := &entity.Servico{Nome: "Banho", Valor: 50, TempoGasto: 30}
	tosa := &entity.Servico{Nome: "Tosa", Valor: 30, TempoGasto: 45}
	if err := servicoRepo.Save(banho); err != nil {
		t.Fatalf("save servico: %v", err)
	}
	if err := servicoRepo.Save(tosa); err != nil {
		t.Fatalf("save servico: %v", err)
	}

	repo := NewAtendimentoRepository(db)
	atendimento := &entity.Atendimento{Data: 1000, ValorTotal: 80, PetID: pets[0].ID}
	if err := repo.Save(atendimento, []uint{banho.ID, tosa.ID}); err != nil {
		t.Fatalf("save atendimento: %v", err)
	}

	updated := &entity.Atendimento{ID: atendimento.ID, Data: 2000, ValorTotal: 30, PetID: pets[1].ID}
	if err := repo.Update(updated, []uint{tosa.ID}); err != nil {
		t.Fatalf("update atendimento: %v", err)
	}

	loaded, err := repo.FindByID(atendimento.ID)
	if err != nil || loaded == nil {
		t.Fatalf("find atendimento: %v", err)
	}
	if loaded.PetID != pets[1].ID {
		t.Fatalf("pet association not replaced: %d", loaded.PetID)
	}
	if len(loaded.Servicos) != 1 || loaded.Servicos[0].ID != tosa.ID {
		t.Fatalf("servico set not replaced: %+v", loaded.Servicos)
	}
	if loaded.Data != 2000 || loaded.ValorTotal != 30 {
		t.Fatalf("fields not updated: %+v", loaded)
	}
}

func TestAtendimentoFindByTutorNomeIsCaseSensitive(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex")

	petRepo := NewPetRepository(db)
	pets, _ := petRepo.FindByTutorCPF(tutor.CPF)

	repo := NewAtendimentoRepository(db)
	atendimento := &entity.Atendimento{Data: 1000, ValorTotal: 50, PetID: pets[0].ID}
	if err := repo.Save(atendimento, nil); err != nil {
		t.Fatalf("save atendimento: %v", err)
	}

	found, err := repo.FindByTutorNome("Mar")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "Mar", len(found))
	}

	none, err := repo.FindByTutorNome("mar")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("substring match must be case-sensitive, got %d results", len(none))
	}
}

func TestAtendimentoFindPageOrdersByDataDesc(t *testing.T) {
	db := setupDB(t)
	tutor := seedTutorWithPets(t, db, "Maria", "111.111.111-11", "Rex")

	petRepo := NewPetRepository(db)
	pets, _ := petRepo.FindByTutorCPF(tutor.CPF)

	repo := NewAtendimentoRepository(db)
	for _, data := range []int64{3000, 1000, 2000} {
		atendimento := &entity.Atendimento{Data: data, ValorTotal: 10, PetID: pets[0].ID}
		if err := repo.Save(atendimento, nil); err != nil {
			t.Fatalf("save atendimento: %v", err)
		}
	}

	page, total, err := repo.FindPage(0, 2)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(page) != 2 || page[0].Data != 3000 || page[1].Data != 2000 {
		t.Fatalf("unexpected ordering: %+v", page)
	}
}

func TestTutorFindPage(t *testing.T) {
	db := setupDB(t)
	repo := NewTutorRepository(db)

	cpfs := []string{"111.111.111-11", "222.222.222-22", "333.333.333-33",
		"444.444.444-44", "555.555.555-55", "666.666.666-66", "777.777.777-77"}
	for i, cpf := range cpfs {
		tutor := &entity.Tutor{Nome: "Tutor", CPF: cpf}
		if err := repo.Save(tutor); err != nil {
			t.Fatalf("save tutor %d: %v", i, err)
		}
	}

	first, total, err := repo.FindPage(0, 5)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if total != 7 || len(first) != 5 {
		t.Fatalf("unexpected first page: total=%d len=%d", total, len(first))
	}

	second, _, err := repo.FindPage(5, 5)
	if err != nil {
		t.Fatalf("find page: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("unexpected second page size: %d", len(second))
	}
}
