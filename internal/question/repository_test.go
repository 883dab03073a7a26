package question_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/onia-prep/questgen/internal/question"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&question.Question{}); err != nil {
		t.Fatalf("falha ao migrar esquema de teste: %v", err)
	}
	return db
}

func novaLinha(enunciado string) *question.Question {
	alts, _ := json.Marshal([]string{"A) um", "B) dois", "C) três", "D) quatro"})
	return &question.Question{
		Enunciado:    enunciado,
		Alternativas: alts,
		Correta:      "B",
	}
}

func TestRepositorySave(t *testing.T) {
	repo := question.NewRepository(newTestDB(t))

	row := novaLinha("Qual é?")
	if err := repo.Save(row); err != nil {
		t.Fatalf("Save falhou: %v", err)
	}
	if row.ID == 0 {
		t.Error("Save deveria atribuir o identificador")
	}
}

func TestRepositorySaveAll(t *testing.T) {
	t.Run("LoteCompleto", func(t *testing.T) {
		repo := question.NewRepository(newTestDB(t))

		rows := []*question.Question{novaLinha("q1"), novaLinha("q2"), novaLinha("q3")}
		if err := repo.SaveAll(rows); err != nil {
			t.Fatalf("SaveAll falhou: %v", err)
		}
		for i, row := range rows {
			if row.ID == 0 {
				t.Errorf("linha %d ficou sem identificador", i)
			}
		}
	})

	t.Run("LoteVazio", func(t *testing.T) {
		repo := question.NewRepository(newTestDB(t))

		if err := repo.SaveAll(nil); err != nil {
			t.Errorf("SaveAll de lote vazio deveria ser no-op, recebeu %v", err)
		}
	})

	t.Run("FalhaDesfazTudo", func(t *testing.T) {
		db := newTestDB(t)
		repo := question.NewRepository(db)

		// ids iguais forçam violação de chave primária na segunda linha
		a := novaLinha("a")
		a.ID = 7
		b := novaLinha("b")
		b.ID = 7

		if err := repo.SaveAll([]*question.Question{a, b}); err == nil {
			t.Fatal("SaveAll deveria falhar com chave primária duplicada")
		}

		var count int64
		db.Model(&question.Question{}).Count(&count)
		if count != 0 {
			t.Errorf("transação deveria ter sido desfeita, mas há %d linha(s)", count)
		}
	})
}

func TestRepositoryListRecent(t *testing.T) {
	t.Run("OrdemDecrescente", func(t *testing.T) {
		repo := question.NewRepository(newTestDB(t))

		for i := 1; i <= 3; i++ {
			if err := repo.Save(novaLinha(fmt.Sprintf("q%d", i))); err != nil {
				t.Fatalf("Save falhou: %v", err)
			}
		}

		rows, err := repo.ListRecent(2)
		if err != nil {
			t.Fatalf("ListRecent falhou: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("esperadas 2 linhas, recebidas %d", len(rows))
		}
		if rows[0].Enunciado != "q3" || rows[1].Enunciado != "q2" {
			t.Errorf("ordem incorreta: %q, %q", rows[0].Enunciado, rows[1].Enunciado)
		}
	})

	t.Run("LimiteMaximo", func(t *testing.T) {
		repo := question.NewRepository(newTestDB(t))

		for i := 0; i < question.MaxListLimit+5; i++ {
			if err := repo.Save(novaLinha(fmt.Sprintf("q%d", i))); err != nil {
				t.Fatalf("Save falhou: %v", err)
			}
		}

		rows, err := repo.ListRecent(500)
		if err != nil {
			t.Fatalf("ListRecent falhou: %v", err)
		}
		if len(rows) != question.MaxListLimit {
			t.Errorf("limite 500 deveria ser reduzido a %d, recebeu %d linhas", question.MaxListLimit, len(rows))
		}
	})
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		limit, want int
	}{
		{0, question.DefaultListLimit},
		{-3, question.DefaultListLimit},
		{1, 1},
		{200, 200},
		{500, question.MaxListLimit},
	}

	for _, c := range cases {
		if got := question.ClampLimit(c.limit); got != c.want {
			t.Errorf("ClampLimit(%d) = %d, esperado %d", c.limit, got, c.want)
		}
	}
}
