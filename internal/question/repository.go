package question

import "gorm.io/gorm"

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

type Repository interface {
	Save(q *Question) error
	SaveAll(questions []*Question) error
	ListRecent(limit int) ([]Question, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(q *Question) error {
	return r.db.Create(q).Error
}

// SaveAll insere todas as questões em uma única transação; qualquer falha de
// escrita desfaz o lote inteiro.
func (r *repository) SaveAll(questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// ListRecent retorna as questões mais recentes por id decrescente. O limite é
// saneado com ClampLimit para impedir leituras sem cota.
func (r *repository) ListRecent(limit int) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Order("id DESC").
		Limit(ClampLimit(limit)).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
