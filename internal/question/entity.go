package question

import "gorm.io/datatypes"

// Question é a linha persistida na tabela questions. As alternativas são
// gravadas serializadas, já com o prefixo de letra aplicado pelo formatador.
type Question struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Enunciado    string         `gorm:"type:text;not null" json:"enunciado"`
	Alternativas datatypes.JSON `gorm:"not null" json:"alternativas"`
	Correta      string         `gorm:"type:varchar(1);not null" json:"correta"`
	Feedback     *string        `gorm:"type:text" json:"feedback,omitempty"`
}

func (Question) TableName() string { return "questions" }
