package entity

type Funcionario struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nome       string `gorm:"not null" json:"nome"`
	Email      string `gorm:"unique;not null" json:"email"`
	Senha      string `gorm:"not null" json:"-"` // bcrypt hash
	Autoridade int    `gorm:"not null;default:1" json:"autoridade"`
}
