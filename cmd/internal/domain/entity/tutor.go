package entity

type Tutor struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"not null" json:"nome"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	CPF      string `gorm:"column:cpf;unique;not null" json:"cpf"`

	// Relations
	Pets []Pet `gorm:"foreignKey:TutorID" json:"pets,omitempty"`
}
