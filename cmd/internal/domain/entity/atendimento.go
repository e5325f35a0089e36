package entity

type Atendimento struct {
	ID         uint    `gorm:"primaryKey"`
	Data       int64   `gorm:"not null"` // epoch millis
	ValorTotal float64 `gorm:"not null"`
	PetID      uint    `gorm:"not null"` // References: pets(id)

	// Relations
	Pet      *Pet      `gorm:"foreignKey:PetID;references:ID"`
	Servicos []Servico `gorm:"many2many:atendimento_servicos"`
}
