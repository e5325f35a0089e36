package entity

type Servico struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Nome       string  `gorm:"unique;not null" json:"nome"`
	Valor      float64 `gorm:"not null" json:"valor"`
	TempoGasto int     `gorm:"not null" json:"tempoGasto"` // minutes
}
