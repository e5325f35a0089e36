package entity

type Pet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Nome    string `gorm:"not null" json:"nome"`
	Idade   int    `gorm:"not null" json:"idade"`
	Porte   string `gorm:"not null" json:"porte"`
	TutorID uint   `gorm:"not null" json:"tutorId"` // References: tutors(id)

	// Relations
	Tutor *Tutor `gorm:"foreignKey:TutorID;references:ID" json:"tutor,omitempty"`
}
