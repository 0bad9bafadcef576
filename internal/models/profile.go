package models

// Profile is the single trader profile of the journal.
type Profile struct {
	Name       string  `json:"name" gorm:"column:name;not null"`
	Email      *string `json:"email" gorm:"column:email"`
	Experience string  `json:"experience" gorm:"column:experience;not null"`
	Currency   string  `json:"currency" gorm:"column:currency;not null"`
	Timezone   string  `json:"timezone" gorm:"column:timezone;not null"`
}
