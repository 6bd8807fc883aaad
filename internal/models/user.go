package models

type User struct {
	BaseModel
	Email        string `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Name         string `gorm:"size:30;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	// Relations
	Applications []Application `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
