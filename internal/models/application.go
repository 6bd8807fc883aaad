package models

// Application is one job posting a user applied to. (UserID, Link) is unique.
type Application struct {
	BaseModel
	Title          string            `gorm:"size:30;not null"`
	Link           string            `gorm:"size:512;not null;uniqueIndex:idx_applications_user_link,priority:2"`
	Recruiter      string            `gorm:"size:30;not null"`
	Company        string            `gorm:"size:30;not null"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:'APPLIED'"`
	FollowUpStatus FollowUpStatus    `gorm:"type:varchar(10);not null;default:'TO_DO'"`
	UserID         uint              `gorm:"not null;index;uniqueIndex:idx_applications_user_link,priority:1"`
}
