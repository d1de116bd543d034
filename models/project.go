package models

import "github.com/google/uuid"

// Project is a construction project rendered as a timeline group. Its
// stored Status only distinguishes complete from not-complete; the
// active/on-hold split reported to clients is derived from the owned
// tasks' color markers at query time.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	CompanyName string    `json:"companyName" db:"company_name" gorm:"type:text;not null"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null"`
	Start       Date      `json:"start" db:"start" gorm:"not null"`
	End         Date      `json:"end" db:"end" gorm:"not null"`
}

func (p Project) IsComplete() bool {
	return p.Status == ProjectStatusComplete
}
