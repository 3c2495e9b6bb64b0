package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Text string `gorm:"type:text;not null" json:"text"`

	Owner string `gorm:"column:user_id;size:64;not null;index" json:"owner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
