package model

import "time"

type Course struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Code      string    `json:"code" gorm:"not null;uniqueIndex"` // "PROG1"
	Name      string    `json:"name"`
	Chapters  []Chapter `json:"chapters,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
