package model

import "time"

type Chapter struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	CourseID  uint         `json:"course_id" gorm:"not null;uniqueIndex:idx_chapters_course_period_number"`
	Course    Course       `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	PeriodID  uint         `json:"period_id" gorm:"not null;uniqueIndex:idx_chapters_course_period_number"`
	Period    Period       `json:"period,omitempty" gorm:"foreignKey:PeriodID"`
	Number    int          `json:"number" gorm:"not null;uniqueIndex:idx_chapters_course_period_number"`
	Exercises []Assignment `json:"exercises,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
