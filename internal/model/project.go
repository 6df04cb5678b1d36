package model

import "time"

type Project struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	CourseID   uint         `json:"course_id" gorm:"not null;uniqueIndex:idx_projects_course_period_code"`
	Course     Course       `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	PeriodID   uint         `json:"period_id" gorm:"not null;uniqueIndex:idx_projects_course_period_code"`
	Period     Period       `json:"period,omitempty" gorm:"foreignKey:PeriodID"`
	Code       string       `json:"code" gorm:"not null;uniqueIndex:idx_projects_course_period_code"`
	Components []Assignment `json:"components,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
