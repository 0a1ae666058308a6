package dto

import "time"

type CreateGroupRequestDTO struct {
	Name            string `json:"name" validate:"required,min=3,max=100" example:"Umurenge Savings"`
	CycleDays       int    `json:"cycle_days" validate:"required,min=1" example:"30"`
	GroupType       string `json:"group_type" example:"FULL_PLATFORM"`
	DefaultCurrency string `json:"default_currency" example:"RWF"`
}

type UpdateGroupRequestDTO struct {
	Name      *string `json:"name,omitempty" example:"Umurenge Savings"`
	CycleDays *int    `json:"cycle_days,omitempty" example:"30"`
}

type JoinGroupRequestDTO struct {
	JoinCode string `json:"join_code" example:"2377225624"`
}

type GroupResponseDTO struct {
	ID              int       `json:"id" example:"1"`
	Name            string    `json:"name" example:"Umurenge Savings"`
	JoinCode        string    `json:"join_code" example:"2377225624"`
	CycleDays       int       `json:"cycle_days" example:"30"`
	CurrentCycle    int       `json:"current_cycle" example:"3"`
	CycleStartDate  time.Time `json:"cycle_start_date"`
	CycleEndDate    time.Time `json:"cycle_end_date"`
	GroupType       string    `json:"group_type" example:"FULL_PLATFORM"`
	DefaultCurrency string    `json:"default_currency" example:"RWF"`
	Status          string    `json:"status" example:"ACTIVE"`
}

type AddMemberRequestDTO struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100" example:"Alice Uwase"`
	Phone    string `json:"phone" example:"+250780000002"`
}

type MemberResponseDTO struct {
	ID       int       `json:"id" example:"7"`
	FullName string    `json:"full_name" example:"Alice Uwase"`
	Phone    string    `json:"phone,omitempty" example:"+250780000002"`
	IsActive bool      `json:"is_active" example:"true"`
	JoinedAt time.Time `json:"joined_at"`
}
