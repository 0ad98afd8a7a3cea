package schedule

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	ID          string    `json:"id"`
	MissionName string    `json:"missionName"`
	Description string    `json:"description,omitempty"`
	LaunchDate  time.Time `json:"launchDate"`
	LaunchTime  string    `json:"launchTime,omitempty"`
	Rocket      string    `json:"rocket,omitempty"`
	LaunchSite  string    `json:"launchSite,omitempty"`
	Customer    string    `json:"customer,omitempty"`
	Payload     string    `json:"payload,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateScheduleRequest struct {
	MissionName string    `json:"missionName" binding:"required,min=2,max=120"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	LaunchDate  time.Time `json:"launchDate" binding:"required"`
	LaunchTime  string    `json:"launchTime" binding:"omitempty,max=40"`
	Rocket      string    `json:"rocket" binding:"omitempty,max=120"`
	LaunchSite  string    `json:"launchSite" binding:"omitempty,max=200"`
	Customer    string    `json:"customer" binding:"omitempty,max=200"`
	Payload     string    `json:"payload" binding:"omitempty,max=200"`
	Status      string    `json:"status" binding:"required,oneof=scheduled completed delayed cancelled"`
}

func NewFromCreateRequest(req CreateScheduleRequest) Schedule {
	return Schedule{
		ID:          uuid.NewString(),
		MissionName: req.MissionName,
		Description: req.Description,
		LaunchDate:  req.LaunchDate,
		LaunchTime:  req.LaunchTime,
		Rocket:      req.Rocket,
		LaunchSite:  req.LaunchSite,
		Customer:    req.Customer,
		Payload:     req.Payload,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}
}
