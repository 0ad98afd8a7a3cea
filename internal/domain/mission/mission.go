package mission

import (
	"time"

	"github.com/google/uuid"
)

type Mission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	LaunchDate  time.Time `json:"launchDate"`
	Payload     string    `json:"payload,omitempty"`
	Orbit       string    `json:"orbit,omitempty"`
	Customer    string    `json:"customer,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateMissionRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=120"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Status      string    `json:"status" binding:"required,oneof=planned success failed in-progress"`
	LaunchDate  time.Time `json:"launchDate" binding:"required"`
	Payload     string    `json:"payload" binding:"omitempty,max=200"`
	Orbit       string    `json:"orbit" binding:"omitempty,max=200"`
	Customer    string    `json:"customer" binding:"omitempty,max=200"`
}

func NewFromCreateRequest(req CreateMissionRequest) Mission {
	return Mission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		LaunchDate:  req.LaunchDate,
		Payload:     req.Payload,
		Orbit:       req.Orbit,
		Customer:    req.Customer,
		CreatedAt:   time.Now().UTC(),
	}
}
