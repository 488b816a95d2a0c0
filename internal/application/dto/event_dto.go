package dto

import "time"

// CreateViewRequest campos comunes a todos los eventos de analítica.
type CreateViewRequest struct {
	Source    string         `json:"source" validate:"required"`
	URL       string         `json:"url" validate:"required,url"`
	Visitor   string         `json:"visitor" validate:"required"`
	CreatedAt *FlexibleTime  `json:"createdAt" validate:"required"`
	Meta      map[string]any `json:"meta" validate:"required"`
}

// CreateActionRequest evento de acción.
type CreateActionRequest struct {
	CreateViewRequest
	Action string `json:"action" validate:"required"`
}

// CreateGoalRequest evento de objetivo cumplido.
type CreateGoalRequest struct {
	CreateViewRequest
	Goal string `json:"goal" validate:"required"`
}

// EventResponse salida de un evento; action/goal solo según el tipo.
type EventResponse struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	URL       string         `json:"url"`
	Visitor   string         `json:"visitor"`
	CreatedAt time.Time      `json:"createdAt"`
	Meta      map[string]any `json:"meta"`
	Action    string         `json:"action,omitempty"`
	Goal      string         `json:"goal,omitempty"`
}
