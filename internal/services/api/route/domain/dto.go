// Package domain holds the route planning DTOs and service port
package domain

import "context"

// RouteInput is the request body
type RouteInput struct {
	Start string `json:"start" validate:"required,max=300"`
	End   string `json:"end"   validate:"required,max=300"`
}

// RouteResult is the success body
type RouteResult struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	Distance     string `json:"distance"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// RouteError is the failure body
type RouteError struct {
	Error string `json:"error"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Plan(ctx context.Context, in RouteInput) (RouteResult, error)
}
