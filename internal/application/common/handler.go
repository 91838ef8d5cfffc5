package common

import (
	"context"
)

// Request represents a command or query
type Request interface{}

// Response represents the result of handling a request
type Response interface{}

// RequestHandler handles a specific request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}
