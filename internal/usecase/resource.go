package usecase

import (
	"context"

	"hospital-backend/pkg/response"
)

// PageQuery is the filter every resource listing accepts.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

type PagedResult[T any] struct {
	Items []T            `json:"items"`
	Meta  *response.Meta `json:"meta"`
}

// ResourceReader is the read side shared by the per-entity CRUD handlers
// (patients, doctors, staff, billing, and the rest). GetByID returns the
// resource's own not-found error.
type ResourceReader[T any] interface {
	GetAll(ctx context.Context, query PageQuery) (*PagedResult[T], error)
	GetByID(ctx context.Context, id int64) (*T, error)
}

// ResourceWriter is the write side. Implementations record one audit entry
// per successful write and nothing on failure.
type ResourceWriter[C any, U any] interface {
	Create(ctx context.Context, req *C) (int64, error)
	Update(ctx context.Context, id int64, req *U) error
	Delete(ctx context.Context, id int64) error
}
