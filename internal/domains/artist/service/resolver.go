package service

import (
	"context"
	"errors"

	"posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/artist/repository"
	"posterapi/pkg/database"
)

// Resolver maps a (first, last) name pair onto an artist row. The two modes
// carry the two duplicate policies the API exposes: artist creation rejects a
// name collision, poster creation reuses it.
//
// Both modes stage any insert on the caller's Querier; the caller's
// transaction decides when (or whether) it commits. The find-then-create
// sequence is not guarded by a uniqueness constraint, so two concurrent
// requests for the same name can both pass the find step; that race is
// accepted.
type Resolver struct {
	repo repository.Repository
}

func NewResolver(repo repository.Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveStrict creates an artist for the name pair, failing with
// ErrArtistExists when a row already matches. Nothing is written on failure.
func (r *Resolver) ResolveStrict(ctx context.Context, q database.Querier, firstName, lastName string) (*model.Artist, error) {
	existing, err := r.repo.FindByName(ctx, q, firstName, lastName)
	if err == nil && existing != nil {
		return nil, model.ErrArtistExists
	}
	if err != nil && !errors.Is(err, model.ErrArtistNotFound) {
		return nil, err
	}

	return r.repo.Create(ctx, q, &model.Artist{FirstName: firstName, LastName: lastName})
}

// ResolveOrCreate reuses the matching artist when one exists and creates one
// otherwise.
func (r *Resolver) ResolveOrCreate(ctx context.Context, q database.Querier, firstName, lastName string) (*model.Artist, error) {
	existing, err := r.repo.FindByName(ctx, q, firstName, lastName)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, model.ErrArtistNotFound) {
		return nil, err
	}

	return r.repo.Create(ctx, q, &model.Artist{FirstName: firstName, LastName: lastName})
}
