// Package service provides business logic layer for league module.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/league_manager/internal/league/model"
	"github.com/festy23/league_manager/internal/league/repository"
)

// Service defines the interface for league business logic operations.
type Service interface {
	// List returns every league.
	List(ctx context.Context) ([]model.League, error)

	// Create stores a new league.
	Create(ctx context.Context, req *model.CreateLeagueRequest) (*model.League, error)

	// Get returns the leagues matching id: one record, or none.
	Get(ctx context.Context, id string) ([]model.League, error)

	// Update applies the submitted fields to a league.
	Update(ctx context.Context, id string, req *model.UpdateLeagueRequest) (*model.League, error)

	// Delete removes a league.
	Delete(ctx context.Context, id string) error

	// Invite records email as the league's member.
	Invite(ctx context.Context, id string, req *model.InviteRequest) (*model.League, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new league service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every league.
func (s *service) List(ctx context.Context) ([]model.League, error) {
	return s.repo.List(ctx)
}

// Create stores a new league.
func (s *service) Create(ctx context.Context, req *model.CreateLeagueRequest) (*model.League, error) {
	if req.Title == "" {
		return nil, model.ErrEmptyTitle
	}
	if req.Description == "" {
		return nil, model.ErrEmptyDescription
	}

	league, err := s.repo.Insert(ctx, &model.League{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league created", "league_id", league.ID, "league_title", league.Title)
	return league, nil
}

// Get returns the leagues matching id.
// A malformed or unknown id yields an empty slice, not an error.
func (s *service) Get(ctx context.Context, id string) ([]model.League, error) {
	if validateID(id) != nil {
		return []model.League{}, nil
	}

	league, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrLeagueNotFound) {
			return []model.League{}, nil
		}
		return nil, err
	}

	return []model.League{*league}, nil
}

// Update applies the submitted fields to a league.
// An update with no fields returns the league unchanged.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateLeagueRequest) (*model.League, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if req.Title != nil && *req.Title == "" {
		return nil, model.ErrEmptyTitle
	}
	if req.Description != nil && *req.Description == "" {
		return nil, model.ErrEmptyDescription
	}

	if req.IsEmpty() {
		return s.repo.Get(ctx, id)
	}

	league, err := s.repo.Replace(ctx, id, req.Fields())
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league updated", "league_id", league.ID)
	return league, nil
}

// Delete removes a league.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("league deleted", "league_id", id)
	return nil
}

// Invite records email as the league's member, replacing any previous value.
// No message is delivered.
func (s *service) Invite(ctx context.Context, id string, req *model.InviteRequest) (*model.League, error) {
	if req.Email == "" {
		return nil, model.ErrEmptyEmail
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	league, err := s.repo.SetMembers(ctx, id, req.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league invitation recorded", "league_id", id, "email", req.Email)
	return league, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrInvalidLeagueID
	}
	return nil
}
