// Package repository provides data access layer for league module.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/festy23/league_manager/internal/league/model"
)

// Repository defines the interface for league data access operations.
type Repository interface {
	// Insert stores a new league under a freshly generated id.
	Insert(ctx context.Context, league *model.League) (*model.League, error)

	// List returns every league in creation order.
	List(ctx context.Context) ([]model.League, error)

	// Get finds a league by id.
	Get(ctx context.Context, id string) (*model.League, error)

	// Replace overwrites the given columns of the league with id.
	Replace(ctx context.Context, id string, fields map[string]interface{}) (*model.League, error)

	// Delete removes the league with id.
	Delete(ctx context.Context, id string) error

	// SetMembers overwrites the members field of the league with id.
	SetMembers(ctx context.Context, id, members string) (*model.League, error)
}

type repository struct {
	db    *gorm.DB
	clock clockwork.Clock
}

// New creates a new league repository instance.
// A nil clock falls back to the real clock.
func New(db *gorm.DB, clock clockwork.Clock) Repository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &repository{db: db, clock: clock}
}

// Insert stores a new league under a freshly generated id.
func (r *repository) Insert(ctx context.Context, league *model.League) (*model.League, error) {
	now := r.clock.Now().UTC()
	record := &model.League{
		ID:          uuid.New().String(),
		Title:       league.Title,
		Description: league.Description,
		Members:     league.Members,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// List returns every league in creation order.
func (r *repository) List(ctx context.Context) ([]model.League, error) {
	var leagues []model.League

	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&leagues).Error
	if err != nil {
		return nil, err
	}

	if leagues == nil {
		return []model.League{}, nil
	}

	return leagues, nil
}

// Get finds a league by id.
func (r *repository) Get(ctx context.Context, id string) (*model.League, error) {
	var league model.League
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&league).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLeagueNotFound
		}
		return nil, err
	}

	return &league, nil
}

// Replace overwrites the given columns of the league with id.
// Columns outside the mutable set are ignored and the id never changes.
func (r *repository) Replace(ctx context.Context, id string, fields map[string]interface{}) (*model.League, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		if _, ok := mutableColumns[column]; ok {
			updates[column] = value
		}
	}
	updates["updated_at"] = r.clock.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&model.League{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrLeagueNotFound
	}

	league, err := r.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload league %s: %w", id, err)
	}
	return league, nil
}

// Delete removes the league with id.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.League{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrLeagueNotFound
	}
	return nil
}

// SetMembers overwrites the members field of the league with id.
func (r *repository) SetMembers(ctx context.Context, id, members string) (*model.League, error) {
	return r.Replace(ctx, id, map[string]interface{}{"members": members})
}

var mutableColumns = map[string]struct{}{
	"league_title":       {},
	"league_description": {},
	"members":            {},
}
