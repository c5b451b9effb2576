// Package console implements the league list and form as a view-model,
// independent of how it is displayed.
package console

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/festy23/league_manager/internal/league/model"
)

// LeagueAPI is the subset of the league API the console uses.
type LeagueAPI interface {
	List(ctx context.Context) ([]model.League, error)
	Create(ctx context.Context, req model.CreateLeagueRequest) (*model.League, error)
	Update(ctx context.Context, id string, req model.UpdateLeagueRequest) (*model.League, error)
	Delete(ctx context.Context, id string) error
	Invite(ctx context.Context, id, email string) error
}

// State is the client-side league view-model. Every successful mutation
// is followed by a full refetch of the list.
type State struct {
	// Leagues is the last fetched list.
	Leagues []model.League
	// Mode is the form currently open.
	Mode Mode
	// Active is the league being edited or invited to, nil when creating.
	Active *model.League
	// Form holds the draft values.
	Form Form
	// EmailError is the inline message for the invite email, "" when valid.
	EmailError string

	api      LeagueAPI
	logger   *zap.SugaredLogger
	validate *validator.Validate
}

// NewState creates an empty state backed by api.
func NewState(api LeagueAPI, logger *zap.SugaredLogger) *State {
	return &State{
		Leagues:  []model.League{},
		api:      api,
		logger:   logger,
		validate: newValidator(),
	}
}

// Load refetches the league list.
func (s *State) Load(ctx context.Context) error {
	leagues, err := s.api.List(ctx)
	if err != nil {
		return s.transportError("list leagues", err)
	}
	if leagues == nil {
		leagues = []model.League{}
	}
	s.Leagues = leagues
	return nil
}

// League returns the fetched league with id.
func (s *State) League(id string) (*model.League, bool) {
	for i := range s.Leagues {
		if s.Leagues[i].ID == id {
			league := s.Leagues[i]
			return &league, true
		}
	}
	return nil, false
}

// OpenForm shows the form for mode. Editing and inviting pre-fill the
// draft from league; creating starts from an empty draft.
func (s *State) OpenForm(mode Mode, league *model.League) {
	s.CloseForm()
	s.Mode = mode

	if mode == ModeCreate || league == nil {
		return
	}

	active := *league
	s.Active = &active
	s.Form.Title = league.Title
	s.Form.Description = league.Description
	s.Form.Members = league.Members
}

// CloseForm hides the form and clears the draft.
func (s *State) CloseForm() {
	s.Mode = ModeNone
	s.Active = nil
	s.Form = Form{}
	s.EmailError = ""
}

// SetField updates one draft field of the create or edit form.
func (s *State) SetField(name, value string) error {
	switch name {
	case "title", "league_title":
		s.Form.Title = value
	case "description", "league_description":
		s.Form.Description = value
	case "members":
		s.Form.Members = value
	case "email":
		s.SetInviteEmail(value)
	default:
		return ErrUnknownField
	}
	return nil
}

// SetInviteEmail updates the invite email and its inline error.
func (s *State) SetInviteEmail(value string) {
	s.Form.Email = value
	if ValidEmail(value) {
		s.EmailError = ""
	} else {
		s.EmailError = EmailErrorMessage
	}
}

// Save submits the create or edit form. An active league means update,
// otherwise create.
func (s *State) Save(ctx context.Context) error {
	if s.Mode != ModeCreate && s.Mode != ModeEdit {
		return ErrNoActiveForm
	}
	if err := validateForm(s.validate, s.Mode, s.Form); err != nil {
		return err
	}

	if s.Active != nil {
		title, description, members := s.Form.Title, s.Form.Description, s.Form.Members
		req := model.UpdateLeagueRequest{
			Title:       &title,
			Description: &description,
			Members:     &members,
		}
		if _, err := s.api.Update(ctx, s.Active.ID, req); err != nil {
			return s.transportError("update league", err)
		}
	} else {
		req := model.CreateLeagueRequest{
			Title:       s.Form.Title,
			Description: s.Form.Description,
		}
		if _, err := s.api.Create(ctx, req); err != nil {
			return s.transportError("create league", err)
		}
	}

	return s.finish(ctx)
}

// Remove deletes the league with id.
func (s *State) Remove(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return s.transportError("delete league", err)
	}
	return s.finish(ctx)
}

// Invite sends the draft email as an invite to the league with id.
// The duplicate check runs against the fetched list only.
func (s *State) Invite(ctx context.Context, id string) error {
	if s.Mode != ModeInvite {
		return ErrNoActiveForm
	}
	if err := validateForm(s.validate, ModeInvite, s.Form); err != nil {
		return err
	}

	league, ok := s.League(id)
	if !ok {
		return ErrUnknownLeague
	}
	if league.HasMember(s.Form.Email) {
		s.logger.Warnw("league already has this member", "league_id", id, "email", s.Form.Email)
		return ErrAlreadyInvited
	}

	if err := s.api.Invite(ctx, id, s.Form.Email); err != nil {
		return s.transportError("invite to league", err)
	}
	return s.finish(ctx)
}

// finish closes the form and refetches after a successful mutation.
func (s *State) finish(ctx context.Context) error {
	s.CloseForm()
	return s.Load(ctx)
}

func (s *State) transportError(op string, err error) error {
	var terr *TransportError
	if errors.As(err, &terr) {
		return err
	}
	s.logger.Errorw("league api call failed", "op", op, "error", err)
	return &TransportError{Op: op, Err: err}
}
