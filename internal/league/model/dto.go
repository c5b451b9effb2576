// Package model provides domain models and DTOs for league module.
package model

// CreateLeagueRequest represents the request to create a league.
type CreateLeagueRequest struct {
	Title       string `json:"league_title"       binding:"required"`
	Description string `json:"league_description" binding:"required"`
}

// UpdateLeagueRequest represents a full or partial league update.
// Nil fields are left untouched.
type UpdateLeagueRequest struct {
	Title       *string `json:"league_title"`
	Description *string `json:"league_description"`
	Members     *string `json:"members"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateLeagueRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Members == nil
}

// Fields returns the submitted fields keyed by column name.
func (r UpdateLeagueRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if r.Title != nil {
		fields["league_title"] = *r.Title
	}
	if r.Description != nil {
		fields["league_description"] = *r.Description
	}
	if r.Members != nil {
		fields["members"] = *r.Members
	}
	return fields
}

// InviteRequest represents the request to invite someone to a league.
type InviteRequest struct {
	Email string `json:"email" binding:"required"`
}

// MessageResponse is the body of acknowledgements and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	// MessageLeagueDeleted acknowledges a delete.
	MessageLeagueDeleted = "League deleted"
	// MessageInvitationSent acknowledges an invite.
	MessageInvitationSent = "Invitation sent successfully"
	// MessageLeagueNotFound reports an unknown league id.
	MessageLeagueNotFound = "League not found"
	// MessageServerError is the fixed invite failure text.
	MessageServerError = "Server error"
)
