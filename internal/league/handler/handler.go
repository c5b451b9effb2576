// Package handler provides HTTP handlers for league endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/league_manager/internal/league/model"
	"github.com/festy23/league_manager/internal/league/service"
)

const welcomePage = "<h1>Welcome to Web Server</h1>"

// Handler handles HTTP requests for league endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new league handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Welcome handles GET / request.
// @Summary Welcome banner
// @Tags Leagues
// @Produce html
// @Success 200 {string} string "HTML banner"
// @Router / [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Welcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
}

// List handles GET /leagues request.
// @Summary List all leagues
// @Tags Leagues
// @Produce json
// @Success 200 {array} model.League
// @Failure 500 {object} model.MessageResponse "Store failure"
// @Router /leagues [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	leagues, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing leagues", "error", err)
		messageResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// Create handles POST /leagues request.
// @Summary Create a league
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body model.CreateLeagueRequest true "Request"
// @Success 200 {object} model.League
// @Failure 400 {object} model.MessageResponse "Malformed body or missing fields"
// @Failure 500 {object} model.MessageResponse "Store failure"
// @Router /leagues [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messageResponse(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	league, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyTitle) || errors.Is(err, model.ErrEmptyDescription) {
			messageResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("error creating league", "error", err)
		messageResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, league)
}

// Get handles GET /leagues/:id request.
// The body is always an array holding zero or one league.
// @Summary Get a league by id
// @Tags Leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} model.League
// @Failure 500 {object} model.MessageResponse "Store failure"
// @Router /leagues/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	leagues, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorw("error getting league", "league_id", id, "error", err)
		messageResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// Update handles PUT /leagues/:id request.
// @Summary Update a league
// @Tags Leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body model.UpdateLeagueRequest true "Fields to change"
// @Success 200 {object} model.League
// @Failure 400 {object} model.MessageResponse "Malformed body or id"
// @Failure 404 {object} model.MessageResponse "League not found"
// @Failure 500 {object} model.MessageResponse "Store failure"
// @Router /leagues/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messageResponse(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	league, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidLeagueID),
			errors.Is(err, model.ErrEmptyTitle),
			errors.Is(err, model.ErrEmptyDescription):
			messageResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, model.ErrLeagueNotFound):
			messageResponse(c, http.StatusNotFound, model.MessageLeagueNotFound)
		default:
			h.logger.Errorw("error updating league", "league_id", id, "error", err)
			messageResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, league)
}

// Delete handles DELETE /leagues/:id request.
// @Summary Delete a league
// @Tags Leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} model.MessageResponse "League deleted"
// @Failure 404 {object} model.MessageResponse "League not found"
// @Failure 500 {object} model.MessageResponse "Store failure"
// @Router /leagues/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrLeagueNotFound) || errors.Is(err, model.ErrInvalidLeagueID) {
			messageResponse(c, http.StatusNotFound, model.MessageLeagueNotFound)
			return
		}
		h.logger.Errorw("error deleting league", "league_id", id, "error", err)
		messageResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, model.MessageLeagueDeleted)
}

// Invite handles POST /leagues/invite/:id request.
// The email is recorded as the league's member; nothing is sent.
// @Summary Invite a friend to a league
// @Tags Leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body model.InviteRequest true "Request"
// @Success 200 {object} model.MessageResponse "Invitation sent successfully"
// @Failure 400 {object} model.MessageResponse "Missing email"
// @Failure 404 {object} model.MessageResponse "League not found"
// @Failure 500 {object} model.MessageResponse "Server error"
// @Router /leagues/invite/{id} [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Invite(c *gin.Context) {
	id := c.Param("id")

	var req model.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messageResponse(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	_, err := h.service.Invite(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyEmail):
			messageResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, model.ErrLeagueNotFound), errors.Is(err, model.ErrInvalidLeagueID):
			messageResponse(c, http.StatusNotFound, model.MessageLeagueNotFound)
		default:
			h.logger.Errorw("error inviting to league", "league_id", id, "error", err)
			messageResponse(c, http.StatusInternalServerError, model.MessageServerError)
		}
		return
	}

	messageResponse(c, http.StatusOK, model.MessageInvitationSent)
}
