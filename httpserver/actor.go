package httpserver

import (
	"castingagency/actor"
	"castingagency/auth"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterActorRoutes() {
	s.Router.GET("/actors", s.handleListActors, s.requirePermission(auth.GetActors))
	s.Router.GET("/actors/:id", s.handleGetActor, s.requirePermission(auth.GetActors))
	s.Router.POST("/actors", s.handleAddActor, s.requirePermission(auth.PostActors))
	s.Router.PATCH("/actors/:id", s.handleUpdateActor, s.requirePermission(auth.PatchActors))
	s.Router.DELETE("/actors/:id", s.handleDeleteActor, s.requirePermission(auth.DeleteActors))
}

// handleListActors godoc
// @Summary List actors
// @Tags actors
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /actors [get]
func (s *Server) handleListActors(c echo.Context) error {
	actors, err := s.ActorService.ListActors(c.Request().Context())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"actors": toActorShorts(actors)})
}

// handleGetActor godoc
// @Summary Get an actor with the titles of their movies
// @Tags actors
// @Security BearerAuth
// @Param id path int true "Actor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Router /actors/{id} [get]
func (s *Server) handleGetActor(c echo.Context) error {
	id, err := actorID(c)
	if err != nil {
		return err
	}

	a, err := s.ActorService.GetActor(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"actor": toActorFull(a)})
}

// handleAddActor godoc
// @Summary Add an actor
// @Tags actors
// @Security BearerAuth
// @Accept json
// @Param body body AddActorRequest true "Actor"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} APIError
// @Router /actors [post]
func (s *Server) handleAddActor(c echo.Context) error {
	var req AddActorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := s.ActorService.AddActor(c.Request().Context(), req.ToActor())
	if err != nil {
		return err
	}

	s.Logger.Infow("actor added", "actor_id", a.ID, "sub", subject(c))
	return writeSuccess(c, http.StatusCreated, echo.Map{
		"message": "Actor added successfully",
		"actor":   toActorFull(a),
	})
}

// handleUpdateActor godoc
// @Summary Update some fields of an actor
// @Tags actors
// @Security BearerAuth
// @Accept json
// @Param id path int true "Actor ID"
// @Param body body UpdateActorRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Failure 422 {object} APIError
// @Router /actors/{id} [patch]
func (s *Server) handleUpdateActor(c echo.Context) error {
	id, err := actorID(c)
	if err != nil {
		return err
	}

	var req UpdateActorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	a, err := s.ActorService.UpdateActor(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return err
	}

	s.Logger.Infow("actor updated", "actor_id", a.ID, "sub", subject(c))
	return writeSuccess(c, http.StatusOK, echo.Map{
		"message": "Actor updated successfully",
		"actor":   toActorFull(a),
	})
}

// handleDeleteActor godoc
// @Summary Delete an actor
// @Tags actors
// @Security BearerAuth
// @Param id path int true "Actor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Router /actors/{id} [delete]
func (s *Server) handleDeleteActor(c echo.Context) error {
	id, err := actorID(c)
	if err != nil {
		return err
	}

	if err := s.ActorService.DeleteActor(c.Request().Context(), id); err != nil {
		return err
	}

	s.Logger.Infow("actor deleted", "actor_id", id, "sub", subject(c))
	return writeSuccess(c, http.StatusOK, echo.Map{"deleted_actor_id": id})
}

// actorID reads the :id path parameter. Anything that is not a positive
// integer cannot name an actor.
func actorID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, actor.ErrActorNotFound
	}
	return id, nil
}
