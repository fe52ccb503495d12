package httpserver

import (
	"castingagency/auth"
	"castingagency/movie"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies, s.requirePermission(auth.GetMovies))
	s.Router.GET("/movies/:id", s.handleGetMovie, s.requirePermission(auth.GetMovies))
	s.Router.POST("/movies", s.handleAddMovie, s.requirePermission(auth.PostMovies))
	s.Router.PATCH("/movies/:id", s.handleUpdateMovie, s.requirePermission(auth.PatchMovies))
	s.Router.DELETE("/movies/:id", s.handleDeleteMovie, s.requirePermission(auth.DeleteMovies))
}

// handleListMovies godoc
// @Summary List movies ordered by id
// @Tags movies
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"movies": toMovieShorts(movies)})
}

// handleGetMovie godoc
// @Summary Get a movie with its cast
// @Tags movies
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"movie_info": toMovieFull(m)})
}

// handleAddMovie godoc
// @Summary Add a movie
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Param body body AddMovieRequest true "Movie"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} APIError
// @Failure 500 {object} APIError
// @Router /movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	s.Logger.Infow("movie added", "movie_id", m.ID, "sub", subject(c))
	return writeSuccess(c, http.StatusCreated, echo.Map{
		"message": "Movie added successfully",
		"movie":   toMovieLong(m),
	})
}

// handleUpdateMovie godoc
// @Summary Update some fields of a movie, optionally replacing its cast
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Param id path int true "Movie ID"
// @Param body body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Failure 422 {object} APIError
// @Router /movies/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return err
	}

	s.Logger.Infow("movie updated", "movie_id", m.ID, "sub", subject(c))
	return writeSuccess(c, http.StatusOK, echo.Map{"movie_info": toMovieFull(m)})
}

// handleDeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} APIError
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	s.Logger.Infow("movie deleted", "movie_id", id, "sub", subject(c))
	return writeSuccess(c, http.StatusOK, echo.Map{"deleted_movie_id": id})
}

func movieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, movie.ErrMovieNotFound
	}
	return id, nil
}
