package httpserver

import (
	"castingagency/actor"
	"castingagency/movie"

	"github.com/labstack/echo/v4"
)

type APIError struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// writeSuccess writes {"success": true} merged with fields.
func writeSuccess(c echo.Context, status int, fields echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(status, body)
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, APIError{
		Success: false,
		Error:   status,
		Message: message,
	})
}

type ActorShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ActorFull struct {
	ActorID int64    `json:"actor_id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Gender  string   `json:"gender"`
	Movies  []string `json:"movies"`
}

type MovieShort struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

type MovieLong struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Duration    int     `json:"duration"`
	ReleaseYear int     `json:"release_year"`
	IMDBRating  float64 `json:"imdb_rating"`
}

type MovieFull struct {
	MovieLong
	Cast []string `json:"cast"`
}

func toActorShort(a actor.Actor) ActorShort {
	return ActorShort{ID: a.ID, Name: a.Name}
}

func toActorShorts(actors []actor.Actor) []ActorShort {
	out := make([]ActorShort, len(actors))
	for i, a := range actors {
		out[i] = toActorShort(a)
	}
	return out
}

func toActorFull(a actor.Actor) ActorFull {
	return ActorFull{
		ActorID: a.ID,
		Name:    a.Name,
		Age:     a.Age,
		Gender:  a.Gender,
		Movies:  nonNil(a.Movies),
	}
}

func toMovieShorts(movies []movie.Movie) []MovieShort {
	out := make([]MovieShort, len(movies))
	for i, m := range movies {
		out[i] = MovieShort{ID: m.ID, Title: m.Title, ReleaseYear: m.ReleaseYear}
	}
	return out
}

func toMovieLong(m movie.Movie) MovieLong {
	return MovieLong{
		ID:          m.ID,
		Title:       m.Title,
		Duration:    m.Duration,
		ReleaseYear: m.ReleaseYear,
		IMDBRating:  m.IMDBRating,
	}
}

func toMovieFull(m movie.Movie) MovieFull {
	return MovieFull{MovieLong: toMovieLong(m), Cast: nonNil(m.Cast)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
