package httpserver

import (
	"castingagency/actor"
	"castingagency/movie"
)

type AddActorRequest struct {
	Name   string `json:"name" validate:"required,notblank,max=256"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required,notblank,max=256"`
}

func (r AddActorRequest) ToActor() actor.Actor {
	return actor.Actor{Name: r.Name, Age: r.Age, Gender: r.Gender}
}

// UpdateActorRequest uses pointers so absent keys stay nil. Its fields are
// checked by the usecase once the actor is known to exist.
type UpdateActorRequest struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
}

func (r UpdateActorRequest) ToPatch() actor.Patch {
	return actor.Patch{Name: r.Name, Age: r.Age, Gender: r.Gender}
}

type AddMovieRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=256"`
	ReleaseYear int      `json:"release_year" validate:"required,gt=0"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	IMDBRating  *float64 `json:"imdb_rating" validate:"required,gte=0,lte=10"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{Title: r.Title, ReleaseYear: r.ReleaseYear, Duration: r.Duration}
	if r.IMDBRating != nil {
		m.IMDBRating = *r.IMDBRating
	}
	return m
}

// UpdateMovieRequest uses pointers so absent keys stay nil. A JSON null cast
// counts as absent; an empty array does not. Its fields are checked by the
// usecase once the movie is known to exist.
type UpdateMovieRequest struct {
	Title       *string  `json:"title"`
	ReleaseYear *int     `json:"release_year"`
	Duration    *int     `json:"duration"`
	IMDBRating  *float64 `json:"imdb_rating"`
	Cast        []string `json:"cast"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	return movie.Patch{
		Title:       r.Title,
		ReleaseYear: r.ReleaseYear,
		Duration:    r.Duration,
		IMDBRating:  r.IMDBRating,
		Cast:        r.Cast,
	}
}
