package main

import (
	"castingagency/actor"
	"castingagency/movie"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type seeder struct {
	actors actor.Service
	movies movie.Service
}

// sample inserts one actor and one movie with that actor cast in it.
func (s seeder) sample(ctx context.Context) error {
	a, err := s.actors.AddActor(ctx, actor.Actor{Name: "John Doe", Age: 30, Gender: "Male"})
	if err != nil {
		return fmt.Errorf("add actor: %w", err)
	}

	m, err := s.movies.AddMovie(ctx, movie.Movie{
		Title:       "Example Movie",
		ReleaseYear: 2023,
		Duration:    120,
		IMDBRating:  7.5,
	})
	if err != nil {
		return fmt.Errorf("add movie: %w", err)
	}

	if _, err := s.movies.UpdateMovie(ctx, m.ID, movie.Patch{Cast: []string{a.Name}}); err != nil {
		return fmt.Errorf("set cast: %w", err)
	}
	return nil
}

type movieColumns struct {
	title, releaseYear, duration, rating, cast int
}

// importMovies reads title, release_year, duration, imdb_rating and an
// optional semicolon separated cast column. Cast members must already exist
// under unique names.
func (s seeder) importMovies(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	cols, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		m, cast, err := parseMovieRecord(record, cols)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}

		created, err := s.movies.AddMovie(ctx, m)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if len(cast) > 0 {
			if _, err := s.movies.UpdateMovie(ctx, created.ID, movie.Patch{Cast: cast}); err != nil {
				return count, fmt.Errorf("line %d: %w", line, err)
			}
		}

		count++
	}

	return count, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (movieColumns, error) {
	header, err := reader.Read()
	if err != nil {
		return movieColumns{}, err
	}

	cols := movieColumns{-1, -1, -1, -1, -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			cols.title = i
		case "release_year":
			cols.releaseYear = i
		case "duration":
			cols.duration = i
		case "imdb_rating":
			cols.rating = i
		case "cast":
			cols.cast = i
		}
	}
	if cols.title == -1 || cols.releaseYear == -1 || cols.duration == -1 || cols.rating == -1 {
		return movieColumns{}, errors.New("missing required columns in csv header")
	}

	return cols, nil
}

func parseMovieRecord(record []string, cols movieColumns) (movie.Movie, []string, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	year, err := strconv.Atoi(field(cols.releaseYear))
	if err != nil {
		return movie.Movie{}, nil, fmt.Errorf("release_year: %w", err)
	}
	duration, err := strconv.Atoi(field(cols.duration))
	if err != nil {
		return movie.Movie{}, nil, fmt.Errorf("duration: %w", err)
	}
	rating, err := strconv.ParseFloat(field(cols.rating), 64)
	if err != nil {
		return movie.Movie{}, nil, fmt.Errorf("imdb_rating: %w", err)
	}

	var cast []string
	for _, name := range strings.Split(field(cols.cast), ";") {
		if name = strings.TrimSpace(name); name != "" {
			cast = append(cast, name)
		}
	}

	return movie.Movie{
		Title:       field(cols.title),
		ReleaseYear: year,
		Duration:    duration,
		IMDBRating:  rating,
	}, cast, nil
}
