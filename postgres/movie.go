package postgres

import (
	"castingagency/movie"
	"context"
	"errors"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64   `gorm:"primaryKey"`
	Title       string  `gorm:"size:256;not null"`
	ReleaseYear int     `gorm:"column:release_year;not null"`
	Duration    int     `gorm:"not null"`
	IMDBRating  float64 `gorm:"column:imdb_rating;not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// CastModel is one row of the actor/movie association.
type CastModel struct {
	ActorID int64 `gorm:"primaryKey;autoIncrement:false"`
	MovieID int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (CastModel) TableName() string {
	return "actor_in_movie"
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, m := range models {
		movies[i] = toDomainMovie(m)
	}
	return movies, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	db := conn(ctx, r.db)

	var model MovieModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	names := []string{}
	err := db.Table(ActorModel{}.TableName()).
		Joins("JOIN actor_in_movie ON actor_in_movie.actor_id = actors.id").
		Where("actor_in_movie.movie_id = ?", id).
		Order("actors.id").
		Pluck("actors.name", &names).Error
	if err != nil {
		return movie.Movie{}, err
	}

	m := toDomainMovie(model)
	m.Cast = names
	return m, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := MovieModel{
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Duration:    m.Duration,
		IMDBRating:  m.IMDBRating,
	}
	if err := conn(ctx, r.db).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, m movie.Movie) error {
	res := conn(ctx, r.db).Model(&MovieModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"title":        m.Title,
		"release_year": m.ReleaseYear,
		"duration":     m.Duration,
		"imdb_rating":  m.IMDBRating,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) ReplaceCast(ctx context.Context, movieID int64, actorIDs []int64) error {
	db := conn(ctx, r.db)

	if err := db.Where("movie_id = ?", movieID).Delete(&CastModel{}).Error; err != nil {
		return err
	}

	if len(actorIDs) == 0 {
		return nil
	}

	rows := make([]CastModel, len(actorIDs))
	for i, id := range actorIDs {
		rows[i] = CastModel{ActorID: id, MovieID: movieID}
	}
	return db.Create(&rows).Error
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	db := conn(ctx, r.db)

	if err := db.Where("movie_id = ?", id).Delete(&CastModel{}).Error; err != nil {
		return err
	}

	res := db.Delete(&MovieModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func toDomainMovie(m MovieModel) movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Duration:    m.Duration,
		IMDBRating:  m.IMDBRating,
	}
}
