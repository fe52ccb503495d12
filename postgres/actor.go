package postgres

import (
	"castingagency/actor"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ActorModel represents the database model for actors
type ActorModel struct {
	ID     int64  `gorm:"primaryKey"`
	Name   string `gorm:"size:256;not null"`
	Age    int    `gorm:"not null"`
	Gender string `gorm:"size:256;not null"`
}

// TableName specifies the table name for GORM
func (ActorModel) TableName() string {
	return "actors"
}

// ActorRepository implements actor.Repository and movie.ActorFinder
type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

func (r *ActorRepository) AllActors(ctx context.Context) ([]actor.Actor, error) {
	var models []ActorModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	actors := make([]actor.Actor, len(models))
	for i, m := range models {
		actors[i] = toDomainActor(m)
	}
	return actors, nil
}

func (r *ActorRepository) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	db := conn(ctx, r.db)

	var model ActorModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor.Actor{}, actor.ErrActorNotFound
		}
		return actor.Actor{}, err
	}

	titles := []string{}
	err := db.Table(MovieModel{}.TableName()).
		Joins("JOIN actor_in_movie ON actor_in_movie.movie_id = movies.id").
		Where("actor_in_movie.actor_id = ?", id).
		Order("movies.id").
		Pluck("movies.title", &titles).Error
	if err != nil {
		return actor.Actor{}, err
	}

	a := toDomainActor(model)
	a.Movies = titles
	return a, nil
}

func (r *ActorRepository) CreateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	model := ActorModel{Name: a.Name, Age: a.Age, Gender: a.Gender}
	if err := conn(ctx, r.db).Create(&model).Error; err != nil {
		return actor.Actor{}, err
	}
	return toDomainActor(model), nil
}

func (r *ActorRepository) UpdateActor(ctx context.Context, a actor.Actor) error {
	res := conn(ctx, r.db).Model(&ActorModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"name":   a.Name,
		"age":    a.Age,
		"gender": a.Gender,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return actor.ErrActorNotFound
	}
	return nil
}

func (r *ActorRepository) DeleteActor(ctx context.Context, id int64) error {
	db := conn(ctx, r.db)

	if err := db.Where("actor_id = ?", id).Delete(&CastModel{}).Error; err != nil {
		return err
	}

	res := db.Delete(&ActorModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return actor.ErrActorNotFound
	}
	return nil
}

// FindActorIDsByNames groups the ids of actors whose name is in names by
// that name. A name shared by several actors maps to all of their ids.
func (r *ActorRepository) FindActorIDsByNames(ctx context.Context, names []string) (map[string][]int64, error) {
	found := make(map[string][]int64, len(names))
	if len(names) == 0 {
		return found, nil
	}

	var models []ActorModel
	err := conn(ctx, r.db).Select("id", "name").
		Where("name IN ?", names).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	for _, m := range models {
		found[m.Name] = append(found[m.Name], m.ID)
	}
	return found, nil
}

func toDomainActor(m ActorModel) actor.Actor {
	return actor.Actor{
		ID:     m.ID,
		Name:   m.Name,
		Age:    m.Age,
		Gender: m.Gender,
	}
}
