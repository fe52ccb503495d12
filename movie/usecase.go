package movie

import (
	"castingagency/errs"
	"context"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	// GetMovie returns the movie with Cast filled, or ErrMovieNotFound.
	GetMovie(ctx context.Context, id int64) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, m Movie) error
	// ReplaceCast sets the movie's cast to exactly actorIDs.
	ReplaceCast(ctx context.Context, movieID int64, actorIDs []int64) error
	// DeleteMovie removes the movie and its cast links, or returns ErrMovieNotFound.
	DeleteMovie(ctx context.Context, id int64) error
}

// ActorFinder looks actors up by exact name. The result maps every name that
// matched to the ids of all actors carrying it; unmatched names are absent.
type ActorFinder interface {
	FindActorIDsByNames(ctx context.Context, names []string) (map[string][]int64, error)
}

// Transactor runs fn as a single unit of work. Repository calls made with the
// ctx handed to fn join the transaction.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Usecase struct {
	r      Repository
	actors ActorFinder
	tx     Transactor
}

func NewUsecase(r Repository, actors ActorFinder, tx Transactor) *Usecase {
	return &Usecase{r: r, actors: actors, tx: tx}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}

	var created Movie
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.r.CreateMovie(ctx, m)
		return err
	})
	if err != nil {
		return Movie{}, errs.Internal("movie: create", err)
	}

	return created, nil
}

// UpdateMovie applies p to the movie with the given id and returns its full
// representation. A missing movie is reported before any field problem.
// Either every change lands, cast included, or none does.
func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error) {
	var updated Movie
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		m, err := uc.r.GetMovie(ctx, id)
		if err != nil {
			return err
		}

		if err := p.Validate(); err != nil {
			return err
		}

		var actorIDs []int64
		if p.Cast != nil {
			actorIDs, err = uc.resolveCast(ctx, p.Cast)
			if err != nil {
				return err
			}
		}

		p.Apply(&m)
		if err := uc.r.UpdateMovie(ctx, m); err != nil {
			return err
		}

		if p.Cast != nil {
			if err := uc.r.ReplaceCast(ctx, id, actorIDs); err != nil {
				return err
			}
		}

		updated, err = uc.r.GetMovie(ctx, id)
		return err
	})
	if err != nil {
		return Movie{}, errs.Internal("movie: update", err)
	}

	return updated, nil
}

// resolveCast maps each name to the one actor carrying it, in request order.
func (uc *Usecase) resolveCast(ctx context.Context, names []string) ([]int64, error) {
	found, err := uc.actors.FindActorIDsByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		switch matches := found[name]; len(matches) {
		case 0:
			return nil, ErrUnknownCast
		case 1:
			ids = append(ids, matches[0])
		default:
			return nil, ErrAmbiguousCast
		}
	}
	return ids, nil
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		return uc.r.DeleteMovie(ctx, id)
	})
	return errs.Internal("movie: delete", err)
}
