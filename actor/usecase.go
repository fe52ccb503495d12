package actor

import (
	"castingagency/errs"
	"context"
)

type Service interface {
	ListActors(ctx context.Context) ([]Actor, error)
	GetActor(ctx context.Context, id int64) (Actor, error)
	AddActor(ctx context.Context, a Actor) (Actor, error)
	UpdateActor(ctx context.Context, id int64, p Patch) (Actor, error)
	DeleteActor(ctx context.Context, id int64) error
}

type Repository interface {
	AllActors(ctx context.Context) ([]Actor, error)
	// GetActor returns the actor with Movies filled, or ErrActorNotFound.
	GetActor(ctx context.Context, id int64) (Actor, error)
	CreateActor(ctx context.Context, a Actor) (Actor, error)
	UpdateActor(ctx context.Context, a Actor) error
	// DeleteActor removes the actor and its cast links, or returns ErrActorNotFound.
	DeleteActor(ctx context.Context, id int64) error
}

// Transactor runs fn as a single unit of work. Repository calls made with the
// ctx handed to fn join the transaction.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Usecase struct {
	r  Repository
	tx Transactor
}

func NewUsecase(r Repository, tx Transactor) *Usecase {
	return &Usecase{r: r, tx: tx}
}

func (uc *Usecase) ListActors(ctx context.Context) ([]Actor, error) {
	return uc.r.AllActors(ctx)
}

func (uc *Usecase) GetActor(ctx context.Context, id int64) (Actor, error) {
	return uc.r.GetActor(ctx, id)
}

func (uc *Usecase) AddActor(ctx context.Context, a Actor) (Actor, error) {
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}

	var created Actor
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.r.CreateActor(ctx, a)
		return err
	})
	if err != nil {
		return Actor{}, errs.Internal("actor: create", err)
	}

	return created, nil
}

// UpdateActor applies p to the actor with the given id. A missing actor is
// reported before any field problem.
func (uc *Usecase) UpdateActor(ctx context.Context, id int64, p Patch) (Actor, error) {
	var updated Actor
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		a, err := uc.r.GetActor(ctx, id)
		if err != nil {
			return err
		}

		if err := p.Validate(); err != nil {
			return err
		}

		p.Apply(&a)
		if err := uc.r.UpdateActor(ctx, a); err != nil {
			return err
		}

		updated = a
		return nil
	})
	if err != nil {
		return Actor{}, errs.Internal("actor: update", err)
	}

	return updated, nil
}

func (uc *Usecase) DeleteActor(ctx context.Context, id int64) error {
	err := uc.tx.InTransaction(ctx, func(ctx context.Context) error {
		return uc.r.DeleteActor(ctx, id)
	})
	return errs.Internal("actor: delete", err)
}
