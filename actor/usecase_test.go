package actor_test

import (
	"castingagency/actor"
	"castingagency/errs"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) AllActors(ctx context.Context) ([]actor.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]actor.Actor), args.Error(1)
}

func (m *MockActorRepository) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorRepository) CreateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorRepository) UpdateActor(ctx context.Context, a actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) DeleteActor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type inlineTx struct {
	calls int
}

func (tx *inlineTx) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func ptr[T any](v T) *T { return &v }

func TestAddActor(t *testing.T) {
	t.Run("should create a valid actor", func(t *testing.T) {
		r := new(MockActorRepository)
		tx := &inlineTx{}
		uc := actor.NewUsecase(r, tx)
		a := actor.Actor{Name: "John Doe", Age: 30, Gender: "Male"}
		r.On("CreateActor", mock.Anything, a).Return(actor.Actor{ID: 1, Name: "John Doe", Age: 30, Gender: "Male"}, nil).Once()

		created, err := uc.AddActor(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, 1, tx.calls, "expected create to run in a transaction")
		r.AssertExpectations(t)
	})

	t.Run("should reject invalid actors before touching storage", func(t *testing.T) {
		cases := map[string]struct {
			in   actor.Actor
			want error
		}{
			"empty name":     {actor.Actor{Name: " ", Age: 30, Gender: "Male"}, actor.ErrInvalidName},
			"zero age":       {actor.Actor{Name: "John", Age: 0, Gender: "Male"}, actor.ErrInvalidAge},
			"negative age":   {actor.Actor{Name: "John", Age: -3, Gender: "Male"}, actor.ErrInvalidAge},
			"missing gender": {actor.Actor{Name: "John", Age: 30}, actor.ErrInvalidGender},
			"long name":      {actor.Actor{Name: strings.Repeat("é", actor.MaxFieldLength+1), Age: 30, Gender: "Male"}, actor.ErrNameTooLong},
			"long gender":    {actor.Actor{Name: "John", Age: 30, Gender: strings.Repeat("x", actor.MaxFieldLength+1)}, actor.ErrGenderTooLong},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				r := new(MockActorRepository)
				uc := actor.NewUsecase(r, &inlineTx{})

				_, err := uc.AddActor(context.Background(), tc.in)

				assert.Equal(t, tc.want, err)
				assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
				r.AssertNotCalled(t, "CreateActor", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("should report storage failures as internal with the cause", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("CreateActor", mock.Anything, mock.Anything).Return(actor.Actor{}, errors.New("disk full")).Once()

		_, err := uc.AddActor(context.Background(), actor.Actor{Name: "John", Age: 30, Gender: "Male"})

		assert.Equal(t, errs.EINTERNAL, errs.ErrorCode(err))
		assert.Contains(t, errs.ErrorMessage(err), "disk full")
	})
}

func TestUpdateActor(t *testing.T) {
	existing := actor.Actor{ID: 1, Name: "John Doe", Age: 30, Gender: "Male"}

	t.Run("should only change provided fields", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		want := actor.Actor{ID: 1, Name: "John Doe", Age: 31, Gender: "Male"}
		r.On("GetActor", mock.Anything, int64(1)).Return(existing, nil).Once()
		r.On("UpdateActor", mock.Anything, want).Return(nil).Once()

		updated, err := uc.UpdateActor(context.Background(), 1, actor.Patch{Age: ptr(31)})

		require.NoError(t, err)
		assert.Equal(t, want, updated)
		r.AssertExpectations(t)
	})

	t.Run("should reject an empty patch", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("GetActor", mock.Anything, int64(1)).Return(existing, nil).Once()

		_, err := uc.UpdateActor(context.Background(), 1, actor.Patch{})

		assert.Equal(t, actor.ErrEmptyPatch, err)
		r.AssertNotCalled(t, "UpdateActor", mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid age", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("GetActor", mock.Anything, int64(1)).Return(existing, nil).Once()

		_, err := uc.UpdateActor(context.Background(), 1, actor.Patch{Age: ptr(0)})

		assert.Equal(t, actor.ErrInvalidAge, err)
		r.AssertNotCalled(t, "UpdateActor", mock.Anything, mock.Anything)
	})

	t.Run("should reject a name longer than the column", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("GetActor", mock.Anything, int64(1)).Return(existing, nil).Once()

		_, err := uc.UpdateActor(context.Background(), 1, actor.Patch{Name: ptr(strings.Repeat("a", actor.MaxFieldLength+1))})

		assert.Equal(t, actor.ErrNameTooLong, err)
		r.AssertNotCalled(t, "UpdateActor", mock.Anything, mock.Anything)
	})

	t.Run("should report not found before an invalid patch", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("GetActor", mock.Anything, int64(99)).Return(actor.Actor{}, actor.ErrActorNotFound).Once()

		_, err := uc.UpdateActor(context.Background(), 99, actor.Patch{Age: ptr(0)})

		assert.Equal(t, actor.ErrActorNotFound, err)
		assert.Equal(t, 404, errs.HTTPStatus(err))
	})

	t.Run("should return not found for a missing actor", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("GetActor", mock.Anything, int64(99)).Return(actor.Actor{}, actor.ErrActorNotFound).Once()

		_, err := uc.UpdateActor(context.Background(), 99, actor.Patch{Name: ptr("Jane")})

		assert.Equal(t, actor.ErrActorNotFound, err)
		r.AssertNotCalled(t, "UpdateActor", mock.Anything, mock.Anything)
	})
}

func TestDeleteActor(t *testing.T) {
	t.Run("should delete an existing actor", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("DeleteActor", mock.Anything, int64(1)).Return(nil).Once()

		err := uc.DeleteActor(context.Background(), 1)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("should keep not found as is", func(t *testing.T) {
		r := new(MockActorRepository)
		uc := actor.NewUsecase(r, &inlineTx{})
		r.On("DeleteActor", mock.Anything, int64(1)).Return(actor.ErrActorNotFound).Once()

		err := uc.DeleteActor(context.Background(), 1)

		assert.Equal(t, actor.ErrActorNotFound, err)
	})
}

func TestListAndGetActor(t *testing.T) {
	r := new(MockActorRepository)
	uc := actor.NewUsecase(r, &inlineTx{})

	t.Run("should list actors", func(t *testing.T) {
		actors := []actor.Actor{{ID: 1, Name: "John Doe"}, {ID: 2, Name: "Jane Roe"}}
		r.On("AllActors", mock.Anything).Return(actors, nil).Once()

		result, err := uc.ListActors(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, actors, result)
	})

	t.Run("should get one actor with movies", func(t *testing.T) {
		a := actor.Actor{ID: 1, Name: "John Doe", Age: 30, Gender: "Male", Movies: []string{"Example Movie"}}
		r.On("GetActor", mock.Anything, int64(1)).Return(a, nil).Once()

		result, err := uc.GetActor(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, a, result)
	})

	r.AssertExpectations(t)
}
