package drafts_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftkit/pkg/drafts"
	"github.com/dmitrymomot/draftkit/pkg/logger"
	"github.com/dmitrymomot/draftkit/pkg/person"
	"github.com/dmitrymomot/draftkit/pkg/validator"
)

func newPersonRepo(store drafts.Store, opts ...drafts.RepositoryOption) *drafts.Repository[*person.Person] {
	return drafts.NewRepository[*person.Person](store, drafts.JSONCodec[person.Person]{}, opts...)
}

func TestRepository_SaveValid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newPersonRepo(drafts.NewMemoryStore(0))

	require.NoError(t, repo.Save(ctx, "p1", person.New("John", "Doe", 30)))

	got, err := repo.Load(ctx, "p1")
	require.NoError(t, err)
	first, err := got.FirstName()
	require.NoError(t, err)
	assert.Equal(t, "John", first)
	assert.False(t, got.IsDraft())
	assert.True(t, got.Valid())
}

func TestRepository_RejectsInvalidNonDraft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := drafts.NewMemoryStore(0)
	repo := newPersonRepo(store)

	err := repo.Save(ctx, "p1", person.New("Jo", "Doe", 30))
	require.Error(t, err)
	assert.ErrorIs(t, err, drafts.ErrEncode)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	require.NotNil(t, validator.ExtractValidationFailure(err))
	assert.Equal(t, person.MsgFirstNameShort, validator.ExtractValidationFailure(err).Message)

	assert.Equal(t, 0, store.Len())
	exists, err := repo.Exists(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_DraftRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newPersonRepo(drafts.NewMemoryStore(0))

	p := person.New("", "", 150)
	p.SetDraft(true)
	require.NoError(t, repo.Save(ctx, "draft", p))

	got, err := repo.Load(ctx, "draft")
	require.NoError(t, err)
	assert.True(t, got.IsDraft())

	age, err := got.Age()
	require.NoError(t, err)
	assert.Equal(t, 150, age)
	assert.Equal(t, []string{
		person.MsgAgeTooHigh,
		person.MsgFirstNameEmpty,
		person.MsgFirstNameShort,
		person.MsgNamesMustDiffer,
	}, got.Errors())
}

func TestRepository_YAMLCodec(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := drafts.NewRepository[*person.Person](drafts.NewMemoryStore(0), drafts.YAMLCodec[person.Person]{})

	require.NoError(t, repo.Save(ctx, "p1", person.New("Jane", "Roe", 41)))

	got, err := repo.Load(ctx, "p1")
	require.NoError(t, err)
	last, err := got.LastName()
	require.NoError(t, err)
	assert.Equal(t, "Roe", last)
}

func TestRepository_LoadErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := drafts.NewMemoryStore(0)
	repo := newPersonRepo(store)

	_, err := repo.Load(ctx, "missing")
	assert.ErrorIs(t, err, drafts.ErrNotFound)

	require.NoError(t, store.Put(ctx, "broken", []byte("{not json")))
	_, err = repo.Load(ctx, "broken")
	assert.ErrorIs(t, err, drafts.ErrDecode)
}

func TestRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newPersonRepo(drafts.NewMemoryStore(0))

	require.NoError(t, repo.Save(ctx, "p1", person.New("John", "Doe", 30)))
	require.NoError(t, repo.Delete(ctx, "p1"))

	exists, err := repo.Exists(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, exists)
}

type failingStore struct {
	drafts.Store
	err error
}

func (s failingStore) Get(context.Context, string) ([]byte, error) { return nil, s.err }

func (s failingStore) Ping(context.Context) error { return s.err }

func TestRepository_StoreFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")
	repo := newPersonRepo(failingStore{Store: drafts.NewMemoryStore(0), err: boom})

	_, err := repo.Exists(ctx, "p1")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Ping(ctx), boom)
}

func TestRepository_Logging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug), logger.WithJSONFormatter())
	repo := newPersonRepo(drafts.NewMemoryStore(0), drafts.WithRepositoryLogger(log))

	require.NoError(t, repo.Save(ctx, "p1", person.New("John", "Doe", 30)))
	assert.Contains(t, buf.String(), `"msg":"draft saved"`)
	assert.Contains(t, buf.String(), `"draft_id":"p1"`)
	assert.Contains(t, buf.String(), `"component":"drafts"`)
}
