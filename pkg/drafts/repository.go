package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/draftkit/pkg/logger"
)

var (
	ErrEncode = errors.New("failed to encode draft")
	ErrDecode = errors.New("failed to decode draft")
)

// Repository stores values of type T in a Store through a Codec.
// Save fails with the encoding error, so a value that refuses to serialise
// (an invalid non-draft object) is never written.
type Repository[T any] struct {
	store Store
	codec Codec[T]
	log   *slog.Logger
}

type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	log *slog.Logger
}

func WithRepositoryLogger(l *slog.Logger) RepositoryOption {
	return func(o *repositoryOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func NewRepository[T any](store Store, codec Codec[T], opts ...RepositoryOption) *Repository[T] {
	o := repositoryOptions{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{
		store: store,
		codec: codec,
		log:   o.log.With(logger.Component("drafts")),
	}
}

func (r *Repository[T]) Save(ctx context.Context, id string, v T) error {
	start := time.Now()
	data, err := r.codec.Marshal(v)
	if err != nil {
		r.log.DebugContext(ctx, "draft rejected", logger.DraftID(id), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := r.store.Put(ctx, id, data); err != nil {
		r.log.ErrorContext(ctx, "store draft", logger.DraftID(id), logger.Error(err))
		return err
	}
	r.log.DebugContext(ctx, "draft saved",
		logger.DraftID(id),
		slog.Int("bytes", len(data)),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func (r *Repository[T]) Load(ctx context.Context, id string) (T, error) {
	var zero T
	data, err := r.store.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	v, err := r.codec.Unmarshal(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// Exists reports whether a draft is stored under id.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.store.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.log.DebugContext(ctx, "draft deleted", logger.DraftID(id))
	return nil
}

func (r *Repository[T]) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
