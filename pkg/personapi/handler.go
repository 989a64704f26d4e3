package personapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/draftkit/pkg/drafts"
	"github.com/dmitrymomot/draftkit/pkg/logger"
	"github.com/dmitrymomot/draftkit/pkg/person"
)

const maxBodyBytes = 1 << 20

// Handler serves people stored as drafts.
type Handler struct {
	repo  *drafts.Repository[*person.Person]
	log   *slog.Logger
	newID func() string
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithIDGenerator replaces the uuid generator used by create.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

func NewHandler(repo *drafts.Repository[*person.Person], opts ...Option) *Handler {
	h := &Handler{
		repo:  repo,
		log:   logger.Discard(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("personapi"))
	return h
}

// personView is the data payload of single-person responses.
type personView struct {
	ID     string         `json:"id"`
	Person *person.Person `json:"person"`
}

// errorsView is the data payload of the errors endpoint.
type errorsView struct {
	ID         string   `json:"id"`
	Draft      bool     `json:"draft"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	p, err := decodePerson(w, r)
	if err != nil {
		renderError(w, err, nil)
		return
	}
	id := h.newID()
	if !h.save(w, r, id, p) {
		return
	}
	render(w, http.StatusCreated, Response{Code: CodeCreated, Data: personView{ID: id, Person: p}})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.exists(w, r, id) {
		return
	}
	p, err := decodePerson(w, r)
	if err != nil {
		renderError(w, err, nil)
		return
	}
	if !h.save(w, r, id, p) {
		return
	}
	render(w, http.StatusOK, Response{Code: CodeOK, Data: personView{ID: id, Person: p}})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.load(w, r, id)
	if !ok {
		return
	}
	// Marshal reads every field: an invalid non-draft fails here.
	if _, err := p.MarshalJSON(); err != nil {
		renderError(w, err, p.Errors())
		return
	}
	render(w, http.StatusOK, Response{Code: CodeOK, Data: personView{ID: id, Person: p}})
}

func (h *Handler) violations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.load(w, r, id)
	if !ok {
		return
	}
	errs := p.Errors()
	render(w, http.StatusOK, Response{Code: CodeOK, Data: errorsView{
		ID:         id,
		Draft:      p.IsDraft(),
		Valid:      len(errs) == 0,
		Violations: errs,
	}})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.exists(w, r, id) {
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.ErrorContext(r.Context(), "delete person", logger.DraftID(id), logger.Error(err))
		renderError(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id string, p *person.Person) bool {
	err := h.repo.Save(r.Context(), id, p)
	if err == nil {
		return true
	}
	if !errors.Is(err, drafts.ErrEncode) {
		h.log.ErrorContext(r.Context(), "save person", logger.DraftID(id), logger.Error(err))
	}
	renderError(w, err, p.Errors())
	return false
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, id string) (*person.Person, bool) {
	p, err := h.repo.Load(r.Context(), id)
	if err != nil {
		if !errors.Is(err, drafts.ErrNotFound) {
			h.log.ErrorContext(r.Context(), "load person", logger.DraftID(id), logger.Error(err))
		}
		renderError(w, err, nil)
		return nil, false
	}
	return p, true
}

func (h *Handler) exists(w http.ResponseWriter, r *http.Request, id string) bool {
	ok, err := h.repo.Exists(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "lookup person", logger.DraftID(id), logger.Error(err))
		renderError(w, err, nil)
		return false
	}
	if !ok {
		renderError(w, drafts.ErrNotFound, nil)
	}
	return ok
}

// decodePerson never fails on invalid field values; those are reported when
// the person is saved.
func decodePerson(w http.ResponseWriter, r *http.Request) (*person.Person, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	p := new(person.Person)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return p, nil
}
