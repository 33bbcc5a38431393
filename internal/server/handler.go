package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookmanagement/internal/response"
	"bookmanagement/internal/types"
)

type AuthorService interface {
	Create(ctx context.Context, fields types.AuthorFields) (*types.Author, error)
	Get(ctx context.Context, id int64) (*types.Author, error)
	List(ctx context.Context) ([]*types.Author, error)
	Update(ctx context.Context, id int64, fields types.AuthorFields) (*types.Author, error)
}

type BookService interface {
	Create(ctx context.Context, fields types.BookFields, authorIds []int64) (*types.BookWithAuthors, error)
	Get(ctx context.Context, id int64) (*types.BookWithAuthors, error)
	List(ctx context.Context) ([]*types.BookWithAuthors, error)
	ListByAuthors(ctx context.Context, authorIds []int64) ([]*types.BookWithAuthors, error)
	Update(ctx context.Context, id int64, fields types.BookFields, authorIds []int64) (*types.BookWithAuthors, error)
}

const idPattern = "/{id:[0-9]+}"

func Handler(as AuthorService, bs BookService, rr *response.Responder) http.Handler {
	r := chi.NewRouter()

	r.Route("/authors", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req authorRequest
			if !decodeAndValidate(w, r, rr, &req) {
				return
			}

			created, err := as.Create(r.Context(), req.fields())
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusCreated, created)
		})

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			rows, err := as.List(r.Context())
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			if rows == nil {
				rows = make([]*types.Author, 0)
			}

			rr.SendJson(w, r.Context(), http.StatusOK, rows)
		})

		r.Get(idPattern, func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathId(w, r, rr)
			if !ok {
				return
			}

			a, err := as.Get(r.Context(), id)
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusOK, a)
		})

		r.Put(idPattern, func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathId(w, r, rr)
			if !ok {
				return
			}

			var req authorRequest
			if !decodeAndValidate(w, r, rr, &req) {
				return
			}

			updated, err := as.Update(r.Context(), id, req.fields())
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusOK, updated)
		})
	})

	r.Route("/books", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req bookRequest
			if !decodeAndValidate(w, r, rr, &req) {
				return
			}

			created, err := bs.Create(r.Context(), req.fields(), req.AuthorIds)
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusCreated, created)
		})

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			authorIds, err := getMultiInt("author", r.URL.Query())
			if err != nil {
				rr.RespondMessage(w, r.Context(), http.StatusBadRequest, err.Error())
				return
			}

			var rows []*types.BookWithAuthors
			if len(authorIds) == 0 {
				rows, err = bs.List(r.Context())
			} else {
				rows, err = bs.ListByAuthors(r.Context(), authorIds)
			}

			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			if rows == nil {
				rows = make([]*types.BookWithAuthors, 0)
			}

			rr.SendJson(w, r.Context(), http.StatusOK, rows)
		})

		r.Get(idPattern, func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathId(w, r, rr)
			if !ok {
				return
			}

			b, err := bs.Get(r.Context(), id)
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusOK, b)
		})

		r.Put(idPattern, func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathId(w, r, rr)
			if !ok {
				return
			}

			var req bookRequest
			if !decodeAndValidate(w, r, rr, &req) {
				return
			}

			updated, err := bs.Update(r.Context(), id, req.fields(), req.AuthorIds)
			if err != nil {
				respondError(w, r.Context(), rr, err)
				return
			}

			rr.SendJson(w, r.Context(), http.StatusOK, updated)
		})
	})

	return r
}

type validatable interface {
	Validate() error
}

// decodeAndValidate responds with 400 and returns false when the body is not
// valid JSON for req or fails its validation rules.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, rr *response.Responder, req validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		rr.RespondMessage(w, r.Context(), http.StatusBadRequest, "malformed request body: "+err.Error())
		return false
	}

	err := req.Validate()
	if err == nil {
		return true
	}

	if errs, ok := fieldErrors(err); ok {
		rr.RespondValidation(w, r.Context(), errs)
	} else {
		rr.RespondAndLogError(w, r.Context(), err)
	}

	return false
}

func pathId(w http.ResponseWriter, r *http.Request, rr *response.Responder) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		rr.RespondMessage(w, r.Context(), http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw))
		return 0, false
	}

	return id, true
}

func getMulti(key string, q url.Values) []string {
	raw, ok := q[key]
	if !ok {
		return nil
	}

	vals := make([]string, 0, len(raw))
	for _, val := range raw {
		val = strings.TrimSpace(val)
		if val != "" {
			vals = append(vals, val)
		}
	}

	return vals
}

func getMultiInt(key string, q url.Values) ([]int64, error) {
	raw := getMulti(key, q)

	vals := make([]int64, 0, len(raw))
	for _, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("query parameter %s must be an integer, got %q", key, val)
		}
		vals = append(vals, n)
	}

	return vals, nil
}
