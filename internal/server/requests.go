package server

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookmanagement/internal/response"
	"bookmanagement/internal/types"
)

const (
	authorNameMaxLen = 100
	// price is a postgres integer column
	priceMax = math.MaxInt32
	// author_order is a smallint
	authorIdsMaxLen = 1000
)

type authorRequest struct {
	Name      string      `json:"name"`
	BirthDate *types.Date `json:"birthDate"`
}

func (r *authorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, authorNameMaxLen).Error("name must be between 1 and 100 characters")),
		validation.Field(&r.BirthDate,
			validation.NotNil.Error("birthDate is required"),
			validation.By(notInFuture)),
	)
}

func (r *authorRequest) fields() types.AuthorFields {
	return types.AuthorFields{Name: r.Name, BirthDate: *r.BirthDate}
}

type bookRequest struct {
	Title     string           `json:"title"`
	Price     *int             `json:"price"`
	Status    types.BookStatus `json:"status"`
	AuthorIds []int64          `json:"authorIds"`
}

func (r *bookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.By(notBlank)),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.Min(0).Error("price must be 0 or greater"),
			validation.Max(priceMax).Error("price must not exceed 2147483647")),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(types.BookStatusUnpublished, types.BookStatusPublished).
				Error("status must be either 'unpublished' or 'published'")),
		validation.Field(&r.AuthorIds,
			validation.Required.Error("at least one author id is required"),
			validation.Length(1, authorIdsMaxLen).Error("at most 1000 author ids are allowed")),
	)
}

func (r *bookRequest) fields() types.BookFields {
	return types.BookFields{Title: r.Title, Price: *r.Price, Status: r.Status}
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("title must not be blank")
	}

	return nil
}

func notInFuture(value any) error {
	d, _ := value.(*types.Date)
	if d == nil {
		return nil
	}

	if d.After(types.DateOf(time.Now())) {
		return errors.New("birthDate must not be in the future")
	}

	return nil
}

// fieldErrors flattens ozzo validation errors into a list sorted by field name.
// ok is false when err is not a validation failure.
func fieldErrors(err error) (errs []response.FieldError, ok bool) {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil, false
	}

	errs = make([]response.FieldError, 0, len(ve))
	for field, fe := range ve {
		errs = append(errs, response.FieldError{Field: field, Message: fe.Error()})
	}

	sort.Slice(errs, func(i, j int) bool {
		return errs[i].Field < errs[j].Field
	})

	return errs, true
}
