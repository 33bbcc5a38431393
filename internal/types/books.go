package types

type AuthorFields struct {
	Name      string `json:"name"`
	BirthDate Date   `json:"birthDate"`
}

// Author is a persisted author; Id is assigned by storage on creation.
type Author struct {
	Id int64 `json:"id"`
	AuthorFields
}

type BookStatus string

const (
	BookStatusUnpublished BookStatus = "unpublished"
	BookStatusPublished   BookStatus = "published"
)

func (s BookStatus) Valid() bool {
	return s == BookStatusUnpublished || s == BookStatusPublished
}

// CanTransitionTo reports whether a book in status s may be moved to next.
// The only forbidden move is published -> unpublished.
func (s BookStatus) CanTransitionTo(next BookStatus) bool {
	return !(s == BookStatusPublished && next == BookStatusUnpublished)
}

type BookFields struct {
	Title  string     `json:"title"`
	Price  int        `json:"price"`
	Status BookStatus `json:"status"`
}

// Book is a persisted book; Id is assigned by storage on creation.
type Book struct {
	Id int64 `json:"id"`
	BookFields
}

type BookWithAuthors struct {
	Book
	Authors []*Author `json:"authors"`
}
