package objects

import (
	"slices"
)

type Book struct {
	BookID string `json:"id" bson:"id"`
	Title  string `json:"title" bson:"title"`
	Author string `json:"author" bson:"author"`
}

func (b Book) GetID() string {
	return b.BookID
}

// BookPatch holds the fields present in an update payload. A nil field was not sent.
type BookPatch struct {
	BookID *string `json:"id,omitempty"`
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
}

// Apply merges the present fields over book. BookID is never applied.
func (p BookPatch) Apply(book Book) Book {

	if p.Title != nil {
		book.Title = *p.Title
	}

	if p.Author != nil {
		book.Author = *p.Author
	}

	return book
}

// Collection is the persisted shape of the whole book list.
type Collection struct {
	Books []Book `json:"books" bson:"books"`
}

func NewCollection() Collection {
	return Collection{Books: []Book{}}
}

func (c Collection) Clone() Collection {

	books := slices.Clone(c.Books)
	if books == nil {
		books = []Book{}
	}

	return Collection{Books: books}
}
