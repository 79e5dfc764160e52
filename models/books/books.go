package books

import (
	"context"
	"fmt"
	"sync"

	serverError "github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/identifier"
	"github.com/supakorn-kn/books-api/models"
	"github.com/supakorn-kn/books-api/objects"
	"github.com/supakorn-kn/books-api/storage"
)

const maxIDAttempts = 5

type Option func(*BooksModel)

// WithIDGenerator replaces identifier.New as the source of new book IDs.
func WithIDGenerator(gen identifier.Generator) Option {
	return func(m *BooksModel) {
		m.newID = gen
	}
}

// BooksModel serves the book collection from memory and mirrors every change to its
// store before the change becomes visible.
//
// writeMu is held for the whole read-modify-save sequence of a mutation, so mutations
// never interleave. mu only guards swapping books, so reads are not blocked by a slow
// Save.
type BooksModel struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	books   objects.Collection

	store storage.Store
	newID identifier.Generator
}

func NewBooksModel(ctx context.Context, store storage.Store, opts ...Option) (*BooksModel, error) {

	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	booksModel := &BooksModel{
		store: store,
		newID: identifier.New,
	}

	for _, opt := range opts {
		opt(booksModel)
	}

	if err := booksModel.Reload(ctx); err != nil {
		return nil, err
	}

	return booksModel, nil
}

// Reload replaces the in-memory collection with what the store holds.
func (m *BooksModel) Reload(ctx context.Context) error {

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	c, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.books = c.Clone()
	m.mu.Unlock()

	return nil
}

func (m *BooksModel) snapshot() objects.Collection {

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.books.Clone()
}

// commit saves next and only then makes it the served collection. Callers hold writeMu.
func (m *BooksModel) commit(ctx context.Context, next objects.Collection) error {

	if err := m.store.Save(ctx, next); err != nil {
		return err
	}

	m.mu.Lock()
	m.books = next
	m.mu.Unlock()

	return nil
}

func (m *BooksModel) List() []objects.Book {

	return m.snapshot().Books
}

func (m *BooksModel) GetByID(bookID string) (objects.Book, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := models.IndexOf(m.books.Books, bookID)
	if i < 0 {
		return objects.Book{}, serverError.ObjectIDNotFoundError.New(bookID)
	}

	return m.books.Books[i], nil
}

func (m *BooksModel) Insert(ctx context.Context, title, author string) (objects.Book, error) {

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next := m.snapshot()

	bookID, err := m.generateID(next.Books)
	if err != nil {
		return objects.Book{}, err
	}

	book := objects.Book{
		BookID: bookID,
		Title:  title,
		Author: author,
	}

	next.Books = append(next.Books, book)
	if err := m.commit(ctx, next); err != nil {
		return objects.Book{}, err
	}

	return book, nil
}

func (m *BooksModel) generateID(books []objects.Book) (string, error) {

	var bookID string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {

		var err error
		bookID, err = m.newID()
		if err != nil {
			return "", serverError.UnknownError.Wrap(err, err)
		}

		if !models.Contains(books, bookID) {
			return bookID, nil
		}
	}

	return "", serverError.DuplicatedObjectIDError.New(bookID)
}

// Update merges the fields present in patch over the stored book. The ID in patch is
// ignored so a book keeps its ID for life.
func (m *BooksModel) Update(ctx context.Context, bookID string, patch objects.BookPatch) (objects.Book, error) {

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next := m.snapshot()

	i := models.IndexOf(next.Books, bookID)
	if i < 0 {
		return objects.Book{}, serverError.ObjectIDNotFoundError.New(bookID)
	}

	next.Books[i] = patch.Apply(next.Books[i])
	if err := m.commit(ctx, next); err != nil {
		return objects.Book{}, err
	}

	return next.Books[i], nil
}

func (m *BooksModel) Delete(ctx context.Context, bookID string) error {

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next := m.snapshot()

	i := models.IndexOf(next.Books, bookID)
	if i < 0 {
		return serverError.ObjectIDNotFoundError.New(bookID)
	}

	next.Books = append(next.Books[:i], next.Books[i+1:]...)

	return m.commit(ctx, next)
}
