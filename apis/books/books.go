package books

import (
	stdErrors "errors"
	"io"

	"github.com/gin-gonic/gin"
	serverError "github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/models/books"
	"github.com/supakorn-kn/books-api/objects"
)

type BooksCrudAPI struct {
	model *books.BooksModel
}

func NewBooksAPI(model *books.BooksModel) *BooksCrudAPI {

	api := new(BooksCrudAPI)
	api.model = model

	return api
}

// bindJSON decodes the request body into obj. An empty body leaves obj untouched.
func bindJSON(ctx *gin.Context, obj any) error {

	err := ctx.ShouldBindJSON(obj)
	if err == nil || stdErrors.Is(err, io.EOF) {
		return nil
	}

	return serverError.InvalidPayloadError.Wrap(err, err)
}

func (api BooksCrudAPI) Insert(ctx *gin.Context) (*objects.Book, error) {

	var payload objects.Book
	err := bindJSON(ctx, &payload)
	if err != nil {
		return nil, err
	}

	book, err := api.model.Insert(ctx.Request.Context(), payload.Title, payload.Author)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (api BooksCrudAPI) ReadOne(itemID string, ctx *gin.Context) (*objects.Book, error) {

	book, err := api.model.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (api BooksCrudAPI) Read(ctx *gin.Context) ([]objects.Book, error) {

	return api.model.List(), nil
}

func (api BooksCrudAPI) Update(itemID string, ctx *gin.Context) (*objects.Book, error) {

	var patch objects.BookPatch
	err := bindJSON(ctx, &patch)
	if err != nil {
		return nil, err
	}

	book, err := api.model.Update(ctx.Request.Context(), itemID, patch)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (api BooksCrudAPI) Delete(itemID string, ctx *gin.Context) error {

	return api.model.Delete(ctx.Request.Context(), itemID)
}
