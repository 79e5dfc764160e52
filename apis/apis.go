package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/models"
)

type ErrorResponse struct {
	Error errors.BaseError `json:"error"`
}

// CrudAPI decodes requests for one kind of item and runs them against its model.
// Returned errors are rendered by writeErrorJSON.
type CrudAPI[Item models.Item] interface {
	Insert(ctx *gin.Context) (*Item, error)
	ReadOne(itemID string, ctx *gin.Context) (*Item, error)
	Read(ctx *gin.Context) ([]Item, error)
	Update(itemID string, ctx *gin.Context) (*Item, error)
	Delete(itemID string, ctx *gin.Context) error
}

var OKResponse = map[string]any{"status": "OK"}
