package apis

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/models"
)

func RegisterCrudAPI[Item models.Item](api CrudAPI[Item], group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		item, err := api.Insert(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.GET(":id", func(ctx *gin.Context) {

		item, err := api.ReadOne(ctx.Param("id"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.GET("", func(ctx *gin.Context) {

		items, err := api.Read(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		if items == nil {
			items = []Item{}
		}

		ctx.JSON(http.StatusOK, items)
	})

	group.PUT(":id", func(ctx *gin.Context) {

		item, err := api.Update(ctx.Param("id"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.DELETE(":id", func(ctx *gin.Context) {

		err := api.Delete(ctx.Param("id"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.Status(http.StatusOK)
	})
}

// RegisterHealthCheck answers GET path with OKResponse.
func RegisterHealthCheck(g *gin.Engine, path string) {

	g.GET(path, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, OKResponse)
	})
}

func statusCodeOf(code int) int {

	switch code {
	case errors.ObjectIDNotFoundErrorCode:
		return http.StatusNotFound
	case errors.InvalidPayloadErrorCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		assertedError = errors.UnknownError.Wrap(err, err)
	}

	statusCode := statusCodeOf(assertedError.Code)
	if statusCode >= http.StatusInternalServerError {
		slog.Error("request failed", "path", ctx.FullPath(), "request_id", RequestIDFrom(ctx), "error", err)
	}

	ctx.AbortWithStatusJSON(statusCode, ErrorResponse{Error: assertedError})
}
