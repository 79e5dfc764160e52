package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseError(t *testing.T) {

	t.Run("Should format message with given arguments", func(t *testing.T) {

		err := ObjectIDNotFoundError.New("abc123de")
		require.Equal(t, "Item with ID abc123de is not exist", err.Error())
		require.Equal(t, ObjectIDNotFoundErrorCode, err.Code)
		require.Equal(t, "ObjectIDNotFound", err.Name)
	})

	t.Run("Should not change declared error when creating new one", func(t *testing.T) {

		_ = ObjectIDNotFoundError.New("first")
		require.Empty(t, ObjectIDNotFoundError.Message)
	})

	t.Run("Should match declared error through wrapping", func(t *testing.T) {

		err := fmt.Errorf("handler: %w", ObjectIDNotFoundError.New("x"))
		require.True(t, stdErrors.Is(err, ObjectIDNotFoundError))
		require.False(t, stdErrors.Is(err, StorageSaveFailedError))
		require.True(t, IsError(err, ObjectIDNotFoundError.New("x")))
		require.False(t, IsError(err, ObjectIDNotFoundError.New("y")))
	})

	t.Run("Should keep the cause of wrapped error", func(t *testing.T) {

		err := StorageSaveFailedError.Wrap(fs.ErrPermission, "db.json", fs.ErrPermission)
		require.True(t, stdErrors.Is(err, fs.ErrPermission))

		asserted, ok := TryAssertError(err)
		require.True(t, ok)
		require.Equal(t, StorageSaveFailedErrorCode, asserted.Code)
	})

	t.Run("Should not assert plain error", func(t *testing.T) {

		_, ok := TryAssertError(stdErrors.New("plain"))
		require.False(t, ok)
	})
}
