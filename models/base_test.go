package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/supakorn-kn/books-api/objects"
)

func TestIndexOf(t *testing.T) {

	books := []objects.Book{
		{BookID: "book_0"},
		{BookID: "book_1"},
		{BookID: "book_1", Title: "shadowed"},
	}

	var testCases = map[string]struct {
		ItemID   string
		Expected int
	}{
		"First item":        {ItemID: "book_0", Expected: 0},
		"First of repeated": {ItemID: "book_1", Expected: 1},
		"Missing item":      {ItemID: "book_2", Expected: -1},
		"Empty ID":          {ItemID: "", Expected: -1},
	}

	for name, testCase := range testCases {

		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, IndexOf(books, testCase.ItemID))
			require.Equal(t, testCase.Expected >= 0, Contains(books, testCase.ItemID))
		})
	}

	t.Run("Should return -1 on empty list", func(t *testing.T) {
		require.Equal(t, -1, IndexOf([]objects.Book(nil), "book_0"))
	})
}
