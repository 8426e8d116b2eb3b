package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("exact pages", func(t *testing.T) {
		p := NewPagination(1, 10, 30)
		assert.Equal(t, int64(3), p.TotalPage)
	})

	t.Run("partial last page", func(t *testing.T) {
		p := NewPagination(2, 10, 31)
		assert.Equal(t, int64(4), p.TotalPage)
	})

	t.Run("zero page size does not panic", func(t *testing.T) {
		var p Pagination
		assert.NotPanics(t, func() {
			p = NewPagination(1, 0, 5)
		})
		assert.Equal(t, int64(5), p.TotalPage)
	})
}
