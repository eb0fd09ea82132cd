package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams(t *testing.T) {
	assert.Equal(t, PageParams{Page: 1, PageSize: DefaultPageSize}, PageParams{}.Normalize())
	assert.Equal(t, PageParams{Page: 3, PageSize: MaxPageSize}, PageParams{Page: 3, PageSize: 1000}.Normalize())
	assert.Equal(t, 0, PageParams{}.Offset())
	assert.Equal(t, 20, PageParams{Page: 3, PageSize: 10}.Offset())
}

func TestPageParams_ResultWindow(t *testing.T) {
	p := PageParams{Page: 500, PageSize: 20}
	assert.Equal(t, 500, p.MaxPage())
	assert.True(t, p.InWindow())
	assert.Equal(t, 9980, p.Offset())

	p.Page = 501
	assert.False(t, p.InWindow())

	huge := PageParams{Page: 922337203685477581, PageSize: 20}
	assert.False(t, huge.InWindow())
	assert.Equal(t, 9980, huge.Offset())
	assert.GreaterOrEqual(t, huge.Offset(), 0)
}
