package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceSetFor(t *testing.T) {
	p := PriceSet{Small: 80, Medium: 100, Large: 120}

	got, ok := p.For(SizeSmall)
	assert.True(t, ok)
	assert.Equal(t, int64(80), got)

	got, ok = p.For(SizeLarge)
	assert.True(t, ok)
	assert.Equal(t, int64(120), got)

	_, ok = p.For("venti")
	assert.False(t, ok)
}
