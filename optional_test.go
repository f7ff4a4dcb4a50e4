package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var o Optional[string]
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Equal(t, "", v)
		assert.True(t, o.IsEmpty())
	})

	t.Run("some holds value", func(t *testing.T) {
		o := Some("value")
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "value", v)
		assert.False(t, o.IsEmpty())
		assert.Equal(t, "value", o.OrElse("fallback"))
	})

	t.Run("none falls back", func(t *testing.T) {
		o := None[int]()
		assert.True(t, o.IsEmpty())
		assert.Equal(t, 7, o.OrElse(7))
	})

	t.Run("some zero is not empty", func(t *testing.T) {
		o := Some(0)
		assert.False(t, o.IsEmpty())
		assert.Equal(t, 0, o.OrElse(7))
	})
}

func TestOptionalImplementsEmptier(_ *testing.T) {
	var _ Emptier = Optional[int]{}
}
