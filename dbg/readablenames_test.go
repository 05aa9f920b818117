package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{1}

	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))
	assert.Regexp(t, `^[A-Z][a-z]+[A-Z][a-z]+\d*$`, Name(a))

	var nilThing *thing
	assert.Equal(t, "Ø", Name(nilThing))
	assert.Equal(t, "Ø", Name(nil))
}
