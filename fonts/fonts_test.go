package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Small, Title, HUD} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestBadFontData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
	assert.Panics(t, func() { FontName("broken").Get() })
}
