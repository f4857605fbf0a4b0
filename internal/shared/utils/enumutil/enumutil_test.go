package enumutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "MÉDIA", Normalize(" média "))
	assert.Equal(t, "FECHADO", Normalize("fechado"))
	assert.Equal(t, "", Normalize("   "))
}
