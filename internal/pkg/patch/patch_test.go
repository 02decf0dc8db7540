//go:build unit

package patch_test

import (
	"testing"

	"hall-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	n := 3
	assert.Equal(t, 3, patch.Coalesce(&n, 7))
	assert.Equal(t, 7, patch.Coalesce[int](nil, 7))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "Admin", patch.OrDefault("", "Admin"))
	assert.Equal(t, "Choir", patch.OrDefault("Choir", "Admin"))
	assert.Equal(t, 52, patch.OrDefault(0, 52))
}
