package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sunset-over-lake", Slugify("Sunset over Lake"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World! "))
	assert.Equal(t, "top-10", Slugify("Top 10"))
	assert.Equal(t, "", Slugify("!!!"))
	// deterministic
	assert.Equal(t, Slugify("Nature"), Slugify("Nature"))
}
