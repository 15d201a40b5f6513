package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "menu.png", SanitizeFilename("menu.png"))
	assert.Equal(t, "evil_name.png", SanitizeFilename("../../evil name.png"))
	assert.Equal(t, "passwd", SanitizeFilename("/etc/passwd"))
	assert.Equal(t, "c_temp_x.gif", SanitizeFilename(`c:\temp\x.gif`))
	assert.Equal(t, "unnamed", SanitizeFilename("..."))
}
