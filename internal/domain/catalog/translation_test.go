package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "en", NormalizeLanguage(""))
	assert.Equal(t, "en", NormalizeLanguage("   "))
	assert.Equal(t, "he", NormalizeLanguage(" HE "))
}

func TestValidateContent(t *testing.T) {
	require.NoError(t, ValidateContent("Downtown Store", "123 Main St"))

	for _, tc := range [][2]string{{"", "x"}, {"x", ""}, {" ", "x"}, {"", ""}} {
		err := ValidateContent(tc[0], tc[1])
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), "%q/%q", tc[0], tc[1])
	}
}

func TestResolution(t *testing.T) {
	found := Found("Downtown Store", "123 Main St")
	assert.Equal(t, "Downtown Store", found.DisplayName())
	name, location := found.Listing()
	assert.Equal(t, "Downtown Store", name)
	assert.Equal(t, "123 Main St", location)

	assert.Equal(t, UnknownStore, Missing.DisplayName())
	name, location = Missing.Listing()
	assert.Equal(t, UntitledStore, name)
	assert.Equal(t, NoLocation, location)
}
