package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateCatchesBrokenReferences(t *testing.T) {
	saved := textStyles
	t.Cleanup(func() { textStyles = saved })

	textStyles = append(table[TextStyle]{}, saved...)
	textStyles = append(textStyles, entry[TextStyle]{"broken", TextStyle{"Broken", "5xl", "bold", "tight", "tight", "display"}})

	err := Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `text style broken references unknown size "5xl"`)
}

func TestSizeMagnitude(t *testing.T) {
	n, err := sizeMagnitude("18pt")
	require.NoError(t, err)
	assert.Equal(t, 18.0, n)

	_, err = sizeMagnitude("2rem")
	assert.Error(t, err)
}
