package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressMissing(t *testing.T) {
	full := Address{Street: "12 Hill Road", Pincode: "400050", City: "Mumbai", State: "MH"}
	assert.True(t, full.Complete())
	assert.Empty(t, full.Missing())

	// landmark is optional
	full.Landmark = ""
	assert.True(t, full.Complete())

	partial := Address{Street: "12 Hill Road", State: "MH"}
	assert.False(t, partial.Complete())
	assert.Equal(t, []string{"pincode", "city"}, partial.Missing())

	empty := Address{}
	assert.Equal(t, []string{"street", "pincode", "city", "state"}, empty.Missing())
}
