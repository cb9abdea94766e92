package zones

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStates(t *testing.T) {
	states := GetStates()

	// 36 states plus the FCT
	assert.Len(t, states, 37)
	assert.True(t, sort.StringsAreSorted(states))
	assert.Contains(t, states, "Lagos")
	assert.Contains(t, states, "FCT")
}

func TestGetLGAs(t *testing.T) {
	lagos := GetLGAs("Lagos")
	require.NotEmpty(t, lagos)
	assert.Contains(t, lagos, "Ibeju-Lekki")

	assert.Equal(t, []string{}, GetLGAs("Atlantis"))
}

func TestGetLGAsReturnsCopy(t *testing.T) {
	lgas := GetLGAs("Enugu")
	require.NotEmpty(t, lgas)
	lgas[0] = "mutated"

	assert.NotEqual(t, "mutated", GetLGAs("Enugu")[0])
}
