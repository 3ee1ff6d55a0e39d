package gen3peek

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatureString(t *testing.T) {
	assert.Equal(t, "Hardy", NatureHardy.String())
	assert.Equal(t, "Adamant", NatureAdamant.String())
	assert.Equal(t, "Quirky", NatureQuirky.String())
	assert.Equal(t, "???", Nature(25).String())
}

func TestNatureEffects(t *testing.T) {
	assert.Equal(t, StatAttack, NatureAdamant.Boosted())
	assert.Equal(t, StatSpAttack, NatureAdamant.Reduced())

	assert.Equal(t, StatSpeed, NatureTimid.Boosted())
	assert.Equal(t, StatAttack, NatureTimid.Reduced())

	assert.True(t, NatureHardy.Neutral())
	assert.True(t, NatureQuirky.Neutral())
	assert.False(t, NatureAdamant.Neutral())
}
