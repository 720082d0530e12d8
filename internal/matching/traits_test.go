package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapProfileToTraitFlags(t *testing.T) {
	p := NeutralProfile()
	flags := MapProfileToTraitFlags(p)
	assert.Len(t, flags, 9)
	for name, on := range flags {
		assert.False(t, on, name)
	}

	p.RIASEC[RIASECInvestigative] = 0.55
	p.BigFive[TraitNeuroticism] = 0.4
	flags = MapProfileToTraitFlags(p)
	assert.True(t, flags[FlagProblemSolving])
	assert.False(t, flags[FlagAnalytical])
	assert.True(t, flags[FlagCalmUnderPressure])
}

func TestMapProfileToTraitFlags_Leadership(t *testing.T) {
	p := NeutralProfile()
	p.BigFive[TraitExtraversion] = 0.7
	p.BigFive[TraitConscientiousness] = 0.45
	assert.False(t, MapProfileToTraitFlags(p)[FlagLeadership])

	p.BigFive[TraitConscientiousness] = 0.5
	flags := MapProfileToTraitFlags(p)
	assert.True(t, flags[FlagLeadership])
	assert.True(t, flags[FlagCommunication])

	p = NeutralProfile()
	p.RIASEC[RIASECEnterprising] = 0.6
	assert.True(t, MapProfileToTraitFlags(p)[FlagLeadership])
}
