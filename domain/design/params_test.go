package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopowerup/domain/core"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	p, err := Params{N: 100}.Normalize(SolvePower)
	require.NoError(t, err)
	assert.Equal(t, 0.10, p.Alpha)
	assert.Equal(t, 0.50, p.P)
	assert.Equal(t, 0.25, p.EffectSize)
	assert.Equal(t, 1.0, p.ICSize)
	assert.Zero(t, p.Power, "the unknown stays unset")
	assert.True(t, p.TwoTailed())
}

func TestNormalizeDefaultsTargetPowerWhenSolvingMDES(t *testing.T) {
	p, err := Params{N: 100}.Normalize(SolveEffectSize)
	require.NoError(t, err)
	assert.Equal(t, 0.80, p.Power)
	assert.Zero(t, p.EffectSize)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	p, err := Params{N: 100, Alpha: 0.05, P: 0.3, EffectSize: 0.2}.Normalize(SolvePower)
	require.NoError(t, err)
	assert.Equal(t, 0.05, p.Alpha)
	assert.Equal(t, 0.3, p.P)
	assert.Equal(t, 0.2, p.EffectSize)
}

func TestNormalizeRejectsSuppliedUnknown(t *testing.T) {
	_, err := Params{N: 100, Power: 0.8}.Normalize(SolvePower)
	assert.True(t, core.IsUnderdetermined(err))

	_, err = Params{N: 100, EffectSize: 0.2}.Normalize(SolveEffectSize)
	assert.True(t, core.IsUnderdetermined(err))

	// Sample-size solving leaves both effect size and power as knowns.
	_, err = Params{N: 100, EffectSize: 0.2, Power: 0.8}.Normalize(SolveSampleSize)
	assert.NoError(t, err)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"rho2 above one", Params{N: 10, Rho2: 1.5}},
		{"alpha at one", Params{N: 10, Alpha: 1}},
		{"alpha above one", Params{N: 10, Alpha: 1.2}},
		{"p at zero is replaced, p negative is not", Params{N: 10, P: -0.1}},
		{"q outside (0,1)", Params{N: 10, Q: 1.4}},
		{"rho shares exceed total", Params{N: 10, Rho2: 0.6, Rho3: 0.6}},
		{"negative omega", Params{N: 10, Omega2: -0.5}},
		{"negative count", Params{N: 10, J: -3}},
		{"negative covariate count", Params{N: 10, G1: -1}},
		{"intact cluster below one", Params{N: 10, ICSize: 0.5}},
		{"negative effect size", Params{N: 10, EffectSize: -0.2}},
		{"power at one", Params{N: 10, Power: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unknown := SolvePower
			if tc.p.Power != 0 {
				unknown = SolveEffectSize
			}
			_, err := tc.p.Normalize(unknown)
			assert.True(t, core.IsInvalidParameter(err), "got %v", err)
		})
	}
}

func TestLevelCounts(t *testing.T) {
	p := Params{N: 1, J: 2, K: 3, L: 4}
	assert.Equal(t, 1.0, p.Count(LevelN))
	assert.Equal(t, 2.0, p.Count(LevelJ))
	assert.Equal(t, 3.0, p.Count(LevelK))
	assert.Equal(t, 4.0, p.Count(LevelL))

	q := p.WithCount(LevelK, 9)
	assert.Equal(t, 9.0, q.Count(LevelK))
	assert.Equal(t, 3.0, p.Count(LevelK), "receiver is unchanged")

	assert.Equal(t, "K", LevelK.String())
	assert.Equal(t, "L", LevelL.String())
}
