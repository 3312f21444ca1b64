package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopowerup/domain/core"
	"gopowerup/domain/design"
)

// Published worked examples, one per design, all at alpha .05 two-tailed.
func TestMainEffects_PublishedExamples(t *testing.T) {
	cases := []struct {
		name string
		fn   func(design.Params) (float64, error)
		p    design.Params
		want float64
	}{
		{"ira1r1", IRA1R1, design.Params{EffectSize: .356, Alpha: .05, N: 250}, 0.801},
		{"bira2c1", BIRA2C1, design.Params{EffectSize: .325, Alpha: .05, N: 15, J: 20}, 0.801},
		{"bira2f1", BIRA2F1, design.Params{EffectSize: .325, Alpha: .05, N: 15, J: 20}, 0.801},
		{"bira2r1", BIRA2R1, design.Params{EffectSize: .366, Alpha: .05, Rho2: .17, Omega2: .50, N: 15, J: 20}, 0.801},
		{"cra2r2", CRA2R2, design.Params{EffectSize: .629, Alpha: .05, Rho2: .17, N: 15, J: 20}, 0.800},
		{"bira3r1", BIRA3R1, design.Params{EffectSize: .045, Alpha: .05, Rho3: .20, Rho2: .15, Omega3: .10, Omega2: .10, N: 69, J: 10, K: 100}, 0.800},
		{"bcra3f2", BCRA3F2, design.Params{EffectSize: .145, Alpha: .05, Rho2: .10, N: 20, J: 44, K: 5}, 0.803},
		{"bcra3r2", BCRA3R2, design.Params{EffectSize: .246, Alpha: .05, Rho3: .13, Rho2: .10, Omega3: .40, N: 10, J: 6, K: 24}, 0.799},
		{"cra3r3", CRA3R3, design.Params{EffectSize: .269, Alpha: .05, Rho3: .06, Rho2: .17, N: 15, J: 3, K: 60}, 0.800},
		{"bira4r1", BIRA4R1, design.Params{EffectSize: .142, Alpha: .05, Rho4: .05, Rho3: .15, Rho2: .15, Omega4: .50, Omega3: .50, Omega2: .50, N: 10, J: 4, K: 4, L: 27}, 0.797},
		{"bcra4f3", BCRA4F3, design.Params{EffectSize: .339, Alpha: .05, Rho3: .15, Rho2: .15, N: 10, J: 4, K: 4, L: 15}, 0.801},
		{"bcra4r2", BCRA4R2, design.Params{EffectSize: .206, Alpha: .05, Rho4: .05, Rho3: .15, Rho2: .15, Omega4: .50, Omega3: .50, N: 10, J: 4, K: 4, L: 20}, 0.799},
		{"bcra4r3", BCRA4R3, design.Params{EffectSize: .316, Alpha: .05, Rho4: .05, Rho3: .15, Rho2: .15, Omega4: .50, N: 10, J: 4, K: 4, L: 20}, 0.800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestCRA4R4_AtItsMinimumRequiredCount(t *testing.T) {
	// L=20 is the published minimum count reaching power .80 for this
	// parameter set, so the power there sits at or just above the target.
	got, err := CRA4R4(design.Params{EffectSize: .412, Alpha: .05, Rho4: .05, Rho3: .05, Rho2: .10, N: 10, J: 2, K: 3, L: 20})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 0.79)
	assert.Less(t, got, 0.88)
}

func TestSuppliedPowerIsUnderdetermined(t *testing.T) {
	_, err := CRA2R2(design.Params{EffectSize: .5, Power: .8, Rho2: .17, N: 15, J: 20})
	assert.True(t, core.IsUnderdetermined(err))
}

func TestMissingCountIsInvalid(t *testing.T) {
	_, err := CRA2R2(design.Params{EffectSize: .5, Rho2: .17, N: 15})
	assert.True(t, core.IsInvalidParameter(err))
}

func TestOneTailedExceedsTwoTailed(t *testing.T) {
	p := design.Params{EffectSize: .629, Alpha: .05, Rho2: .17, N: 15, J: 20}
	two, err := CRA2R2(p)
	require.NoError(t, err)
	p.OneTailed = true
	one, err := CRA2R2(p)
	require.NoError(t, err)
	assert.Greater(t, one, two)
}

func TestPowerRisesWithClusterCount(t *testing.T) {
	prev := 0.0
	for _, j := range []float64{10, 20, 40, 80} {
		got, err := CRA2R2(design.Params{EffectSize: .3, Alpha: .05, Rho2: .17, N: 15, J: j})
		require.NoError(t, err)
		assert.Greater(t, got, prev, "J=%v", j)
		prev = got
	}
	assert.Less(t, prev, 1.0)
}

func TestIntraclassCorrelationCostsPower(t *testing.T) {
	// More outcome variance between clusters means a noisier cluster-level
	// contrast at the same counts.
	prev := 1.0
	for _, rho := range []float64{.05, .15, .30} {
		got, err := CRA2R2(design.Params{EffectSize: .3, Alpha: .05, Rho2: rho, N: 15, J: 40})
		require.NoError(t, err)
		assert.Less(t, got, prev, "rho2=%v", rho)
		prev = got
	}
}

func TestPowerFallsToTypeIRateAsAlphaShrinks(t *testing.T) {
	// As alpha tightens the rejection region shrinks, so power decreases
	// toward its floor of alpha itself, not toward some fixed residual.
	prev := 1.0
	for _, a := range []float64{.20, .10, .05, .01, .001, 1e-6} {
		got, err := CRA2R2(design.Params{EffectSize: .629, Alpha: a, Rho2: .17, N: 15, J: 20})
		require.NoError(t, err)
		assert.Less(t, got, prev, "alpha=%v", a)
		assert.Greater(t, got, a, "alpha=%v", a)
		prev = got
	}
	assert.Less(t, prev, 0.05)
}

func TestDefaultEffectSizeAndAlphaApply(t *testing.T) {
	// Zero-value fields take the catalog defaults: es .25, alpha .10, p .50.
	got, err := IRA1R1(design.Params{N: 300})
	require.NoError(t, err)
	assert.Greater(t, got, 0.5)
	assert.Less(t, got, 1.0)
}
