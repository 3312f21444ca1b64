// Package dist wraps the distribution primitives the power formulas need:
// central Student t critical values and quantiles, the unit normal, and a
// noncentral t CDF (which gonum's distuv does not carry).
package dist

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Above this df the t distribution is numerically indistinguishable from the
// unit normal; the series in NoncentralTCDF degrades there, so everything
// collapses to the normal form.
const normalLimitDF = 1e6

// CriticalT returns the upper-tail critical value t such that
// P(T > t) = alpha for a central t distribution with df degrees of freedom.
func CriticalT(alpha, df float64) float64 {
	return TQuantile(1-alpha, df)
}

// TQuantile returns the p-quantile of the central t distribution.
func TQuantile(p, df float64) float64 {
	if df > normalLimitDF {
		return distuv.UnitNormal.Quantile(p)
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// TCDF returns the CDF of the central t distribution.
func TCDF(t, df float64) float64 {
	if df > normalLimitDF {
		return distuv.UnitNormal.CDF(t)
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(t)
}

// NormalCDF returns the unit normal CDF.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile returns the unit normal quantile.
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
