package billing

import "math"

// Tenures lists the repayment durations, in months, a quotation is priced
// against. Every tenure is non-zero, which keeps ComputeEMI free of a
// division-by-zero branch.
var Tenures = []int{12, 18, 24, 30, 36}

// ComputeEMI returns the equated monthly installment for an amortizing loan:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	emi         = balance * r * (1+r)^n / ((1+r)^n - 1)
//
// with the documentation charge spread evenly across the tenure. A zero rate
// degenerates to an even split of balance plus documentation charge.
//
// The amortizing formula is deliberate: the flat-interest variant (simple
// interest over the full term divided evenly) yields materially different
// installments and is not what the showroom quotes.
func ComputeEMI(balance float64, months int, annualRatePercent, documentationCharge float64) float64 {
	monthlyRate := annualRatePercent / 100 / 12

	if monthlyRate == 0 {
		return Round2((balance + documentationCharge) / float64(months))
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	emi := balance * monthlyRate * factor / (factor - 1)

	return Round2(emi + documentationCharge/float64(months))
}
