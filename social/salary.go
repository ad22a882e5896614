// SPDX-License-Identifier: MIT

package social

// Tenure bucket labels.
const (
	BucketUnderTwo     = "less than two"
	BucketTwoToFive    = "between two and five"
	BucketMoreThanFive = "more than five"
)

// TenureBucket maps years of experience to one of three buckets:
// [0, 2), [2, 5) and 5+.
func TenureBucket(tenure float64) string {
	switch {
	case tenure < 2:
		return BucketUnderTwo
	case tenure < 5:
		return BucketTwoToFive
	default:
		return BucketMoreThanFive
	}
}

// AverageSalaryByBucket returns the mean salary per tenure bucket. Buckets
// without observations are absent.
func AverageSalaryByBucket(data []SalaryTenure) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, d := range data {
		b := TenureBucket(d.Tenure)
		sums[b] += d.Salary
		counts[b]++
	}
	out := make(map[string]float64, len(sums))
	for b, s := range sums {
		out[b] = s / float64(counts[b])
	}
	return out
}
