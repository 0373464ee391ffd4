package criterion

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Discriminating 是判别系数（Discriminating Coefficient）准则：
//
//	score = |mean(A) - mean(B)| / (std(A) + std(B))
//
// 其中 std 为 n-1 归一化的样本标准差（gonum 的 stat.StdDev）。
type Discriminating struct{}

func (Discriminating) Name() string { return NameDiscriminating }

func (Discriminating) Score(classA, classB []float64) float64 {
	num := math.Abs(stat.Mean(classA, nil) - stat.Mean(classB, nil))
	den := stat.StdDev(classA, nil) + stat.StdDev(classB, nil)
	if den == 0 {
		if num == 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}
	return num / den
}
