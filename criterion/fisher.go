package criterion

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fisher 是 Fisher Score 准则：类间散度与类内散度之比。
//
// 记 muA/muB 为两类均值，mu 为该特征全部实例的总体均值：
//
//	score = ((muA-mu)^2 + (muB-mu)^2) / (var(A) + var(B))
//
// 其中 var 为 n-1 归一化的无偏样本方差（gonum 的 stat.Variance）。
type Fisher struct{}

func (Fisher) Name() string { return NameFisher }

func (Fisher) Score(classA, classB []float64) float64 {
	muA := stat.Mean(classA, nil)
	muB := stat.Mean(classB, nil)
	nA := float64(len(classA))
	nB := float64(len(classB))
	// 全体实例恰为两类之并，总体均值即两类均值的加权平均
	mu := (muA*nA + muB*nB) / (nA + nB)

	num := (muA-mu)*(muA-mu) + (muB-mu)*(muB-mu)
	den := stat.Variance(classA, nil) + stat.Variance(classB, nil)
	if den == 0 {
		if num == 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}
	return num / den
}
