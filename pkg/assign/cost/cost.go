// Package cost 实现分班方案的纯函数代价评估
package cost

import (
	"math"

	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/assign/stats"
)

// Breakdown 是一次代价评估的分解结果
//
// HardPenalty 为 0 是 worker 早停判定的前提（对外的可行性判定由 validator
// 给出）：只要有一项硬约束超出阈值，HardPenalty 就严格大于 0。惩罚权重比软项
// 高若干个数量级，超出量明显时 Total 远高于满足硬约束的解；但惩罚按
// (diff-threshold)^PenaltyPower 增长，超出量很小时它可能小于两个解软代价之差。
type Breakdown struct {
	Total       float64
	HardPenalty float64
	SoftCost    float64
}

// Evaluate 根据各班级的缓存统计计算代价，只读取缓存的累加值，不扫描学生列表。
func Evaluate(classStats []stats.ClassStats, subjectsCount int, p params.OptimizationParams) Breakdown {
	k := len(classStats)
	if k == 0 {
		return Breakdown{}
	}

	totalAvgs := make([]float64, k)
	maleRatios := make([]float64, k)
	sizes := make([]float64, k)
	for i, cs := range classStats {
		totalAvgs[i] = cs.AvgTotal()
		maleRatios[i] = cs.MaleRatio()
		sizes[i] = float64(cs.StudentCount)
	}

	var hard, soft float64

	diffTotal := spread(totalAvgs)
	hard += penalty(diffTotal, p.MaxScoreDiff, p.PenaltyPower, p.TotalScorePenaltyWeight)
	soft += variance(totalAvgs) * p.TotalVarianceWeight

	diffGender := spread(maleRatios)
	hard += penalty(diffGender, p.MaxGenderRatioDiff, p.PenaltyPower, p.GenderRatioPenaltyWeight)
	soft += variance(maleRatios) * p.GenderVarianceWeight

	diffSize := spread(sizes)
	hard += penalty(diffSize, float64(p.MaxClassSizeDiff), p.PenaltyPower, p.ClassSizePenaltyWeight)

	subjectAvgs := make([]float64, k)
	for j := 0; j < subjectsCount; j++ {
		for i, cs := range classStats {
			subjectAvgs[i] = cs.AvgSubject(j)
		}
		diffSubject := spread(subjectAvgs)
		hard += penalty(diffSubject, p.MaxSubjectScoreDiff, p.PenaltyPower, p.SubjectScorePenaltyWeight)
		soft += variance(subjectAvgs) * p.SubjectVarianceWeight
	}

	return Breakdown{Total: hard + soft, HardPenalty: hard, SoftCost: soft}
}

// spread 返回一组值中最大值与最小值之差
func spread(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

// variance 返回总体方差（除以 K，而非 K-1）
func variance(vals []float64) float64 {
	n := float64(len(vals))
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= n
	v := 0.0
	for _, x := range vals {
		v += (x - mean) * (x - mean)
	}
	return v / n
}

// penalty 在 diff 严格大于 threshold 时返回 (diff-threshold)^power * weight，否则为 0
func penalty(diff, threshold float64, power int, weight float64) float64 {
	if diff <= threshold {
		return 0
	}
	return math.Pow(diff-threshold, float64(power)) * weight
}
