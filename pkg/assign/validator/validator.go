// Package validator 校验分班结果是否满足硬约束阈值
package validator

import (
	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/model"
)

// epsilon 容忍浮点误差，避免本应满足阈值的解因累加误差被误判为违反
const epsilon = 1e-9

// SubjectDiff 是单个科目在各班级间的最大-最小差值
type SubjectDiff struct {
	SubjectIdx int
	Diff       float64
}

// Report 是一次约束校验的结果
type Report struct {
	ScoreConstraintMet  bool
	GenderConstraintMet bool
	SizeConstraintMet   bool
	MaxScoreDiff        float64
	MaxGenderRatioDiff  float64
	MaxSizeDiff         int
	SubjectDiffs        []SubjectDiff
}

// Feasible 报告是否所有硬约束都满足
func (r Report) Feasible() bool {
	return r.ScoreConstraintMet && r.GenderConstraintMet && r.SizeConstraintMet
}

// Validate 使用默认参数校验分班结果
func Validate(classes []model.Class) Report {
	return ValidateWithParams(classes, params.Default())
}

// ValidateWithParams 使用给定参数校验分班结果是否满足硬约束阈值
func ValidateWithParams(classes []model.Class, p params.OptimizationParams) Report {
	if len(classes) == 0 {
		return Report{ScoreConstraintMet: true, GenderConstraintMet: true, SizeConstraintMet: true}
	}

	subjectsCount := 0
	if len(classes[0].Students) > 0 {
		subjectsCount = len(classes[0].Students[0].Scores)
	}

	totalAvgs := make([]float64, len(classes))
	genderRatios := make([]float64, len(classes))
	sizes := make([]int, len(classes))
	for i, c := range classes {
		totalAvgs[i] = c.AvgTotal()
		genderRatios[i] = c.GenderRatio()
		sizes[i] = c.Size()
	}

	maxScoreDiff := spreadFloat(totalAvgs)
	maxGenderRatioDiff := spreadFloat(genderRatios)
	maxSizeDiff := spreadInt(sizes)

	subjectDiffs := make([]SubjectDiff, subjectsCount)
	for j := 0; j < subjectsCount; j++ {
		avgs := make([]float64, len(classes))
		for i, c := range classes {
			avgs[i] = c.AvgSubject(j)
		}
		subjectDiffs[j] = SubjectDiff{SubjectIdx: j, Diff: spreadFloat(avgs)}
	}

	subjectConstraintMet := true
	for _, sd := range subjectDiffs {
		if sd.Diff > p.MaxSubjectScoreDiff+epsilon {
			subjectConstraintMet = false
			break
		}
	}

	return Report{
		ScoreConstraintMet:  maxScoreDiff <= p.MaxScoreDiff+epsilon && subjectConstraintMet,
		GenderConstraintMet: maxGenderRatioDiff <= p.MaxGenderRatioDiff+epsilon,
		SizeConstraintMet:   float64(maxSizeDiff) <= float64(p.MaxClassSizeDiff)+epsilon,
		MaxScoreDiff:        maxScoreDiff,
		MaxGenderRatioDiff:  maxGenderRatioDiff,
		MaxSizeDiff:         maxSizeDiff,
		SubjectDiffs:        subjectDiffs,
	}
}

func spreadFloat(vals []float64) float64 {
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

func spreadInt(vals []int) int {
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
