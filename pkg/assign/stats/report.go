package stats

import (
	"math"

	"github.com/paiban/classdivider/pkg/model"
)

// SubjectReport 单科统计信息（跨班级）
type SubjectReport struct {
	SubjectIdx int
	Mean       float64
	Variance   float64
	StdDev     float64
	Min        float64
	Max        float64
}

// OverallReport 总分统计信息（跨班级）
type OverallReport struct {
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Range    float64
}

// GenderBalance 性别平衡统计（跨班级）
type GenderBalance struct {
	MaleVariance  float64
	FemaleVariance float64
	RatioVariance  float64
}

// DetailedReport 是分班结果的补充性统计报告，不参与代价评估，仅供调用方
// 审阅分班质量（报表、日志、UI 展示均可复用）。
type DetailedReport struct {
	Overall       OverallReport
	Subjects      []SubjectReport
	GenderBalance GenderBalance
	ClassSizes    []int
	MaleCounts    []int
	FemaleCounts  []int
}

// BuildDetailedReport 根据最终分班结果计算详细统计报告
func BuildDetailedReport(classes []model.Class, subjectsCount int) DetailedReport {
	if len(classes) == 0 {
		return DetailedReport{}
	}

	avgTotals := make([]float64, len(classes))
	classSizes := make([]int, len(classes))
	maleCounts := make([]int, len(classes))
	femaleCounts := make([]int, len(classes))
	for i, c := range classes {
		avgTotals[i] = c.AvgTotal()
		classSizes[i] = c.Size()
		maleCounts[i] = c.MaleCount()
		femaleCounts[i] = c.FemaleCount()
	}

	overall := buildOverall(avgTotals)

	subjects := make([]SubjectReport, subjectsCount)
	for idx := 0; idx < subjectsCount; idx++ {
		vals := make([]float64, len(classes))
		for i, c := range classes {
			vals[i] = c.AvgSubject(idx)
		}
		sr := buildOverall(vals)
		subjects[idx] = SubjectReport{
			SubjectIdx: idx,
			Mean:       sr.Mean,
			Variance:   sr.Variance,
			StdDev:     sr.StdDev,
			Min:        sr.Min,
			Max:        sr.Max,
		}
	}

	return DetailedReport{
		Overall:       overall,
		Subjects:      subjects,
		GenderBalance: buildGenderBalance(classes),
		ClassSizes:    classSizes,
		MaleCounts:    maleCounts,
		FemaleCounts:  femaleCounts,
	}
}

func buildOverall(vals []float64) OverallReport {
	n := float64(len(vals))
	if n == 0 {
		return OverallReport{}
	}
	mean := sum(vals) / n
	variance := 0.0
	min, max := vals[0], vals[0]
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	variance /= n
	return OverallReport{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      min,
		Max:      max,
		Range:    max - min,
	}
}

func buildGenderBalance(classes []model.Class) GenderBalance {
	n := float64(len(classes))
	if n == 0 {
		return GenderBalance{}
	}
	maleCounts := make([]float64, len(classes))
	femaleCounts := make([]float64, len(classes))
	ratios := make([]float64, len(classes))
	for i, c := range classes {
		maleCounts[i] = float64(c.MaleCount())
		femaleCounts[i] = float64(c.FemaleCount())
		ratios[i] = c.GenderRatio()
	}
	maleMean := sum(maleCounts) / n
	femaleMean := sum(femaleCounts) / n
	ratioMean := sum(ratios) / n

	var maleVar, femaleVar, ratioVar float64
	for i := range classes {
		maleVar += (maleCounts[i] - maleMean) * (maleCounts[i] - maleMean)
		femaleVar += (femaleCounts[i] - femaleMean) * (femaleCounts[i] - femaleMean)
		ratioVar += (ratios[i] - ratioMean) * (ratios[i] - ratioMean)
	}
	return GenderBalance{
		MaleVariance:   maleVar / n,
		FemaleVariance: femaleVar / n,
		RatioVariance:  ratioVar / n,
	}
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
