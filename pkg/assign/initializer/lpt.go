// Package initializer 构造分班的初始解（LPT：最长处理时间优先）
package initializer

import (
	"sort"

	"github.com/paiban/classdivider/pkg/assign/optimizer"
	"github.com/paiban/classdivider/pkg/model"
)

// genderBias 是班级候选评分中性别比例偏差的权重。偏差越大，LPT 越倾向于把
// 学生分配到性别失衡的班级来拉回 0.5，代价是短期内略微牺牲总分均衡。
const genderBias = 10_000.0

// BuildInitial 用改进的 LPT 算法构造一个可行的初始解：按总分降序遍历学生，
// 每次在当前人数最少的班级中把学生放入候选代价最低的一个（同价取下标较小者），
// 因此各班人数之差不超过 1。候选代价综合两个目标：该班级放入
// 学生后的总分和，以及该班级放入学生后的性别比例与 0.5 的偏差（乘以
// genderBias 放大）。
//
// 输出是一个人数近似均衡、性别比例已经偏向 0.5 的可行分区，为模拟退火
// 提供远优于随机分配的起点。
func BuildInitial(students []model.Student, numClasses, subjectsCount int) optimizer.Solution {
	sol := optimizer.NewSolution(len(students), numClasses, subjectsCount)

	order := make([]int, len(students))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return students[order[a]].Total > students[order[b]].Total
	})

	for _, studentIdx := range order {
		student := students[studentIdx]
		best := bestClass(sol, student)
		sol.AssignStudent(studentIdx, best, student)
	}

	return sol
}

func bestClass(sol optimizer.Solution, student model.Student) int {
	minSize := sol.ClassStats[0].StudentCount
	for _, cs := range sol.ClassStats[1:] {
		if cs.StudentCount < minSize {
			minSize = cs.StudentCount
		}
	}

	best := -1
	bestCost := 0.0
	for k := range sol.ClassStats {
		if sol.ClassStats[k].StudentCount != minSize {
			continue
		}
		c := candidateCost(sol, k, student)
		if best == -1 || c < bestCost {
			best = k
			bestCost = c
		}
	}
	return best
}

func candidateCost(sol optimizer.Solution, classIdx int, student model.Student) float64 {
	cs := sol.ClassStats[classIdx]

	newMale := cs.MaleCount
	if student.IsMale() {
		newMale++
	}
	newSize := cs.StudentCount + 1
	maleRatio := float64(newMale) / float64(newSize)

	genderPenalty := maleRatio - 0.5
	if genderPenalty < 0 {
		genderPenalty = -genderPenalty
	}

	return cs.TotalSum + genderPenalty*genderBias
}
