// Package optimizer 实现模拟退火分班求解器：单 worker 主循环与多实例并行驱动
package optimizer

import (
	"github.com/paiban/classdivider/pkg/assign/cost"
	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/assign/stats"
	"github.com/paiban/classdivider/pkg/model"
)

// Solution 是搜索过程中的工作态：学生下标到班级下标的赋值，外加每个班级的
// 增量缓存统计。Solution 只在单个 worker goroutine 内被访问，worker 之间互不
// 共享，因此内部不做任何同步。
type Solution struct {
	Assignments   []int // Assignments[studentIdx] = classIdx
	ClassStats    []stats.ClassStats
	SubjectsCount int
}

// NewSolution 创建一个容量为 numStudents/numClasses 的空解
func NewSolution(numStudents, numClasses, subjectsCount int) Solution {
	classStats := make([]stats.ClassStats, numClasses)
	for i := range classStats {
		classStats[i] = stats.NewClassStats(subjectsCount)
	}
	assignments := make([]int, numStudents)
	for i := range assignments {
		assignments[i] = -1
	}
	return Solution{Assignments: assignments, ClassStats: classStats, SubjectsCount: subjectsCount}
}

// Clone 深拷贝一个解，供 SA 在接受/拒绝分支间保留最优解快照
func (s Solution) Clone() Solution {
	assignments := make([]int, len(s.Assignments))
	copy(assignments, s.Assignments)
	classStats := make([]stats.ClassStats, len(s.ClassStats))
	for i, cs := range s.ClassStats {
		sums := make([]float64, len(cs.SubjectSums))
		copy(sums, cs.SubjectSums)
		cs.SubjectSums = sums
		classStats[i] = cs
	}
	return Solution{Assignments: assignments, ClassStats: classStats, SubjectsCount: s.SubjectsCount}
}

// AssignStudent 把学生放入指定班级，更新该班级的缓存统计
func (s *Solution) AssignStudent(studentIdx, classIdx int, student model.Student) {
	s.Assignments[studentIdx] = classIdx
	s.ClassStats[classIdx].Add(student)
}

// SwapStudents 交换两名学生所在的班级，O(1+S)：四次缓存原语更新，其余班级不受影响
func (s *Solution) SwapStudents(idx1, idx2 int, students []model.Student) {
	c1, c2 := s.Assignments[idx1], s.Assignments[idx2]
	if c1 == c2 {
		return
	}
	s.ClassStats[c1].Remove(students[idx1])
	s.ClassStats[c2].Remove(students[idx2])
	s.Assignments[idx1] = c2
	s.Assignments[idx2] = c1
	s.ClassStats[c1].Add(students[idx2])
	s.ClassStats[c2].Add(students[idx1])
}

// Cost 计算当前解的代价分解
func (s Solution) Cost(p params.OptimizationParams) cost.Breakdown {
	return cost.Evaluate(s.ClassStats, s.SubjectsCount, p)
}

// ToClasses 把内部解转换为对外暴露的 model.Class 列表，班级标识为 1..K
func (s Solution) ToClasses(students []model.Student) []model.Class {
	classes := make([]model.Class, len(s.ClassStats))
	for i := range classes {
		classes[i] = model.NewClass(i + 1)
	}
	for studentIdx, classIdx := range s.Assignments {
		classes[classIdx].AddStudent(students[studentIdx])
	}
	return classes
}
