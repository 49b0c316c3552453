// Package stats 提供分班优化过程中的缓存统计与结果级统计报告
package stats

import "github.com/paiban/classdivider/pkg/model"

// ClassStats 是某个班级的增量缓存统计：总分和、各科目分和、男女人数、人数。
//
// 所有字段只能通过 Add/Remove 维护，禁止绕过它们直接修改，否则缓存会与真实
// 学生列表脱节。Add/Remove 均为 O(1+S)，S 为科目数，避免每次挪动学生都要
// 重新扫描班级全体学生。
type ClassStats struct {
	TotalSum     float64
	SubjectSums  []float64 // 按全局科目顺序排列
	StudentCount int
	MaleCount    int
	FemaleCount  int
}

// NewClassStats 创建一个初始为空的缓存，subjectsCount 为科目数量
func NewClassStats(subjectsCount int) ClassStats {
	return ClassStats{SubjectSums: make([]float64, subjectsCount)}
}

// FromStudents 通过扫描学生列表重建缓存（仅用于初始化或纠偏，非热路径）
func FromStudents(students []model.Student, subjectsCount int) ClassStats {
	cs := NewClassStats(subjectsCount)
	for _, s := range students {
		cs.Add(s)
	}
	return cs
}

// Add 把一名学生计入缓存
func (cs *ClassStats) Add(s model.Student) {
	cs.TotalSum += s.Total
	for i, v := range s.Scores {
		if i < len(cs.SubjectSums) {
			cs.SubjectSums[i] += v
		}
	}
	cs.StudentCount++
	if s.IsMale() {
		cs.MaleCount++
	} else {
		cs.FemaleCount++
	}
}

// Remove 把一名学生从缓存中移除
func (cs *ClassStats) Remove(s model.Student) {
	cs.TotalSum -= s.Total
	for i, v := range s.Scores {
		if i < len(cs.SubjectSums) {
			cs.SubjectSums[i] -= v
		}
	}
	cs.StudentCount--
	if s.IsMale() {
		cs.MaleCount--
	} else {
		cs.FemaleCount--
	}
}

// AvgTotal 返回总分均值，空班级返回 0
func (cs ClassStats) AvgTotal() float64 {
	if cs.StudentCount == 0 {
		return 0
	}
	return cs.TotalSum / float64(cs.StudentCount)
}

// AvgSubject 返回指定科目均值，空班级或下标越界返回 0
func (cs ClassStats) AvgSubject(idx int) float64 {
	if cs.StudentCount == 0 || idx >= len(cs.SubjectSums) {
		return 0
	}
	return cs.SubjectSums[idx] / float64(cs.StudentCount)
}

// MaleRatio 返回男生占比，空班级按 0.5 计（与原实现一致，避免空班级被误判为
// 性别失衡而吸收惩罚）
func (cs ClassStats) MaleRatio() float64 {
	if cs.StudentCount == 0 {
		return 0.5
	}
	return float64(cs.MaleCount) / float64(cs.StudentCount)
}
