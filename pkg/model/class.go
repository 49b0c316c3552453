package model

// Class 是分班结果中的一个班级：学生列表的顺序无关紧要
type Class struct {
	ID       int
	Students []Student
}

// NewClass 创建一个空班级
func NewClass(id int) Class {
	return Class{ID: id, Students: make([]Student, 0, 32)}
}

// AddStudent 把学生加入班级
func (c *Class) AddStudent(s Student) {
	c.Students = append(c.Students, s)
}

// Size 返回班级人数
func (c Class) Size() int {
	return len(c.Students)
}

// MaleCount 返回男生人数
func (c Class) MaleCount() int {
	n := 0
	for _, s := range c.Students {
		if s.IsMale() {
			n++
		}
	}
	return n
}

// FemaleCount 返回女生人数
func (c Class) FemaleCount() int {
	return c.Size() - c.MaleCount()
}

// GenderRatio 返回男生占比，空班级返回 0
//
// 空班级的占比约定与 pkg/assign/stats.ClassStats.MaleRatio（返回 0.5）不同：
// 这里服务于事后报表统计，0 更适合表示"无数据"；MaleRatio 服务于搜索过程中
// 的代价评估，0.5 避免把空班级当作极端失衡来惩罚。
func (c Class) GenderRatio() float64 {
	total := c.Size()
	if total == 0 {
		return 0
	}
	return float64(c.MaleCount()) / float64(total)
}

// AvgTotal 返回总分平均值，空班级返回 0
func (c Class) AvgTotal() float64 {
	if len(c.Students) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range c.Students {
		sum += s.Total
	}
	return sum / float64(len(c.Students))
}

// AvgSubject 按下标返回某一科目的平均分，空班级或下标越界返回 0
func (c Class) AvgSubject(subjectIdx int) float64 {
	if len(c.Students) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range c.Students {
		if subjectIdx < len(s.Scores) {
			sum += s.Scores[subjectIdx]
		}
	}
	return sum / float64(len(c.Students))
}
