// Package model 定义分班引擎的核心数据模型
package model

import "github.com/google/uuid"

// Gender 性别
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Student 学生记录（只读，加载后不可变）
//
// Scores 与全局科目顺序一一对应，所有学生的 Scores 长度必须相等。
type Student struct {
	ID     uuid.UUID
	Name   string
	Gender Gender
	Scores []float64
	Total  float64

	// Extra 是导入时保留的透传字段，原样导出，核心不解释其内容
	Extra map[string]string
}

// NewStudent 创建学生记录，Total 由 Scores 求和得出
func NewStudent(name string, gender Gender, scores []float64) Student {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	return Student{
		ID:     uuid.New(),
		Name:   name,
		Gender: gender,
		Scores: scores,
		Total:  total,
	}
}

// WithID 指定一个稳定标识符（用于从外部导入时保留学号等）
func (s Student) WithID(id uuid.UUID) Student {
	s.ID = id
	return s
}

// WithExtra 附加透传字段
func (s Student) WithExtra(extra map[string]string) Student {
	s.Extra = extra
	return s
}

// IsMale 判断是否为男生
func (s Student) IsMale() bool {
	return s.Gender == Male
}
