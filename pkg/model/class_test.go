package model

import "testing"

func TestClass_GenderRatio(t *testing.T) {
	tests := []struct {
		name     string
		students []Student
		expected float64
	}{
		{
			name:     "空班级",
			students: nil,
			expected: 0,
		},
		{
			name: "全男生",
			students: []Student{
				NewStudent("a", Male, []float64{1}),
				NewStudent("b", Male, []float64{1}),
			},
			expected: 1.0,
		},
		{
			name: "一男一女",
			students: []Student{
				NewStudent("a", Male, []float64{1}),
				NewStudent("b", Female, []float64{1}),
			},
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Class{ID: 0, Students: tt.students}
			if got := c.GenderRatio(); got != tt.expected {
				t.Errorf("GenderRatio() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestClass_AvgTotal(t *testing.T) {
	c := Class{Students: []Student{
		NewStudent("a", Male, []float64{10, 20}),
		NewStudent("b", Female, []float64{30, 40}),
	}}

	if got := c.AvgTotal(); got != 50 {
		t.Errorf("AvgTotal() = %v, expected 50", got)
	}
	if got := c.AvgSubject(0); got != 20 {
		t.Errorf("AvgSubject(0) = %v, expected 20", got)
	}
}

func TestStudent_NewStudent(t *testing.T) {
	s := NewStudent("alice", Female, []float64{90, 80, 70})
	if s.Total != 240 {
		t.Errorf("Total = %v, expected 240", s.Total)
	}
	if s.IsMale() {
		t.Error("alice 不应为男生")
	}
}
