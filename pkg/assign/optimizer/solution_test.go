package optimizer

import (
	"sync/atomic"
	"testing"

	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/model"
)

func TestSolution_AssignAndSwap(t *testing.T) {
	students := []model.Student{
		model.NewStudent("a", model.Male, []float64{10}),
		model.NewStudent("b", model.Female, []float64{20}),
	}
	sol := NewSolution(2, 2, 1)
	sol.AssignStudent(0, 0, students[0])
	sol.AssignStudent(1, 1, students[1])

	if sol.ClassStats[0].StudentCount != 1 || sol.ClassStats[1].StudentCount != 1 {
		t.Fatalf("expected one student per class after assignment")
	}

	sol.SwapStudents(0, 1, students)
	if sol.Assignments[0] != 1 || sol.Assignments[1] != 0 {
		t.Fatalf("swap did not update assignments: %v", sol.Assignments)
	}
	if sol.ClassStats[1].AvgTotal() != 10 {
		t.Errorf("class 1 avg total after swap = %v, expected 10", sol.ClassStats[1].AvgTotal())
	}
}

func TestSolution_CloneIsIndependent(t *testing.T) {
	students := []model.Student{model.NewStudent("a", model.Male, []float64{10})}
	sol := NewSolution(1, 1, 1)
	sol.AssignStudent(0, 0, students[0])

	clone := sol.Clone()
	clone.ClassStats[0].SubjectSums[0] = 999

	if sol.ClassStats[0].SubjectSums[0] == 999 {
		t.Fatalf("mutating clone leaked into original")
	}
}

func TestSolution_ToClasses(t *testing.T) {
	students := []model.Student{
		model.NewStudent("a", model.Male, []float64{10}),
		model.NewStudent("b", model.Female, []float64{20}),
	}
	sol := NewSolution(2, 2, 1)
	sol.AssignStudent(0, 0, students[0])
	sol.AssignStudent(1, 1, students[1])

	classes := sol.ToClasses(students)
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	if classes[0].Size() != 1 || classes[1].Size() != 1 {
		t.Errorf("expected 1 student per class")
	}
}

func TestParallelSearch_ReturnsBestAcrossInstances(t *testing.T) {
	students := []model.Student{
		model.NewStudent("a", model.Male, []float64{90}),
		model.NewStudent("b", model.Female, []float64{85}),
		model.NewStudent("c", model.Male, []float64{70}),
		model.NewStudent("d", model.Female, []float64{95}),
	}

	initials := make([]Solution, 2)
	for i := range initials {
		sol := NewSolution(len(students), 2, 1)
		for idx, s := range students {
			sol.AssignStudent(idx, idx%2, s)
		}
		initials[i] = sol
	}

	p := params.Default()
	result := ParallelSearch(initials, students, 200, p, 42, &atomic.Bool{})

	classes := result.Best.ToClasses(students)
	total := 0
	for _, c := range classes {
		total += c.Size()
	}
	if total != len(students) {
		t.Fatalf("best solution covers %d students, expected %d", total, len(students))
	}
}
