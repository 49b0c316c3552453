package initializer

import (
	"testing"

	"github.com/paiban/classdivider/pkg/model"
)

func TestBuildInitial_CoversAllStudentsAndBalancesSize(t *testing.T) {
	students := make([]model.Student, 0, 12)
	for i := 0; i < 6; i++ {
		students = append(students, model.NewStudent("m", model.Male, []float64{float64(60 + i)}))
		students = append(students, model.NewStudent("f", model.Female, []float64{float64(60 + i)}))
	}

	sol := BuildInitial(students, 3, 1)

	total := 0
	for _, cs := range sol.ClassStats {
		total += cs.StudentCount
	}
	if total != len(students) {
		t.Fatalf("initial solution covers %d students, expected %d", total, len(students))
	}

	min, max := sol.ClassStats[0].StudentCount, sol.ClassStats[0].StudentCount
	for _, cs := range sol.ClassStats {
		if cs.StudentCount < min {
			min = cs.StudentCount
		}
		if cs.StudentCount > max {
			max = cs.StudentCount
		}
	}
	if max-min > 1 {
		t.Errorf("class sizes not balanced: min=%d max=%d", min, max)
	}
}

func TestBuildInitial_GenderBiasTowardsBalance(t *testing.T) {
	students := []model.Student{
		model.NewStudent("m1", model.Male, []float64{90}),
		model.NewStudent("m2", model.Male, []float64{90}),
		model.NewStudent("f1", model.Female, []float64{90}),
		model.NewStudent("f2", model.Female, []float64{90}),
	}
	sol := BuildInitial(students, 2, 1)

	for i, cs := range sol.ClassStats {
		if cs.StudentCount > 0 && (cs.MaleCount == cs.StudentCount || cs.FemaleCount == cs.StudentCount) {
			t.Errorf("class %d is single-gender: male=%d female=%d", i, cs.MaleCount, cs.FemaleCount)
		}
	}
}
