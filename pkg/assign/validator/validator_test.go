package validator

import (
	"testing"

	"github.com/paiban/classdivider/pkg/model"
)

func TestValidate_FeasibleSolution(t *testing.T) {
	classes := []model.Class{
		{ID: 0, Students: []model.Student{
			model.NewStudent("a", model.Male, []float64{90}),
			model.NewStudent("b", model.Female, []float64{90}),
		}},
		{ID: 1, Students: []model.Student{
			model.NewStudent("c", model.Male, []float64{90}),
			model.NewStudent("d", model.Female, []float64{90}),
		}},
	}

	report := Validate(classes)
	if !report.Feasible() {
		t.Fatalf("expected feasible report, got %+v", report)
	}
}

func TestValidate_GenderImbalanceViolatesConstraint(t *testing.T) {
	classes := []model.Class{
		{ID: 0, Students: []model.Student{
			model.NewStudent("a", model.Male, []float64{90}),
			model.NewStudent("b", model.Male, []float64{90}),
		}},
		{ID: 1, Students: []model.Student{
			model.NewStudent("c", model.Female, []float64{90}),
			model.NewStudent("d", model.Female, []float64{90}),
		}},
	}

	report := Validate(classes)
	if report.GenderConstraintMet {
		t.Fatalf("expected gender constraint violation, got %+v", report)
	}
	if report.Feasible() {
		t.Errorf("report should not be feasible when gender constraint fails")
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	report := Validate(nil)
	if !report.Feasible() {
		t.Errorf("empty input should be trivially feasible")
	}
}
