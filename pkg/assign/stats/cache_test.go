package stats

import (
	"testing"

	"github.com/paiban/classdivider/pkg/model"
)

func TestClassStats_AddRemove(t *testing.T) {
	cs := NewClassStats(2)
	a := model.NewStudent("a", model.Male, []float64{10, 20})
	b := model.NewStudent("b", model.Female, []float64{30, 40})

	cs.Add(a)
	cs.Add(b)

	if cs.StudentCount != 2 {
		t.Fatalf("StudentCount = %d, expected 2", cs.StudentCount)
	}
	if got := cs.AvgTotal(); got != 50 {
		t.Errorf("AvgTotal() = %v, expected 50", got)
	}
	if got := cs.AvgSubject(1); got != 30 {
		t.Errorf("AvgSubject(1) = %v, expected 30", got)
	}
	if cs.MaleCount != 1 || cs.FemaleCount != 1 {
		t.Errorf("MaleCount=%d FemaleCount=%d, expected 1/1", cs.MaleCount, cs.FemaleCount)
	}

	cs.Remove(a)
	if cs.StudentCount != 1 {
		t.Fatalf("StudentCount after remove = %d, expected 1", cs.StudentCount)
	}
	if got := cs.AvgTotal(); got != 70 {
		t.Errorf("AvgTotal() after remove = %v, expected 70", got)
	}
	if cs.MaleCount != 0 {
		t.Errorf("MaleCount after remove = %d, expected 0", cs.MaleCount)
	}
}

func TestClassStats_EmptyMaleRatio(t *testing.T) {
	cs := NewClassStats(0)
	if got := cs.MaleRatio(); got != 0.5 {
		t.Errorf("MaleRatio() on empty class = %v, expected 0.5", got)
	}
}

func TestBuildDetailedReport_Empty(t *testing.T) {
	r := BuildDetailedReport(nil, 0)
	if r.Overall.Mean != 0 {
		t.Errorf("expected zero-value report for empty input")
	}
}
