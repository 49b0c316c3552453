package assign

import (
	"context"
	"testing"

	"github.com/paiban/classdivider/pkg/model"
)

func newScoreStudent(name string, gender model.Gender, score float64) model.Student {
	return model.NewStudent(name, gender, []float64{score})
}

// 平凡情形：N=4, K=2，总分相同、性别各半，最优解应当完全均衡。
func TestDivideStudents_Trivial(t *testing.T) {
	students := []model.Student{
		newScoreStudent("a", model.Male, 10),
		newScoreStudent("b", model.Male, 10),
		newScoreStudent("c", model.Female, 10),
		newScoreStudent("d", model.Female, 10),
	}

	classes, err := DivideStudents(context.Background(), students, NewConfig(2))
	if err != nil {
		t.Fatalf("DivideStudents returned error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}

	total := 0
	for _, c := range classes {
		total += c.Size()
		if c.Size() != 2 {
			t.Errorf("class %d has size %d, expected 2", c.ID, c.Size())
		}
		if c.MaleCount() != 1 || c.FemaleCount() != 1 {
			t.Errorf("class %d not gender-balanced: male=%d female=%d", c.ID, c.MaleCount(), c.FemaleCount())
		}
	}
	if total != len(students) {
		t.Fatalf("partition does not cover all students: got %d, expected %d", total, len(students))
	}

	report := ValidateConstraints(classes)
	if report.MaxScoreDiff != 0 || report.MaxGenderRatioDiff != 0 {
		t.Errorf("expected zero diffs on uniform input, got score=%v gender=%v", report.MaxScoreDiff, report.MaxGenderRatioDiff)
	}
}

// 单科不均：最优解把 (100,50) (90,60) (80,70) 两两配对，三班均值均为 75。
func TestDivideStudents_SingleSubjectUneven(t *testing.T) {
	scores := []float64{100, 90, 80, 70, 60, 50}
	genders := []model.Gender{model.Male, model.Female, model.Male, model.Female, model.Male, model.Female}
	students := make([]model.Student, len(scores))
	for i := range scores {
		students[i] = newScoreStudent("s", genders[i], scores[i])
	}

	classes, err := DivideStudents(context.Background(), students, NewConfig(3))
	if err != nil {
		t.Fatalf("DivideStudents returned error: %v", err)
	}

	for _, c := range classes {
		if c.Size() != 2 {
			t.Errorf("class %d has size %d, expected 2", c.ID, c.Size())
		}
	}

	report := ValidateConstraints(classes)
	if !report.ScoreConstraintMet {
		t.Errorf("expected score constraint satisfied with default thresholds, got diff=%v", report.MaxScoreDiff)
	}
}

// 全员同性别：性别约束在定义上必然满足（方差为零）。
func TestDivideStudents_InfeasibleGenderIsTriviallySatisfied(t *testing.T) {
	students := []model.Student{
		newScoreStudent("a", model.Male, 80),
		newScoreStudent("b", model.Male, 85),
		newScoreStudent("c", model.Male, 90),
	}

	classes, err := DivideStudents(context.Background(), students, NewConfig(3))
	if err != nil {
		t.Fatalf("DivideStudents returned error: %v", err)
	}

	for _, c := range classes {
		if c.GenderRatio() != 1.0 {
			t.Errorf("class %d male ratio = %v, expected 1.0", c.ID, c.GenderRatio())
		}
	}

	report := ValidateConstraints(classes)
	if report.MaxGenderRatioDiff != 0 || !report.GenderConstraintMet {
		t.Errorf("expected zero gender diff and satisfied constraint, got %+v", report)
	}
}

func TestDivideStudents_EmptyInput(t *testing.T) {
	_, err := DivideStudents(context.Background(), nil, NewConfig(2))
	if err == nil {
		t.Fatal("expected EmptyInput error for empty student list")
	}
}

func TestDivideStudents_NumClassesExceedsStudentsIsInvalidConfiguration(t *testing.T) {
	students := []model.Student{newScoreStudent("a", model.Male, 10)}
	_, err := DivideStudents(context.Background(), students, NewConfig(2))
	if err == nil {
		t.Fatal("expected InvalidConfiguration error when K > N")
	}
}

func TestDivideStudents_InconsistentSubjectVectorsIsInvalidConfiguration(t *testing.T) {
	students := []model.Student{
		model.NewStudent("a", model.Male, []float64{10, 20}),
		model.NewStudent("b", model.Female, []float64{10}),
	}
	_, err := DivideStudents(context.Background(), students, NewConfig(1))
	if err == nil {
		t.Fatal("expected InvalidConfiguration error for mismatched subject vector lengths")
	}
}

// 分区律：交换两名学生后，班级总人数、总分总和与各科目总和在全局层面保持不变。
func TestSwap_PreservesGlobalSums(t *testing.T) {
	students := []model.Student{
		model.NewStudent("a", model.Male, []float64{10, 5}),
		model.NewStudent("b", model.Female, []float64{20, 15}),
		model.NewStudent("c", model.Male, []float64{30, 25}),
		model.NewStudent("d", model.Female, []float64{40, 35}),
	}
	classes, err := DivideStudents(context.Background(), students, NewConfig(2))
	if err != nil {
		t.Fatalf("DivideStudents returned error: %v", err)
	}

	var totalSum, subj0Sum, subj1Sum float64
	n := 0
	for _, c := range classes {
		n += c.Size()
		for _, s := range c.Students {
			totalSum += s.Total
			subj0Sum += s.Scores[0]
			subj1Sum += s.Scores[1]
		}
	}

	if n != len(students) {
		t.Errorf("total students = %d, expected %d", n, len(students))
	}
	if totalSum != 180 {
		t.Errorf("total sum = %v, expected 180", totalSum)
	}
	if subj0Sum != 100 || subj1Sum != 80 {
		t.Errorf("subject sums = (%v, %v), expected (100, 80)", subj0Sum, subj1Sum)
	}
}

func TestBuildReport_ReflectsFinalPartition(t *testing.T) {
	students := []model.Student{
		newScoreStudent("a", model.Male, 10),
		newScoreStudent("b", model.Male, 10),
		newScoreStudent("c", model.Female, 10),
		newScoreStudent("d", model.Female, 10),
	}

	classes, err := DivideStudents(context.Background(), students, NewConfig(2))
	if err != nil {
		t.Fatalf("DivideStudents returned error: %v", err)
	}

	report := BuildReport(classes)
	if len(report.ClassSizes) != 2 {
		t.Fatalf("expected 2 class sizes in report, got %d", len(report.ClassSizes))
	}
	if len(report.Subjects) != 1 {
		t.Fatalf("expected 1 subject report, got %d", len(report.Subjects))
	}
	if report.Overall.Mean != 10 {
		t.Errorf("expected overall mean 10 on uniform scores, got %v", report.Overall.Mean)
	}
	if report.GenderBalance.RatioVariance != 0 {
		t.Errorf("expected zero gender-ratio variance on balanced classes, got %v", report.GenderBalance.RatioVariance)
	}
}
