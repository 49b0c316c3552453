// Package assign is the façade of the classroom-assignment engine: it wires
// the LPT initializer, the parallel simulated-annealing driver and the
// constraint validator behind its entry points, DivideStudents and
// ValidateConstraints / ValidateConstraintsWithParams.
package assign

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/paiban/classdivider/pkg/assign/initializer"
	"github.com/paiban/classdivider/pkg/assign/optimizer"
	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/assign/stats"
	"github.com/paiban/classdivider/pkg/assign/validator"
	"github.com/paiban/classdivider/pkg/errors"
	"github.com/paiban/classdivider/pkg/logger"
	"github.com/paiban/classdivider/pkg/model"
)

// Config 是一次分班调用的配置
type Config struct {
	NumClasses        int
	MaxIterations     int // 单个 worker 的迭代上限
	OptimizationParams params.OptimizationParams
}

// NewConfig 创建一个使用默认优化参数的配置
func NewConfig(numClasses int) Config {
	return Config{
		NumClasses:        numClasses,
		MaxIterations:     300_000,
		OptimizationParams: params.Default(),
	}
}

var engineLog = logger.NewEngineLogger()

// DivideStudents 是核心入口：把学生划分为 config.NumClasses 个班级
//
// 配置错误（K<1、K>N、科目向量长度不一致、参数取值不合理）在任何 worker
// 启动之前于此返回，不做任何部分工作。
func DivideStudents(ctx context.Context, students []model.Student, config Config) ([]model.Class, error) {
	if len(students) == 0 {
		return nil, errors.EmptyInput()
	}
	if config.NumClasses < 1 {
		return nil, errors.InvalidConfiguration("num_classes 必须 >= 1")
	}
	if config.NumClasses > len(students) {
		return nil, errors.InvalidConfiguration("num_classes 不能大于学生人数")
	}
	subjectsCount, err := consistentSubjectCount(students)
	if err != nil {
		return nil, err
	}
	if err := config.OptimizationParams.Validate(); err != nil {
		return nil, errors.InvalidConfiguration(err.Error())
	}

	start := time.Now()

	if config.NumClasses == len(students) {
		// 平凡情形：每个学生独占一个班级，无需搜索；班级标识为 1..K
		classes := make([]model.Class, config.NumClasses)
		for i := range classes {
			classes[i] = model.NewClass(i + 1)
		}
		for i, s := range students {
			classes[i].AddStudent(s)
		}
		engineLog.DivideComplete(time.Since(start), 0, true)
		return classes, nil
	}

	numInstances := resolveNumInstances(config.OptimizationParams.NumParallelInstances, len(students))
	adjustedIterations := adjustIterations(config.MaxIterations, len(students))

	engineLog.StartDivide(len(students), config.NumClasses, numInstances)

	initials := make([]optimizer.Solution, numInstances)
	for i := range initials {
		initials[i] = initializer.BuildInitial(students, config.NumClasses, subjectsCount)
	}

	// earlyStop 是唯一跨 worker 共享的可变状态；ctx 取消时从外部置位，与 worker
	// 内部发现满意解时置位走的是同一条路径，无需额外的取消机制。
	earlyStop := &atomic.Bool{}
	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		select {
		case <-ctx.Done():
			earlyStop.Store(true)
		case <-stopWatch:
		}
	}()

	seed := time.Now().UnixNano()
	result := optimizer.ParallelSearch(initials, students, adjustedIterations, config.OptimizationParams, seed, earlyStop)

	classes := result.Best.ToClasses(students)
	report := validator.ValidateWithParams(classes, config.OptimizationParams)
	engineLog.DivideComplete(time.Since(start), result.BestCost, report.Feasible())

	if err := ctx.Err(); err != nil {
		return classes, err
	}

	return classes, nil
}

// ValidateConstraints 使用默认参数校验分班结果
func ValidateConstraints(classes []model.Class) validator.Report {
	return validator.Validate(classes)
}

// ValidateConstraintsWithParams 使用自定义参数校验分班结果
func ValidateConstraintsWithParams(classes []model.Class, p params.OptimizationParams) validator.Report {
	return validator.ValidateWithParams(classes, p)
}

// BuildReport 基于最终分班结果构建补充性统计报告，供调用方展示或归档；不参与
// 代价评估，也不在任何 worker 的热循环中被调用。
func BuildReport(classes []model.Class) stats.DetailedReport {
	subjectsCount := 0
	if len(classes) > 0 {
		for _, s := range classes[0].Students {
			subjectsCount = len(s.Scores)
			break
		}
	}
	return stats.BuildDetailedReport(classes, subjectsCount)
}

// consistentSubjectCount 校验所有学生的科目向量长度一致，返回该长度
func consistentSubjectCount(students []model.Student) (int, error) {
	subjectsCount := len(students[0].Scores)
	for _, s := range students[1:] {
		if len(s.Scores) != subjectsCount {
			return 0, errors.InvalidConfiguration("所有学生的科目分数向量长度必须一致")
		}
	}
	return subjectsCount, nil
}

// resolveNumInstances 决定并行实例数：显式配置优先，否则按硬件并发数与数据
// 规模取 min
func resolveNumInstances(explicit int, numStudents int) int {
	if explicit > 0 {
		return explicit
	}
	cap := sizeAdaptiveCap(numStudents)
	numCPU := runtime.NumCPU()
	if numCPU < cap {
		return numCPU
	}
	return cap
}

func sizeAdaptiveCap(numStudents int) int {
	switch {
	case numStudents > 2000:
		return 16
	case numStudents > 1000:
		return 12
	case numStudents > 500:
		return 8
	default:
		return 4
	}
}

// adjustIterations 按数据规模放大迭代预算，保证大规模问题仍有足够搜索空间
func adjustIterations(maxIterations, numStudents int) int {
	switch {
	case numStudents > 3000:
		return maxInt(maxIterations, 500_000)
	case numStudents > 1000:
		return maxInt(maxIterations, 400_000)
	default:
		return maxInt(maxIterations, 300_000)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
