package optimizer

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/model"
)

// ParallelSearch 启动 numInstances 个独立的 SA worker，每个 worker 使用自己的
// 初始解、随机数流和一个按实例编号错开的初始温度 T_i = initial_temperature +
// i·temperature_diversity_delta，从而在不牺牲收敛速度的前提下增加搜索多样性。
//
// 唯一跨 worker 共享的状态是 earlyStop：任意 worker 发现硬约束零违反且代价低于
// good_solution_threshold 的新最优解时将其置位，其余 worker 在下一次 1000 的倍数
// 迭代边界上观察到后提前退出。没有锁，没有其他共享可变状态。
func ParallelSearch(
	initials []Solution,
	students []model.Student,
	maxIterationsPerInstance int,
	p params.OptimizationParams,
	seed int64,
	earlyStop *atomic.Bool,
) WorkerResult {
	numInstances := len(initials)
	results := make([]WorkerResult, numInstances)

	var wg sync.WaitGroup
	for i := 0; i < numInstances; i++ {
		wg.Add(1)
		go func(instance int) {
			defer wg.Done()
			temp := p.InitialTemperature + float64(instance)*p.TemperatureDiversityDelta
			rng := rand.New(rand.NewSource(seed + int64(instance)))
			result := RunWorker(initials[instance], students, maxIterationsPerInstance, temp, p, earlyStop, rng)
			result.Instance = instance
			results[instance] = result
		}(i)
	}
	wg.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.BestCost < best.BestCost {
			best = r
		}
	}
	return best
}
