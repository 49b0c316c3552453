package optimizer

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/paiban/classdivider/pkg/assign/params"
	"github.com/paiban/classdivider/pkg/model"
)

// genderIndex 按性别分组的学生下标，供 worker 选择交换对时复用，避免每次迭代
// 都重新扫描全体学生。
type genderIndex struct {
	male   []int
	female []int
}

func buildGenderIndex(students []model.Student) genderIndex {
	gi := genderIndex{}
	for idx, s := range students {
		if s.IsMale() {
			gi.male = append(gi.male, idx)
		} else {
			gi.female = append(gi.female, idx)
		}
	}
	return gi
}

// WorkerResult 是单个 worker 结束搜索后的产出
type WorkerResult struct {
	Best      Solution
	BestCost  float64
	Instance  int
	Iterations int
}

// RunWorker 执行一次模拟退火搜索：以 initial 为起点，每 1000 次迭代检查一次
// earlyStop（跨 worker 共享的唯一状态）；发现硬约束零违反且软代价低于
// GoodSolutionThreshold 的新最优解时将其置位。
//
// acceptCount 只在接受的移动刷新 best（而非每次接受）时加一，与
// iterationsSinceImprovement 一起构成重新加热窗口的判据，二者仅在新最优或
// 重新加热触发时清零；冷却每次迭代都发生，重新加热在命中时覆盖当次冷却结果。
//
// rng 由调用方传入，使每个 worker 拥有独立的随机数流。
func RunWorker(
	initial Solution,
	students []model.Student,
	maxIterations int,
	initialTemp float64,
	p params.OptimizationParams,
	earlyStop *atomic.Bool,
	rng *rand.Rand,
) WorkerResult {
	current := initial.Clone()
	best := current.Clone()
	currentCost := current.Cost(p).Total
	bestCost := currentCost

	temperature := initialTemp
	gi := buildGenderIndex(students)

	acceptCount := 0
	iterationsSinceImprovement := 0

	iter := 0
	for ; iter < maxIterations; iter++ {
		if iter%1000 == 0 && earlyStop.Load() {
			break
		}

		idx1, idx2, ok := pickSwapPair(gi, rng, p.SameGenderSwapProbability())
		if !ok {
			continue
		}
		if idx1 == idx2 || current.Assignments[idx1] == current.Assignments[idx2] {
			continue
		}

		current.SwapStudents(idx1, idx2, students)
		breakdown := current.Cost(p)
		newCost := breakdown.Total
		delta := newCost - currentCost

		accept := delta < 0 || rng.Float64() < math.Exp(-delta/temperature)
		if accept {
			currentCost = newCost

			if newCost < bestCost {
				best = current.Clone()
				bestCost = newCost
				iterationsSinceImprovement = 0
				acceptCount++

				// 早停要求硬约束零违反且软代价低于阈值；仅比较总代价会在
				// "软代价很好但硬约束违反"的解上误触发。
				if breakdown.HardPenalty == 0 && breakdown.SoftCost < p.GoodSolutionThreshold {
					earlyStop.Store(true)
				}
			} else {
				iterationsSinceImprovement++
			}
		} else {
			current.SwapStudents(idx1, idx2, students) // 撤销交换
			iterationsSinceImprovement++
		}

		// 冷却每次迭代都发生；重新加热在停滞窗口内命中时覆盖当次冷却结果。
		temperature *= p.CoolingRate
		if iterationsSinceImprovement > p.ReheatAfterIterations && acceptCount < p.ReheatMinAcceptCount {
			temperature = initialTemp * p.ReheatTemperatureFactor
			iterationsSinceImprovement = 0
			acceptCount = 0
		}
	}

	return WorkerResult{Best: best, BestCost: bestCost, Iterations: iter}
}

// pickSwapPair 以 sameGenderProb 的概率选择同性别交换对（优化分数），否则选择
// 跨性别交换对（优化性别比例）。ok=false 表示候选集合不足，应跳过本次迭代。
func pickSwapPair(gi genderIndex, rng *rand.Rand, sameGenderProb float64) (int, int, bool) {
	sameGenderSwap := rng.Float64() < sameGenderProb

	if sameGenderSwap {
		indices := gi.male
		useMale := rng.Float64() < 0.5
		switch {
		case useMale && len(gi.male) >= 2:
			indices = gi.male
		case !useMale && len(gi.female) >= 2:
			indices = gi.female
		case len(gi.male) >= 2:
			indices = gi.male
		case len(gi.female) >= 2:
			indices = gi.female
		default:
			return 0, 0, false
		}
		i1 := indices[rng.Intn(len(indices))]
		i2 := indices[rng.Intn(len(indices))]
		return i1, i2, true
	}

	if len(gi.male) == 0 || len(gi.female) == 0 {
		return 0, 0, false
	}
	maleIdx := gi.male[rng.Intn(len(gi.male))]
	femaleIdx := gi.female[rng.Intn(len(gi.female))]
	return maleIdx, femaleIdx, true
}
