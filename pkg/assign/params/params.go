// Package params 定义分班优化的参数配置及预设
package params

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// OptimizationParams 包含所有约束阈值和代价函数权重参数
//
// 字段分四组：硬约束阈值、硬约束惩罚权重、软约束优化权重、模拟退火与早停/重启参数。
type OptimizationParams struct {
	// ===== 硬约束阈值 =====
	MaxScoreDiff        float64 `validate:"gte=0"`
	MaxSubjectScoreDiff float64 `validate:"gte=0"`
	MaxClassSizeDiff    int     `validate:"gte=0"`
	MaxGenderRatioDiff  float64 `validate:"gte=0,lte=1"`

	// ===== 硬约束惩罚权重 =====
	TotalScorePenaltyWeight   float64 `validate:"gt=0"`
	SubjectScorePenaltyWeight float64 `validate:"gt=0"`
	// ClassSizePenaltyWeight 班级人数差超出阈值的惩罚权重。
	// 未显式设置时默认等于 SubjectScorePenaltyWeight（见 Default）。
	ClassSizePenaltyWeight  float64 `validate:"gt=0"`
	GenderRatioPenaltyWeight float64 `validate:"gt=0"`
	// PenaltyPower 惩罚函数的幂次，越高越严格
	PenaltyPower int `validate:"gte=1"`

	// ===== 软约束优化权重 =====
	TotalVarianceWeight   float64 `validate:"gte=0"`
	GenderVarianceWeight  float64 `validate:"gte=0"`
	SubjectVarianceWeight float64 `validate:"gte=0"`

	// ===== 模拟退火参数 =====
	InitialTemperature         float64 `validate:"gt=0"`
	CoolingRate                float64 `validate:"gt=0,lt=1"`
	NumParallelInstances       int     `validate:"gte=0"` // 0 表示自动检测
	TemperatureDiversityDelta  float64 `validate:"gte=0"`

	// ===== 早停与重启参数 =====
	GoodSolutionThreshold  float64 `validate:"gte=0"`
	ReheatAfterIterations  int     `validate:"gt=0"`
	ReheatTemperatureFactor float64 `validate:"gt=0,lt=1"`
	ReheatMinAcceptCount   int     `validate:"gte=0"`

	// SameGenderSwapProbability 是 SA 每次迭代选择同性别交换（优化分数）而非
	// 跨性别交换（优化性别比例）的概率
	SameGenderSwapProb float64 `validate:"gte=0,lte=1"`
}

// SameGenderSwapProbability 返回同性别交换概率，未显式设置时回退到默认值 0.4
func (p OptimizationParams) SameGenderSwapProbability() float64 {
	if p.SameGenderSwapProb == 0 {
		return 0.4
	}
	return p.SameGenderSwapProb
}

// Default 返回默认参数配置
func Default() OptimizationParams {
	p := OptimizationParams{
		MaxScoreDiff:        1.0,
		MaxSubjectScoreDiff: 1.0,
		MaxClassSizeDiff:    5,
		MaxGenderRatioDiff:  0.1,

		TotalScorePenaltyWeight:   1_000_000_000.0,
		SubjectScorePenaltyWeight: 1_000_000_000.0,
		GenderRatioPenaltyWeight:  100_000_000_000.0,
		PenaltyPower:              6,

		TotalVarianceWeight:   10.0,
		GenderVarianceWeight:  5000.0,
		SubjectVarianceWeight: 50.0,

		InitialTemperature:        10_000.0,
		CoolingRate:               0.99990,
		NumParallelInstances:      0,
		TemperatureDiversityDelta: 1_000.0,

		GoodSolutionThreshold:   1.0,
		ReheatAfterIterations:   1_000,
		ReheatTemperatureFactor: 0.5,
		ReheatMinAcceptCount:    100,
		SameGenderSwapProb:      0.4,
	}
	// ClassSizePenaltyWeight 默认跟随科目分惩罚权重，专用班级人数差阈值未在原版
	// 参数集中单独出现，这里给出一个可独立调节的默认值。
	p.ClassSizePenaltyWeight = p.SubjectScorePenaltyWeight
	return p
}

// Relaxed 返回更宽松的参数配置（更快但可能不太精确）
func Relaxed() OptimizationParams {
	p := Default()
	p.MaxScoreDiff = 2.0
	p.MaxSubjectScoreDiff = 2.0
	p.MaxGenderRatioDiff = 0.15
	p.PenaltyPower = 3
	p.InitialTemperature = 8_000.0
	p.CoolingRate = 0.9995
	p.ClassSizePenaltyWeight = p.SubjectScorePenaltyWeight
	return p
}

// Strict 返回更严格的参数配置（更慢但更精确）
func Strict() OptimizationParams {
	p := Default()
	p.MaxScoreDiff = 0.5
	p.MaxSubjectScoreDiff = 0.5
	p.MaxGenderRatioDiff = 0.05
	p.PenaltyPower = 5
	p.TotalScorePenaltyWeight = 5_000_000_000.0
	p.SubjectScorePenaltyWeight = 5_000_000_000.0
	p.GenderRatioPenaltyWeight = 5_000_000_000.0
	p.InitialTemperature = 15_000.0
	p.CoolingRate = 0.99995
	p.ClassSizePenaltyWeight = p.SubjectScorePenaltyWeight
	return p
}

// Adaptive 根据学生规模自适应调整参数
func Adaptive(studentCount int) OptimizationParams {
	p := Default()
	switch {
	case studentCount > 2000:
		p.InitialTemperature *= 3.0
		p.CoolingRate = 0.99992
	case studentCount > 1000:
		p.InitialTemperature *= 2.0
		p.CoolingRate = 0.99991
	}
	return p
}

// Validate 校验参数取值是否合理，返回所有违反约束的字段错误（validator.ValidationErrors）
func (p OptimizationParams) Validate() error {
	return validate.Struct(p)
}
