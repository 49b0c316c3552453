// Package history 持久化分班运行记录，供调用方回顾历次分班的参数与结果
//
// 这是对原始实现里本地 JSON 历史文件（保留最近 50 条）的补充性重写：同样的
// "保留最近 N 条" 语义，换成教学资料里 Postgres + lib/pq 的持久化方式。
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paiban/classdivider/internal/config"
	"github.com/paiban/classdivider/internal/database"
	"github.com/paiban/classdivider/internal/repository"
	"github.com/paiban/classdivider/pkg/assign/params"
)

// RunRecord 是一次分班调用的历史记录
type RunRecord struct {
	ID                uuid.UUID                 `json:"id"`
	RunAt             time.Time                 `json:"run_at"`
	NumStudents       int                       `json:"num_students"`
	NumClasses        int                       `json:"num_classes"`
	OptimizationParams params.OptimizationParams `json:"optimization_params"`
	BestCost          float64                   `json:"best_cost"`
	Feasible          bool                      `json:"feasible"`
	Duration          time.Duration             `json:"duration"`
}

// Store 是运行历史的仓储接口
type Store interface {
	// Record 写入一条运行记录，并把表裁剪到最多 maxRecords 条（最旧的被删除）
	Record(ctx context.Context, record RunRecord) error
	// Recent 按时间倒序返回最近的运行记录
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
}

// PostgresStore 是 Store 的 Postgres 实现
type PostgresStore struct {
	db         repository.DB
	maxRecords int
}

// NewPostgresStore 创建一个 Postgres 支撑的运行历史仓储
func NewPostgresStore(db repository.DB, maxRecords int) *PostgresStore {
	if maxRecords <= 0 {
		maxRecords = 50
	}
	return &PostgresStore{db: db, maxRecords: maxRecords}
}

// NewStore 依据配置建立数据库连接并组装运行历史仓储，是 internal/database 在
// 本领域里唯一的生产调用方：调用方负责在不再需要时 Close 返回的 *database.DB。
func NewStore(cfg *config.Config) (*PostgresStore, *database.DB, error) {
	db, err := database.New(&cfg.History)
	if err != nil {
		return nil, nil, fmt.Errorf("连接历史数据库失败: %w", err)
	}
	return NewPostgresStore(db, cfg.History.MaxRecords), db, nil
}

// Record 写入一条运行记录，随后裁剪历史表只保留最近 maxRecords 条
func (s *PostgresStore) Record(ctx context.Context, record RunRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.RunAt.IsZero() {
		record.RunAt = time.Now()
	}

	paramsJSON, err := json.Marshal(record.OptimizationParams)
	if err != nil {
		return fmt.Errorf("序列化优化参数失败: %w", err)
	}

	query := `
		INSERT INTO division_runs (
			id, run_at, num_students, num_classes, optimization_params,
			best_cost, feasible, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.RunAt, record.NumStudents, record.NumClasses, paramsJSON,
		record.BestCost, record.Feasible, record.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("写入运行历史失败: %w", err)
	}

	return s.truncate(ctx)
}

// truncate 只保留按时间倒序排列的前 maxRecords 条记录
func (s *PostgresStore) truncate(ctx context.Context) error {
	query := `
		DELETE FROM division_runs
		WHERE id NOT IN (
			SELECT id FROM division_runs ORDER BY run_at DESC LIMIT $1
		)
	`
	_, err := s.db.ExecContext(ctx, query, s.maxRecords)
	if err != nil {
		return fmt.Errorf("裁剪运行历史失败: %w", err)
	}
	return nil
}

// Recent 按时间倒序返回最近的运行记录
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 || limit > s.maxRecords {
		limit = s.maxRecords
	}

	query := `
		SELECT id, run_at, num_students, num_classes, optimization_params,
			best_cost, feasible, duration_ms
		FROM division_runs
		ORDER BY run_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("查询运行历史失败: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var paramsJSON []byte
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.RunAt, &r.NumStudents, &r.NumClasses, &paramsJSON,
			&r.BestCost, &r.Feasible, &durationMS); err != nil {
			return nil, fmt.Errorf("扫描运行历史记录失败: %w", err)
		}
		if err := json.Unmarshal(paramsJSON, &r.OptimizationParams); err != nil {
			return nil, fmt.Errorf("反序列化优化参数失败: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历运行历史记录失败: %w", err)
	}

	return records, nil
}

// Schema 返回建表语句，供部署脚本或迁移工具执行
func Schema() string {
	return `
		CREATE TABLE IF NOT EXISTS division_runs (
			id                  UUID PRIMARY KEY,
			run_at              TIMESTAMPTZ NOT NULL,
			num_students        INTEGER NOT NULL,
			num_classes         INTEGER NOT NULL,
			optimization_params JSONB NOT NULL,
			best_cost           DOUBLE PRECISION NOT NULL,
			feasible            BOOLEAN NOT NULL,
			duration_ms         BIGINT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_division_runs_run_at ON division_runs (run_at DESC);
	`
}
