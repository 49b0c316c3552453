// Package repository 提供数据访问层的通用接口
package repository

import (
	"context"
	"database/sql"
)

// Rows 是 QueryContext 返回的行集合接口，*sql.Rows 天然满足它；测试替身可以
// 用一个内存切片实现同一接口，无需真实数据库连接。
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close() error
}

// Row 是 QueryRowContext 返回的单行接口，*sql.Row 天然满足它。
type Row interface {
	Scan(dest ...interface{}) error
}

// DB 数据库接口：internal/database.DB 与测试替身均满足该接口
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) Row
}

// Tx 事务接口
type Tx interface {
	DB
	Commit() error
	Rollback() error
}

// TxFunc 事务函数类型
type TxFunc func(tx Tx) error

// Scanner 行扫描接口
type Scanner interface {
	Scan(dest ...interface{}) error
}
