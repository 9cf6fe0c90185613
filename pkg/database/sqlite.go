package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteConfig SQLite 配置
// 单机部署和测试用，路径为 ":memory:" 时使用内存库
type SQLiteConfig struct {
	ServiceName string // 服务名称，用于日志标识
	Path        string // 数据库文件路径
	LogLevel    string // 日志级别: silent, error, warn, info
}

// InitSQLite 初始化 SQLite 连接
func InitSQLite(config *SQLiteConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	if config.Path == "" {
		config.Path = "wiki.db"
	}

	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{
		Logger:         getLogger(config.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// SQLite 外键约束默认关闭，级联删除依赖它
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("开启外键约束失败: %w", err)
	}

	log.Printf("[%s] 数据库连接成功 (sqlite: %s)", serviceName(config.ServiceName), config.Path)
	return db, nil
}
