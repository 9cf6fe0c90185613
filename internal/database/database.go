package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"shchuropedia/wiki-service/config"
	"shchuropedia/wiki-service/internal/model"
	"shchuropedia/wiki-service/pkg/database"
)

// InitDatabase 按配置选择驱动并完成建表
// 返回连接实例由调用方注入各模块，不再使用包级全局变量
func InitDatabase(conf *config.DatabaseConfig) (*gorm.DB, error) {
	// 设置默认日志级别
	logLevel := conf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var (
		db  *gorm.DB
		err error
	)

	switch conf.Driver {
	case "postgres":
		db, err = database.InitPostgres(&database.PostgresConfig{
			ServiceName:     "wiki-service",
			Username:        conf.Username,
			Password:        conf.Password,
			Host:            conf.Host,
			Port:            conf.Port,
			Database:        conf.Database,
			SSLMode:         conf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    conf.MaxIdleConns,
			MaxOpenConns:    conf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(conf.MaxLifetime) * time.Second,
		})
	case "sqlite", "":
		db, err = database.InitSQLite(&database.SQLiteConfig{
			ServiceName: "wiki-service",
			Path:        conf.Path,
			LogLevel:    logLevel,
		})
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", conf.Driver)
	}
	if err != nil {
		return nil, err
	}

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		return nil, err
	}

	return db, nil
}
