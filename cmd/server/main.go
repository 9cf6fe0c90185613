package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"shchuropedia/wiki-service/config"
	"shchuropedia/wiki-service/internal/backup"
	"shchuropedia/wiki-service/internal/database"
	"shchuropedia/wiki-service/internal/route"
	pkgDatabase "shchuropedia/wiki-service/pkg/database"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")
	conf := config.Conf

	if conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 初始化数据库并写入演示数据
	db, err := database.InitDatabase(&conf.Database)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := database.SeedDemoArticles(db); err != nil {
		log.Fatalf("写入演示文章失败: %v", err)
	}

	// 3. Redis可选，连不上就退化为不缓存
	var redis *pkgDatabase.RedisClient
	if conf.Redis.Enabled {
		redis, err = pkgDatabase.InitRedis(&pkgDatabase.RedisConfig{
			ServiceName: "wiki-service",
			Host:        conf.Redis.Host,
			Port:        conf.Redis.Port,
			Password:    conf.Redis.Password,
			DB:          conf.Redis.DB,
			PoolSize:    conf.Redis.PoolSize,
		})
		if err != nil {
			log.Printf("Redis不可用，今日文章缓存关闭: %v", err)
			redis = nil
		}
	}

	// 4. 备份通知器：未开启时用空实现
	var backupNotifier backup.Notifier = backup.Nop{}
	if conf.Backup.Enabled {
		sink, err := backup.NewS3Sink(conf.Backup)
		if err != nil {
			log.Fatalf("初始化备份存储失败: %v", err)
		}
		asyncNotifier := backup.NewAsyncNotifier(sink, conf.Backup.QueueSize)
		defer asyncNotifier.Close()
		backupNotifier = asyncNotifier
	}

	// 5. 设置路由
	r := route.SetupRouter(db, redis, backupNotifier)

	// 6. 启动服务
	addr := fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
