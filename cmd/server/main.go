package main

import (
	"log"
	"time"

	"github.com/yockii/markslide/internal/llm"
	"github.com/yockii/markslide/internal/model"
	"github.com/yockii/markslide/internal/server"
	"github.com/yockii/markslide/internal/storage"
	"github.com/yockii/markslide/pkg/config"
	"github.com/yockii/markslide/pkg/database"
	"github.com/yockii/markslide/pkg/logger"
	"github.com/yockii/markslide/pkg/util"
)

func main() {
	// 初始化配置
	if err := config.Init(); err != nil {
		log.Fatalf("初始化配置失败: %v", err)
	}

	util.InitNode(config.GetUint64("server.node_id"))

	// 初始化日志
	logger.Init()

	// 连接数据库
	if err := database.Init(); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 数据库迁移
	model.AutoMigrate(database.GetDB())

	// 初始化LLM客户端
	llm.InitDefaultClient(
		config.GetString("llm.base_url"),
		config.GetString("llm.api_key"),
		config.GetString("llm.model"),
	)

	// 初始化对象存储，未配置时退回本地文件存储
	initStorage()

	// 创建服务器实例
	srv := server.New()

	// 启动服务器
	if err := srv.Start(); err != nil {
		log.Fatalf("服务停止: %v", err)
	}
}

func initStorage() {
	blobBase := config.GetString("storage.base_url")
	if blobBase != "" {
		storage.InitDefaultStore(storage.NewBlobClient(
			blobBase,
			config.GetString("storage.token"),
			time.Duration(config.GetInt("storage.timeout"))*time.Second,
		))
		return
	}

	logger.Warn("未配置对象存储，使用本地文件存储")
	storage.InitDefaultStore(storage.NewLocalStore(
		config.GetString("storage.local_dir"),
		config.GetString("server.base_url"),
	))
}
