// @title Career Match 后端 API
// @version 1.0
// @description 人格测评与职业匹配服务。

// @host localhost:8080
// @BasePath /

package main

import (
	"career_match_backend/internal/app"
	"career_match_backend/internal/config"
	"career_match_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	importCatalog := flag.String("import-catalog", "", "启动前导入本地职业目录 YAML 文件")
	exportCatalog := flag.String("export-catalog", "", "导出当前职业目录到存储中的指定 key，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if *importCatalog != "" {
		if err := application.ImportCatalogFile(*importCatalog); err != nil {
			log.Fatalf("Failed to import catalog: %v", err)
		}
	}

	if *exportCatalog != "" {
		if err := application.ExportCatalog(*exportCatalog); err != nil {
			log.Fatalf("Failed to export catalog: %v", err)
		}
		return
	}

	application.Run()
}
