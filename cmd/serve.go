package main

import (
	"fmt"

	api "signalrelay/cmd/relay"
	"signalrelay/conf"
	"signalrelay/internal/middleware"
	"signalrelay/pkg/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 加载配置文件
	if err := conf.LoadConfig(cfgFile); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appCfg := conf.AppConfig
	logger.InitLogger(&appCfg.Log, appCfg.AppName)
	defer logger.Sync()

	app, err := api.InitApp(&appCfg)
	if err != nil {
		logger.Error("init app failed", logger.Err(err))
		return err
	}

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		if err := app.Close(); err != nil {
			logger.Warn("close resources", logger.Err(err))
		}
	})
	return srv.Run(middleware.NewMiddleware(), app.Router)
}
