// @title           Campus Event Q&A API
// @version         1.0
// @description     Answers natural-language questions about campus events with a language model.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/demo"
	"github.com/akolanti/CampusQA/internal/mcpServer"
	"github.com/akolanti/CampusQA/internal/prompt"
	"github.com/akolanti/CampusQA/internal/qa"
	"github.com/akolanti/CampusQA/internal/server"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

var (
	mode       string
	promptPath string
	listenAddr string
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&mode, "mode", config.ModeDemo, "run mode: demo, http or mcp")
	flag.StringVar(&promptPath, "prompt", "", "instruction template file (default "+config.PromptFilePath+")")
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address for http mode")
	flag.Parse()

	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		logger.Warn("Could not read .env file", "error", err)
	}

	path := config.PromptPath(promptPath)
	if err := prompt.Init(path); err != nil {
		logger.Error("Prompt template could not be loaded. Shutting down.", "path", path, "error", err)
		os.Exit(1)
	}

	service := qa.NewService(qa.ClientConfig{
		Provider: config.ProviderName(),
		Template: prompt.Template(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting", "mode", mode, "provider", config.ProviderName())
	var err error
	switch mode {
	case config.ModeDemo:
		err = demo.RunDefault(ctx, os.Stdout, service)
	case config.ModeHTTP:
		err = server.Run(ctx, listenAddr, service)
	case config.ModeMCP:
		err = mcpServer.Run(ctx, service)
	default:
		logger.Error("Unknown mode", "mode", mode)
		stop()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Stopped with error", "mode", mode, "error", err)
		stop()
		os.Exit(1)
	}
}
