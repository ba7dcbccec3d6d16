package main

import (
	"context"
	"os"

	"github.com/use-agent/vindecoder/cmd/vindecoder-cli/commands"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Log, os.Stderr)
	commands.ExecuteContext(context.Background(), cfg)
}
