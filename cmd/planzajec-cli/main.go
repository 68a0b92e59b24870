package main

import (
	"context"
	"planzajec-backend/cmd/planzajec-cli/commands"
	"planzajec-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
