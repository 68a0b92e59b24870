package main

import (
	"flag"
	"net/http"
	"planzajec-backend/lib/chrono"
	"planzajec-backend/lib/configutil"
	"planzajec-backend/lib/scrapers/uek"
	"planzajec-backend/lib/serviceutil"
	"planzajec-backend/services/planzajec"
	"time"

	"connectrpc.com/connect"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	output := InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfigWithDefaults("config.json5", defaultConfig)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	opts, err := cfg.serviceOptions()
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	clientOpts := cfg.clientOptions()
	clientOpts.Output = output
	client := uek.NewClient(clientOpts)

	clock := chrono.NewRefreshing(nil)
	err = clock.Start(time.Duration(cfg.ClockRefreshSeconds) * time.Second)
	if err != nil {
		serviceutil.Fatal("start clock refresh", err)
	}
	defer clock.Stop()

	mux := http.NewServeMux()
	planzajec.Register(
		mux,
		planzajec.NewService(client, clock, opts),
		connect.WithInterceptors(serviceutil.NewConnectOtelInterceptor()),
	)

	serviceutil.StartHttpServer(ctx, cfg.Port, mux)
}
