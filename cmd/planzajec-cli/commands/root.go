package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"planzajec-backend/lib/chrono"
	"planzajec-backend/lib/scrapers/uek"
	"planzajec-backend/lib/telemetry"
	"planzajec-backend/services/planzajec"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "planzajec-cli",
	Short: "planzajec-cli reads the UEK timetable from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
		err := godotenv.Load()
		if err != nil {
			slog.Debug("no .env file loaded", "err", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
	rootCmd.PersistentFlags().StringVar(&format, "format", "xml", "Upstream document format, xml or html.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upstreamFormat() (uek.Format, error) {
	switch format {
	case "xml":
		return uek.FormatXML, nil
	case "html":
		return uek.FormatHTML, nil
	}
	return 0, fmt.Errorf("unknown format %q, expected xml or html", format)
}

func localService() (planzajec.Service, error) {
	f, err := upstreamFormat()
	if err != nil {
		return planzajec.Service{}, err
	}
	client := uek.NewClient(uek.ClientOptions{BaseURL: os.Getenv("PLANZAJEC_BASE_URL")})
	return planzajec.NewService(client, chrono.System{}, planzajec.Options{Format: f}), nil
}

// backend is either a remote planzajec server or the pipeline run in process.
type backend interface {
	GetSchedules(ctx context.Context, req *planzajec.GetSchedulesRequest) (*planzajec.GetSchedulesResponse, error)
	GetCategories(ctx context.Context, req *planzajec.GetCategoriesRequest) (*planzajec.GetCategoriesResponse, error)
	GetCategoryDetail(ctx context.Context, req *planzajec.GetCategoryDetailRequest) (*planzajec.GetCategoryDetailResponse, error)
}

type localBackend struct {
	service planzajec.Service
}

func (b localBackend) GetSchedules(ctx context.Context, req *planzajec.GetSchedulesRequest) (*planzajec.GetSchedulesResponse, error) {
	res, err := b.service.GetSchedules(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (b localBackend) GetCategories(ctx context.Context, req *planzajec.GetCategoriesRequest) (*planzajec.GetCategoriesResponse, error) {
	res, err := b.service.GetCategories(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (b localBackend) GetCategoryDetail(ctx context.Context, req *planzajec.GetCategoryDetailRequest) (*planzajec.GetCategoryDetailResponse, error) {
	res, err := b.service.GetCategoryDetail(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func newBackend() (backend, error) {
	if serverURL := os.Getenv("PLANZAJEC_SERVER_URL"); serverURL != "" {
		slog.Debug("using remote server", "url", serverURL)
		return planzajec.NewClient(http.DefaultClient, serverURL), nil
	}
	service, err := localService()
	if err != nil {
		return nil, err
	}
	return localBackend{service: service}, nil
}
