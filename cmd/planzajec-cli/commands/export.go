package commands

import (
	"fmt"
	"io"
	"os"
	"planzajec-backend/lib/timezone"
	"planzajec-backend/services/planzajec"

	"github.com/spf13/cobra"
)

var (
	exportPeriod string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVar(&exportPeriod, "period", "1", "The upstream period id.")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "File to write to, stdout when empty.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <ids> [--out <file.ics>]",
	Short: "Writes schedules as an iCalendar file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, err := planzajec.ParseScheduleRefs(args[0])
		if err != nil {
			return err
		}
		period, err := planzajec.ParsePeriod(exportPeriod)
		if err != nil {
			return err
		}
		service, err := localService()
		if err != nil {
			return err
		}

		schedules := service.FetchSchedules(cmd.Context(), refs, period)
		if len(schedules) == 0 {
			return fmt.Errorf("none of %s could be loaded", args[0])
		}

		var out io.Writer = os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return planzajec.WriteCalendar(out, schedules, timezone.Now())
	},
}
