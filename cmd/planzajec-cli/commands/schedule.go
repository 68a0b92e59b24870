package commands

import (
	"fmt"
	"os"
	"planzajec-backend/lib/agenda"
	"planzajec-backend/services/planzajec"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	schedulePeriod string
	scheduleView   string
)

func init() {
	scheduleCmd.Flags().StringVar(&schedulePeriod, "period", "1", "The upstream period id.")
	scheduleCmd.Flags().StringVar(&scheduleView, "view", "agenda", "Either agenda or week.")
	rootCmd.AddCommand(scheduleCmd)
}

func entryMarker(e agenda.Entry) string {
	if e.Indicator == nil {
		return ""
	}
	if e.Indicator.InProgress {
		return fmt.Sprintf("now %.0f%%", e.Indicator.Position*100)
	}
	return "next"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func entryLocation(e agenda.Entry) string {
	if e.Online {
		return "Online"
	}
	return deref(e.Location)
}

func entryLecturers(e agenda.Entry) string {
	labels := make([]string, len(e.Lecturers))
	for i, l := range e.Lecturers {
		labels[i] = l.Label
	}
	return strings.Join(labels, ", ")
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <ids> [--period <id>] [--view agenda|week]",
	Short: "Prints one or more combined schedules, eg. G1234/N55.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBackend()
		if err != nil {
			return err
		}
		res, err := b.GetSchedules(cmd.Context(), &planzajec.GetSchedulesRequest{
			IDs:    args[0],
			Period: schedulePeriod,
			View:   scheduleView,
		})
		if err != nil {
			return err
		}
		if len(res.Schedules) == 0 {
			fmt.Println("No schedules could be loaded.")
			return nil
		}

		for _, s := range res.Schedules {
			fmt.Printf("%s %s (%s)\n", s.Type, s.Label, s.SourceURL)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Time", "h", "Subject", "Type", "Lecturers", "Location", "Group", ""})
		for _, day := range res.Days {
			if len(day.Entries) == 0 {
				t.AppendRow(table.Row{day.Date})
				t.AppendSeparator()
				continue
			}
			for _, e := range day.Entries {
				subject := deref(e.Subject)
				if e.Category == agenda.CategoryCancelled {
					subject = "~" + subject + "~"
				}
				t.AppendRow(table.Row{
					day.Date,
					e.StartTime + " - " + e.EndTime,
					e.SchoolHours,
					subject,
					deref(e.Type),
					entryLecturers(e),
					entryLocation(e),
					deref(e.Group),
					entryMarker(e),
				})
				if e.Comment != nil {
					t.AppendRow(table.Row{"", "", "", *e.Comment})
				}
			}
			t.AppendSeparator()
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
