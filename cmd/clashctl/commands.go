package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/service"
)

func newDetectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "List teacher, room and year clashes in a CSV or XLSX timetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, dto.DetectResponse{
					Success:      true,
					TotalEntries: len(res.entries),
					Timetable:    nonNilEntries(res.entries),
					Clashes:      nonNilClashes(res.clashes),
				})
			}
			return printClashes(out, res)
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>",
		Short: "Detect clashes and suggest a fix for each one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			suggestions, _ := res.engine.Resolve(res.entries, res.clashes)
			if suggestions == nil {
				suggestions = []models.Suggestion{}
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, dto.SuggestFixResponse{Suggestions: suggestions})
			}
			return printSuggestions(out, suggestions)
		},
	}
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Summarise clashes by type, day, teacher, room and year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			summary := service.NewAnalyticsService(nil, nil, res.engine.Config().Days, zap.NewNop()).Summarize(res.clashes)
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, summary)
			}
			return printAnalytics(out, summary)
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printClashes(w io.Writer, res *analysis) error {
	fmt.Fprintf(w, "%s: %d entries, %d clashes\n", res.source, len(res.entries), len(res.clashes))
	if len(res.clashes) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tDAY\tCOURSES\tTIMES")
	for _, clash := range res.clashes {
		courses := make([]string, 0, len(clash.Entries))
		times := make([]string, 0, len(clash.Entries))
		for _, e := range clash.Entries {
			courses = append(courses, e.Course)
			times = append(times, e.Start+"-"+e.End)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", clash.Type, clash.Day, strings.Join(courses, ", "), strings.Join(times, ", "))
	}
	return tw.Flush()
}

func printSuggestions(w io.Writer, suggestions []models.Suggestion) error {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "no clashes to resolve")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tCONFIDENCE\tISSUE\tFIX")
	for _, s := range suggestions {
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\n", s.Action, s.Confidence, s.Issue, s.Fix)
	}
	return tw.Flush()
}

func printAnalytics(w io.Writer, a models.ClashAnalytics) error {
	fmt.Fprintf(w, "total clashes: %d (high %d, medium %d, low %d)\n", a.TotalClashes, a.Severity.High, a.Severity.Medium, a.Severity.Low)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	section := func(title string, counts []models.NamedCount) {
		for _, c := range counts {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", title, c.Name, c.Clashes)
		}
	}
	section("type", a.ClashesByType)
	for _, d := range a.ClashesByDay {
		fmt.Fprintf(tw, "day\t%s\t%d\n", d.Day, d.Clashes)
	}
	section("teacher", a.BusiestTeachers)
	section("room", a.BusiestRooms)
	section("year", a.BusiestYears)
	return tw.Flush()
}

func nonNilEntries(entries []models.Entry) []models.Entry {
	if entries == nil {
		return []models.Entry{}
	}
	return entries
}

func nonNilClashes(clashes []models.Clash) []models.Clash {
	if clashes == nil {
		return []models.Clash{}
	}
	return clashes
}
