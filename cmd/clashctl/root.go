package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/service"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/config"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/logger"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/timetable"
)

// options holds the flags shared by every subcommand.
type options struct {
	jsonOutput    bool
	verbose       bool
	strict        bool
	swapStrategy  string
	fallbackRooms []string
	days          []string
	dayOpen       string
	dayClose      string
	step          int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "clashctl",
		Short:         "Detect and resolve timetable clashes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log engine activity to stderr")
	flags.BoolVar(&opts.strict, "strict", false, "match teacher, room and year values exactly")
	flags.StringVar(&opts.swapStrategy, "swap-strategy", "", "swap strategy: none or exchange")
	flags.StringSliceVar(&opts.fallbackRooms, "fallback-rooms", nil, "rooms tried when a room clash needs a new room")
	flags.StringSliceVar(&opts.days, "days", nil, "teaching days in order")
	flags.StringVar(&opts.dayOpen, "day-open", "", "earliest start time (HH:MM)")
	flags.StringVar(&opts.dayClose, "day-close", "", "latest end time (HH:MM)")
	flags.IntVar(&opts.step, "step", 0, "reschedule search step in minutes")

	root.AddCommand(newDetectCmd(opts), newResolveCmd(opts), newAnalyzeCmd(opts))
	return root
}

// loadConfig starts from the environment configuration and applies the flags
// the user actually set.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	out := &cfg.Scheduler

	flags := cmd.Flags()
	if flags.Changed("strict") {
		out.StrictFieldMatching = o.strict
	}
	if flags.Changed("swap-strategy") {
		out.SwapStrategy = o.swapStrategy
	}
	if flags.Changed("fallback-rooms") {
		out.FallbackRooms = o.fallbackRooms
	}
	if flags.Changed("days") {
		out.Days = o.days
	}
	if flags.Changed("day-open") {
		out.DayOpen = o.dayOpen
	}
	if flags.Changed("day-close") {
		out.DayClose = o.dayClose
	}
	if flags.Changed("step") {
		out.StepMinutes = o.step
	}
	return cfg, nil
}

// logger is silent unless --verbose is set, in which case it logs to stderr
// with the same encoder, level and time key as the API service.
func (o *options) logger(cfg *config.Config) (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logr, nil
}

// analysis is the result of running the engine over one timetable file.
type analysis struct {
	source  string
	entries []models.Entry
	clashes []models.Clash
	engine  *scheduler.Engine
}

func (o *options) analyze(cmd *cobra.Command, path string) (*analysis, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logr, err := o.logger(cfg)
	if err != nil {
		return nil, err
	}
	defer logr.Sync() //nolint:errcheck

	engineCfg, err := service.NewEngineConfig(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	engine, err := scheduler.NewEngine(engineCfg)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := timetable.ParseFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	clashes := engine.Detect(entries)
	logr.Info("timetable analysed",
		zap.String("file", path),
		zap.Int("entries", len(entries)),
		zap.Int("clashes", len(clashes)),
	)

	return &analysis{source: filepath.Base(path), entries: entries, clashes: clashes, engine: engine}, nil
}
