package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/export"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/storage"
)

type runLoader interface {
	Get(ctx context.Context, id string) (*models.AnalysisRun, error)
}

type clashSummarizer interface {
	Summarize(clashes []models.Clash) models.ClashAnalytics
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService builds clash reports for stored runs and persists the rendered files.
type ExportService struct {
	runs      runLoader
	analytics clashSummarizer
	storage   fileStorage
	renderers map[models.ReportFormat]export.Renderer
	signer    *storage.SignedURLSigner
	logger    *zap.Logger
	cfg       ExportConfig
}

// NewExportService constructs an ExportService with the csv, pdf and xlsx renderers.
func NewExportService(runs runLoader, analytics clashSummarizer, files fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		runs:      runs,
		analytics: analytics,
		storage:   files,
		renderers: map[models.ReportFormat]export.Renderer{
			models.ReportFormatCSV:  export.NewCSVExporter(),
			models.ReportFormatPDF:  export.NewPDFExporter(),
			models.ReportFormatXLSX: export.NewXLSXExporter(),
		},
		signer: signer,
		logger: logger,
		cfg:    cfg,
	}
}

// Renderer returns the renderer registered for a format.
func (s *ExportService) Renderer(format models.ReportFormat) (export.Renderer, bool) {
	r, ok := s.renderers[format]
	return r, ok
}

// Generate renders the job's run and stores the file behind a signed token.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	renderer, ok := s.Renderer(job.Format)
	if !ok {
		return nil, fmt.Errorf("unsupported format %s", job.Format)
	}
	run, err := s.runs.Get(ctx, job.RunID)
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(s.BuildReport(run))
	if err != nil {
		return nil, fmt.Errorf("render %s report: %w", job.Format, err)
	}

	relPath, err := s.storage.Save(s.buildFilename(job, run, renderer.Extension()), payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	signedURL := strings.TrimRight(s.cfg.APIPrefix, "/")
	if signedURL == "" {
		signedURL = "/api"
	}
	signedURL = fmt.Sprintf("%s/reports/download/%s", signedURL, token)

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          signedURL,
		Format:       job.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// BuildReport lays out a run as clash, suggestion and analytics tables.
func (s *ExportService) BuildReport(run *models.AnalysisRun) export.Report {
	clashes := export.Table{
		Title:   "Clashes",
		Headers: []string{"Type", "Day", "Course A", "Course B", "Teacher", "Room", "Year", "Time A", "Time B"},
	}
	for _, clash := range run.Clashes {
		if len(clash.Entries) < 2 {
			continue
		}
		a, b := clash.Entries[0], clash.Entries[1]
		clashes.Rows = append(clashes.Rows, []string{
			clash.Type.Label(), clash.Day, a.Course, b.Course, a.Teacher, a.Room, a.Year,
			a.StartLabel() + "-" + a.EndLabel(), b.StartLabel() + "-" + b.EndLabel(),
		})
	}

	suggestions := export.Table{
		Title:   "Suggestions",
		Headers: []string{"Issue", "Fix", "Action", "Confidence"},
	}
	for _, sg := range run.Suggestions {
		suggestions.Rows = append(suggestions.Rows, []string{
			sg.Issue, sg.Fix, string(sg.Action), strconv.FormatFloat(sg.Confidence, 'f', 1, 64),
		})
	}

	summary := export.Table{Title: "Summary", Headers: []string{"Metric", "Name", "Clashes"}}
	stats := s.analytics.Summarize(run.Clashes)
	summary.Rows = append(summary.Rows,
		[]string{"Entries", run.SourceName, strconv.Itoa(run.EntryCount)},
		[]string{"Total clashes", "", strconv.Itoa(stats.TotalClashes)},
	)
	appendCounts := func(metric string, counts []models.NamedCount) {
		for _, c := range counts {
			summary.Rows = append(summary.Rows, []string{metric, c.Name, strconv.Itoa(c.Clashes)})
		}
	}
	appendCounts("By type", stats.ClashesByType)
	for _, d := range stats.ClashesByDay {
		summary.Rows = append(summary.Rows, []string{"By day", d.Day, strconv.Itoa(d.Clashes)})
	}
	appendCounts("Teacher", stats.BusiestTeachers)
	appendCounts("Room", stats.BusiestRooms)
	appendCounts("Year", stats.BusiestYears)
	summary.Rows = append(summary.Rows,
		[]string{"Severity", "high", strconv.Itoa(stats.Severity.High)},
		[]string{"Severity", "medium", strconv.Itoa(stats.Severity.Medium)},
		[]string{"Severity", "low", strconv.Itoa(stats.Severity.Low)},
	)

	return export.Report{
		Title:  fmt.Sprintf("Clash Report %s", run.SourceName),
		Tables: []export.Table{summary, clashes, suggestions},
	}
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildFilename(job *models.ReportJob, run *models.AnalysisRun, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	source := strings.TrimSuffix(run.SourceName, fileExt(run.SourceName))
	return fmt.Sprintf("clashes_%s_%s_%s.%s", sanitizeFilename(source), shortID(job.ID), timestamp, ext)
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[i:]
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
