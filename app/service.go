package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/flexrate/config"
	"github.com/kilianp07/flexrate/core/flexgrid"
	coremetrics "github.com/kilianp07/flexrate/core/metrics"
	"github.com/kilianp07/flexrate/core/model"
	"github.com/kilianp07/flexrate/core/output"
	"github.com/kilianp07/flexrate/core/rules"
	"github.com/kilianp07/flexrate/core/tabular"
	"github.com/kilianp07/flexrate/infra/journal"
	"github.com/kilianp07/flexrate/infra/logger"
	"github.com/kilianp07/flexrate/infra/metrics"
	"github.com/kilianp07/flexrate/infra/source"
)

// Service processes every primary export of a directory against the grid.
type Service struct {
	RunID   string
	dir     string
	pattern source.Pattern
	rules   rules.Rules
	ratio   float64
	naming  output.Naming
	log     logger.Logger
	sink    coremetrics.MetricsSink
	journal journal.Store
	now     func() time.Time
}

// Result summarizes one processed export.
type Result struct {
	Input         string
	Output        string
	RowsRead      int
	RowsWritten   int
	Unpriced      int
	FirstBookDate string
}

// New creates a Service working in dir from the configuration.
func New(cfg *config.Config, dir string) (*Service, error) {
	sink, err := metrics.New(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	jcfg := cfg.Journal
	if jcfg.Path != "" && !filepath.IsAbs(jcfg.Path) {
		jcfg.Path = filepath.Join(dir, jcfg.Path)
	}
	store, err := journal.New(jcfg)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	return &Service{
		RunID: uuid.NewString(),
		dir:   dir,
		pattern: source.Pattern{
			GridFile:   cfg.Input.GridFile,
			Prefix:     cfg.Input.Prefix,
			Extensions: cfg.Input.Extensions,
		},
		rules:   cfg.Rules.Rules(),
		ratio:   cfg.Rules.TargetRatio,
		naming:  cfg.Output.Naming(),
		log:     logger.New("batch"),
		sink:    sink,
		journal: store,
		now:     time.Now,
	}, nil
}

// Run discovers the batch and processes each export in name order. The first
// failing export stops the batch.
func (s *Service) Run(ctx context.Context) error {
	s.log.Infof("working directory: %s", s.dir)
	batch, err := source.Discover(s.dir, s.pattern)
	if err != nil {
		return err
	}
	s.log.Infof("found %d files to process", len(batch.Inputs))

	matcher, err := LoadGrid(batch.Grid, s.ratio)
	if err != nil {
		return err
	}
	s.log.Infow("grid indexed", map[string]any{"file": batch.Grid, "entries": len(matcher.Entries())})

	defer func() {
		if ferr := s.sink.Flush(); ferr != nil {
			s.log.Warnf("metrics flush: %v", ferr)
		}
	}()
	for _, in := range batch.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.log.Infof("processing %s", in.Path)
		start := s.now()
		res, err := s.ProcessFile(in, matcher)
		s.record(ctx, res, start, err)
		if err != nil {
			return fmt.Errorf("process %s: %w", in.Path, err)
		}
		s.log.Infof("saved output file: %s", res.Output)
	}
	s.log.Infof("processing complete")
	return nil
}

// LoadGrid reads and indexes the grid file.
func LoadGrid(path string, ratio float64) (*flexgrid.Matcher, error) {
	rows, err := source.ReadRows(path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	entries, err := flexgrid.Index(rows)
	if err != nil {
		return nil, fmt.Errorf("index grid %s: %w", path, err)
	}
	return flexgrid.NewMatcher(entries, ratio)
}

// ProcessFile runs the pipeline for one export and writes its processed file.
func (s *Service) ProcessFile(in source.Input, m *flexgrid.Matcher) (Result, error) {
	res := Result{Input: in.Path}
	rows, err := source.ReadRows(in.Path)
	if err != nil {
		return res, err
	}
	b := tabular.Bind(rows)
	res.RowsRead = len(b.Rows)
	if len(b.Missing) > 0 {
		s.log.Warnf("%s: missing columns %v, treated as empty", filepath.Base(in.Path), b.Missing)
	}
	s.log.Debugw("parsed input", map[string]any{"rows": res.RowsRead, "headers": b.Headers})

	normalized := s.rules.Apply(b.Rows, m.Rate)
	for _, r := range normalized {
		if r.FlexRate == "" {
			res.Unpriced++
		}
	}
	s.log.Infof("filtered rows: %d of %d", len(normalized), res.RowsRead)

	doc := output.Build(normalized)
	res.RowsWritten = len(doc.Rows)
	res.FirstBookDate = doc.FirstBookDate
	s.log.Debugf("earliest date: %q", doc.FirstBookDate)

	res.Output = s.naming.PathFor(in.Path, in.Ext)
	if err := writeDocument(res.Output, doc); err != nil {
		return res, err
	}
	return res, nil
}

func writeDocument(path string, doc model.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := output.Render(f, doc); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, res Result, start time.Time, procErr error) {
	dur := s.now().Sub(start)
	ev := coremetrics.FileEvent{
		File:        res.Input,
		RowsRead:    res.RowsRead,
		RowsDropped: res.RowsRead - res.RowsWritten,
		RowsWritten: res.RowsWritten,
		Unpriced:    res.Unpriced,
		Duration:    dur,
		Failed:      procErr != nil,
		Time:        start,
	}
	if procErr != nil {
		ev.RowsDropped = 0
	}
	if err := s.sink.RecordFile(ev); err != nil {
		s.log.Warnf("record metrics: %v", err)
	}
	rec := journal.Record{
		RunID:         s.RunID,
		Input:         res.Input,
		Output:        res.Output,
		Started:       start,
		Duration:      dur,
		RowsRead:      res.RowsRead,
		RowsWritten:   res.RowsWritten,
		FirstBookDate: res.FirstBookDate,
	}
	if procErr != nil {
		rec.Output = ""
		rec.Error = procErr.Error()
	}
	if err := s.journal.Append(ctx, rec); err != nil {
		s.log.Warnf("journal append: %v", err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.journal.Close() }
