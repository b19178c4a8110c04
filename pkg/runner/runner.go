// Package runner orchestrates one reconciliation run: load and normalize the
// shared sources, dedupe and join, then process each platform independently
// and emit the report files. Progress flows through an append-only event sink
// so the engine can run off the caller's goroutine.
package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"promoset/pkg/engine"
	"promoset/pkg/platform"
	"promoset/pkg/report"
	"promoset/pkg/schema"
)

// PlatformJob binds a platform definition to this run's input files.
type PlatformJob struct {
	Def platform.Definition
	// CatalogPaths are the platform's product database exports; several files
	// are concatenated before the join.
	CatalogPaths []string
	// Templates maps channel name to the user-supplied upload template path.
	Templates map[string]string
}

// Options is the immutable configuration of one run.
type Options struct {
	PromoPath  string
	MasterPath string
	OutputDir  string

	MinPrice         int64
	MaxDiscountRatio float64

	// SummaryJSONPath, when set, receives a machine-readable run summary.
	SummaryJSONPath string

	Platforms []PlatformJob
}

// Result is the outcome of a completed (possibly with errors) run.
type Result struct {
	Summary report.RunSummary
	// MergeEmpty is true when no promo row matched the master catalog; the
	// run produced only the empty-result notice.
	MergeEmpty bool
	// HasErrors is true when any isolated platform or report failure
	// occurred. The run still completed and emitted what it could.
	HasErrors bool
}

// Start executes Run on its own goroutine and returns the ordered event
// stream plus a wait function that blocks until the run finishes. No
// cancellation is supported mid-run; a run either completes or fails.
func Start(opts Options) (<-chan Event, func() (*Result, error)) {
	sink := NewQueueSink()
	done := make(chan struct{})
	var (
		res *Result
		err error
	)

	go func() {
		res, err = Run(opts, sink)
		sink.Close()
		close(done)
	}()

	wait := func() (*Result, error) {
		<-done
		return res, err
	}
	return sink.Events(), wait
}

// Run executes the whole pipeline synchronously. Failures loading the two
// mandatory shared sources are fatal and returned; per-platform and
// report-write failures are accumulated into the Result instead.
func Run(opts Options, sink Sink) (*Result, error) {
	res := &Result{}

	info(sink, "load", "reading offline promo list...")
	promoEntries, skipped, err := loadPromo(opts.PromoPath, sink)
	if err != nil {
		sink.Event(Event{Level: LevelError, Stage: "load", Message: err.Error()})
		return nil, fmt.Errorf("load promo list: %w", err)
	}
	if skipped > 0 {
		warn(sink, "load", fmt.Sprintf("promo list: skipped %d rows with empty SKU", skipped))
	}
	res.Summary.TotalPromoInput = len(promoEntries) + skipped

	info(sink, "load", "reading online master catalog...")
	masterEntries, err := loadMaster(opts.MasterPath, sink)
	if err != nil {
		sink.Event(Event{Level: LevelError, Stage: "load", Message: err.Error()})
		return nil, fmt.Errorf("load master catalog: %w", err)
	}

	promoIndex := engine.BuildPromoIndex(promoEntries)
	if promoIndex.Duplicates > 0 {
		info(sink, "dedupe", fmt.Sprintf("promo list: removed %d duplicate SKUs", promoIndex.Duplicates))
	}
	masterIndex := engine.BuildMasterIndex(masterEntries)
	if masterIndex.Duplicates > 0 {
		info(sink, "dedupe", fmt.Sprintf("master catalog: removed %d duplicate SKUs", masterIndex.Duplicates))
	}
	res.Summary.PromoDuplicates = promoIndex.Duplicates
	res.Summary.MasterDuplicates = masterIndex.Duplicates

	reconciled := engine.JoinMaster(promoIndex, masterIndex)
	res.Summary.Matched = len(reconciled)
	info(sink, "merge", fmt.Sprintf("%d unique SKUs matched between promo list and master catalog", len(reconciled)))

	if len(reconciled) == 0 {
		warn(sink, "merge", ErrMergeEmpty.Error())
		res.MergeEmpty = true
		return res, nil
	}

	anomalies := engine.DetectAnomalies(reconciled)
	res.Summary.Anomalies = len(anomalies)
	for _, a := range anomalies {
		warn(sink, "merge", fmt.Sprintf("advisory for %s: %s", a.Key, a.Detail))
	}

	for _, job := range opts.Platforms {
		sum := processPlatform(job, reconciled, anomalies, opts, sink, res)
		res.Summary.Platforms = append(res.Summary.Platforms, sum)
	}

	summaryPath := filepath.Join(opts.OutputDir, "executive_summary.xlsx")
	if err := report.WriteExecutiveSummary(summaryPath, res.Summary); err != nil {
		recordError(res, sink, "report", err)
	} else {
		info(sink, "report", fmt.Sprintf("executive summary written to %s", summaryPath))
	}

	if opts.SummaryJSONPath != "" {
		if err := report.ExportJSON(opts.SummaryJSONPath, res.Summary); err != nil {
			recordError(res, sink, "report", err)
		}
	}

	if res.HasErrors {
		warn(sink, "done", "run completed with errors")
	} else {
		info(sink, "done", "run completed")
	}
	return res, nil
}

// processPlatform runs one platform's pipeline end to end. Processing
// failures abort only this platform; report-write failures are recorded and
// the remaining emissions continue.
func processPlatform(job PlatformJob, reconciled []schema.ReconciledEntry, anomalies []engine.Anomaly, opts Options, sink Sink, res *Result) report.PlatformSummary {
	name := job.Def.Name
	sum := report.PlatformSummary{Name: name}

	platformEvent(sink, LevelInfo, name, "starting platform processing and audit...")

	catalogEntries, err := loadCatalog(job.Def, job.CatalogPaths, sink)
	if err != nil {
		perr := &PlatformError{Platform: name, Err: err}
		platformEvent(sink, LevelError, name, perr.Error())
		res.Summary.Errors = append(res.Summary.Errors, perr.Error())
		res.HasErrors = true
		sum.Error = err.Error()
		return sum
	}

	catalog := engine.BuildCatalogIndex(catalogEntries)
	joined := engine.JoinPlatform(reconciled, catalog)
	rep := report.Assemble(name, joined, catalog, opts.MinPrice, opts.MaxDiscountRatio)
	rep.Anomalies = anomalies
	sum.Counts = rep.Counts()

	platformEvent(sink, LevelInfo, name, fmt.Sprintf("found: %d products, not found: %d products",
		sum.Counts.Safe+sum.Counts.Review, sum.Counts.NotFound))
	platformEvent(sink, LevelInfo, name, fmt.Sprintf("validation: %d safe, %d need review",
		sum.Counts.Safe, sum.Counts.Review))

	auditPath := filepath.Join(opts.OutputDir, fmt.Sprintf("audit_%s.xlsx", strings.ToUpper(name)))
	if err := report.WriteAudit(auditPath, rep); err != nil {
		recordError(res, sink, "report", err)
	} else {
		platformEvent(sink, LevelInfo, name, fmt.Sprintf("audit report written to %s", auditPath))
	}

	if len(rep.Safe) == 0 {
		platformEvent(sink, LevelWarn, name, "no safe products; skipping upload files")
		return sum
	}

	for _, ch := range job.Def.Channels {
		templatePath, ok := job.Templates[ch.Name]
		if !ok || templatePath == "" {
			recordError(res, sink, "report", fmt.Errorf("platform %s: no template configured for channel %q", name, ch.Name))
			continue
		}

		uploadPath := filepath.Join(opts.OutputDir, uploadFileName(name, ch.Name))
		if err := report.WriteUpload(uploadPath, templatePath, ch, name, rep.Safe); err != nil {
			recordError(res, sink, "report", err)
			continue
		}
		sum.Uploads = append(sum.Uploads, uploadPath)
		platformEvent(sink, LevelInfo, name, fmt.Sprintf("upload file written to %s", uploadPath))
	}

	return sum
}

func uploadFileName(platformName, channelName string) string {
	name := "upload_" + strings.ToUpper(platformName)
	if channelName != "" {
		name += "_" + channelName
	}
	return name + ".xlsx"
}

func recordError(res *Result, sink Sink, stage string, err error) {
	sink.Event(Event{Level: LevelError, Stage: stage, Message: err.Error()})
	res.Summary.Errors = append(res.Summary.Errors, err.Error())
	res.HasErrors = true
}
