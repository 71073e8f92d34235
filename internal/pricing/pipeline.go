// SPDX-License-Identifier: Apache-2.0

package pricing

import (
	"github.com/pricelens/pricelens-mcp/internal/clean"
	"github.com/pricelens/pricelens-mcp/internal/config"
	"github.com/pricelens/pricelens-mcp/internal/ingest"
	"github.com/pricelens/pricelens-mcp/internal/report"
	"github.com/pricelens/pricelens-mcp/internal/schema"
)

// Pipeline runs the full extraction flow: reader selection, structural
// cleaning, role mapping, export detection, record extraction. It holds no
// per-invocation state and is safe for concurrent callers as long as each
// call receives its own buffer.
type Pipeline struct {
	readers    []ingest.Reader
	cleaner    *clean.Cleaner
	classifier *Classifier
	extractor  *Extractor
	reporter   *report.Reporter
}

// NewPipeline assembles a Pipeline from configuration. Reader order matters:
// more specific formats would go first, but the current readers claim
// disjoint extensions. A nil reporter disables logging.
func NewPipeline(cfg *config.Config, reporter *report.Reporter) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if reporter == nil {
		reporter = report.Discard()
	}
	sc := clean.NewSampleClassifier()
	sc.DateDigitThreshold = cfg.Cleaning.DateDigitThreshold
	return &Pipeline{
		readers: []ingest.Reader{
			ingest.NewDelimitedReader(),
			ingest.NewSheetReader(),
		},
		cleaner:    clean.NewCleaner(sc, cfg.Cleaning.SampleSize),
		classifier: NewClassifier(cfg.Detection),
		extractor:  NewExtractor(cfg.Extraction, reporter),
		reporter:   reporter,
	}
}

// ExtractFromBytes is the plain entry point for UTF-8 payloads.
func (p *Pipeline) ExtractFromBytes(content []byte, filename string) ExtractionResult {
	return p.Extract(ingest.Source{Content: content, Filename: filename})
}

// Extract runs the pipeline over one source. Every degraded state comes back
// as a structured result; malformed input never surfaces as an error.
func (p *Pipeline) Extract(source ingest.Source) ExtractionResult {
	reader := p.selectReader(source)
	if reader == nil {
		p.reporter.Warn("[pipeline] %s: unsupported file type %q", source.Filename, source.Ext())
		return failed(source.Filename, "unsupported file type: "+source.Ext())
	}

	ds, err := reader.Read(source)
	if err != nil {
		p.reporter.Warn("[pipeline] %s: %s reader failed: %v", source.Filename, reader.Name(), err)
		return failed(source.Filename, "unreadable file: "+err.Error())
	}

	ds, profiles := p.cleaner.Clean(ds)
	p.reporter.Debug("[pipeline] %s: %d columns, %d rows after cleaning (%s reader)",
		source.Filename, len(profiles), len(ds.Rows), reader.Name())

	roles := schema.MapRoles(ds.Columns)
	if !p.classifier.IsPricingExport(source.Filename, roles) {
		p.reporter.Info("[pipeline] %s: not recognized as a pricing export (%d roles)",
			source.Filename, schema.DistinctRoles(roles))
		return failed(source.Filename, "not recognized as a pricing export")
	}

	return p.extractor.Extract(ds, roles, source.Filename)
}

func (p *Pipeline) selectReader(source ingest.Source) ingest.Reader {
	for _, r := range p.readers {
		if r.CanHandle(source) {
			return r
		}
	}
	return nil
}
