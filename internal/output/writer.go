package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-replica-go/internal/perft"
)

// Report is the result of one perft run.
type Report struct {
	FEN        string
	Depth      int
	Nodes      uint64
	Entries    []perft.Entry    // set for divide runs
	Mismatches []perft.Mismatch // set for verified runs
	Verified   bool
	Elapsed    time.Duration
}

// ReportWriter is the interface for writing perft reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes the divide lines, any mismatches and a summary.
func (tw *TextWriter) WriteReport(r *Report) error {
	if err := WriteDivide(tw.w, r.Entries); err != nil {
		return err
	}
	if len(r.Entries) > 0 {
		fmt.Fprintln(tw.w)
	}
	if err := WriteMismatches(tw.w, r.Mismatches); err != nil {
		return err
	}
	_, err := fmt.Fprintf(tw.w, "depth %d nodes %d time %dms nps %s\n",
		r.Depth, r.Nodes, r.Elapsed.Milliseconds(), NodesPerSecond(r.Nodes, r.Elapsed))
	if err != nil {
		return err
	}
	if r.Verified && len(r.Mismatches) == 0 {
		_, err = fmt.Fprintln(tw.w, "reference agrees")
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON object on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ReportToJSON(r))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONPerftOutput{Reports: make([]*JSONPerft, 0, len(jw.reports))}
	for _, r := range jw.reports {
		out.Reports = append(out.Reports, ReportToJSON(r))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
