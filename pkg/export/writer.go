package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huanfeng/localecsv/pkg/models"
)

// utf8BOM precedes the header so spreadsheet tools detect the encoding
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer emits the locale CSV: BOM, fixed header, then one quoted row per record.
type Writer struct {
	bw     *bufio.Writer
	closer io.Closer
	rows   int
	closed bool
}

// NewWriter wraps w. The caller owns w's lifecycle.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Create creates or truncates path and returns a Writer that owns the file.
// The BOM and header are not written yet; call WriteHeader.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := NewWriter(file)
	w.closer = file
	return w, nil
}

// WriteHeader writes the UTF-8 BOM and the header row and flushes them,
// so an unusable output fails before any locale is read
func (w *Writer) WriteHeader() error {
	if _, err := w.bw.Write(utf8BOM); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(FormatRow(models.RecordHeader)); err != nil {
		return err
	}
	return w.bw.Flush()
}

// Write appends one record
func (w *Writer) Write(record models.LocaleRecord) error {
	if _, err := w.bw.WriteString(FormatRow(record.Fields())); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Rows returns the number of records written
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes buffered data to the underlying writer
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Close flushes and, when the Writer owns a file, closes it. Safe to call twice.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.bw.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// FormatRow renders fields as one CSV line. Every field is quoted and embedded quotes are doubled.
func FormatRow(fields []string) string {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	return sb.String()
}
