// Package export walks a locale catalog and writes one CSV row per usable locale.
package export

import (
	"io"
	"sort"

	"github.com/huanfeng/localecsv/internal/errors"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/huanfeng/localecsv/pkg/utils"
)

// Options controls a single export run
type Options struct {
	Output   string
	Sort     bool      // buffer rows and write them ordered by locale name
	Progress io.Writer // nil disables the progress bar
}

// Summary reports what an export run did
type Summary struct {
	Output     string
	Enumerated int
	Written    int
	Skipped    map[SkipReason]int
}

// TotalSkipped returns the number of locales without a row
func (s *Summary) TotalSkipped() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// Run exports catalog to opts.Output. The file is closed on every path.
func Run(catalog nls.Catalog, builder *Builder, opts Options, logger utils.Logger) (summary *Summary, err error) {
	if logger == nil {
		logger = utils.GetGlobalLogger()
	}

	summary = &Summary{
		Output:  opts.Output,
		Skipped: make(map[SkipReason]int),
	}

	w, err := Create(opts.Output)
	if err != nil {
		return nil, errors.NewFileSystemError(err, errors.CodeOutputCreate, "failed to create output file").
			WithContext("path", opts.Output)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.NewFileSystemError(cerr, errors.CodeOutputClose, "failed to finish output file").
				WithContext("path", opts.Output)
		}
	}()

	if err := w.WriteHeader(); err != nil {
		return nil, errors.NewFileSystemError(err, errors.CodeHeaderWrite, "failed to write CSV header").
			WithContext("path", opts.Output)
	}

	var (
		pending  []models.LocaleRecord
		writeErr error
		bar      *utils.ProgressBar
	)

	total, err := Enumerate(catalog, func(entry models.LocaleEntry, total int) {
		if opts.Progress != nil {
			if bar == nil {
				bar = utils.NewProgressBar(opts.Progress, int64(total), "Exporting locales")
			}
			defer bar.Increment()
		}

		record, reason := builder.Build(entry)
		if reason.Skipped() {
			summary.Skipped[reason]++
			return
		}

		if opts.Sort {
			pending = append(pending, record)
			return
		}
		if writeErr == nil {
			writeErr = w.Write(record)
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, errors.NewPlatformError(err, errors.CodeCatalogEnum, "failed to enumerate locales")
	}
	summary.Enumerated = total

	if opts.Sort {
		sort.SliceStable(pending, func(i, j int) bool {
			return pending[i].Name < pending[j].Name
		})
		for _, record := range pending {
			if writeErr = w.Write(record); writeErr != nil {
				break
			}
		}
	}
	if writeErr != nil {
		return nil, errors.NewFileSystemError(writeErr, errors.CodeRowWrite, "failed to write CSV row").
			WithContext("path", opts.Output)
	}

	summary.Written = w.Rows()
	logger.Info("Exported %d of %d locales to %s (%d skipped)",
		summary.Written, summary.Enumerated, summary.Output, summary.TotalSkipped())
	for _, reason := range []SkipReason{SkipLCID, SkipANSILookup, SkipANSIZero} {
		if n := summary.Skipped[reason]; n > 0 {
			logger.Debug("Skipped %d locales: %s", n, reason)
		}
	}

	return summary, nil
}
