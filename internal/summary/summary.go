// Package summary aggregates collected records for the end-of-run report. All
// functions are read-only: the collector slice is never reordered or mutated.
package summary

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tgscan/tg-file-scraper/internal/types"
)

const topN = 10

// ExtensionCount is the number of records sharing one filename extension.
type ExtensionCount struct {
	Extension string
	Count     int
}

// ByExtension buckets records by lower-cased filename extension, sorted
// descending by count (ties alphabetical). Records without an extension land
// in the "no extension" bucket.
func ByExtension(records []types.FileRecord) []ExtensionCount {
	counts := make(map[string]int)
	for _, r := range records {
		ext := strings.ToLower(filepath.Ext(r.Filename))
		if ext == "" {
			ext = "no extension"
		}
		counts[ext]++
	}

	out := make([]ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		out = append(out, ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// TotalSizeMB sums file_size_mb over all records, rounded to two decimals for
// display.
func TotalSizeMB(records []types.FileRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.FileSizeMB
	}
	return math.Round(total*100) / 100
}

// Largest returns the n largest records by size, descending. Ties keep the
// collector's existing order. The input slice is left untouched.
func Largest(records []types.FileRecord, n int) []types.FileRecord {
	sorted := make([]types.FileRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FileSizeMB > sorted[j].FileSizeMB
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Print writes the end-of-run summary block to w. Nothing is printed for an
// empty record set.
func Print(w io.Writer, records []types.FileRecord) {
	if len(records) == 0 {
		return
	}

	banner := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, banner)

	fmt.Fprintf(w, "\nTotal Files: %d\n", len(records))
	fmt.Fprintf(w, "Total Size: %s MB\n", formatMB(TotalSizeMB(records)))

	fmt.Fprintf(w, "\nBy Extension:\n")
	exts := ByExtension(records)
	if len(exts) > topN {
		exts = exts[:topN]
	}
	for _, e := range exts {
		fmt.Fprintf(w, "  %s: %d\n", e.Extension, e.Count)
	}

	fmt.Fprintf(w, "\nTop %d Largest Files:\n", topN)
	for i, r := range Largest(records, topN) {
		fmt.Fprintf(w, "  %d. %s (%s MB)\n", i+1, r.Filename, formatMB(r.FileSizeMB))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
}

func formatMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', -1, 64)
}
