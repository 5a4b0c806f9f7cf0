// Package scraper walks one channel's message history and collects matching
// file attachments as flat records, in iteration order.
package scraper

import (
	"context"

	"github.com/tgscan/tg-file-scraper/internal/classifier"
	"github.com/tgscan/tg-file-scraper/internal/logger"
	"github.com/tgscan/tg-file-scraper/internal/session"
	"github.com/tgscan/tg-file-scraper/internal/types"
)

// MessageSource is the session-client boundary the scraper consumes: resolve
// a channel identifier, then walk its history newest-first up to a scan
// limit.
type MessageSource interface {
	ResolveChannel(ctx context.Context, identifier string) (session.Channel, error)
	ForEachMessage(ctx context.Context, ch session.Channel, limit int, fn func(types.Message) error) error
}

// Scraper scans channel history and accumulates matching records. Records are
// appended in message-iteration order and never reordered.
type Scraper struct {
	source  MessageSource
	records []types.FileRecord
	stats   types.ScrapeStats
}

// New creates a Scraper reading from source.
func New(source MessageSource) *Scraper {
	return &Scraper{source: source}
}

// Records returns the collected records in message-iteration order.
func (s *Scraper) Records() []types.FileRecord {
	return s.records
}

// Stats returns the counters of the run so far.
func (s *Scraper) Stats() types.ScrapeStats {
	return s.stats
}

// Scrape scans up to limit messages of the identified channel, newest first,
// and appends every matching document attachment to the collector. A channel
// that cannot be resolved is reported and leaves the collector unchanged; an
// error during iteration propagates to the caller.
func (s *Scraper) Scrape(ctx context.Context, identifier string, limit int, allowed []string) error {
	logger.Infof("Scraping group: %s", identifier)
	logger.Infof("Scanning last %d messages", limit)

	ch, err := s.source.ResolveChannel(ctx, identifier)
	if err != nil {
		logger.Errorf("Error getting group: %v", err)
		return nil
	}
	logger.Infof("Group: %s", ch.Title)

	found := 0
	err = s.source.ForEachMessage(ctx, ch, limit, func(msg types.Message) error {
		s.stats.MessagesScanned++

		if msg.Document == nil || !classifier.Matches(msg.Document.FileName, allowed) {
			return nil
		}
		rec, ok := buildRecord(msg, identifier)
		if !ok {
			return nil
		}

		s.records = append(s.records, rec)
		s.stats.FilesFound++
		found++
		logger.Infof("[%d] %s (%.2f MB)", found, rec.Filename, rec.FileSizeMB)
		return nil
	})
	if err != nil {
		return err
	}

	logger.Infof("Found %d files", found)
	return nil
}
