package types

import "time"

// FileRecord is one matched attachment, flattened for export. The JSON tags
// double as the CSV column names.
type FileRecord struct {
	Filename   string  `json:"filename"`
	MessageID  int     `json:"message_id"`
	Date       string  `json:"date"`
	Sender     string  `json:"sender"`
	Caption    string  `json:"caption"`
	FileSizeMB float64 `json:"file_size_mb"`
	MessageURL string  `json:"message_url"`
}

// Message is the scraper's view of one channel message. Optional parts are
// explicit: a nil Sender means the platform reported no author, a nil
// Document means the message carried no generic file attachment.
type Message struct {
	ID       int
	Date     time.Time
	Text     string
	Sender   *Sender
	Document *Document
}

// Sender holds the identity fields of a message author as reported by the
// platform. Any of them may be empty.
type Sender struct {
	FirstName string
	LastName  string
	Username  string
}

// Document is a generic file attachment. FileName is empty when the document
// carries no filename attribute; Size is in bytes, 0 when unknown.
type Document struct {
	FileName string
	Size     int64
}

// ScrapeStats holds counters for one scrape run.
type ScrapeStats struct {
	MessagesScanned int
	FilesFound      int
}
