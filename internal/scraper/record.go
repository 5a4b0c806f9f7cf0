package scraper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tgscan/tg-file-scraper/internal/types"
)

const (
	captionLimit  = 500
	bytesPerMB    = 1024 * 1024
	dateLayout    = "2006-01-02 15:04:05"
	unknownSender = "Unknown"
)

// buildRecord flattens a message into a FileRecord. ok is false when the
// message carries no named document attachment; that is a skip, not an error.
func buildRecord(msg types.Message, identifier string) (types.FileRecord, bool) {
	if msg.Document == nil || msg.Document.FileName == "" {
		return types.FileRecord{}, false
	}
	return types.FileRecord{
		Filename:   msg.Document.FileName,
		MessageID:  msg.ID,
		Date:       formatDate(msg.Date),
		Sender:     senderName(msg.Sender),
		Caption:    truncateCaption(msg.Text),
		FileSizeMB: sizeMB(msg.Document.Size),
		MessageURL: messageURL(identifier, msg.ID),
	}, true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// senderName resolves a display name: "First Last" when a first name is
// present, else "@username", else "Unknown".
func senderName(s *types.Sender) string {
	switch {
	case s == nil:
		return unknownSender
	case s.FirstName != "":
		if s.LastName != "" {
			return s.FirstName + " " + s.LastName
		}
		return s.FirstName
	case s.Username != "":
		return "@" + s.Username
	default:
		return unknownSender
	}
}

// truncateCaption keeps the first captionLimit runes of the message text.
func truncateCaption(text string) string {
	runes := []rune(text)
	if len(runes) <= captionLimit {
		return text
	}
	return string(runes[:captionLimit])
}

// sizeMB converts a byte size to megabytes rounded to two decimals. Unknown
// sizes report as 0.
func sizeMB(bytes int64) float64 {
	if bytes <= 0 {
		return 0
	}
	return math.Round(float64(bytes)/bytesPerMB*100) / 100
}

// messageURL builds the t.me deep link for plain handles. When the channel
// was identified by URL only the raw message id is kept; resolving those to a
// canonical link is a known gap.
func messageURL(identifier string, id int) string {
	if !strings.HasPrefix(identifier, "http") {
		return fmt.Sprintf("https://t.me/%s/%d", identifier, id)
	}
	return strconv.Itoa(id)
}
