package session

import (
	"time"

	"github.com/gotd/td/telegram/message/peer"
	"github.com/gotd/td/tg"

	"github.com/tgscan/tg-file-scraper/internal/types"
)

// convertMessage flattens a raw MTProto message into the scraper's view.
func convertMessage(msg *tg.Message, entities peer.Entities) types.Message {
	var date time.Time
	if msg.Date != 0 {
		date = time.Unix(int64(msg.Date), 0)
	}
	return types.Message{
		ID:       msg.ID,
		Date:     date,
		Text:     msg.Message,
		Sender:   convertSender(msg, entities),
		Document: convertDocument(msg.Media),
	}
}

// convertSender resolves the message author from the iterator's entity map.
// Channel posts without a user author resolve to nil.
func convertSender(msg *tg.Message, entities peer.Entities) *types.Sender {
	if msg.FromID == nil {
		return nil
	}
	from, ok := msg.FromID.(*tg.PeerUser)
	if !ok {
		return nil
	}
	user, ok := entities.User(from.UserID)
	if !ok {
		return nil
	}
	return &types.Sender{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

// convertDocument extracts a generic document attachment. Photos, stickers
// and other native media kinds yield nil, as does an empty document stub.
func convertDocument(media tg.MessageMediaClass) *types.Document {
	md, ok := media.(*tg.MessageMediaDocument)
	if !ok || md.Document == nil {
		return nil
	}
	doc, ok := md.Document.AsNotEmpty()
	if !ok {
		return nil
	}

	out := &types.Document{Size: doc.Size}
	for _, attr := range doc.Attributes {
		if name, ok := attr.(*tg.DocumentAttributeFilename); ok {
			out.FileName = name.FileName
			break
		}
	}
	return out
}
