package session

import (
	"testing"
	"time"

	"github.com/gotd/td/telegram/message/peer"
	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentMedia(filename string, size int64) *tg.MessageMediaDocument {
	doc := &tg.Document{Size: size}
	if filename != "" {
		doc.Attributes = []tg.DocumentAttributeClass{
			&tg.DocumentAttributeFilename{FileName: filename},
		}
	}
	return &tg.MessageMediaDocument{Document: doc}
}

func TestConvertDocument(t *testing.T) {
	got := convertDocument(documentMedia("ea.zip", 2048))
	require.NotNil(t, got)
	assert.Equal(t, "ea.zip", got.FileName)
	assert.Equal(t, int64(2048), got.Size)

	// Document without a filename attribute keeps size, leaves name empty.
	got = convertDocument(documentMedia("", 2048))
	require.NotNil(t, got)
	assert.Equal(t, "", got.FileName)

	// Non-document media kinds carry no attachment.
	assert.Nil(t, convertDocument(nil))
	assert.Nil(t, convertDocument(&tg.MessageMediaPhoto{}))
	assert.Nil(t, convertDocument(&tg.MessageMediaDocument{}))
	assert.Nil(t, convertDocument(&tg.MessageMediaDocument{Document: &tg.DocumentEmpty{}}))
}

func TestConvertSender(t *testing.T) {
	entities := peer.NewEntities(map[int64]*tg.User{
		7: {FirstName: "Jane", LastName: "Doe", Username: "jdoe"},
	}, nil, nil)

	msg := &tg.Message{FromID: &tg.PeerUser{UserID: 7}}
	got := convertSender(msg, entities)
	require.NotNil(t, got)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "jdoe", got.Username)

	// No author on the message (channel post).
	assert.Nil(t, convertSender(&tg.Message{}, entities))

	// Author not present in the entity map.
	assert.Nil(t, convertSender(&tg.Message{FromID: &tg.PeerUser{UserID: 8}}, entities))

	// Non-user author.
	assert.Nil(t, convertSender(&tg.Message{FromID: &tg.PeerChannel{ChannelID: 1}}, entities))
}

func TestConvertMessage(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	msg := &tg.Message{
		ID:      42,
		Date:    int(ts.Unix()),
		Message: "latest build",
		Media:   documentMedia("ea.zip", 1572864),
	}

	got := convertMessage(msg, peer.NewEntities(nil, nil, nil))
	assert.Equal(t, 42, got.ID)
	assert.True(t, got.Date.Equal(ts))
	assert.Equal(t, "latest build", got.Text)
	assert.Nil(t, got.Sender)
	require.NotNil(t, got.Document)
	assert.Equal(t, "ea.zip", got.Document.FileName)

	// A zero platform timestamp maps to the zero time.
	got = convertMessage(&tg.Message{ID: 1}, peer.NewEntities(nil, nil, nil))
	assert.True(t, got.Date.IsZero())
}
