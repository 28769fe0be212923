package bale

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Unmarshal(t *testing.T) {
	payload := `{
	  "message_id": 100,
	  "date": 1600000000,
	  "from": {"id": 1, "is_bot": false, "first_name": "John"},
	  "chat": {"id": 10, "type": "group", "title": "Group"},
	  "text": "hello",
	  "photo": [],
	  "new_chat_members": [],
	  "reply_to_message": {
	    "message_id": 99,
	    "date": 1599999999,
	    "chat": {"id": 10, "type": "group"},
	    "text": "original",
	    "reply_to_message": {
	      "message_id": 98,
	      "date": 1599999998,
	      "chat": {"id": 10, "type": "group"}
	    }
	  }
	}`

	var message Message
	require.NoError(t, json.Unmarshal([]byte(payload), &message))

	assert.Equal(t, ID(100), message.ID)
	assert.Equal(t, time.Unix(1600000000, 0).UTC(), message.Date.Time)
	require.NotNil(t, message.FromUser)
	assert.Equal(t, "John", message.FromUser.FirstName)
	require.NotNil(t, message.Chat)
	assert.Equal(t, ID(10), message.Chat.ID)
	assert.Equal(t, Some("hello"), message.Text)
	assert.True(t, message.Caption.Missing())

	assert.Nil(t, message.Photos)
	assert.Nil(t, message.NewChatMembers)

	require.NotNil(t, message.ReplyToMessage)
	assert.Equal(t, ID(99), message.ReplyToMessage.ID)
	assert.Nil(t, message.ReplyToMessage.ReplyToMessage)
}

func TestMessage_Attachment(t *testing.T) {
	video := &Video{File: File{FileID: "v"}}
	photos := Photos{{File: File{FileID: "p"}}}
	audio := &Audio{File: File{FileID: "a"}}
	document := &Document{File: File{FileID: "d"}}

	assert.Nil(t, new(Message).Attachment())
	assert.Equal(t, Attachment(document), (&Message{Document: document}).Attachment())
	assert.Equal(t, Attachment(audio), (&Message{Audio: audio, Document: document}).Attachment())
	assert.Equal(t, Attachment(photos), (&Message{Photos: photos, Audio: audio}).Attachment())
	assert.Equal(t, Attachment(video), (&Message{Video: video, Photos: photos}).Attachment())
}

func TestMessage_Content(t *testing.T) {
	for _, tc := range []struct {
		name     string
		message  Message
		expected Opt[string]
	}{
		{"empty", Message{}, Opt[string]{}},
		{"text only", Message{Text: Some("text")}, Some("text")},
		{"caption wins", Message{Text: Some("text"), Caption: Some("caption")}, Some("caption")},
		{"empty caption falls back", Message{Text: Some("text"), Caption: Some("")}, Some("text")},
		{"null text", Message{Text: Null[string]()}, Opt[string]{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.message.Content())
		})
	}
}

func TestMessage_Refs(t *testing.T) {
	message := Message{
		ID:             100,
		Chat:           &Chat{ID: 10},
		ReplyToMessage: &Message{ID: 99},
	}

	assert.Equal(t, Some(ID(10)), message.ChatID())
	assert.Equal(t, Some(ID(99)), message.ReplyToMessageID())
	assert.Equal(t, MessageRef{ChatID: ID(10), ID: 100}, message.Ref())

	orphan := Message{ID: 1}
	assert.True(t, orphan.ChatID().Missing())
	assert.True(t, orphan.ReplyToMessageID().Missing())
	assert.Equal(t, MessageRef{ID: 1}, orphan.Ref())
}

func TestMessage_UnmarshalDate(t *testing.T) {
	var message Message
	require.NoError(t, json.Unmarshal([]byte(`{"message_id": 1, "date": 0, "edit_date": 1600000100}`), &message))
	edit, ok := message.EditDate.Get()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1600000100, 0).UTC(), edit.Time)
}
