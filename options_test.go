package bale

import (
	"net/url"
	"strings"
	"testing"

	"github.com/jfk9w-go/flu/httpf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formValues(t *testing.T, form *httpf.Form) url.Values {
	t.Helper()
	var b strings.Builder
	require.NoError(t, form.EncodeTo(&b))
	values, err := url.ParseQuery(b.String())
	require.NoError(t, err)
	return values
}

func TestSendOptions_Body(t *testing.T) {
	t.Run("nil options", func(t *testing.T) {
		var options *SendOptions
		form, err := options.body(ID(10))
		require.NoError(t, err)
		assert.Equal(t, url.Values{"chat_id": {"10"}}, formValues(t, form))
	})

	t.Run("reply and markup", func(t *testing.T) {
		options := &SendOptions{
			ReplyToMessageID: Some(ID(99)),
			ReplyMarkup: InlineKeyboardMarkup{
				InlineKeyboard: [][]InlineKeyboardButton{{{Text: "ok", CallbackData: "ok"}}},
			},
		}

		form, err := options.body(Username("news"))
		require.NoError(t, err)
		values := formValues(t, form)
		assert.Equal(t, "@news", values.Get("chat_id"))
		assert.Equal(t, "99", values.Get("reply_to_message_id"))
		assert.JSONEq(t, `{"inline_keyboard": [[{"text": "ok", "callback_data": "ok"}]]}`, values.Get("reply_markup"))
	})
}

func TestMediaOptions_Body(t *testing.T) {
	options := &MediaOptions{
		Caption:  Some("look"),
		FileName: Some("cat.png"),
	}

	form, err := options.body(ID(10))
	require.NoError(t, err)
	values := formValues(t, form)
	assert.Equal(t, "look", values.Get("caption"))
	assert.Equal(t, "cat.png", values.Get("file_name"))

	form, err = (*MediaOptions)(nil).body(ID(10))
	require.NoError(t, err)
	assert.Equal(t, url.Values{"chat_id": {"10"}}, formValues(t, form))
}

func TestAnimationOptions_Body(t *testing.T) {
	options := &AnimationOptions{
		Duration: Some(3),
		Width:    Some(320),
	}

	form, err := options.body(ID(10))
	require.NoError(t, err)
	values := formValues(t, form)
	assert.Equal(t, "3", values.Get("duration"))
	assert.Equal(t, "320", values.Get("width"))
	assert.False(t, values.Has("height"))
}

func TestInvoiceOptions_Body(t *testing.T) {
	options := &InvoiceOptions{
		Payload:  Some("order-1"),
		NeedName: Some(true),
	}

	form, err := options.body(ID(10))
	require.NoError(t, err)
	values := formValues(t, form)
	assert.Equal(t, "order-1", values.Get("payload"))
	assert.Equal(t, "true", values.Get("need_name"))
	assert.False(t, values.Has("need_email"))
}

func TestSendOptions_WithReplyTo(t *testing.T) {
	var options *SendOptions
	copied := options.withReplyTo(100)
	require.NotNil(t, copied)
	assert.Equal(t, Some(ID(100)), copied.ReplyToMessageID)

	original := &SendOptions{ReplyMarkup: MenuKeyboardMarkup{}}
	copied = original.withReplyTo(100)
	assert.True(t, original.ReplyToMessageID.Missing())
	assert.NotNil(t, copied.ReplyMarkup)
}
