package bale

import (
	"encoding/json"

	"github.com/jfk9w-go/flu/httpf"
	"github.com/pkg/errors"
)

// SendOptions is a common set of parameters of the send* methods.
// A nil *SendOptions is valid and means "no options".
type SendOptions struct {
	ReplyToMessageID Opt[ID]
	ReplyMarkup      ReplyMarkup
}

func (o *SendOptions) body(chatID ChatID) (*httpf.Form, error) {
	form := new(httpf.Form).Set("chat_id", chatParam(chatID))
	if o == nil {
		return form, nil
	}

	setOpt(form, "reply_to_message_id", o.ReplyToMessageID)
	if o.ReplyMarkup != nil {
		data, err := json.Marshal(o.ReplyMarkup)
		if err != nil {
			return nil, errors.Wrap(err, "serialize reply_markup")
		}
		form.Set("reply_markup", string(data))
	}

	return form, nil
}

// withReplyTo returns a copy of the options with ReplyToMessageID filled in.
// The receiver is not modified.
func (o *SendOptions) withReplyTo(messageID ID) *SendOptions {
	var options SendOptions
	if o != nil {
		options = *o
	}

	options.ReplyToMessageID = Some(messageID)
	return &options
}

// MediaOptions is a common set of parameters of the media send* methods.
type MediaOptions struct {
	SendOptions
	Caption  Opt[string]
	FileName Opt[string]
}

func (o *MediaOptions) body(chatID ChatID) (*httpf.Form, error) {
	if o == nil {
		return new(SendOptions).body(chatID)
	}

	form, err := o.SendOptions.body(chatID)
	if err != nil {
		return nil, err
	}

	setOpt(form, "caption", o.Caption)
	setOpt(form, "file_name", o.FileName)
	return form, nil
}

func (o *MediaOptions) withReplyTo(messageID ID) *MediaOptions {
	var options MediaOptions
	if o != nil {
		options = *o
	}

	options.ReplyToMessageID = Some(messageID)
	return &options
}

// AnimationOptions is the set of parameters of SendAnimation.
type AnimationOptions struct {
	MediaOptions
	Duration Opt[int]
	Width    Opt[int]
	Height   Opt[int]
}

func (o *AnimationOptions) body(chatID ChatID) (*httpf.Form, error) {
	if o == nil {
		return new(SendOptions).body(chatID)
	}

	form, err := o.MediaOptions.body(chatID)
	if err != nil {
		return nil, err
	}

	setOpt(form, "duration", o.Duration)
	setOpt(form, "width", o.Width)
	setOpt(form, "height", o.Height)
	return form, nil
}

func (o *AnimationOptions) withReplyTo(messageID ID) *AnimationOptions {
	var options AnimationOptions
	if o != nil {
		options = *o
	}

	options.ReplyToMessageID = Some(messageID)
	return &options
}

// InvoiceOptions is the set of parameters of SendInvoice.
type InvoiceOptions struct {
	SendOptions
	Payload             Opt[string]
	PhotoURL            Opt[string]
	NeedName            Opt[bool]
	NeedPhoneNumber     Opt[bool]
	NeedEmail           Opt[bool]
	NeedShippingAddress Opt[bool]
	IsFlexible          Opt[bool]
}

func (o *InvoiceOptions) body(chatID ChatID) (*httpf.Form, error) {
	if o == nil {
		return new(SendOptions).body(chatID)
	}

	form, err := o.SendOptions.body(chatID)
	if err != nil {
		return nil, err
	}

	setOpt(form, "payload", o.Payload)
	setOpt(form, "photo_url", o.PhotoURL)
	setOpt(form, "need_name", o.NeedName)
	setOpt(form, "need_phone_number", o.NeedPhoneNumber)
	setOpt(form, "need_email", o.NeedEmail)
	setOpt(form, "need_shipping_address", o.NeedShippingAddress)
	setOpt(form, "is_flexible", o.IsFlexible)
	return form, nil
}

// CopyOptions is the set of parameters of CopyMessage.
type CopyOptions struct {
	SendOptions
	Caption Opt[string]
}

func (o *CopyOptions) body(chatID ChatID) (*httpf.Form, error) {
	if o == nil {
		return new(SendOptions).body(chatID)
	}

	form, err := o.SendOptions.body(chatID)
	if err != nil {
		return nil, err
	}

	setOpt(form, "caption", o.Caption)
	return form, nil
}

// GetUpdatesOptions is the set of parameters of GetUpdates.
type GetUpdatesOptions struct {
	// Offset is the identifier of the first update to be returned.
	Offset ID `json:"offset,omitempty"`
	// Limit is the maximum number of updates to be retrieved.
	Limit int `json:"limit,omitempty"`
}

func chatParam(chatID ChatID) string {
	if chatID == nil {
		return ""
	}
	return chatID.queryParam()
}

func setOpt[T any](form *httpf.Form, key string, value Opt[T]) *httpf.Form {
	if param, ok := value.queryParam(); ok {
		form.Set(key, param)
	}
	return form
}
