package bale

import (
	"context"
	"encoding/json"

	"github.com/jfk9w-go/flu/httpf"
)

// Message (https://docs.bale.ai/types#message)
//
// A Message is decoded once per payload and not modified afterwards.
// Optional scalar fields distinguish "absent from payload" from explicit
// null via Opt; optional nested entities are nil pointers when absent.
type Message struct {
	ID   ID       `json:"message_id"`
	Date UnixTime `json:"date"`

	// FromUser is the "from" wire field: the sender of the message.
	// Empty for messages sent to channels.
	FromUser *User `json:"from"`
	Chat     *Chat `json:"chat"`

	Text    Opt[string] `json:"text"`
	Caption Opt[string] `json:"caption"`

	ForwardFrom          *User   `json:"forward_from"`
	ForwardFromChat      *Chat   `json:"forward_from_chat"`
	ForwardFromMessageID Opt[ID] `json:"forward_from_message_id"`

	// ReplyToMessage never contains its own ReplyToMessage: the platform
	// caps reply nesting at one level and the decoder enforces the cap.
	ReplyToMessage *Message      `json:"reply_to_message"`
	EditDate       Opt[UnixTime] `json:"edit_date"`

	Document  *Document  `json:"document"`
	Video     *Video     `json:"video"`
	Animation *Animation `json:"animation"`
	Audio     *Audio     `json:"audio"`
	Voice     *Voice     `json:"voice"`
	Photos    Photos     `json:"photo"`
	Sticker   *Sticker   `json:"sticker"`

	Contact  *Contact  `json:"contact"`
	Location *Location `json:"location"`

	NewChatMembers []User `json:"new_chat_members"`
	LeftChatMember *User  `json:"left_chat_member"`

	Invoice           *Invoice           `json:"invoice"`
	SuccessfulPayment *SuccessfulPayment `json:"successful_payment"`

	bot Client
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type proxy Message
	var value proxy
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	// An empty list on the wire means "nothing there".
	if len(value.Photos) == 0 {
		value.Photos = nil
	}
	if len(value.NewChatMembers) == 0 {
		value.NewChatMembers = nil
	}

	if reply := value.ReplyToMessage; reply != nil {
		reply.ReplyToMessage = nil
	}

	*m = Message(value)
	return nil
}

func (m *Message) bind(bot Client) *Message {
	if m == nil {
		return nil
	}

	m.bot = bot
	m.Chat.bind(bot)
	m.ForwardFromChat.bind(bot)
	m.ReplyToMessage.bind(bot)
	return m
}

func (m *Message) client() (Client, error) {
	if m == nil || m.bot == nil {
		return nil, ErrNoClient
	}
	return m.bot, nil
}

// Attachment returns the message media, preferring video, then photos,
// audio, animation, voice and document, or nil when the message carries
// none.
func (m *Message) Attachment() Attachment {
	switch {
	case m.Video != nil:
		return m.Video
	case len(m.Photos) > 0:
		return m.Photos
	case m.Audio != nil:
		return m.Audio
	case m.Animation != nil:
		return m.Animation
	case m.Voice != nil:
		return m.Voice
	case m.Document != nil:
		return m.Document
	default:
		return nil
	}
}

// Content returns the caption if the message has a non-empty one, the text
// otherwise, and a missing Opt when it has neither.
func (m *Message) Content() Opt[string] {
	if value, ok := m.Caption.Get(); ok && value != "" {
		return m.Caption
	}
	if value, ok := m.Text.Get(); ok && value != "" {
		return m.Text
	}
	return Opt[string]{}
}

// ChatID returns the identifier of the conversation the message belongs to.
func (m *Message) ChatID() Opt[ID] {
	if m.Chat == nil {
		return Opt[ID]{}
	}
	return Some(m.Chat.ID)
}

// ReplyToMessageID returns the identifier of the original message if this
// one is a reply.
func (m *Message) ReplyToMessageID() Opt[ID] {
	if m.ReplyToMessage == nil {
		return Opt[ID]{}
	}
	return Some(m.ReplyToMessage.ID)
}

// Ref returns the reference used for copy, forward, edit and delete calls.
func (m *Message) Ref() MessageRef {
	ref := MessageRef{ID: m.ID}
	if m.Chat != nil {
		ref.ChatID = m.Chat.ID
	}
	return ref
}

func (m *Message) chatID() ChatID {
	if m.Chat == nil {
		return nil
	}
	return m.Chat.ID
}

// Reply sends a text message to the same chat referencing this message.
func (m *Message) Reply(ctx context.Context, text string, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendMessage(ctx, m.chatID(), text, options.withReplyTo(m.ID))
}

// ReplyDocument sends a general file to the same chat referencing this message.
func (m *Message) ReplyDocument(ctx context.Context, document FileRef, options *MediaOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendDocument(ctx, m.chatID(), document, options.withReplyTo(m.ID))
}

// ReplyPhoto sends a photo to the same chat referencing this message.
func (m *Message) ReplyPhoto(ctx context.Context, photo FileRef, options *MediaOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendPhoto(ctx, m.chatID(), photo, options.withReplyTo(m.ID))
}

// ReplyVideo sends a video to the same chat referencing this message.
func (m *Message) ReplyVideo(ctx context.Context, video FileRef, options *MediaOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendVideo(ctx, m.chatID(), video, options.withReplyTo(m.ID))
}

// ReplyAnimation sends an animation to the same chat referencing this message.
func (m *Message) ReplyAnimation(ctx context.Context, animation FileRef, options *AnimationOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendAnimation(ctx, m.chatID(), animation, options.withReplyTo(m.ID))
}

// ReplyAudio sends an audio file to the same chat referencing this message.
func (m *Message) ReplyAudio(ctx context.Context, audio FileRef, options *MediaOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendAudio(ctx, m.chatID(), audio, options.withReplyTo(m.ID))
}

// ReplySticker sends a sticker to the same chat referencing this message.
func (m *Message) ReplySticker(ctx context.Context, sticker FileRef, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendSticker(ctx, m.chatID(), sticker, options.withReplyTo(m.ID))
}

// ReplyLocation sends a location to the same chat referencing this message.
func (m *Message) ReplyLocation(ctx context.Context, location Location, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendLocation(ctx, m.chatID(), location, options.withReplyTo(m.ID))
}

// ReplyContact sends a phone contact to the same chat referencing this message.
func (m *Message) ReplyContact(ctx context.Context, contact Contact, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendContact(ctx, m.chatID(), contact, options.withReplyTo(m.ID))
}

// ReplyMediaGroup sends a media album to the same chat referencing this message.
func (m *Message) ReplyMediaGroup(ctx context.Context, media []Media, options *SendOptions) ([]Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.SendMediaGroup(ctx, m.chatID(), media, options.withReplyTo(m.ID))
}

// Forward forwards this message to another chat.
func (m *Message) Forward(ctx context.Context, to ChatID) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.ForwardMessage(ctx, to, m.Ref())
}

// Copy copies this message to another chat.
func (m *Message) Copy(ctx context.Context, to ChatID, options *CopyOptions) (ID, error) {
	bot, err := m.client()
	if err != nil {
		return 0, err
	}
	return bot.CopyMessage(ctx, to, m.Ref(), options)
}

// Edit replaces the text of this message.
func (m *Message) Edit(ctx context.Context, text string, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.EditMessage(ctx, m.Ref(), text, options)
}

// EditCaption replaces the caption of this message.
func (m *Message) EditCaption(ctx context.Context, caption string, options *SendOptions) (*Message, error) {
	bot, err := m.client()
	if err != nil {
		return nil, err
	}
	return bot.EditMessageCaption(ctx, m.Ref(), caption, options)
}

// Delete deletes this message.
func (m *Message) Delete(ctx context.Context) error {
	bot, err := m.client()
	if err != nil {
		return err
	}
	return bot.DeleteMessage(ctx, m.Ref())
}

// MessageRef is used for message copying, forwarding, editing and deletion.
type MessageRef struct {
	ChatID ChatID
	ID     ID
}

func (r MessageRef) form() *httpf.Form {
	return new(httpf.Form).
		Set("chat_id", chatParam(r.ChatID)).
		Set("message_id", r.ID.queryParam())
}
