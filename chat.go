package bale

import (
	"context"

	"golang.org/x/exp/slices"
)

// ChatType can be either "private", "group" or "channel".
type ChatType string

const (
	PrivateChat ChatType = "private"
	GroupChat   ChatType = "group"
	Channel     ChatType = "channel"
)

var chatTypes = []ChatType{PrivateChat, GroupChat, Channel}

// Known reports whether this is one of the chat types the platform defines.
func (t ChatType) Known() bool {
	return slices.Contains(chatTypes, t)
}

// Chat (https://docs.bale.ai/types#chat)
//
// ID identifies the chat: two Chat values decoded from payloads with the
// same id refer to the same conversation regardless of the remaining
// fields, so use ID as the map key when storing chats.
type Chat struct {
	ID         ID            `json:"id"`
	Type       ChatType      `json:"type"`
	Title      Opt[string]   `json:"title"`
	Username   Opt[Username] `json:"username"`
	FirstName  Opt[string]   `json:"first_name"`
	LastName   Opt[string]   `json:"last_name"`
	Photo      *ChatPhoto    `json:"photo"`
	InviteLink Opt[string]   `json:"invite_link"`

	bot Client
}

func (c *Chat) bind(bot Client) *Chat {
	if c == nil {
		return nil
	}

	c.bot = bot
	return c
}

func (c *Chat) client() (Client, error) {
	if c == nil || c.bot == nil {
		return nil, ErrNoClient
	}
	return c.bot, nil
}

// IsPrivate reports whether this is a one-on-one conversation.
func (c *Chat) IsPrivate() bool {
	return c.Type == PrivateChat
}

// IsGroup reports whether this is a group chat.
func (c *Chat) IsGroup() bool {
	return c.Type == GroupChat
}

// IsChannel reports whether this is a channel.
func (c *Chat) IsChannel() bool {
	return c.Type == Channel
}

// Send posts a text message to this chat.
func (c *Chat) Send(ctx context.Context, text string, options *SendOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendMessage(ctx, c.ID, text, options)
}

// SendDocument posts a general file to this chat.
func (c *Chat) SendDocument(ctx context.Context, document FileRef, options *MediaOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendDocument(ctx, c.ID, document, options)
}

// SendPhoto posts a photo to this chat.
func (c *Chat) SendPhoto(ctx context.Context, photo FileRef, options *MediaOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendPhoto(ctx, c.ID, photo, options)
}

// SendVideo posts a video to this chat.
func (c *Chat) SendVideo(ctx context.Context, video FileRef, options *MediaOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendVideo(ctx, c.ID, video, options)
}

// SendAnimation posts an animation to this chat.
func (c *Chat) SendAnimation(ctx context.Context, animation FileRef, options *AnimationOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendAnimation(ctx, c.ID, animation, options)
}

// SendAudio posts an audio file to this chat.
func (c *Chat) SendAudio(ctx context.Context, audio FileRef, options *MediaOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendAudio(ctx, c.ID, audio, options)
}

// SendSticker posts a sticker to this chat.
func (c *Chat) SendSticker(ctx context.Context, sticker FileRef, options *SendOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendSticker(ctx, c.ID, sticker, options)
}

// SendLocation posts a location to this chat.
func (c *Chat) SendLocation(ctx context.Context, location Location, options *SendOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendLocation(ctx, c.ID, location, options)
}

// SendContact posts a phone contact to this chat.
func (c *Chat) SendContact(ctx context.Context, contact Contact, options *SendOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendContact(ctx, c.ID, contact, options)
}

// SendInvoice posts an invoice to this chat.
func (c *Chat) SendInvoice(ctx context.Context, invoice NewInvoice, options *InvoiceOptions) (*Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendInvoice(ctx, c.ID, invoice, options)
}

// SendMediaGroup posts a media album to this chat.
func (c *Chat) SendMediaGroup(ctx context.Context, media []Media, options *SendOptions) ([]Message, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.SendMediaGroup(ctx, c.ID, media, options)
}

// CopyMessage copies a message from this chat to another one.
func (c *Chat) CopyMessage(ctx context.Context, to ChatID, messageID ID, options *CopyOptions) (ID, error) {
	bot, err := c.client()
	if err != nil {
		return 0, err
	}
	return bot.CopyMessage(ctx, to, MessageRef{ChatID: c.ID, ID: messageID}, options)
}

// Leave makes the bot leave this chat.
func (c *Chat) Leave(ctx context.Context) error {
	bot, err := c.client()
	if err != nil {
		return err
	}
	return bot.LeaveChat(ctx, c.ID)
}

// AddUser invites a user to this chat.
func (c *Chat) AddUser(ctx context.Context, user UserRef) error {
	bot, err := c.client()
	if err != nil {
		return err
	}
	return bot.InviteUser(ctx, c.ID, user.userID())
}

// GetMember returns information about a member of this chat.
func (c *Chat) GetMember(ctx context.Context, user UserRef) (*ChatMember, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.GetChatMember(ctx, c.ID, user.userID())
}

// BanMember bans a user from this chat.
func (c *Chat) BanMember(ctx context.Context, user UserRef) error {
	bot, err := c.client()
	if err != nil {
		return err
	}
	return bot.BanChatMember(ctx, c.ID, user.userID())
}

// UnbanMember lifts a ban from a user in this chat.
func (c *Chat) UnbanMember(ctx context.Context, user UserRef, onlyIfBanned Opt[bool]) error {
	bot, err := c.client()
	if err != nil {
		return err
	}
	return bot.UnbanChatMember(ctx, c.ID, user.userID(), onlyIfBanned)
}

// SetPhoto sets a new chat photo.
func (c *Chat) SetPhoto(ctx context.Context, photo FileRef) error {
	bot, err := c.client()
	if err != nil {
		return err
	}
	return bot.SetChatPhoto(ctx, c.ID, photo)
}

// GetMembersCount returns the number of members in this chat.
func (c *Chat) GetMembersCount(ctx context.Context) (int64, error) {
	bot, err := c.client()
	if err != nil {
		return 0, err
	}
	return bot.GetChatMembersCount(ctx, c.ID)
}

// GetAdministrators returns the administrators of this chat.
func (c *Chat) GetAdministrators(ctx context.Context) ([]ChatMember, error) {
	bot, err := c.client()
	if err != nil {
		return nil, err
	}
	return bot.GetChatAdministrators(ctx, c.ID)
}
