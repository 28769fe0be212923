package bale

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNoClient is returned by delegation methods of entities which were not
// produced by a Client (decoded by hand, for example).
var ErrNoClient = errors.New("no associated client")

// Client is the Bale Bot API surface.
// All methods are safe for concurrent use.
type Client interface {
	// GetMe returns the bot account as a User.
	// See https://docs.bale.ai/methods#getme
	GetMe(ctx context.Context) (*User, error)

	// GetUpdates is used to receive incoming updates using long polling.
	// See https://docs.bale.ai/methods#getupdates
	GetUpdates(ctx context.Context, options GetUpdatesOptions) ([]Update, error)

	// GetChat returns up-to-date information about the chat.
	// See https://docs.bale.ai/methods#getchat
	GetChat(ctx context.Context, chatID ChatID) (*Chat, error)

	// GetChatMember returns information about a member of a chat.
	// See https://docs.bale.ai/methods#getchatmember
	GetChatMember(ctx context.Context, chatID ChatID, userID ID) (*ChatMember, error)

	// GetChatMembersCount returns the number of members in a chat.
	// See https://docs.bale.ai/methods#getchatmembercount
	GetChatMembersCount(ctx context.Context, chatID ChatID) (int64, error)

	// GetChatAdministrators returns the administrators of a chat.
	// See https://docs.bale.ai/methods#getchatadministrators
	GetChatAdministrators(ctx context.Context, chatID ChatID) ([]ChatMember, error)

	// SendMessage sends a text message.
	// See https://docs.bale.ai/methods#sendmessage
	SendMessage(ctx context.Context, chatID ChatID, text string, options *SendOptions) (*Message, error)

	// SendDocument sends a general file.
	// See https://docs.bale.ai/methods#senddocument
	SendDocument(ctx context.Context, chatID ChatID, document FileRef, options *MediaOptions) (*Message, error)

	// SendPhoto sends a photo.
	// See https://docs.bale.ai/methods#sendphoto
	SendPhoto(ctx context.Context, chatID ChatID, photo FileRef, options *MediaOptions) (*Message, error)

	// SendVideo sends a video.
	// See https://docs.bale.ai/methods#sendvideo
	SendVideo(ctx context.Context, chatID ChatID, video FileRef, options *MediaOptions) (*Message, error)

	// SendAnimation sends an animation.
	// See https://docs.bale.ai/methods#sendanimation
	SendAnimation(ctx context.Context, chatID ChatID, animation FileRef, options *AnimationOptions) (*Message, error)

	// SendAudio sends an audio file.
	// See https://docs.bale.ai/methods#sendaudio
	SendAudio(ctx context.Context, chatID ChatID, audio FileRef, options *MediaOptions) (*Message, error)

	// SendSticker sends a sticker.
	// See https://docs.bale.ai/methods#sendsticker
	SendSticker(ctx context.Context, chatID ChatID, sticker FileRef, options *SendOptions) (*Message, error)

	// SendLocation sends a point on the map.
	// See https://docs.bale.ai/methods#sendlocation
	SendLocation(ctx context.Context, chatID ChatID, location Location, options *SendOptions) (*Message, error)

	// SendContact sends a phone contact.
	// See https://docs.bale.ai/methods#sendcontact
	SendContact(ctx context.Context, chatID ChatID, contact Contact, options *SendOptions) (*Message, error)

	// SendInvoice sends an invoice.
	// See https://docs.bale.ai/methods#sendinvoice
	SendInvoice(ctx context.Context, chatID ChatID, invoice NewInvoice, options *InvoiceOptions) (*Message, error)

	// SendMediaGroup sends a group of photos, videos, documents or audios
	// as an album.
	// See https://docs.bale.ai/methods#sendmediagroup
	SendMediaGroup(ctx context.Context, chatID ChatID, media []Media, options *SendOptions) ([]Message, error)

	// ForwardMessage forwards a message of any kind.
	// See https://docs.bale.ai/methods#forwardmessage
	ForwardMessage(ctx context.Context, chatID ChatID, ref MessageRef) (*Message, error)

	// CopyMessage copies a message of any kind and returns the ID of the copy.
	// See https://docs.bale.ai/methods#copymessage
	CopyMessage(ctx context.Context, chatID ChatID, ref MessageRef, options *CopyOptions) (ID, error)

	// EditMessage edits the text of a previously sent message.
	// See https://docs.bale.ai/methods#editmessagetext
	EditMessage(ctx context.Context, ref MessageRef, text string, options *SendOptions) (*Message, error)

	// EditMessageCaption edits the caption of a previously sent message.
	// See https://docs.bale.ai/methods#editmessagecaption
	EditMessageCaption(ctx context.Context, ref MessageRef, caption string, options *SendOptions) (*Message, error)

	// DeleteMessage deletes a previously sent message.
	// See https://docs.bale.ai/methods#deletemessage
	DeleteMessage(ctx context.Context, ref MessageRef) error

	// LeaveChat makes the bot leave a group or channel.
	// See https://docs.bale.ai/methods#leavechat
	LeaveChat(ctx context.Context, chatID ChatID) error

	// InviteUser invites a user to a group or channel.
	InviteUser(ctx context.Context, chatID ChatID, userID ID) error

	// BanChatMember bans a user from a group or channel.
	// See https://docs.bale.ai/methods#banchatmember
	BanChatMember(ctx context.Context, chatID ChatID, userID ID) error

	// UnbanChatMember lifts a ban from a user in a group or channel.
	// See https://docs.bale.ai/methods#unbanchatmember
	UnbanChatMember(ctx context.Context, chatID ChatID, userID ID, onlyIfBanned Opt[bool]) error

	// SetChatPhoto sets a new profile photo for a chat.
	// See https://docs.bale.ai/methods#setchatphoto
	SetChatPhoto(ctx context.Context, chatID ChatID, photo FileRef) error
}
