package bale

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jfk9w-go/flu"
	"github.com/jfk9w-go/flu/httpf"
	"github.com/jfk9w-go/flu/logf"
	"github.com/pkg/errors"
)

// Endpoint is the default Bale Bot API server.
var Endpoint = "https://tapi.bale.ai"

// ValidStatusCodes is a slice of HTTP status codes the API responds to with
// an error envelope. Rejections with these statuses decode into classified
// errors; anything else surfaces as a bare HTTP failure.
var ValidStatusCodes = []int{
	http.StatusOK,
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
}

type endpointFunc func(method string) string

// BaseClient is the Client implementation talking to the Bale Bot API
// over HTTP. It is safe for concurrent use.
type BaseClient struct {
	client   httpf.Client
	endpoint endpointFunc
}

// NewClient creates a BaseClient for the default API endpoint.
// If client is nil, a default one with a 2-minute response header timeout
// is used. Panics on an empty token.
func NewClient(client httpf.Client, token string) *BaseClient {
	return NewClientWithEndpoint(client, token, Endpoint)
}

// NewClientWithEndpoint creates a BaseClient talking to the given API server.
func NewClientWithEndpoint(client httpf.Client, token, endpoint string) *BaseClient {
	if token == "" {
		log().Panicf(nil, "token must not be empty")
	}

	if client == nil {
		transport := httpf.NewDefaultTransport()
		transport.ResponseHeaderTimeout = 2 * time.Minute
		client = &http.Client{Transport: transport}
	}

	return &BaseClient{
		client:   client,
		endpoint: func(method string) string { return endpoint + "/bot" + token + "/" + method },
	}
}

func (c *BaseClient) GetMe(ctx context.Context) (*User, error) {
	user := new(User)
	return user, c.Execute(ctx, "getMe", nil, user)
}

func (c *BaseClient) GetUpdates(ctx context.Context, options GetUpdatesOptions) ([]Update, error) {
	updates := make([]Update, 0)
	if err := c.Execute(ctx, "getUpdates", flu.JSON(options), &updates); err != nil {
		return nil, err
	}

	for i := range updates {
		updates[i].bind(c)
	}

	return updates, nil
}

func (c *BaseClient) GetChat(ctx context.Context, chatID ChatID) (*Chat, error) {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID))
	chat := new(Chat)
	if err := c.Execute(ctx, "getChat", body, chat); err != nil {
		return nil, err
	}

	return chat.bind(c), nil
}

func (c *BaseClient) GetChatMember(ctx context.Context, chatID ChatID, userID ID) (*ChatMember, error) {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("user_id", userID.String())
	member := new(ChatMember)
	return member, c.Execute(ctx, "getChatMember", body, member)
}

func (c *BaseClient) GetChatMembersCount(ctx context.Context, chatID ChatID) (int64, error) {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID))
	var count int64
	return count, c.Execute(ctx, "getChatMemberCount", body, &count)
}

func (c *BaseClient) GetChatAdministrators(ctx context.Context, chatID ChatID) ([]ChatMember, error) {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID))
	members := make([]ChatMember, 0)
	return members, c.Execute(ctx, "getChatAdministrators", body, &members)
}

func (c *BaseClient) SendMessage(ctx context.Context, chatID ChatID, text string, options *SendOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendMessage", form.Set("text", text))
}

func (c *BaseClient) SendDocument(ctx context.Context, chatID ChatID, document FileRef, options *MediaOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendDocument", form.Set("document", string(document)))
}

func (c *BaseClient) SendPhoto(ctx context.Context, chatID ChatID, photo FileRef, options *MediaOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendPhoto", form.Set("photo", string(photo)))
}

func (c *BaseClient) SendVideo(ctx context.Context, chatID ChatID, video FileRef, options *MediaOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendVideo", form.Set("video", string(video)))
}

func (c *BaseClient) SendAnimation(ctx context.Context, chatID ChatID, animation FileRef, options *AnimationOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendAnimation", form.Set("animation", string(animation)))
}

func (c *BaseClient) SendAudio(ctx context.Context, chatID ChatID, audio FileRef, options *MediaOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendAudio", form.Set("audio", string(audio)))
}

func (c *BaseClient) SendSticker(ctx context.Context, chatID ChatID, sticker FileRef, options *SendOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, "sendSticker", form.Set("sticker", string(sticker)))
}

func (c *BaseClient) SendLocation(ctx context.Context, chatID ChatID, location Location, options *SendOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	form.Set("latitude", strconv.FormatFloat(location.Latitude, 'f', -1, 64)).
		Set("longitude", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	return c.send(ctx, "sendLocation", form)
}

func (c *BaseClient) SendContact(ctx context.Context, chatID ChatID, contact Contact, options *SendOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	form.Set("phone_number", contact.PhoneNumber).
		Set("first_name", contact.FirstName)
	setOpt(form, "last_name", contact.LastName)
	return c.send(ctx, "sendContact", form)
}

func (c *BaseClient) SendInvoice(ctx context.Context, chatID ChatID, invoice NewInvoice, options *InvoiceOptions) (*Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	prices, err := json.Marshal(invoice.Prices)
	if err != nil {
		return nil, errors.Wrap(err, "serialize prices")
	}

	form.Set("title", invoice.Title).
		Set("description", invoice.Description).
		Set("provider_token", invoice.ProviderToken).
		Set("prices", string(prices))
	return c.send(ctx, "sendInvoice", form)
}

func (c *BaseClient) SendMediaGroup(ctx context.Context, chatID ChatID, media []Media, options *SendOptions) ([]Message, error) {
	form, err := options.body(chatID)
	if err != nil {
		return nil, err
	}

	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return nil, errors.Wrap(err, "serialize media")
	}

	messages := make([]Message, 0)
	if err := c.Execute(ctx, "sendMediaGroup", form.Set("media", string(mediaJSON)), &messages); err != nil {
		return nil, err
	}

	for i := range messages {
		messages[i].bind(c)
	}

	return messages, nil
}

func (c *BaseClient) ForwardMessage(ctx context.Context, chatID ChatID, ref MessageRef) (*Message, error) {
	form := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("from_chat_id", chatParam(ref.ChatID)).
		Set("message_id", ref.ID.String())
	return c.send(ctx, "forwardMessage", form)
}

func (c *BaseClient) CopyMessage(ctx context.Context, chatID ChatID, ref MessageRef, options *CopyOptions) (ID, error) {
	var resp struct {
		MessageID ID `json:"message_id"`
	}

	form, err := options.body(chatID)
	if err != nil {
		return 0, err
	}

	form.Set("from_chat_id", chatParam(ref.ChatID)).
		Set("message_id", ref.ID.String())
	return resp.MessageID, c.Execute(ctx, "copyMessage", form, &resp)
}

func (c *BaseClient) EditMessage(ctx context.Context, ref MessageRef, text string, options *SendOptions) (*Message, error) {
	form, err := options.body(ref.ChatID)
	if err != nil {
		return nil, err
	}

	form.Set("message_id", ref.ID.String()).
		Set("text", text)
	return c.send(ctx, "editMessageText", form)
}

func (c *BaseClient) EditMessageCaption(ctx context.Context, ref MessageRef, caption string, options *SendOptions) (*Message, error) {
	form, err := options.body(ref.ChatID)
	if err != nil {
		return nil, err
	}

	form.Set("message_id", ref.ID.String()).
		Set("caption", caption)
	return c.send(ctx, "editMessageCaption", form)
}

func (c *BaseClient) DeleteMessage(ctx context.Context, ref MessageRef) error {
	return c.executeOK(ctx, "deleteMessage", ref.form())
}

func (c *BaseClient) LeaveChat(ctx context.Context, chatID ChatID) error {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID))
	return c.executeOK(ctx, "leaveChat", body)
}

func (c *BaseClient) InviteUser(ctx context.Context, chatID ChatID, userID ID) error {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("user_id", userID.String())
	return c.executeOK(ctx, "inviteUser", body)
}

func (c *BaseClient) BanChatMember(ctx context.Context, chatID ChatID, userID ID) error {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("user_id", userID.String())
	return c.executeOK(ctx, "banChatMember", body)
}

func (c *BaseClient) UnbanChatMember(ctx context.Context, chatID ChatID, userID ID, onlyIfBanned Opt[bool]) error {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("user_id", userID.String())
	setOpt(body, "only_if_banned", onlyIfBanned)
	return c.executeOK(ctx, "unbanChatMember", body)
}

func (c *BaseClient) SetChatPhoto(ctx context.Context, chatID ChatID, photo FileRef) error {
	body := new(httpf.Form).
		Set("chat_id", chatParam(chatID)).
		Set("photo", string(photo))
	return c.executeOK(ctx, "setChatPhoto", body)
}

// send executes a method returning a Message and binds the result to this
// client.
func (c *BaseClient) send(ctx context.Context, method string, body flu.EncoderTo) (*Message, error) {
	message := new(Message)
	if err := c.Execute(ctx, method, body, message); err != nil {
		return nil, err
	}

	return message.bind(c), nil
}

// executeOK executes a method returning a bare boolean result.
func (c *BaseClient) executeOK(ctx context.Context, method string, body flu.EncoderTo) error {
	var ok bool
	if err := c.Execute(ctx, method, body, &ok); err != nil {
		return err
	}

	if !ok {
		return errors.New("not ok")
	}

	return nil
}

// Execute performs an API call and decodes the response envelope into resp.
func (c *BaseClient) Execute(ctx context.Context, method string, body flu.EncoderTo, resp interface{}) error {
	// The status check runs before the body decode: statuses outside
	// ValidStatusCodes carry no envelope to decode.
	err := httpf.POST(c.endpoint(method), body).
		Exchange(ctx, c.client).
		CheckStatus(ValidStatusCodes...).
		DecodeBody(newResponse(resp)).
		Error()
	err = transportError(err)
	log().Resultf(ctx, logf.Trace, logf.Warn, "execute [%s]: %v", method, err)
	return err
}

// transportError folds connection-level failures into the error taxonomy.
// Errors already classified from the response envelope pass through as is.
func transportError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var statusErr httpf.StatusCodeError
	if errors.As(err, &statusErr) {
		return Error{
			Kind:        KindHTTP,
			ErrorCode:   statusErr.StatusCode,
			Description: statusErr.Status,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Error{Kind: KindTimeout, Description: err.Error()}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Error{Kind: KindTimeout, Description: err.Error()}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return Error{Kind: KindNetwork, Description: err.Error()}
	}

	return err
}
