package bale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records delegation calls. Embedding Client leaves the methods
// not overridden panicking on call, which is what a test wants.
type fakeClient struct {
	Client

	sentChatID  ChatID
	sentText    string
	sentOptions *SendOptions

	forwardedTo  ChatID
	forwardedRef MessageRef

	banned struct {
		chatID ChatID
		userID ID
	}
}

func (c *fakeClient) SendMessage(ctx context.Context, chatID ChatID, text string, options *SendOptions) (*Message, error) {
	c.sentChatID = chatID
	c.sentText = text
	c.sentOptions = options
	return &Message{ID: 200}, nil
}

func (c *fakeClient) ForwardMessage(ctx context.Context, chatID ChatID, ref MessageRef) (*Message, error) {
	c.forwardedTo = chatID
	c.forwardedRef = ref
	return &Message{ID: 201}, nil
}

func (c *fakeClient) BanChatMember(ctx context.Context, chatID ChatID, userID ID) error {
	c.banned.chatID = chatID
	c.banned.userID = userID
	return nil
}

func TestMessage_Reply(t *testing.T) {
	ctx := context.Background()
	bot := new(fakeClient)
	message := &Message{ID: 100, Chat: &Chat{ID: 10}}
	message.bind(bot)

	reply, err := message.Reply(ctx, "pong", nil)
	require.NoError(t, err)
	assert.Equal(t, ID(200), reply.ID)
	assert.Equal(t, ID(10), bot.sentChatID)
	assert.Equal(t, "pong", bot.sentText)
	require.NotNil(t, bot.sentOptions)
	assert.Equal(t, Some(ID(100)), bot.sentOptions.ReplyToMessageID)
}

func TestMessage_Reply_KeepsOptions(t *testing.T) {
	ctx := context.Background()
	bot := new(fakeClient)
	message := &Message{ID: 100, Chat: &Chat{ID: 10}}
	message.bind(bot)

	options := &SendOptions{ReplyMarkup: InlineKeyboardMarkup{}}
	_, err := message.Reply(ctx, "pong", options)
	require.NoError(t, err)

	assert.True(t, options.ReplyToMessageID.Missing(), "caller options must not be modified")
	assert.Equal(t, Some(ID(100)), bot.sentOptions.ReplyToMessageID)
	assert.NotNil(t, bot.sentOptions.ReplyMarkup)
}

func TestMessage_Forward(t *testing.T) {
	ctx := context.Background()
	bot := new(fakeClient)
	message := &Message{ID: 100, Chat: &Chat{ID: 10}}
	message.bind(bot)

	forwarded, err := message.Forward(ctx, Username("news"))
	require.NoError(t, err)
	assert.Equal(t, ID(201), forwarded.ID)
	assert.Equal(t, Username("news"), bot.forwardedTo)
	assert.Equal(t, MessageRef{ChatID: ID(10), ID: 100}, bot.forwardedRef)
}

func TestChat_BanMember_UserRef(t *testing.T) {
	ctx := context.Background()
	bot := new(fakeClient)
	chat := &Chat{ID: 10}
	chat.bind(bot)

	require.NoError(t, chat.BanMember(ctx, ID(1)))
	assert.Equal(t, ID(1), bot.banned.userID)

	require.NoError(t, chat.BanMember(ctx, User{ID: 2, FirstName: "John"}))
	assert.Equal(t, ID(2), bot.banned.userID)
	assert.Equal(t, ID(10), bot.banned.chatID)
}

func TestDelegation_NoClient(t *testing.T) {
	ctx := context.Background()

	_, err := new(Chat).Send(ctx, "hello", nil)
	assert.ErrorIs(t, err, ErrNoClient)

	_, err = (&Message{ID: 100, Chat: &Chat{ID: 10}}).Reply(ctx, "pong", nil)
	assert.ErrorIs(t, err, ErrNoClient)

	err = new(Message).Delete(ctx)
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestMessage_Bind_Recurses(t *testing.T) {
	bot := new(fakeClient)
	message := &Message{
		ID:              100,
		Chat:            &Chat{ID: 10},
		ForwardFromChat: &Chat{ID: 20},
		ReplyToMessage:  &Message{ID: 99, Chat: &Chat{ID: 10}},
	}
	message.bind(bot)

	_, err := message.ReplyToMessage.Forward(context.Background(), ID(30))
	require.NoError(t, err)

	_, err = message.ForwardFromChat.Send(context.Background(), "hi", nil)
	require.NoError(t, err)
}
