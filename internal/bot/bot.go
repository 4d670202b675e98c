package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultPollTimeout = 60 * time.Second

// replyFunc answers a command or callback in chatID on behalf of from.
type replyFunc func(chatID int64, from *tgbotapi.User) error

// Bot dispatches Telegram updates to fixed replies.
type Bot struct {
	api BotAPI

	webAppURL   string
	pollTimeout time.Duration

	commands  map[string]replyFunc
	callbacks map[string]replyFunc

	logger *logger.Logger
}

func New(api BotAPI, cfg config.Telegram, logger *logger.Logger) *Bot {
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	b := &Bot{
		api:         api,
		webAppURL:   cfg.WebAppURL,
		pollTimeout: pollTimeout,
		logger:      logger,
	}

	b.commands = map[string]replyFunc{
		commandStart: b.start,
		commandHelp:  b.help,
		commandStats: b.stats,
	}
	b.callbacks = map[string]replyFunc{
		callbackStats: b.stats,
		callbackHelp:  b.help,
	}

	return b
}

// Run long-polls for updates and handles them one at a time until ctx is
// canceled or the update channel is closed.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info().Str("web_app_url", b.webAppURL).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info().Msg("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

// handleMessage ignores plain text and unknown commands.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if !msg.IsCommand() || msg.Chat == nil {
		return
	}

	reply, ok := b.commands[msg.Command()]
	if !ok {
		return
	}

	if err := reply(msg.Chat.ID, msg.From); err != nil {
		b.replyError(msg.Chat.ID, fmt.Errorf("command /%s: %w", msg.Command(), err))
	}
}

// handleCallback answers the query first and then replies in the chat of
// the message the button belongs to. Unknown data gets no reply.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Err(err).Str("data", query.Data).Msg("failed to answer callback query")
	}

	if query.Message == nil || query.Message.Chat == nil {
		return
	}

	reply, ok := b.callbacks[query.Data]
	if !ok {
		return
	}

	chatID := query.Message.Chat.ID
	if err := reply(chatID, query.From); err != nil {
		b.replyError(chatID, fmt.Errorf("callback %s: %w", query.Data, err))
	}
}

func (b *Bot) replyError(chatID int64, err error) {
	b.logger.Err(err).Int64("chat_id", chatID).Msg("failed to handle update")

	if _, sendErr := b.api.Send(tgbotapi.NewMessage(chatID, app.MsgBotError)); sendErr != nil {
		b.logger.Err(sendErr).Int64("chat_id", chatID).Msg("failed to send error reply")
	}
}

func (b *Bot) start(chatID int64, from *tgbotapi.User) error {
	firstName := ""
	if from != nil {
		firstName = tgbotapi.EscapeText(tgbotapi.ModeMarkdown, from.FirstName)
	}

	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatID)
	params["text"] = fmt.Sprintf(welcomeTextFormat, firstName)
	params["parse_mode"] = tgbotapi.ModeMarkdown
	if err := params.AddInterface("reply_markup", startKeyboard(b.webAppURL)); err != nil {
		return fmt.Errorf("encode keyboard: %w", err)
	}

	if _, err := b.api.MakeRequest("sendMessage", params); err != nil {
		return fmt.Errorf("send welcome: %w", err)
	}
	return nil
}

func (b *Bot) help(chatID int64, _ *tgbotapi.User) error {
	return b.sendMarkdown(chatID, helpText)
}

func (b *Bot) stats(chatID int64, _ *tgbotapi.User) error {
	return b.sendMarkdown(chatID, statsText)
}

func (b *Bot) sendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
