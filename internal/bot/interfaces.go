package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

//go:generate mockgen -source=interfaces.go -destination=../mock/bot_api_mock.go -package=mock

// BotAPI abstracts the Telegram bot methods used by [Bot].
// *tgbotapi.BotAPI satisfies it.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}
