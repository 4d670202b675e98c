package bot

// The Telegram client library predates web app buttons, so the /start
// keyboard is encoded with its own types and sent through MakeRequest.

type webAppInfo struct {
	URL string `json:"url"`
}

type inlineButton struct {
	Text         string      `json:"text"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

// startKeyboard has the mini app button on the first row and the stats and
// help callbacks on the second.
func startKeyboard(webAppURL string) inlineKeyboard {
	return inlineKeyboard{
		InlineKeyboard: [][]inlineButton{
			{
				{Text: buttonOpenApp, WebApp: &webAppInfo{URL: webAppURL}},
			},
			{
				{Text: buttonStats, CallbackData: callbackStats},
				{Text: buttonHelp, CallbackData: callbackHelp},
			},
		},
	}
}
