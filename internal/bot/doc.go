// Package bot implements the XBanking Telegram bot.
//
// The bot long-polls Telegram for updates and answers commands and inline
// button callbacks from fixed lookup tables. The /start reply carries an
// inline keyboard whose first button opens the mini app served by the API.
package bot
