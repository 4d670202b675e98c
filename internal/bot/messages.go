package bot

const (
	commandStart = "start"
	commandHelp  = "help"
	commandStats = "stats"

	callbackStats = "stats"
	callbackHelp  = "help"
)

const (
	buttonOpenApp = "🚀 Открыть XBanking"
	buttonStats   = "📊 Статистика"
	buttonHelp    = "❓ Помощь"
)

// welcomeTextFormat takes the escaped first name of the user.
const welcomeTextFormat = `🎉 *Добро пожаловать в XBanking!*

Привет, %s! XBanking — это ваш портал для управления NFT и крипто-активами в Telegram.

✨ *Возможности:*
• Просмотр NFT маркетплейса
• Управление вашими NFT
• Реферальная система
• Баланс в TON

Нажмите кнопку ниже, чтобы открыть мини-приложение и начать работу!`

const helpText = `📚 *Помощь по XBanking*

*Основные команды:*
/start - Начать работу с ботом
/help - Показать это сообщение
/stats - Показать статистику

*В мини-приложении вы можете:*
• Просматривать NFT на маркетплейсе
• Управлять своими NFT
• Использовать реферальную систему
• Отслеживать баланс TON

*Поддержка:*
При возникновении проблем свяжитесь с нами через:
@support\_username`

const statsText = `📊 *Статистика XBanking*

*Пользователи:* 1,234+
*NFT на маркетплейсе:* 5,678+
*Объем торгов:* 12,345 TON
*Активные пользователи:* 789

*Обновлено:* только что`
