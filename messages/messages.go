package messages

import "fmt"

const (
	MsgWelcome = `👋 Вас приветствует команда SR

Мы создаем уникальные скрипты для комфортной игры .`

	MsgNoAccess = `🚫 Нет доступа.`

	MsgUserNotFound = `❌ Пользователь не найден.`

	MsgInvalidData = `❌ Некорректные данные.`

	MsgLauncher = `Лаунчер на стадии разработки.`

	MsgChooseProduct = `Выберите товар:`

	MsgProductCard = `Вы выбрали Multi-Cheat.

Стоимость: ⭐250 навсегда / ⭐50 на месяц.`

	MsgPaymentStub = `💳 Платежная система скоро будет добавлена. Свяжитесь с поддержкой.`

	MsgSupportGreeting = `Здравствуйте!

Напишите Ваш вопрос, и мы ответим Вам в ближайшее время.`

	MsgSupportCancelled = `🛑 Вызов поддержки отменён.`

	MsgNoActiveSubs = `😐 Нет активных подписок.`

	MsgNotBanned = `Пользователь не заблокирован.`

	MsgBanListEmpty = `✅ Список заблокированных пуст.`

	MsgAdminListEmpty = `Список пуст.`

	MsgAdminNotFound = `❌ Админ не найден.`

	MsgOnlineFailed = `❌ Не удалось получить онлайн.`

	MsgBadLevel = `❌ Уровень должен быть от 1 до 5`

	MsgBadID = `❌ Неверный ID`

	MsgIDNotNumber = `❌ ID должен быть числом.`

	MsgBadSlotField = `❌ Поле должно быть buy1 или buy2.`

	MsgUserNotResolved = `❌ Пользователь не найден по ID или username`

	MsgGbanNotBanned = `✅ Пользователь не заблокирован.`

	UsageSub      = `Использование: /sub <@user/ID> <buy1|buy2> <дней>`
	UsageGsub     = `Использование: /gsub <@user/ID>`
	UsageBan      = `Использование: /ban <ID или @user> <дни или -1> <причина>`
	UsageUnban    = `Использование: /unban <ID>`
	UsageSetadm   = `Использование: /setadm <ID/@username> <уровень> <ник>`
	UsageDeladm   = `Использование: /deladm <ID/@username>`
	UsageGban     = `Использование: /gban <@user или ID>`
	UsageClearsub = `Использование: /clearsub <ID> <buy1|buy2>`

	BtnBuy           = `🧩 Купить активацию`
	BtnLauncher      = `📦 Скачать лаунчер`
	BtnSupport       = `💬 Поддержка`
	BtnProfile       = `👤 Профиль`
	BtnCancelSupport = `❌ Отменить вызов поддержки`

	appealLine = `Для обжалования наказания пишите в личные сообщения в DS @nedoxbin.`
)

func FormatProfile(login, key string, cheatDays, lovlaDays int) string {
	return fmt.Sprintf("👤 Ваш профиль:\n\n🔹 Логин: %s\n🔑 Ключ: <code>%s</code>\n\n👑 Доступные подписки:\nMulti-Cheat: %d дн\nMulti-Lovla: %d дн",
		login, key, cheatDays, lovlaDays)
}

func FormatSubGranted(slot, userLabel string, days int) string {
	return fmt.Sprintf("✅ Подписка %s пользователю %s выдана на %d дней.", slot, userLabel, days)
}

func FormatSubCleared(slot, userLabel string) string {
	return fmt.Sprintf("♻️ Подписка %s у пользователя %s удалена.", slot, userLabel)
}

// FormatBanGate — ответ заблокированному пользователю на любое обращение.
func FormatBanGate(period, reason string) string {
	return fmt.Sprintf("⛔ Вы были заблокированы в данном боте %s.\nПричина: %s\n\n%s", period, reason, appealLine)
}

// FormatBanNotice — личное уведомление о выданной блокировке.
func FormatBanNotice(duration, reason string) string {
	return fmt.Sprintf("⛔ Вы были заблокированы в данном боте %s.\nПричина: %s\n\n%s", duration, reason, appealLine)
}

func FormatBanApplied(userLabel, duration string) string {
	return fmt.Sprintf("✅ Пользователь %s заблокирован на %s", userLabel, duration)
}

func FormatUnbanned(userLabel string) string {
	return fmt.Sprintf("✅ Пользователь %s был разбанен.", userLabel)
}

const MsgUnbanNotice = `✅ Вы были разблокированы. Добро пожаловать обратно!`

func FormatAdminAssigned(nickname string, id int64, level int) string {
	return fmt.Sprintf("✅ Пользователь %s (%d) назначен уровнем %d", nickname, id, level)
}

func FormatAdminDeleted(id int64) string {
	return fmt.Sprintf("🗑 Админ с ID %d удалён.", id)
}

// FormatSupportQuestion — текст ретрансляции вопроса в группу поддержки.
// Маркер адресата внутри текста обязан совпадать с support.Tag.
func FormatSupportQuestion(label, tag, text string) string {
	return fmt.Sprintf("📩 Вопрос от @%s (%s):\n%s", label, tag, text)
}

// FormatSupportClosed — текст ретрансляции с пометкой о закрытии тикета.
func FormatSupportClosed(relayText string) string {
	return relayText + "\n\n🔒 Вопрос был закрыт"
}

func FormatSupportReply(text string) string {
	return fmt.Sprintf("📨 Ответ поддержки:\n\n%s", text)
}
