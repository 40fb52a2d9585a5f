package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"sr_store_bot/access"
	"sr_store_bot/ban"
	"sr_store_bot/config"
	"sr_store_bot/directory"
	"sr_store_bot/messages"
	"sr_store_bot/online"
	"sr_store_bot/storage"
	"sr_store_bot/subscription"
	"sr_store_bot/support"
	"sr_store_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Handler struct {
	bot    *bot.Bot
	cfg    *config.Config
	store  *storage.Client
	access *access.Service
	subs   *subscription.Service
	bans   *ban.Service
	router *support.Router
	online *online.Client
	log    *slog.Logger
}

func New(b *bot.Bot, cfg *config.Config, store *storage.Client, acc *access.Service,
	subs *subscription.Service, bans *ban.Service, router *support.Router,
	onlineClient *online.Client, log *slog.Logger) *Handler {
	return &Handler{
		bot:    b,
		cfg:    cfg,
		store:  store,
		access: acc,
		subs:   subs,
		bans:   bans,
		router: router,
		online: onlineClient,
		log:    log,
	}
}

func mainKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: messages.BtnBuy}, {Text: messages.BtnLauncher}},
			{{Text: messages.BtnSupport}, {Text: messages.BtnProfile}},
		},
		ResizeKeyboard: true,
	}
}

func cancelSupportKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: messages.BtnCancelSupport}},
		},
		ResizeKeyboard: true,
	}
}

func productKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Multi-Cheat", CallbackData: "select_srm"}},
		},
	}
}

func productCardKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Оплатить", CallbackData: "pay_srm"}},
			{{Text: "Назад", CallbackData: "back_to_products"}},
		},
	}
}

func (h *Handler) OnMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message

	if msg.Chat.ID == h.cfg.SupportGroupID {
		h.onSupportGroupMessage(ctx, msg)
		return
	}
	if msg.Chat.Type != "private" {
		return
	}

	// Гейт блокировки: стоит перед всеми личными взаимодействиями
	if d := h.bans.CheckAccess(ctx, msg.From.ID); !d.Allowed {
		h.send(ctx, msg.From.ID, d.Message)
		return
	}

	if strings.HasPrefix(msg.Text, "/") {
		h.onCommand(ctx, msg)
		return
	}

	switch msg.Text {
	case messages.BtnProfile:
		h.onProfile(ctx, msg)
	case messages.BtnBuy:
		h.sendMarkup(ctx, msg.From.ID, messages.MsgChooseProduct, productKeyboard())
	case messages.BtnLauncher:
		h.send(ctx, msg.From.ID, messages.MsgLauncher)
	case messages.BtnSupport:
		h.router.Enter(msg.From.ID)
		h.sendMarkup(ctx, msg.From.ID, messages.MsgSupportGreeting, cancelSupportKeyboard())
	case messages.BtnCancelSupport:
		h.onSupportCancel(ctx, msg)
	default:
		if msg.Text != "" && h.router.Active(msg.From.ID) {
			h.onSupportRelay(ctx, msg)
		}
	}
}

func (h *Handler) onCommand(ctx context.Context, msg *models.Message) {
	args := strings.Fields(msg.Text)
	cmd := strings.TrimPrefix(args[0], "/")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "start":
		h.sendMarkup(ctx, msg.From.ID, messages.MsgWelcome, mainKeyboard())
	case "sub":
		h.cmdSub(ctx, msg, args)
	case "gsub":
		h.cmdGsub(ctx, msg, args)
	case "usersub":
		h.cmdUserSub(ctx, msg)
	case "ban":
		h.cmdBan(ctx, msg, args)
	case "unban":
		h.cmdUnban(ctx, msg, args)
	case "setadm":
		h.cmdSetAdm(ctx, msg, args)
	case "deladm":
		h.cmdDelAdm(ctx, msg, args)
	case "admins":
		h.cmdAdmins(ctx, msg)
	case "gban":
		h.cmdGban(ctx, msg, args)
	case "userban":
		h.cmdUserBan(ctx, msg)
	case "clearsub":
		h.cmdClearSub(ctx, msg, args)
	case "users":
		h.cmdUsers(ctx, msg)
	case "online":
		h.cmdOnline(ctx, msg)
	default:
		// незнакомая команда в режиме поддержки — обычный текст
		if h.router.Active(msg.From.ID) {
			h.onSupportRelay(ctx, msg)
		}
	}
}

// requireLevel — проверка уровня перед любым побочным эффектом команды.
func (h *Handler) requireLevel(ctx context.Context, userID int64, required int) bool {
	if h.access.HasLevel(ctx, userID, required) {
		return true
	}
	h.send(ctx, userID, messages.MsgNoAccess)
	return false
}

func (h *Handler) cmdSub(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}
	if len(args) < 4 {
		h.send(ctx, msg.From.ID, messages.UsageSub)
		return
	}

	slotName := args[2]
	days, err := strconv.Atoi(args[3])
	if (slotName != "buy1" && slotName != "buy2") || err != nil {
		h.send(ctx, msg.From.ID, messages.MsgInvalidData)
		return
	}

	issuer := userLabel(msg.From)
	user, err := h.subs.Grant(ctx, args[1], slotName, days, issuer)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}

	h.send(ctx, msg.From.ID, messages.FormatSubGranted(slotName, user.Label(), days))
	tglog.Send("📦 %s выдал подписку %s на %d дн пользователю %s", issuer, slotName, days, user.Label())
}

func (h *Handler) cmdGsub(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}
	if len(args) < 2 {
		h.send(ctx, msg.From.ID, messages.UsageGsub)
		return
	}

	user, err := h.subs.Report(ctx, args[1])
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}

	now := time.Now()
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Подписки пользователя @%s:\n\n", user.Label())
	writeSlotReport(&sb, "Multi-Cheat", user.Buy1, now)
	writeSlotReport(&sb, "Multi-Lovla", user.Buy2, now)
	h.send(ctx, msg.From.ID, sb.String())
}

func writeSlotReport(sb *strings.Builder, product string, slot storage.Slot, now time.Time) {
	if slot.Empty() || slot.Sub.Days == 0 {
		return
	}
	issuedBy := slot.Sub.IssuedBy
	if issuedBy == "" {
		issuedBy = "неизвестно"
	}
	fmt.Fprintf(sb, "📦 %s: %d дн осталось\n", product, subscription.RemainingDays(slot, now))
	fmt.Fprintf(sb, "Выдано: %d дн от %s (%s)\n\n", slot.Sub.Days, issuedBy, slot.Sub.Start)
}

func (h *Handler) cmdUserSub(ctx context.Context, msg *models.Message) {
	if !h.requireLevel(ctx, msg.From.ID, 4) {
		return
	}

	active := h.subs.ListActive(ctx)
	if len(active) == 0 {
		h.send(ctx, msg.From.ID, messages.MsgNoActiveSubs)
		return
	}

	now := time.Now()
	lines := make([]string, 0, len(active))
	for _, u := range active {
		lines = append(lines, fmt.Sprintf("• @%s\n📦 Multi-Cheat: %d дн\n📦 Multi-Lovla: %d дн",
			u.Label(),
			subscription.RemainingDays(u.Buy1, now),
			subscription.RemainingDays(u.Buy2, now)))
	}
	h.send(ctx, msg.From.ID, "📋 Активные подписки:\n\n"+strings.Join(lines, "\n\n"))
}

func (h *Handler) cmdBan(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}
	if len(args) < 3 {
		h.send(ctx, msg.From.ID, messages.UsageBan)
		return
	}

	days, err := strconv.Atoi(args[2])
	if err != nil || (days < 0 && days != -1) {
		h.send(ctx, msg.From.ID, messages.MsgInvalidData)
		return
	}
	reason := strings.Join(args[3:], " ")
	if reason == "" {
		reason = "не указана"
	}

	by := storage.BanIssuer{ID: msg.From.ID, Login: msg.From.Username}
	user, err := h.bans.Apply(ctx, args[1], days, reason, by)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}

	duration := ban.DurationText(days)
	h.send(ctx, msg.From.ID, messages.FormatBanApplied(user.Label(), duration))
	tglog.Send("⛔ %s заблокировал %s (%s): %s", userLabel(msg.From), user.Label(), duration, reason)
}

func (h *Handler) cmdUnban(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 5) {
		return
	}
	if len(args) < 2 {
		h.send(ctx, msg.From.ID, messages.UsageUnban)
		return
	}

	userID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgBadID)
		return
	}

	user, err := h.bans.Lift(ctx, userID)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgNotBanned)
		return
	}

	h.send(ctx, msg.From.ID, messages.FormatUnbanned(user.Label()))
	tglog.Send("✅ %s разблокировал %s", userLabel(msg.From), user.Label())
}

func (h *Handler) cmdSetAdm(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 4) {
		return
	}
	if len(args) < 4 {
		h.send(ctx, msg.From.ID, messages.UsageSetadm)
		return
	}

	level, err := strconv.Atoi(args[2])
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgBadLevel)
		return
	}
	nickname := strings.Join(args[3:], " ")

	doc := h.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(args[1], doc.Users)
	if !ok {
		h.send(ctx, msg.From.ID, messages.MsgUserNotResolved)
		return
	}

	if err := h.access.SetAdmin(ctx, id, level, nickname); err != nil {
		h.send(ctx, msg.From.ID, messages.MsgBadLevel)
		return
	}

	h.send(ctx, msg.From.ID, messages.FormatAdminAssigned(nickname, id, level))
	tglog.Send("👑 %s назначил %s (%d) уровнем %d", userLabel(msg.From), nickname, id, level)
}

func (h *Handler) cmdDelAdm(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 5) {
		return
	}
	if len(args) < 2 {
		h.send(ctx, msg.From.ID, messages.UsageDeladm)
		return
	}

	doc := h.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(args[1], doc.Users)
	if !ok {
		h.send(ctx, msg.From.ID, messages.MsgUserNotResolved)
		return
	}

	if err := h.access.DeleteAdmin(ctx, id); err != nil {
		h.send(ctx, msg.From.ID, messages.MsgAdminNotFound)
		return
	}

	h.send(ctx, msg.From.ID, messages.FormatAdminDeleted(id))
	tglog.Send("🗑 %s удалил админа %d", userLabel(msg.From), id)
}

func (h *Handler) cmdAdmins(ctx context.Context, msg *models.Message) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}

	admins := h.access.List(ctx)
	if len(admins) == 0 {
		h.send(ctx, msg.From.ID, messages.MsgAdminListEmpty)
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 <b>Список заместителей и админов:</b>\n\n")
	for _, a := range admins {
		nickname := a.Nickname
		if nickname == "" {
			nickname = "неизвестно"
		}
		fmt.Fprintf(&sb, "• ID: <code>%d</code> | Ник: %s | Уровень: %d\n", a.ID, nickname, a.Level)
	}
	h.sendHTML(ctx, msg.From.ID, sb.String())
}

func (h *Handler) cmdGban(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}
	if len(args) < 2 {
		h.send(ctx, msg.From.ID, messages.UsageGban)
		return
	}

	doc := h.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(args[1], doc.Users)
	if !ok {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}
	user := doc.Find(id)
	if user == nil {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}
	if user.Ban == nil || !user.Ban.Status {
		h.send(ctx, msg.From.ID, messages.MsgGbanNotBanned)
		return
	}

	reason := user.Ban.Reason
	if reason == "" {
		reason = "не указана"
	}
	byInfo := "Забанил: неизвестно"
	if by := user.Ban.By; by != nil {
		if by.Login != "" {
			byInfo = "Забанил: @" + by.Login
		} else {
			byInfo = fmt.Sprintf("Забанил: %d", by.ID)
		}
	}

	h.send(ctx, msg.From.ID, fmt.Sprintf("🚫 Пользователь %s заблокирован.\nПричина: %s\nСрок: %s\n%s",
		user.Label(), reason, ban.PeriodText(user.Ban), byInfo))
}

func (h *Handler) cmdUserBan(ctx context.Context, msg *models.Message) {
	if !h.requireLevel(ctx, msg.From.ID, 3) {
		return
	}

	banned := h.bans.ListBanned(ctx)
	if len(banned) == 0 {
		h.send(ctx, msg.From.ID, messages.MsgBanListEmpty)
		return
	}

	lines := make([]string, 0, len(banned))
	for _, u := range banned {
		login := u.Login
		if login == "" {
			login = "нет"
		}
		reason := u.Ban.Reason
		if reason == "" {
			reason = "не указана"
		}
		lines = append(lines, fmt.Sprintf("• @%s | ID: <code>%d</code>\nПричина: %s\nСрок: %s",
			login, u.ID, reason, ban.PeriodText(u.Ban)))
	}
	h.sendHTML(ctx, msg.From.ID, "<b>📕 Заблокированные пользователи:</b>\n\n"+strings.Join(lines, "\n\n"))
}

func (h *Handler) cmdClearSub(ctx context.Context, msg *models.Message, args []string) {
	if !h.requireLevel(ctx, msg.From.ID, 4) {
		return
	}
	if len(args) < 3 {
		h.send(ctx, msg.From.ID, messages.UsageClearsub)
		return
	}

	userID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgIDNotNumber)
		return
	}
	slotName := args[2]
	if slotName != "buy1" && slotName != "buy2" {
		h.send(ctx, msg.From.ID, messages.MsgBadSlotField)
		return
	}

	user, err := h.subs.Clear(ctx, userID, slotName)
	if err != nil {
		h.send(ctx, msg.From.ID, messages.MsgUserNotFound)
		return
	}

	h.send(ctx, msg.From.ID, messages.FormatSubCleared(slotName, user.Label()))
	tglog.Send("♻️ %s очистил %s у %s", userLabel(msg.From), slotName, user.Label())
}

func (h *Handler) cmdUsers(ctx context.Context, msg *models.Message) {
	if !h.requireLevel(ctx, msg.From.ID, 4) {
		return
	}
	h.sendUserPage(ctx, msg.Chat.ID, 1, 0)
}

func (h *Handler) cmdOnline(ctx context.Context, msg *models.Message) {
	if !h.requireLevel(ctx, msg.From.ID, 1) {
		return
	}

	servers, err := h.online.Fetch(ctx)
	if err != nil {
		h.log.Error("ошибка получения онлайна", slog.Any("err", err))
		h.send(ctx, msg.From.ID, messages.MsgOnlineFailed)
		return
	}

	_, err = h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             msg.From.ID,
		Text:               online.FormatReport(servers),
		ParseMode:          models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
	})
	if err != nil {
		h.log.Error("ошибка отправки", slog.Any("err", err))
	}
}

// sendUserPage строит страницу каталога от живого документа и либо
// отправляет новое сообщение, либо редактирует существующее (навигация).
func (h *Handler) sendUserPage(ctx context.Context, chatID int64, page, editMessageID int) {
	doc := h.store.LoadUsers(ctx)
	p := directory.Paginate(doc.Users, page, h.cfg.UsersPerPage)
	now := time.Now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 <b>Список пользователей (стр. %d/%d):</b>\n\n", p.Number, p.Total)
	for i, u := range p.Users {
		login := u.Login
		if login == "" {
			login = "—"
		}
		fmt.Fprintf(&sb, "👤 <b>%d</b>\n", p.Start+i+1)
		fmt.Fprintf(&sb, "• @%s\n", login)
		fmt.Fprintf(&sb, "• ID: <code>%d</code>\n", u.ID)
		fmt.Fprintf(&sb, "• 🔑 Ключ: <code>%s</code>\n", u.Key)
		fmt.Fprintf(&sb, "• 📦 Multi-Cheat: <b>%d дней</b>\n", subscription.RemainingDays(u.Buy1, now))
		fmt.Fprintf(&sb, "• 📦 Multi-Lovla: <b>%d дней</b>\n\n", subscription.RemainingDays(u.Buy2, now))
	}

	var row []models.InlineKeyboardButton
	if p.HasPrev {
		row = append(row, models.InlineKeyboardButton{
			Text: "◀️ Назад", CallbackData: fmt.Sprintf("users_page_%d", p.Number-1),
		})
	}
	if p.HasNext {
		row = append(row, models.InlineKeyboardButton{
			Text: "▶️ Далее", CallbackData: fmt.Sprintf("users_page_%d", p.Number+1),
		})
	}
	kb := &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{row}}

	var err error
	if editMessageID != 0 {
		_, err = h.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   editMessageID,
			Text:        sb.String(),
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
	} else {
		_, err = h.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        sb.String(),
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
	}
	if err != nil {
		h.log.Error("ошибка вывода списка пользователей", slog.Any("err", err))
	}
}

func (h *Handler) OnCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	cb := update.CallbackQuery

	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})
	if err != nil {
		return
	}

	ref := cb.Message.Message
	if ref == nil {
		return
	}

	switch {
	case cb.Data == "select_srm":
		h.edit(ctx, ref, messages.MsgProductCard, productCardKeyboard())
	case cb.Data == "pay_srm":
		h.edit(ctx, ref, messages.MsgPaymentStub, nil)
	case cb.Data == "back_to_products":
		h.edit(ctx, ref, messages.MsgChooseProduct, productKeyboard())
	case strings.HasPrefix(cb.Data, "users_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(cb.Data, "users_page_"))
		if err != nil {
			return
		}
		h.sendUserPage(ctx, ref.Chat.ID, page, ref.ID)
	}
}

// onProfile показывает профиль, при первом обращении регистрирует
// пользователя и выписывает ему ключ.
func (h *Handler) onProfile(ctx context.Context, msg *models.Message) {
	doc := h.store.LoadUsers(ctx)
	user := doc.Find(msg.From.ID)
	if user == nil {
		user = storage.NewUser(msg.From.ID, msg.From.Username)
		doc.Users = append(doc.Users, user)
		h.store.SaveUsers(ctx, doc)
		h.log.Info("зарегистрирован новый пользователь", slog.Int64("id", user.ID), slog.String("login", user.Login))
	}

	now := time.Now()
	h.sendHTML(ctx, msg.From.ID, messages.FormatProfile(
		user.Login, user.Key,
		subscription.RemainingDays(user.Buy1, now),
		subscription.RemainingDays(user.Buy2, now)))
}

// onSupportRelay пересылает вопрос пользователя в группу поддержки и
// запоминает id ретрансляции.
func (h *Handler) onSupportRelay(ctx context.Context, msg *models.Message) {
	label := msg.From.Username
	if label == "" {
		label = "БезUsername"
	}
	text := messages.FormatSupportQuestion(label, support.Tag(msg.From.ID), msg.Text)

	sent, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: h.cfg.SupportGroupID,
		Text:   text,
	})
	if err != nil {
		h.log.Error("ошибка пересылки в поддержку", slog.Any("err", err))
		return
	}
	h.router.TrackRelay(msg.From.ID, sent.ID, text)
}

func (h *Handler) onSupportCancel(ctx context.Context, msg *models.Message) {
	relay, ok := h.router.Cancel(msg.From.ID)
	if ok {
		_, err := h.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    h.cfg.SupportGroupID,
			MessageID: relay.MessageID,
			Text:      messages.FormatSupportClosed(relay.Text),
		})
		if err != nil {
			h.log.Warn("не удалось отредактировать сообщение", slog.Any("err", err))
		}
	}
	h.sendMarkup(ctx, msg.From.ID, messages.MsgSupportCancelled, mainKeyboard())
}

// onSupportGroupMessage — обратный путь: ответ в группе на помеченное
// сообщение доставляется адресату. Состояние не нужно, маркера в
// тексте достаточно.
func (h *Handler) onSupportGroupMessage(ctx context.Context, msg *models.Message) {
	if msg.ReplyToMessage == nil || msg.Text == "" {
		return
	}
	target, ok := support.ParseTag(msg.ReplyToMessage.Text)
	if !ok {
		return
	}

	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: target,
		Text:   messages.FormatSupportReply(msg.Text),
	})
	if err != nil {
		h.log.Warn("не удалось доставить ответ поддержки",
			slog.Int64("user", target), slog.Any("err", err))
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string) {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		h.log.Error("ошибка отправки", slog.Any("err", err))
	}
}

func (h *Handler) sendHTML(ctx context.Context, chatID int64, text string) {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.log.Error("ошибка отправки", slog.Any("err", err))
	}
}

func (h *Handler) sendMarkup(ctx context.Context, chatID int64, text string, kb models.ReplyMarkup) {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.log.Error("ошибка отправки", slog.Any("err", err))
	}
}

func (h *Handler) edit(ctx context.Context, ref *models.Message, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    ref.Chat.ID,
		MessageID: ref.ID,
		Text:      text,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}
	_, err := h.bot.EditMessageText(ctx, params)
	if err != nil {
		h.log.Warn("не удалось отредактировать сообщение", slog.Any("err", err))
	}
}

func userLabel(u *models.User) string {
	if u.Username != "" {
		return u.Username
	}
	return strconv.FormatInt(u.ID, 10)
}
