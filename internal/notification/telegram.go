package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReviewApproved(ctx context.Context, s *domain.BookingSession) {
	text := fmt.Sprintf(
		"*Личность подтверждена!*\n\n"+"Сессия: `%s`\n"+"Теперь выберите место и время встречи.",
		s.ID,
	)
	n.send(ctx, s.Buyer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReviewRejected(ctx context.Context, s *domain.BookingSession) {
	reason := ""
	if s.Verification != nil {
		reason = s.Verification.RejectReason
	}
	text := fmt.Sprintf(
		"*Фото не прошло проверку*\n\n"+"Причина: %s\n"+"Загрузите новое фото с тем же жестом.",
		escape(reason),
	)
	n.send(ctx, s.Buyer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyConfirmed(ctx context.Context, s *domain.BookingSession, loc *domain.Location) {
	if s.Meetup == nil {
		return
	}
	text := fmt.Sprintf(
		"*Встреча подтверждена!*\n\n"+"Место: %s, %s\n"+"Дата: %s %s (%s)\n"+"Код подтверждения: `%s`\n"+"Контакт на месте: %s\n"+"Сумма к оплате наличными: %s",
		escape(loc.Name), escape(loc.Address),
		s.Meetup.Date, s.Meetup.Time, escape(loc.Timezone),
		s.Meetup.ConfirmationCode,
		escape(s.Meetup.StaffContact),
		formatAmount(s.Amount, s.Currency),
	)
	n.send(ctx, s.Buyer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, s *domain.BookingSession) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Сессия: `%s`",
		s.ID,
	)
	if s.CancelReason != "" {
		text += "\nПричина: " + escape(s.CancelReason)
	}
	n.send(ctx, s.Buyer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyExpired(ctx context.Context, s *domain.BookingSession) {
	text := fmt.Sprintf(
		"*Сессия истекла*\n\n"+"Сессия: `%s`\n"+"Оформите оплату наличными заново.",
		s.ID,
	)
	n.send(ctx, s.Buyer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

// escape prepares free text typed by reviewers, buyers or operators for
// Markdown parse mode.
func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}
