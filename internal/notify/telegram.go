package notify

import (
	"fmt"
	"log"
	"sort"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobtrack-automation/internal/config"
	"go-jobtrack-automation/internal/store"
)

// Reporter pushes a run summary to Telegram. Strictly optional: without a
// configured token there is no reporter, and a nil reporter is safe to call.
type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewReporter(cfg *config.Config) *Reporter {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram bot: %v", err)
		return nil
	}

	return &Reporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}
}

func (r *Reporter) SendRunSummary(results map[string]store.MergeResult) error {
	if r == nil {
		return nil
	}

	platforms := make([]string, 0, len(results))
	for platform := range results {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	text := "✅ <b>Job scrape finished</b>\n"
	for _, platform := range platforms {
		res := results[platform]
		text += fmt.Sprintf("%s: %d new, %d total\n", platform, res.Added, res.Total)
	}

	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML"
	_, err := r.bot.Send(msg)
	return err
}

func (r *Reporter) SendError(runErr error) error {
	if r == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(r.chatID, fmt.Sprintf("❌ Scrape error: %v", runErr))
	_, err := r.bot.Send(msg)
	return err
}
