package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func SendTelegram(token, message string, channelId int64) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = bot.Send(tgbotapi.NewMessage(channelId, message))
	if err != nil {
		fmt.Println(err)
	}
}
