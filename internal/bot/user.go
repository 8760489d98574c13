package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// displayName is the name stored with the user's statistics.
func displayName(u *tgbotapi.User) string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.UserName != "":
		return "@" + u.UserName
	default:
		return fmt.Sprintf("Пользователь %d", u.ID)
	}
}
