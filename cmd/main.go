package main

import (
	"fmt"
	"os"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
