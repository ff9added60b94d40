package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"troc-service/engine"
	"troc-service/store"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
)

// Local REPL against the conversation engine, no WhatsApp account needed.
// State lives in memory only and vanishes on exit.
func main() {
	log := logs.GetLoggerFromString("WARN")
	eng := engine.New(store.NewMemoryStore(), log, nil)

	identity := "local-tester"
	if len(os.Args) > 1 {
		identity = os.Args[1]
	}

	header := color.New(color.BgBlack, color.FgGreen).Render(" Troc-Service — testeur local ")
	fmt.Println(header)
	fmt.Println("Tapez un message (ou /quit pour sortir) :")

	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.FgCyan).Render(identity + "> ")
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "/quit" {
			break
		}
		if text == "" {
			continue
		}
		reply := eng.Handle(identity, text)
		fmt.Println(color.New(color.FgYellow).Render(reply))
	}
}
