package main

import (
	"fmt"
	"time"
)

type Config struct {
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=3000"`
	LogLevel              string        `env:"LOG_LEVEL,required=true"`
	VerifyToken           string        `env:"VERIFY_TOKEN,required=true"`
	WhatsAppAccessToken   string        `env:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID string        `env:"WHATSAPP_PHONE_NUMBER_ID"`
	GraphAPIBaseURL       string        `env:"GRAPH_API_BASE_URL,default=https://graph.facebook.com/v18.0"`
	BadgerFilepath        string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath         string        `env:"BLUGE_FILEPATH,required=true"`
	SessionWorkers        int           `env:"SESSION_WORKERS,default=8"`
	BufferSize            int           `env:"BUFFER_SIZE,default=64"`
	EventBufferSize       int           `env:"EVENT_BUFFER_SIZE,default=256"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	CensoredWordsPath     string        `env:"CENSORED_WORDS_PATH"`
	CharReplacement       string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
}

// CharacterRune converts the replacement setting into the single rune the
// moderator expects.
func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
