package utils

import (
	"log"
	"net/url"
	"time"

	"lumina/config"

	"github.com/go-resty/resty/v2"
)

// AvatarURL builds the generated-avatar URL for a display name
func AvatarURL(name string) string {
	return config.AppConfig.AvatarApiUrl + "?name=" + url.QueryEscape(name) + "&background=random"
}

// VerifyAvatarURL checks that the avatar endpoint serves the URL. Best
// effort: a failure is logged, never surfaced, and the URL stays assigned.
func VerifyAvatarURL(avatarURL string) {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Get(avatarURL)
	if err != nil {
		log.Printf("Avatar URL check failed: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Avatar URL check returned %d for %s", resp.StatusCode(), avatarURL)
	}
}
