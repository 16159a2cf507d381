package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Conversation.validate(); err != nil {
		return fmt.Errorf("conversation: %w", err)
	}

	return nil
}

func (c *ConversationConfig) validate() error {
	if strings.TrimSpace(c.OpeningMessage) == "" {
		return fmt.Errorf("opening_message must not be empty")
	}
	if strings.TrimSpace(c.ReplyMessage) == "" {
		return fmt.Errorf("reply_message must not be empty")
	}
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be > 0 (got %d)", c.MaxMessageLength)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", c.HistoryLimit)
	}
	if c.DefaultQuota < 0 {
		return fmt.Errorf("default_quota must be >= 0 (got %d)", c.DefaultQuota)
	}
	if c.QuotaWindow <= 0 {
		return fmt.Errorf("quota_window must be > 0 (got %v)", c.QuotaWindow)
	}
	return nil
}
