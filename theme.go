package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is what the bot watches for and what it answers with.
type Theme struct {
	Keyword string   `yaml:"keyword"`
	Emoji   string   `yaml:"emoji"`
	Replies []string `yaml:"replies"`
}

func defaultTheme() Theme {
	return Theme{
		Keyword: "rust",
		Emoji:   "crustacean",
		Replies: []string{
			":crustacean: :crustacean: :crustacean: [R] [U] [S] [T] [!] :crustacean: :crustacean: :crustacean:",
			"one day, we'll rewrite Rust in RUST.",
			"did someone say RUST? https://www.youtube.com/watch?v=QVw5mnRI8Zw",
			"Stainless steel? Needs more RUST.",
			"My favorite CoD level? RUST.",
			"My wife gave me a Ruby. I sold it for a jar of RUST.",
			"rUsT ʇsnɹ rUsT ʇsnɹ rUsT ʇsnɹ rUsT ʇsnɹ",
			"I add iron to my elixirs, so my insides can RUST.",
			"0 days since last mention of RUST.",
			":crustacean: 🆁  :crustacean: 🆄  :crustacean: 🆂  :crustacean: 🆃  :crustacean:",
		},
	}
}

// loadTheme returns the built-in theme when path is empty.
func loadTheme(path string) (Theme, error) {
	if path == "" {
		return defaultTheme(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if err := theme.validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return theme, nil
}

func (t Theme) validate() error {
	if strings.TrimSpace(t.Keyword) == "" {
		return errors.New("keyword is required")
	}
	if strings.TrimSpace(t.Emoji) == "" {
		return errors.New("emoji is required")
	}
	if len(t.Replies) == 0 {
		return errors.New("at least one reply is required")
	}
	return nil
}

// Shortcode is the emoji as it appears in message text, e.g. ":crustacean:".
func (t Theme) Shortcode() string {
	return ":" + t.Emoji + ":"
}

func (t Theme) Matches(text string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(t.Keyword)) || text == t.Shortcode()
}
