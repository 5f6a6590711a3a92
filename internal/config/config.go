package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ecoquest-quiz-service/internal/game"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Bank struct {
		ID  string `yaml:"id"`
		TTL string `yaml:"ttl"`
	} `yaml:"bank"`
	Game struct {
		PointsPerCorrect  int `yaml:"pointsPerCorrect"`
		TaskPoints        int `yaml:"taskPoints"`
		DailyGoal         int `yaml:"dailyGoal"`
		DailyBonusPoints  int `yaml:"dailyBonusPoints"`
		StarterThreshold  int `yaml:"starterThreshold"`
		ChampionThreshold int `yaml:"championThreshold"`
	} `yaml:"game"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// Rules merges the configured game section over the canonical defaults;
// zero-valued fields keep their default.
func (c Config) Rules() game.Rules {
	rules := game.DefaultRules()
	if c.Game.PointsPerCorrect > 0 {
		rules.PointsPerCorrect = c.Game.PointsPerCorrect
	}
	if c.Game.TaskPoints > 0 {
		rules.TaskPoints = c.Game.TaskPoints
	}
	if c.Game.DailyGoal > 0 {
		rules.DailyGoal = c.Game.DailyGoal
	}
	if c.Game.DailyBonusPoints > 0 {
		rules.DailyBonusPoints = c.Game.DailyBonusPoints
	}
	if c.Game.StarterThreshold > 0 {
		rules.StarterThreshold = c.Game.StarterThreshold
	}
	if c.Game.ChampionThreshold > 0 {
		rules.ChampionThreshold = c.Game.ChampionThreshold
	}
	return rules
}

// BankID returns the configured bank or the bundled default.
func (c Config) BankID() string {
	if c.Bank.ID != "" {
		return c.Bank.ID
	}
	return "gamenv"
}
