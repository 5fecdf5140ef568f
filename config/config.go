package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret           string `json:"jwt_secret"`
		RefreshCodeLen      int    `json:"refresh_code_len"`
		RefreshCodeMaxValid int    `json:"refresh_code_max_valid_days"`
	} `json:"security"`

	// Reward controla a política de recompensa por submissão.
	// PenaltyOnInvalid fica em 0 por padrão; suba para 5 se quiser o
	// comportamento antigo de descontar em submissão inválida.
	Reward struct {
		OnValid          int `json:"on_valid"`
		PenaltyOnInvalid int `json:"penalty_on_invalid"`
	} `json:"reward"`

	Upload struct {
		MaxFileBytes int64 `json:"max_file_bytes"`
	} `json:"upload"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		logrus.Fatal(err)
	}
	return ApplyDefaults(c)
}

// ApplyDefaults preenche defaults (pra evitar nil/zero chato).
func ApplyDefaults(c Configuration) Configuration {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.RefreshCodeLen <= 0 {
		c.Security.RefreshCodeLen = 32
	}
	if c.Security.RefreshCodeMaxValid <= 0 {
		c.Security.RefreshCodeMaxValid = 30
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	// on_valid: 0 = não configurado (vira 10); negativo = recompensa desligada
	if c.Reward.OnValid == 0 {
		c.Reward.OnValid = 10
	} else if c.Reward.OnValid < 0 {
		c.Reward.OnValid = 0
	}
	if c.Reward.PenaltyOnInvalid < 0 {
		c.Reward.PenaltyOnInvalid = 0
	}
	if c.Upload.MaxFileBytes <= 0 {
		c.Upload.MaxFileBytes = 5 * 1024 * 1024
	}
	return c
}
