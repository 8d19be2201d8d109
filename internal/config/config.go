package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	// Commentary via an OpenAI-compatible chat endpoint. An empty key
	// disables the call and the planner falls back to the canned text.
	OpenAIKey   string `yaml:"openai_key" env:"OPENAI_API_KEY"`
	OpenAIURL   string `yaml:"openai_url" env-default:"https://api.openai.com/v1/chat/completions"`
	OpenAIModel string `yaml:"openai_model" env-default:"gpt-4o-mini"`

	// Nightly import of reported production from the shared workbook.
	SheetPath string `yaml:"sheet_path"`
	SheetCron string `yaml:"sheet_cron" env-default:"0 5 * * *"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

func MustConfig() *Config {
	var cfg Config
	a := "./config/local.yaml"

	if err := cleanenv.ReadConfig(a, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
