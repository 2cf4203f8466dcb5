package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	Server      ServerConfig  `yaml:"server"`
	Chat        ChatConfig    `yaml:"chat"`
	GeminiModel string        `yaml:"gemini_model"`
	MongoURI    string        `yaml:"mongo_uri"`
	MongoDBName string        `yaml:"mongo_db_name"`
	EventBus    EventBusConfig `yaml:"event_bus"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins lists the browser origins allowed by the CORS layer.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ChatConfig groups the tunables of the realtime chat relay.
type ChatConfig struct {
	// HistoryReplayLimit is the number of most recent messages replayed
	// to a client joining a session room. 0 or less falls back to 200.
	HistoryReplayLimit int `yaml:"history_replay_limit"`
}

// EventBusConfig selects the chat event fan-out backend.
// driver: "memory" (single instance, default) or "kafka".
type EventBusConfig struct {
	Driver string `yaml:"driver"`
}

func (c ChatConfig) ReplayLimit() int {
	if c.HistoryReplayLimit <= 0 {
		return 200
	}
	return c.HistoryReplayLimit
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	// env overrides for values that differ per deployment
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.MongoDBName = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
