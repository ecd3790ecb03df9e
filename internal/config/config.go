package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Token    TokenConfig    `yaml:"token"`
}

type HTTPConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type PostgresConfig struct {
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	DbName  string `yaml:"db_name"`
	User    string `yaml:"user"`
	Pwd     string `yaml:"password"`
	SslMode string `yaml:"sslmode"`
}

type KafkaConfig struct {
	BrokerList      []string `yaml:"broker_list"`
	OrderEventTopic string   `yaml:"order_event_topic"`
}

type GatewayConfig struct {
	BaseURL   string `yaml:"base_url" env-default:"https://api.razorpay.com/v1"`
	KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
}

type TokenConfig struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET"`
	TTL    time.Duration `yaml:"ttl" env-default:"15m"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("empty config path: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
