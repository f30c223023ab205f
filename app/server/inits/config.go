package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"kidney-care-ai/app/server/config"

	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// a local .env is optional, real environment variables win either way
	_ = godotenv.Load()

	cfg := &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":5000" // default listen address
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if modelPath, exist := os.LookupEnv("MODEL_PATH"); !exist {
		return nil, fmt.Errorf("MODEL_PATH environment variable not set")
	} else {
		cfg.System.ModelPath = modelPath
	}

	if mailHost, exist := os.LookupEnv("MAIL_SERVER"); !exist {
		return nil, fmt.Errorf("MAIL_SERVER environment variable not set")
	} else {
		cfg.Mail.Host = mailHost
	}

	if mailPort, exist := os.LookupEnv("MAIL_PORT"); !exist {
		cfg.Mail.Port = 587
	} else if port, err := strconv.Atoi(mailPort); err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT %q: %w", mailPort, err)
	} else {
		cfg.Mail.Port = port
	}

	cfg.Mail.Username = os.Getenv("MAIL_USERNAME")
	cfg.Mail.Password = os.Getenv("MAIL_PASSWORD")

	if sender, exist := os.LookupEnv("MAIL_SENDER"); !exist {
		cfg.Mail.Sender = "kidneycareai@gmail.com"
	} else {
		cfg.Mail.Sender = sender
	}

	return cfg, nil
}
