package config

type Config struct {
	System struct {
		IsProd                bool   // production mode switches logger and disables debug surfaces
		Listen                string // listen address
		DBConnectionString    string // Postgres connection string
		RedisConnectionString string // Redis connection string, holds the session store
		ModelPath             string // path to the exported classifier artifact
	}
	Mail struct {
		Host     string // SMTP relay for inquiry reply notifications
		Port     int
		Username string
		Password string
		Sender   string // From address on outbound mail
	}
}
