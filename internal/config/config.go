// Package config loads service configuration from the environment.
package config

import "github.com/caarlos0/env/v11"

type Server struct {
	Port         string   `env:"PORT" envDefault:"8080"`
	JWTSecret    string   `env:"JWT_SECRET,required"`
	KafkaBrokers []string `env:"KAFKA_BROKERS"`

	// Remote catalog seeding is best-effort enrichment; when enabled it
	// runs in the background and failure is non-fatal.
	SeedRemote   bool   `env:"SEED_FAKESTORE" envDefault:"false"`
	FakestoreURL string `env:"FAKESTORE_API_URL" envDefault:"https://fakestoreapi.com"`
}

type Worker struct {
	KafkaBrokers    []string `env:"KAFKA_BROKERS,required"`
	EmailServiceURL string   `env:"EMAIL_SERVICE_URL,required"`
	ConsumerGroup   string   `env:"CONSUMER_GROUP" envDefault:"order-notifier"`
}

type Email struct {
	Port string `env:"PORT" envDefault:"8084"`
}

func LoadServer() (Server, error) {
	return env.ParseAs[Server]()
}

func LoadWorker() (Worker, error) {
	return env.ParseAs[Worker]()
}

func LoadEmail() (Email, error) {
	return env.ParseAs[Email]()
}
