package config

import (
	"os"
)

type Config struct {
	// Server Settings
	AppPort string
	Host    string

	// Document Store Settings
	MongoURI    string
	MongoDBName string

	// JWT Settings
	JWTSecret string

	// Payment Settings
	StripeSecretKey string

	// CORS Settings
	CORSAllowOrigins string
	CORSAllowMethods string
	CORSAllowHeaders string
}

func LoadConfig() *Config {
	config := &Config{
		AppPort: getenv("PORT", "5000"),
		Host:    getenv("HOST", ""),

		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getenv("MONGO_DB", "guitar-square"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		CORSAllowOrigins: "*",
		CORSAllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		CORSAllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}

	return config
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
