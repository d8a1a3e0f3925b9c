package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	Server struct {
		Host    string
		Address string
	}

	// Onboarding holds the remote onboarding service settings.
	// AdminKey is a shared secret and must never be logged.
	Onboarding struct {
		URL      string
		AdminKey string
	}

	RollbarToken string
}

// LoadConfig resolves the process configuration exactly once, at the process
// boundary. Values come from the environment (with the ENV name as prefix) and
// from config/.env.<env> when present. Nothing else reads the environment;
// everything downstream takes a *Config.
func LoadConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Drivofy")
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("onboardingUrl", "")
	conf.SetDefault("onboardingAdminKey", "")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	c.Server.Host = conf.GetString("serverHost")
	c.Server.Address = conf.GetString("serverAddress")
	c.Onboarding.URL = conf.GetString("onboardingUrl")
	c.Onboarding.AdminKey = conf.GetString("onboardingAdminKey")
	return c
}
