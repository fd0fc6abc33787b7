// @title VoteRoyale Console API
// @version 1.0
// @description Console gateway for the VoteRoyale event-judging platform

// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
package main

import (
	"github.com/EltonDagodog/VoteRoyale/api"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logging.BootstrapLogger()

	// Load env (optional .env for local runs)
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
