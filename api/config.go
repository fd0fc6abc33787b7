package api

import (
	"sync"

	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	UpstreamConfig
}

type StorageConfig struct {
	TableNameSessions string
}

type ServerConfig struct {
	Port int
}

type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			// empty table name selects the in-memory store
			TableNameSessions: getStringOrDefault("storage.TableNameSessions", ""),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		UpstreamConfig: UpstreamConfig{
			BaseURL:        getString("upstream.baseURL"),
			TimeoutSeconds: getIntOrDefault("upstream.timeoutSeconds", 10),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
