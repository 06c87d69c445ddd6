package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("environment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("environment")
	}()

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}
	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}
	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}
	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "120")
	defer os.Unsetenv("TEST_INT")

	if got := getEnvInt("TEST_INT", 60); got != 120 {
		t.Errorf("getEnvInt() = %v, want 120", got)
	}
	if got := getEnvInt("NON_EXISTENT_INT", 60); got != 60 {
		t.Errorf("getEnvInt() = %v, want the default 60", got)
	}

	os.Setenv("TEST_INT", "not-a-number")
	if got := getEnvInt("TEST_INT", 60); got != 60 {
		t.Errorf("getEnvInt() on garbage = %v, want the default 60", got)
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("environment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("environment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("environment")
}

func TestGet(t *testing.T) {
	resetForTesting()

	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("MQTT_Host")
	os.Unsetenv("MQTT_Port")
	os.Unsetenv("PORT")
	os.Unsetenv("environment")
	os.Unsetenv("checkPollSeconds")

	resetForTesting()
	config, _ := Load()

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}
	if config.DBName != "ModTrack" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "ModTrack")
	}
	if config.MQTTHost != "localhost" {
		t.Errorf("MQTTHost default = %v, want %v", config.MQTTHost, "localhost")
	}
	if config.MQTTPort != "1883" {
		t.Errorf("MQTTPort default = %v, want %v", config.MQTTPort, "1883")
	}
	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}
	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
	if config.CheckPollSeconds != 60 {
		t.Errorf("CheckPollSeconds default = %v, want 60", config.CheckPollSeconds)
	}
}
