package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Application modes selected by APP_MODE.
const (
	ModeWalk  = "walk"
	ModeServe = "serve"
)

// Config holds the application's configuration values.
type Config struct {
	AppMode      string  // walk runs the terminal walker, serve the debug API
	MazeWidth    int     // Number of columns of generated mazes
	MazeHeight   int     // Number of rows of generated mazes
	NoiseBias    string  // walls, paths or none
	MazeSeed     string  // Generation seed, empty for a random one
	PlayerFacing string  // Initial facing of the player (N, E, S, W)
	DrawingSize  float64 // Half-size of the nearest corridor slice in paper units
	SoundEnabled bool    // Whether the bump sound is played
	LogLevel     string  // zerolog level name
	LogFile      string  // Log destination in walk mode
	HostIP       string  // Host IP for the debug server
	RESTPort     int     // Port for the debug server
	GinMode      string  // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		AppMode:      getEnvWithDefault("APP_MODE", ModeWalk),
		MazeWidth:    getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:   getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		NoiseBias:    getEnvWithDefault("NOISE_BIAS", "paths"),
		MazeSeed:     getEnvWithDefault("MAZE_SEED", ""),
		PlayerFacing: getEnvWithDefault("PLAYER_FACING", "S"),
		DrawingSize:  getEnvAsFloatWithDefault("DRAWING_SIZE", 80),
		SoundEnabled: getEnvAsBoolWithDefault("SOUND_ENABLED", true),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:      getEnvWithDefault("LOG_FILE", "mazewalk.log"),
		HostIP:       getEnvWithDefault("HOST_IP", "localhost"),
		RESTPort:     getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
