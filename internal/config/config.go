package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

type Config struct {
	ServerAddress   string `json:"server_address"`
	FileStoragePath string `json:"file_storage_path"`
	StaticDir       string `json:"static_dir"`
	GRPCAddress     string `json:"grpc_address"`
	LogLevel        string `json:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:   ":3000",
		FileStoragePath: "data/links.json",
		StaticDir:       "public",
		GRPCAddress:     "",
		LogLevel:        "info",
	}
}

// NewConfig builds the configuration from defaults, an optional JSON file,
// command line flags and environment variables, each overriding the previous one.
func NewConfig() *Config {
	cfg := defaultConfig()

	var configPath string
	flag.StringVar(&configPath, "c", "", "Path to JSON config file")

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:3000)")
	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "Path to the links file; empty keeps links in memory")
	flag.StringVar(&cfg.StaticDir, "s", cfg.StaticDir, "Directory with index.html and style.css")
	flag.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "gRPC server address; empty disables gRPC")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		configPath = envConfig
	}

	if configPath != "" {
		fileCfg := defaultConfig()
		if err := loadJSON(configPath, fileCfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
		} else {
			applyFile(cfg, fileCfg)
		}
	}

	if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}

	if envFileStoragePath, ok := os.LookupEnv("FILE_STORAGE_PATH"); ok {
		cfg.FileStoragePath = envFileStoragePath
	}

	if envStaticDir := os.Getenv("STATIC_DIR"); envStaticDir != "" {
		cfg.StaticDir = envStaticDir
	}

	if envGRPCAddress := os.Getenv("GRPC_ADDRESS"); envGRPCAddress != "" {
		cfg.GRPCAddress = envGRPCAddress
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	return cfg
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// applyFile copies values from the JSON file that no flag has overridden.
func applyFile(cfg, fileCfg *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["a"] {
		cfg.ServerAddress = fileCfg.ServerAddress
	}
	if !set["f"] {
		cfg.FileStoragePath = fileCfg.FileStoragePath
	}
	if !set["s"] {
		cfg.StaticDir = fileCfg.StaticDir
	}
	if !set["g"] {
		cfg.GRPCAddress = fileCfg.GRPCAddress
	}
	if !set["l"] {
		cfg.LogLevel = fileCfg.LogLevel
	}
}
