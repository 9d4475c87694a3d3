package config

import (
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// CampaignConfig seeds the ledger at process start. Deployer holds the
// administrator slot until the initialize operation hands it over.
type CampaignConfig struct {
	Deployer string `mapstructure:"deployer"`
}

// ChainConfig configures the asset transfer collaborator. When Enabled is
// false the server runs with the static local transfer service instead.
type ChainConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ChainId    int64  `mapstructure:"chain_id"`
	RpcUrl     string `mapstructure:"rpc_url"`
	PrivateKey string `mapstructure:"private_key"`
	Custody    string `mapstructure:"custody"` // custody account address
}

type TaskConfig struct {
	SnapshotInterval  int `mapstructure:"snapshot_interval"`  // seconds
	ReconcileInterval int `mapstructure:"reconcile_interval"` // seconds
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/seedchain")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "seedchain")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("campaign.deployer", "deployer")
	viper.SetDefault("chain.enabled", false)
	viper.SetDefault("chain.chain_id", 1)
	viper.SetDefault("task.snapshot_interval", 60)
	viper.SetDefault("task.reconcile_interval", 300)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
