package config

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Project ProjectConfig
}

type ServerConfig struct {
	Port int
}

type ProjectConfig struct {
	ID string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	viper.SetDefault("server.port", 5000)
	viper.SetDefault("project.id", "")

	// 環境變數優先於配置文件，沿用部署時以 PORT 指定埠號的慣例
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("project.id", "PROJECT_ID")

	// 配置文件不存在時使用預設值即可
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// 每份部署實例都帶有一個固定的識別字串，未指定時在啟動時產生
	if config.Project.ID == "" {
		config.Project.ID = uuid.NewString()
	}

	return &config, nil
}
