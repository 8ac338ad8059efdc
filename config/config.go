package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Env struct {
		ApiEndpoint   string `yaml:"api_endpoint"`
		AssetEndpoint string `yaml:"asset_endpoint"`
		SiteUrl       string `yaml:"site_url"`
		DefaultStatus string `yaml:"default_status"`
		LinkContext   string `yaml:"link_context"` // "trade" routes rows to market pages
		Debug         string `yaml:"debug"`
		BotName       string `yaml:"bot_name"`
		BotApiKey     string `yaml:"bot_api_key"`
		TgHook        string `yaml:"tg_hook"`
		WebHookOpen   bool   `yaml:"web_hook_open"`
		TgHookToken   string `yaml:"tg_hook_token"`
		LocalHost     string `yaml:"local_host"`
	} `yaml:"env"`

	Redis struct {
		Ip       string `yaml:"ip"`
		Port     int    `yaml:"port"`
		Db       int    `yaml:"db"`
		Username string `yaml:"username"`
		Passwd   string `yaml:"passwd"`
	} `yaml:"redis"`
}

var YmlConfig *Config

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if config.Env.DefaultStatus == "" {
		config.Env.DefaultStatus = "all"
	}

	return &config, nil
}

func init() {
	var confFilePath string
	if configFilePathFromEnv := os.Getenv("XCPDEX_BOT_ENV"); configFilePathFromEnv != "" {
		confFilePath = configFilePathFromEnv
	} else {
		confFilePath = "./prod.yml"
	}
	cfg, err := LoadConfig(confFilePath)
	if err != nil {
		panic(err)
	}
	YmlConfig = cfg
}
