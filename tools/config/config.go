package config

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var configPath = "./configs/"
var envConfigPath = "./.env"

func init() {
	LoadConf()
}

func LoadConf() {
	setDefaults()
	// 读取默认配置
	if err := setFileConfig(); err != nil {
		log.Fatalln("初始化配置文件出错", err.Error())
	}
	// 读取环境变量
	if err := setEnvConfig(); err != nil {
		log.Fatalln("载入环境变量出错", err.Error())
	}
}

func setDefaults() {
	viper.SetDefault("app.name", "Binance Futures Dashboard")
	viper.SetDefault("app.refresh_interval", "60s")
	viper.SetDefault("binance.use_testnet", false)
	viper.SetDefault("binance.timeout", "30s")
	viper.SetDefault("display.default_currency", "USDT")
	viper.SetDefault("display.timezone", "UTC")
	viper.SetDefault("display.date_format", "2006-01-02 15:04:05")
	viper.SetDefault("listen.http", ":8080")
	viper.SetDefault("log.level", "info")
}

// setFileConfig 读取configs文件夹下的配置
func setFileConfig() error {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil
	}
	exsit, _ := pathExists(absPath)
	if exsit == true {
		fileInfoList, err := ioutil.ReadDir(absPath)
		if err != nil {
			return err
		}
		for i := range fileInfoList {
			viper.SetConfigFile(absPath + "/" + fileInfoList[i].Name())
			if err := viper.MergeInConfig(); err != nil {
				return err
			}
		}
	}

	return nil
}

// setEnvConfig
func setEnvConfig() error {
	// 读取系统变量
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	// 读取env 文件
	envViper := viper.New()
	absPath, err := filepath.Abs(envConfigPath)
	if err != nil {
		return nil
	}
	exsit, _ := pathExists(absPath)
	if exsit == true {
		envViper.SetConfigFile(absPath)
		if err := envViper.ReadInConfig(); err != nil {
			return err
		}
	}
	// 配置合并到viper
	envKeys := envViper.AllKeys()
	for i := range envKeys {
		viper.Set(strings.Replace(envKeys[i], "_", ".", 1), envViper.Get(envKeys[i]))
	}

	return nil
}

// WatchConf 监听配置文件是否改变,用于热更新
func WatchConf() {
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Printf("配置文件修改更新: %s\n", e.Name)
	})
}

// RefreshInterval returns app.refresh_interval as a duration. Plain numbers
// are treated as seconds, duration strings like "90s" or "2m" also work.
func RefreshInterval() time.Duration {
	return durationConf("app.refresh_interval", time.Minute)
}

// BinanceTimeout returns binance.timeout as a duration, same parsing rules
// as RefreshInterval.
func BinanceTimeout() time.Duration {
	return durationConf("binance.timeout", 30*time.Second)
}

func durationConf(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	if raw == "" {
		return def
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		if seconds <= 0 {
			return def
		}
		return time.Duration(seconds) * time.Second
	}
	d, err := str2duration.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
