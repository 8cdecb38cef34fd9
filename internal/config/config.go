package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	StorageBackend string // file | redis
	DataDir        string
	RedisAddr      string
	ShopName       string
	ShopAddress    string
	CashierID      string
	SeedDemoData   bool
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		ShopName:       getEnv("SHOP_NAME", "GrocerEase"),
		ShopAddress:    getEnv("SHOP_ADDRESS", ""),
		CashierID:      getEnv("CASHIER_ID", "cashier_01"),
		SeedDemoData:   getEnvBool("SEED_DEMO_DATA", false),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
