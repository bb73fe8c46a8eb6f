package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo). El sistema es local-first: no hay base de
// datos ni servicios externos que configurar, solo el puerto HTTP, el
// directorio de datos y las políticas del punto de venta.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	POS   POSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig configuración del almacén local de documentos JSON.
type StoreConfig struct {
	DataDir string // directorio donde viven products.json, stock.json, payment.json, history.json
}

// POSConfig políticas del punto de venta.
type POSConfig struct {
	LowStockThreshold int    // umbral del widget de stock bajo del dashboard
	CurrencyCode      string // código de moneda del URI de pago (cu=), ej: INR
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, DATA_DIR, LOW_STOCK_THRESHOLD, CURRENCY_CODE.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "printpron"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			DataDir: getString(v, "DATA_DIR", "./data"),
		},
		POS: POSConfig{
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 5),
			CurrencyCode:      getString(v, "CURRENCY_CODE", "INR"),
		},
	}

	if cfg.POS.LowStockThreshold < 0 {
		return nil, fmt.Errorf("config: LOW_STOCK_THRESHOLD no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
