package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa toda la configuración de la aplicación. Se carga con Viper
// desde variables de entorno, con un archivo .env opcional como respaldo.
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	AI      AIConfig
	Billing BillingConfig
}

// AppConfig datos generales de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig conexión a PostgreSQL. DatabaseURL, si está definido, manda
// sobre los campos sueltos.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString resuelve el DSN efectivo.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma la URL de conexión codificando usuario y contraseña, que pueden
// traer caracteres reservados.
func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr dirección de escucha host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig servicio de redacción asistida. Con la API key vacía los
// endpoints de IA responden 503 pero el resto de la app funciona.
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// BillingConfig identidad fiscal de la agencia emisora y valores por
// defecto de facturación.
type BillingConfig struct {
	IssuerName    string
	IssuerTaxID   string
	IssuerAddress string
	IssuerEmail   string
	DefaultPrefix string // prefijo de numeración, ej. "FA-"
	Currency      string // ISO 4217
	VATRate       string // porcentaje por defecto, ej. "20"
}

// Load construye la configuración. Las variables de entorno tienen prioridad
// sobre el archivo .env y sobre los valores por defecto.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // el archivo es opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		AI: AIConfig{
			AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
			AnthropicModel:  v.GetString("ANTHROPIC_MODEL"),
		},
		Billing: BillingConfig{
			IssuerName:    v.GetString("BILLING_ISSUER_NAME"),
			IssuerTaxID:   v.GetString("BILLING_ISSUER_TAX_ID"),
			IssuerAddress: v.GetString("BILLING_ISSUER_ADDRESS"),
			IssuerEmail:   v.GetString("BILLING_ISSUER_EMAIL"),
			DefaultPrefix: v.GetString("BILLING_PREFIX"),
			Currency:      v.GetString("BILLING_CURRENCY"),
			VATRate:       v.GetString("BILLING_VAT_RATE"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "agencia-api")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "agencia")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "agencia-api")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-20241022")
	v.SetDefault("BILLING_PREFIX", "FA-")
	v.SetDefault("BILLING_CURRENCY", "EUR")
	v.SetDefault("BILLING_VAT_RATE", "20")
}
