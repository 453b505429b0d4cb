package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration derived from environment variables.
type Config struct {
	HTTPPort             string
	JWTSecret            string
	JWTIssuer            string
	JWTAudience          string
	JWTTTL               time.Duration
	CorridorsFile        string
	SourceCurrency       string
	FeePolicy            string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	GatewayFailureRate   float64
	GatewayMaxDelay      time.Duration
	PublicRateLimitRPS   int
	AuthRateLimitRPS     int
	LogLevel             string
}

// Load reads environment variables using viper and returns a typed config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	bindEnv(v, "port", "PORT", "REMIT_PORT")
	bindEnv(v, "jwt_secret", "JWT_SECRET", "REMIT_JWT_SECRET")
	bindEnv(v, "jwt_issuer", "JWT_ISSUER", "REMIT_JWT_ISSUER")
	bindEnv(v, "jwt_audience", "JWT_AUDIENCE", "REMIT_JWT_AUDIENCE")
	bindEnv(v, "jwt_ttl", "JWT_TTL", "REMIT_JWT_TTL")
	bindEnv(v, "corridors_file", "CORRIDORS_FILE", "REMIT_CORRIDORS_FILE")
	bindEnv(v, "source_currency", "SOURCE_CURRENCY", "REMIT_SOURCE_CURRENCY")
	bindEnv(v, "fee_policy", "FEE_POLICY", "REMIT_FEE_POLICY")
	bindEnv(v, "session_ttl", "SESSION_TTL", "REMIT_SESSION_TTL")
	bindEnv(v, "session_sweep_interval", "SESSION_SWEEP_INTERVAL", "REMIT_SESSION_SWEEP_INTERVAL")
	bindEnv(v, "gateway_failure_rate", "GATEWAY_FAILURE_RATE", "REMIT_GATEWAY_FAILURE_RATE")
	bindEnv(v, "gateway_max_delay", "GATEWAY_MAX_DELAY", "REMIT_GATEWAY_MAX_DELAY")
	bindEnv(v, "public_rate_limit_rps", "PUBLIC_RATE_LIMIT_RPS", "REMIT_PUBLIC_RATE_LIMIT_RPS")
	bindEnv(v, "auth_rate_limit_rps", "AUTH_RATE_LIMIT_RPS", "REMIT_AUTH_RATE_LIMIT_RPS")
	bindEnv(v, "log_level", "LOG_LEVEL", "REMIT_LOG_LEVEL")

	v.SetDefault("port", "8080")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_issuer", "remittance-engine")
	v.SetDefault("jwt_audience", "remittance-api")
	v.SetDefault("jwt_ttl", "1h")
	v.SetDefault("corridors_file", "")
	v.SetDefault("source_currency", domain.BaseCurrency)
	v.SetDefault("fee_policy", domain.FeePolicyDeducted)
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("session_sweep_interval", "1m")
	v.SetDefault("gateway_failure_rate", 0.1)
	v.SetDefault("gateway_max_delay", "2s")
	v.SetDefault("public_rate_limit_rps", 10)
	v.SetDefault("auth_rate_limit_rps", 100)
	v.SetDefault("log_level", "info")

	jwtTTL, err := time.ParseDuration(v.GetString("jwt_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	sessionTTL, err := time.ParseDuration(v.GetString("session_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	sweepInterval, err := time.ParseDuration(v.GetString("session_sweep_interval"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}
	gatewayDelay, err := time.ParseDuration(v.GetString("gateway_max_delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_MAX_DELAY: %w", err)
	}

	cfg := &Config{
		HTTPPort:             v.GetString("port"),
		JWTSecret:            v.GetString("jwt_secret"),
		JWTIssuer:            v.GetString("jwt_issuer"),
		JWTAudience:          v.GetString("jwt_audience"),
		JWTTTL:               jwtTTL,
		CorridorsFile:        strings.TrimSpace(v.GetString("corridors_file")),
		SourceCurrency:       strings.ToUpper(strings.TrimSpace(v.GetString("source_currency"))),
		FeePolicy:            strings.ToLower(strings.TrimSpace(v.GetString("fee_policy"))),
		SessionTTL:           sessionTTL,
		SessionSweepInterval: sweepInterval,
		GatewayFailureRate:   v.GetFloat64("gateway_failure_rate"),
		GatewayMaxDelay:      gatewayDelay,
		PublicRateLimitRPS:   max(v.GetInt("public_rate_limit_rps"), 1),
		AuthRateLimitRPS:     max(v.GetInt("auth_rate_limit_rps"), 1),
		LogLevel:             v.GetString("log_level"),
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if strings.TrimSpace(cfg.JWTIssuer) == "" {
		return nil, fmt.Errorf("JWT_ISSUER is required")
	}
	if strings.TrimSpace(cfg.JWTAudience) == "" {
		return nil, fmt.Errorf("JWT_AUDIENCE is required")
	}
	if cfg.FeePolicy != domain.FeePolicyDeducted && cfg.FeePolicy != domain.FeePolicyOnTop {
		return nil, fmt.Errorf("FEE_POLICY must be %q or %q", domain.FeePolicyDeducted, domain.FeePolicyOnTop)
	}
	if cfg.GatewayFailureRate < 0 || cfg.GatewayFailureRate > 1 {
		return nil, fmt.Errorf("GATEWAY_FAILURE_RATE must be between 0 and 1")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}

func bindEnv(v *viper.Viper, key string, names ...string) {
	args := append([]string{key}, names...)
	_ = v.BindEnv(args...)
}
