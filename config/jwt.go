package config

type Jwt struct {
	Secret  string `mapstructure:"secret"`
	Expires int    `mapstructure:"expires"` // refresh token有效天数
	Issuer  string `mapstructure:"issuer"`
}
