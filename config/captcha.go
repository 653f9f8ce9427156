package config

type Captcha struct {
	Height   int     `mapstructure:"height"`
	Width    int     `mapstructure:"width"`
	Length   int     `mapstructure:"length"`
	MaxSkew  float64 `mapstructure:"max_skew"`
	DotCount int     `mapstructure:"dot_count"`
	Open     bool    `mapstructure:"open"` // 是否开启验证码校验
}
