package config

import (
	"strconv"
)

type Config struct {
	Mysql   Mysql   `mapstructure:"mysql"`
	Redis   Redis   `mapstructure:"redis"`
	Es      Es      `mapstructure:"es"`
	Log     Log     `mapstructure:"log"`
	System  System  `mapstructure:"system"`
	Jwt     Jwt     `mapstructure:"jwt"`
	Captcha Captcha `mapstructure:"captcha"`
	Site    Site    `mapstructure:"site"`
}

type Mysql struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

func (m Mysql) Dsn() string {
	return m.User + ":" + m.Password + "@tcp(" + m.Host + ":" + strconv.Itoa(m.Port) + ")/" + m.DB + "?charset=utf8mb4&parseTime=True&loc=Local"
}

func (m Mysql) DSNWithoutDB() string {
	return m.User + ":" + m.Password + "@tcp(" + m.Host + ":" + strconv.Itoa(m.Port) + ")/" + "?charset=utf8mb4&parseTime=True&loc=Local"
}

type Es struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (e Es) Dsn() string {
	return "http://" + e.Host + ":" + strconv.Itoa(e.Port)
}
