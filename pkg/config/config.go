// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetDuration은 "5s", "1m" 형식의 기간 설정 값을 반환합니다.
func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetAll은 전체 설정을 맵으로 반환합니다.
func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

// 설정 디렉토리 경로
const configDir = "configs"

// Options는 Load 동작을 조정합니다.
type Options struct {
	// Defaults는 설정 파일보다 우선순위가 낮은 기본값입니다.
	Defaults map[string]interface{}
	// Optional이 true이면 설정 파일이 없어도 기본값과 환경 변수만으로 로드합니다.
	Optional bool
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
//
// 탐색 순서: $CONFIG_PATH → configs/{APP_ENV}/ → configs/example/
// 환경 변수는 {SERVICE}_{KEY} 형식으로 덮어씁니다. (예: API_DATABASE_HOST)
func Load(serviceName string, opts Options) (Config, error) {
	v := viper.New()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")

	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	// 환경 변수 바인딩 설정
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !opts.Optional || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
