package app

import (
	"strings"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/utils"
)

type Config struct {
	Port        string
	Env         string
	Version     string
	ServiceName string
	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	env := utils.GetEnv("APP_ENV", "development", log)
	version := utils.GetEnv("APP_VERSION", "dev", log)
	serviceName := utils.GetEnv("SERVICE_NAME", "studyforge", log)

	rawOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	var origins []string
	for _, o := range strings.Split(rawOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:        port,
		Env:         env,
		Version:     version,
		ServiceName: serviceName,
		CORSOrigins: origins,
	}
}
