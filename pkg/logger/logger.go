package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения.
var Log *logrus.Logger

// Init создает глобальный логгер. Вызывается один раз из main (и из TestMain).
// Уровень и формат берутся из окружения; Configure может переопределить их
// значениями из конфига.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	Configure(level, os.Getenv("LOG_FORMAT"))
}

// Configure задает уровень и формат вывода.
// format: "json" - для продакшена и сбора логов, всё остальное - цветной текст.
func Configure(level, format string) {
	if Log == nil {
		Log = logrus.New()
		Log.SetOutput(os.Stdout)
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}
