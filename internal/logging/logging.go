package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configura o logger global em JSON. Nível inválido cai para info.
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("level", level).Warn("invalid log level, using info")
		return
	}
	logrus.SetLevel(lvl)
}
