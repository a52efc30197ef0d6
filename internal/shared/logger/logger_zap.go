// Package logger содержит общий логгер приложения LoanSync.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования операций пользователя.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// AppLogger представляет обёртку над zap.Logger для логирования событий приложения.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type AppLogger struct {
	*zap.Logger
}

// NewAppLogger создаёт файловый zap-логгер приложения.
//
// Логи записываются в файл <dir>/app.log (по умолчанию runtime/logs/app.log).
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func NewAppLogger(dir string) *AppLogger {
	if dir == "" {
		dir = filepath.Join("runtime", "logs")
	}
	_ = os.MkdirAll(dir, 0755)

	logFile := filepath.Join(dir, "app.log")

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 10,  // сколько старых файлов хранить
		MaxAge:     30,  // дней
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &AppLogger{Logger: logger}
}

// LogOperation записывает структурированный лог об операции пользователя.
//
// op — имя операции (register, login, loan_add и т.д.),
// userID — идентификатор пользователя (пустая строка, если нет сессии),
// err — результат операции (nil при успехе),
// duration — длительность операции в миллисекундах.
func (logger *AppLogger) LogOperation(op, userID string, err error, duration float64) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Float64("duration_ms", duration),
	}
	if err != nil {
		fields = append(fields, zap.String("error", err.Error()))
		logger.Warn("operation failed", fields...)
		return
	}
	logger.Info("operation ok", fields...)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
