// File: pkg/logger/echo_logger.go
package logger

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
	"go.uber.org/zap"
)

// NewEchoRequestLogger는 요청당 한 줄의 구조화 로그를 남기는 미들웨어를 생성합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		// 에러는 글로벌 핸들러에 넘겨서 실제 응답 상태 코드를 기록합니다
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogQueryParams:  []string{"page", "limit"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}
			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", v.QueryParams))
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}

			switch {
			case v.Status >= 500:
				logger.Error("Server error", fields...)
			case v.Status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// WithEchoLogger는 Echo의 Logger를 zap으로 교체하고 공통 에러 핸들러를 설정합니다.
// 모든 에러 응답은 {"error": "<message>"} 형태입니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
}

// NewHTTPErrorHandler는 AppError / echo.HTTPError를 JSON 에러 응답으로 변환하는 핸들러를 생성합니다.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		status, message := apperrors.HTTPResponse(err)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
		}
		if status >= http.StatusInternalServerError {
			apperrors.LogError(logger, err, "HTTP error", fields...)
		} else {
			logger.Debug("HTTP client error", append(fields, zap.Error(err))...)
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, map[string]string{"error": message})
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
// 출력 대상/레벨/프리픽스 설정은 zap 쪽에서 관리하므로 무시합니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{Logger: logger, sugar: logger.Sugar()}
}

func (l *EchoZapLogger) Output() io.Writer { return &zapWriter{logger: l.Logger} }
func (l *EchoZapLogger) SetOutput(w io.Writer) {}
func (l *EchoZapLogger) Level() log.Lvl { return log.INFO }
func (l *EchoZapLogger) SetLevel(v log.Lvl) {}
func (l *EchoZapLogger) SetHeader(h string) {}
func (l *EchoZapLogger) Prefix() string { return "" }
func (l *EchoZapLogger) SetPrefix(p string) {}
func (l *EchoZapLogger) Print(i ...interface{}) { l.sugar.Info(i...) }
func (l *EchoZapLogger) Debug(i ...interface{}) { l.sugar.Debug(i...) }
func (l *EchoZapLogger) Info(i ...interface{}) { l.sugar.Info(i...) }
func (l *EchoZapLogger) Warn(i ...interface{}) { l.sugar.Warn(i...) }
func (l *EchoZapLogger) Error(i ...interface{}) { l.sugar.Error(i...) }
func (l *EchoZapLogger) Fatal(i ...interface{}) { l.sugar.Fatal(i...) }
func (l *EchoZapLogger) Panic(i ...interface{}) { l.sugar.Panic(i...) }
func (l *EchoZapLogger) Printj(j log.JSON) { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Debugj(j log.JSON) { l.Logger.Debug("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Infoj(j log.JSON) { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Warnj(j log.JSON) { l.Logger.Warn("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Errorj(j log.JSON) { l.Logger.Error("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Fatalj(j log.JSON) { l.Logger.Fatal("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Panicj(j log.JSON) { l.Logger.Panic("json_message", zap.Any("json", j)) }

func (l *EchoZapLogger) Printf(format string, i ...interface{}) { l.sugar.Infof(format, i...) }
func (l *EchoZapLogger) Debugf(format string, i ...interface{}) { l.sugar.Debugf(format, i...) }
func (l *EchoZapLogger) Infof(format string, i ...interface{}) { l.sugar.Infof(format, i...) }
func (l *EchoZapLogger) Warnf(format string, i ...interface{}) { l.sugar.Warnf(format, i...) }
func (l *EchoZapLogger) Errorf(format string, i ...interface{}) { l.sugar.Errorf(format, i...) }
func (l *EchoZapLogger) Fatalf(format string, i ...interface{}) { l.sugar.Fatalf(format, i...) }
func (l *EchoZapLogger) Panicf(format string, i ...interface{}) { l.sugar.Panicf(format, i...) }

// zapWriter는 io.Writer 인터페이스를 구현한 zap 로거 래퍼입니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}
