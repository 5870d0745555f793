package logger

import (
	"context"

	"github.com/Gunvolt24/donations/pkg/ctxmeta"
	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
// Если в контексте есть request_id — добавляет его в сообщение.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		zl  *zap.Logger
		err error
	)

	if isProd {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	wrap := &ZapLogger{
		base:   zl,
		sugar:  zl.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return wrap.base.Sync() }
	return wrap, cleanup, nil
}

// withMeta — суффикс с request_id из контекста (если есть).
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		return z.sugar.With("request_id", rid)
	}
	return z.sugar
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
