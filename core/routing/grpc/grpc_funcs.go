package grpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anoideaopen/invoker/core/logger"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// FullNameToURL transforms a method name from "package.Service.Method" to "/package.Service/Method"
func FullNameToURL(fullMethodName string) string {
	parts := strings.Split(fullMethodName, ".")
	if len(parts) < 2 {
		return ""
	}

	var (
		method  = parts[len(parts)-1]
		service = strings.Join(parts[:len(parts)-1], ".")
	)

	return fmt.Sprintf("/%s/%s", service, method)
}

// ServiceAndMethod extracts the service name and method name from a URL.
func ServiceAndMethod(url string) (string, string) {
	service, method, ok := strings.Cut(strings.TrimPrefix(url, "/"), "/")
	if !ok || !strings.HasPrefix(url, "/") || service == "" || method == "" || strings.Contains(method, "/") {
		return "", ""
	}

	return service, method
}

func methodURL(method string) string {
	return FullNameToURL(ServiceName + "." + method)
}

// validate checks req against the rules declared for it in the proto definition.
func validate(req any) error {
	if validator, ok := req.(interface{ ValidateAll() error }); ok {
		if err := validator.ValidateAll(); err != nil {
			return toStatus(fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		}
	}

	return nil
}

// UnaryServerLogger returns an interceptor logging every unary call at debug level, and
// failed calls at warning level.
func UnaryServerLogger() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		service, method := ServiceAndMethod(info.FullMethod)
		entry := logger.Logger().WithFields(logrus.Fields{
			"service":  service,
			"method":   method,
			"code":     status.Code(err).String(),
			"duration": time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("call failed")
		} else {
			entry.Debug("call")
		}

		return resp, err
	}
}
