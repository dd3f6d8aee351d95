// Command invokerd serves the demo calculator over gRPC.
//
//	invokerd -config invoker.yaml -set server.address=:9000
//	invokerd -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/anoideaopen/invoker/core/config"
	"github.com/anoideaopen/invoker/core/logger"
	"github.com/anoideaopen/invoker/core/routing"
	invokergrpc "github.com/anoideaopen/invoker/core/routing/grpc"
	"github.com/anoideaopen/invoker/core/telemetry"
	"github.com/anoideaopen/invoker/core/types"
	"github.com/anoideaopen/invoker/version"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type overrides []string

func (o *overrides) String() string { return strings.Join(*o, ",") }

func (o *overrides) Set(v string) error {
	*o = append(*o, v)
	return nil
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to the YAML configuration (default $"+config.EnvConfig+")")
		list       = flag.Bool("list", false, "List the served functions and exit")
		set        overrides
	)
	flag.Var(&set, "set", "Override a setting, key=value (repeatable)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		err = printFunctions(cfg)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = run(ctx, cfg)
		stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string, set []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if len(set) > 0 {
		if err = cfg.Override(set...); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func printFunctions(cfg *config.Config) error {
	r, err := newRouter(cfg.Dialect())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, d := range routing.Describe(r, types.Default()) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Function, d.Text, d.Signature)
	}

	return w.Flush()
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	log := logger.Logger()

	log.WithFields(version.Fields()).
		WithField("instance", version.InstanceName()).
		Info("starting invokerd")

	shutdownTracing, err := telemetry.InstallTraceProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("installing trace provider: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.WithError(err).Warn("trace provider shutdown")
		}
	}()

	r, err := newRouter(cfg.Dialect())
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		telemetry.UnaryServerTracing(nil, nil),
		invokergrpc.UnaryServerLogger(),
	))
	invokergrpc.RegisterInvokerServer(server, invokergrpc.NewService(telemetry.NewRouter(r, nil)))

	lis, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Server.Address, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()

	log.WithField("address", lis.Addr().String()).
		WithField("functions", len(r.Methods())).
		Info("serving")

	select {
	case err = <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		server.GracefulStop()
		return nil
	}
}
