package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/frankonly/hashtree/api"
	pb "github.com/frankonly/hashtree/api/hashtree"
	"github.com/frankonly/hashtree/log"
	"github.com/frankonly/hashtree/service"
	"github.com/frankonly/hashtree/storage"
)

var (
	tls       bool
	certFile  string
	keyFile   string
	dbDir     string
	memory    bool
	port      int
	logLevel  string
	logOutput []string
)

var rootCmd = &cobra.Command{
	Use:          "hashtree-server",
	Short:        "Serve a persistent hash tree over gRPC",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func main() {
	rootCmd.Flags().BoolVar(&tls, "tls", false, "Connection uses TLS if true, else plain TCP")
	rootCmd.Flags().StringVar(&certFile, "cert-file", "x509/server_cert.pem", "The TLS cert file")
	rootCmd.Flags().StringVar(&keyFile, "key-file", "x509/server_key.pem", "The TLS key file")
	rootCmd.Flags().StringVar(&dbDir, "db-dir", "hashtree.db", "The leaf DB directory")
	rootCmd.Flags().BoolVar(&memory, "memory", false, "Keep leaves in memory only")
	rootCmd.Flags().IntVar(&port, "port", 10000, "The server port")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringSliceVar(&logOutput, "log-output", []string{"stdout"}, "Log destinations")

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve() error {
	logger, err := log.New(log.Config{Level: logLevel, Encoding: "json", OutputPaths: logOutput})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var db storage.KvStore
	if memory {
		db = storage.NewMemoryStore()
	} else {
		path, err := filepath.Abs(dbDir)
		if err != nil {
			return err
		}

		db, err = storage.NewLevelDB(path)
		if err != nil {
			return fmt.Errorf("failed to initialize db: %w", err)
		}
		logger.Infow("opened db", "path", path)
	}

	svc, err := service.Open(db, logger)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize hash tree: %w", err)
	}
	defer func() { _ = svc.Close() }()

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(api.UnaryLogger(logger))}
	if tls {
		creds, err := credentials.NewServerTLSFromFile(certFile, keyFile)
		if err != nil {
			return fmt.Errorf("failed to generate credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	grpcServer := grpc.NewServer(opts...)
	pb.RegisterHashTreeServer(grpcServer, api.NewServer(svc))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Infow("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Infow("serving", "port", port, "tls", tls, "leaves", svc.Size())
	return grpcServer.Serve(lis)
}
