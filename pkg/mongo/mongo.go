package mongo

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultURI is used when no URI is configured.
const DefaultURI = "mongodb://localhost:27017/webhook_db"

// Config configures the MongoDB client.
type Config struct {
	URI       string
	TLSCAFile string // PEM bundle to trust; empty uses the system roots
	Timeout   time.Duration
}

// Connect creates a client and pings the primary.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	uri := cfg.URI
	if uri == "" {
		uri = DefaultURI
	}

	opts := options.Client().ApplyURI(uri)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}
	if cfg.TLSCAFile != "" {
		tlsCfg, err := loadTLSConfig(cfg.TLSCAFile)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return client, nil
}

func loadTLSConfig(caFile string) (*tls.Config, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("mongo: read ca file: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("mongo: no certificates found in %s", caFile)
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}
