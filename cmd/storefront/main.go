package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"CommonStore/internal/catalog"
	"CommonStore/internal/identity"
	"CommonStore/internal/market"
	"CommonStore/internal/session"
	"CommonStore/internal/storefront"
	"CommonStore/pkg/kit"
)

func main() {
	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret")

	cfg := catalog.DefaultConfig()
	if v := os.Getenv("CATALOG_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatal("bad CATALOG_SIZE", zap.String("value", v), zap.Error(err))
		}
		cfg.TargetCount = n
	}

	seed := time.Now().UnixNano()
	if v := os.Getenv("CATALOG_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatal("bad CATALOG_SEED", zap.String("value", v), zap.Error(err))
		}
		seed = n
	}

	items, err := catalog.Generate(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal("catalog generation failed", zap.Error(err))
	}
	log.Info("catalog generated", zap.Int("items", len(items)))

	s := &storefront.Server{
		Log:      log,
		Catalog:  catalog.NewStore(items),
		Users:    identity.NewStore(splitList(os.Getenv("ADMIN_USERS"))),
		Market:   market.NewStore(),
		Sessions: session.NewManager(),
		Tokens:   session.NewTokenMaker(jwtSecret),
	}

	reg := prometheus.NewRegistry()
	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: getenv("METRICS_ENABLED", "true") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
