package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/db"
	apperrors "storefront/internal/errors"
	"storefront/internal/logging"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
)

// SeedProduct is one entry of the catalog file.
type SeedProduct struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Price float64 `json:"price"`
	Rate  float64 `json:"rate"`
}

func main() {
	file := flag.String("file", "catalog.json", "path to a JSON array of products")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("open catalog", zap.String("file", *file), zap.Error(err))
	}
	catalog, err := readCatalog(f)
	_ = f.Close()
	if err != nil {
		log.Fatal("read catalog", zap.String("file", *file), zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", len(catalog)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	products, closeStore, err := openProducts(ctx, cfg)
	if err != nil {
		log.Fatal("store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Error("store close", zap.Error(err))
		}
	}()

	// No cache: the server's list cache expires on its own TTL.
	svc := service.NewProductService(products, nil, 0)
	seeded, skipped, err := seedProducts(ctx, log, svc, catalog)
	if err != nil {
		log.Error("seed aborted", zap.Int("seeded", seeded), zap.Error(err))
		return
	}
	log.Info("seed completed", zap.Int("seeded", seeded), zap.Int("skipped", skipped))
}

func readCatalog(r io.Reader) ([]SeedProduct, error) {
	var catalog []SeedProduct
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return catalog, nil
}

func openProducts(ctx context.Context, cfg *config.Config) (repository.ProductRepository, func(context.Context) error, error) {
	if cfg.StoreDriver == config.StoreMySQL {
		mysql, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewProductRepository(mysql.DB), mysql.Close, nil
	}
	mongo, err := db.NewMongo(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewMongoProductRepository(mongo.DB), mongo.Close, nil
}

// seedProducts inserts every valid entry. Invalid entries are logged and
// skipped; a store failure stops the run.
func seedProducts(ctx context.Context, log *zap.Logger, svc service.ProductService, catalog []SeedProduct) (seeded, skipped int, err error) {
	for i, item := range catalog {
		_, addErr := svc.Add(ctx, model.Product{
			Title: item.Title,
			URL:   item.URL,
			Price: item.Price,
			Rate:  item.Rate,
		})
		var verr *apperrors.ValidationError
		switch {
		case errors.As(addErr, &verr):
			log.Warn("skipping product", zap.Int("index", i), zap.String("title", item.Title), zap.String("reason", verr.Error()))
			skipped++
		case addErr != nil:
			return seeded, skipped, fmt.Errorf("product %d: %w", i, addErr)
		default:
			seeded++
		}
	}
	return seeded, skipped, nil
}
