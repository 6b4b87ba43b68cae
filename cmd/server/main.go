package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/isstep/logistics-route-optimization/internal/adapters/distance"
	"github.com/isstep/logistics-route-optimization/internal/adapters/repositories"
	"github.com/isstep/logistics-route-optimization/internal/api"
	"github.com/isstep/logistics-route-optimization/internal/config"
	"github.com/isstep/logistics-route-optimization/internal/platform/db"
	"github.com/isstep/logistics-route-optimization/internal/ports"
	"github.com/isstep/logistics-route-optimization/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, OSRM) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/inventory.json")
	fuelPrice := config.GetFloat("FUEL_PRICE", services.DefaultFuelPricePerLiter)

	directory, closeDB, err := openDirectory(dbPath, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	provider, err := newProvider()
	if err != nil {
		log.Fatal(err)
	}

	estimator := services.NewFuelEstimator(services.DefaultFuelRatePer100Km, fuelPrice)
	builder := services.NewRouteBuilder(directory, provider, estimator)
	router := api.NewRouter(directory, builder)

	// Timeouts are tuned for uncached route resolution (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDirectory prefers Postgres when DATABASE_URL is set, otherwise a local
// SQLite file initialized and seeded on startup.
func openDirectory(dbPath, seedPath string) (ports.InventoryDirectory, func() error, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return repositories.NewSQLInventoryDirectory(pg), pg.Close, nil
	}

	sqlite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize schema and seed inventory on startup for local runs.
	if err := repositories.InitSchema(sqlite); err != nil {
		sqlite.Close()
		return nil, nil, fmt.Errorf("init schema: %w", err)
	}
	if err := repositories.SeedFromJSON(sqlite, seedPath); err != nil {
		sqlite.Close()
		return nil, nil, fmt.Errorf("seed inventory: %w", err)
	}

	return repositories.NewSqliteInventoryDirectory(sqlite), sqlite.Close, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqlite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqlite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqlite, nil
}

// newProvider selects the distance resolution strategy. Road distance via
// OSRM is the default; the great-circle estimator is for offline runs only.
func newProvider() (ports.DistanceProvider, error) {
	switch name := config.Get("DISTANCE_PROVIDER", "osrm"); name {
	case "osrm":
		return distance.NewOSRMDistanceProvider(config.Get("OSRM_BASE_URL", distance.DefaultOSRMBaseURL))
	case "greatcircle":
		return distance.NewGreatCircleDistanceProvider(), nil
	default:
		return nil, fmt.Errorf("unknown DISTANCE_PROVIDER %q", name)
	}
}
