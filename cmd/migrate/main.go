// migrate aplica las migraciones SQL embebidas: go run ./cmd/migrate -direction up|down
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Propiedades-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Propiedades-api/pkg/config"
)

func main() {
	direction := flag.String("direction", "up", "dirección de la migración: up o down")
	flag.Parse()

	db := config.LoadDB()
	if err := postgres.Migrate(db.ConnectionString(), *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Printf("migraciones aplicadas (%s)\n", *direction)
}
