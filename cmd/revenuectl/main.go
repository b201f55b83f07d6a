// revenuectl tareas de operación: migraciones, barrido de vencidos, carga de catálogo y alta de admin.
//
// Uso: revenuectl migrate | sweep | seed --file catalogo.csv | create-admin --username admin --password ...
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/revenue-api/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
