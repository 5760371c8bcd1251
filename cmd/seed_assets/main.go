// seed_assets genera un archivo YAML con activos de prueba para CATALOG_SEED_PATH
// y valida archivos existentes con las mismas reglas que la importación del servidor.
//
// Uso:
//
//	go run ./cmd/seed_assets --count 200 --seed 7 --out assets.yaml
//	go run ./cmd/seed_assets check assets.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Activos-api/internal/infrastructure/seed"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

var (
	count   int
	seedArg uint64
	out     string
	nowArg  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "seed_assets",
	Short: "Genera un archivo de semilla YAML con activos de prueba",
	Long: `Genera activos deterministas (misma semilla, mismo archivo) con categorías
Computadores, Monitores, Impressoras y Cadeiras, y una orden de mantenimiento
en curso por cada activo en manutenção.`,
	Args: cobra.NoArgs,
	RunE: generate,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Valida un archivo de semilla y muestra cuántos registros se importarían",
	Args:  cobra.ExactArgs(1),
	RunE:  check,
}

func init() {
	rootCmd.Flags().IntVarP(&count, "count", "n", 50, "Cantidad de activos")
	rootCmd.Flags().Uint64VarP(&seedArg, "seed", "s", 1, "Semilla del generador")
	rootCmd.Flags().StringVarP(&out, "out", "o", "assets.yaml", "Archivo de salida")
	rootCmd.Flags().StringVar(&nowArg, "now", "", "Fecha de referencia YYYY-MM-DD (por defecto hoy)")
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Mostrar cada registro descartado")
	rootCmd.AddCommand(checkCmd)
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generate(cmd *cobra.Command, _ []string) error {
	if count < 0 {
		return fmt.Errorf("--count no puede ser negativo")
	}
	now := time.Now()
	if nowArg != "" {
		t, err := time.Parse("2006-01-02", nowArg)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		now = t
	}

	src := seed.NewMockSource(count, seedArg, now)
	ctx := context.Background()
	assets, err := src.LoadAssets(ctx)
	if err != nil {
		return err
	}
	tickets, err := src.LoadMaintenance(ctx)
	if err != nil {
		return err
	}
	if err := seed.WriteFile(out, seed.NewFile(assets, tickets)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d activos, %d órdenes de mantenimiento\n", out, len(assets), len(tickets))
	return nil
}

func check(cmd *cobra.Command, args []string) error {
	src, err := seed.NewFileSource(args[0])
	if err != nil {
		return err
	}

	log := zerolog.Nop()
	if verbose {
		log = logger.New(logger.Config{Env: "development", Level: "warn", Out: cmd.ErrOrStderr()}).Zerolog()
	}
	repo := memory.NewAssetRepository()
	assets := usecase.NewAssetUseCase(repo, memory.NewMovementRepository(), repo, 0, log)
	maintenance := usecase.NewMaintenanceUseCase(memory.NewMaintenanceRepository(), assets, log)

	ctx := context.Background()
	records, err := src.LoadAssets(ctx)
	if err != nil {
		return err
	}
	loaded, dropped, err := assets.Import(ctx, records)
	if err != nil {
		return err
	}
	tickets, err := src.LoadMaintenance(ctx)
	if err != nil {
		return err
	}
	tLoaded, tDropped, err := maintenance.Import(ctx, tickets)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "activos: %d válidos, %d descartados\nmantenimiento: %d válidas, %d descartadas\n",
		loaded, dropped, tLoaded, tDropped)
	return nil
}
