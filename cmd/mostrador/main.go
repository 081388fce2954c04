// El mostrador es el cliente de terminal del inventario: lista los productos
// del backend y permite editar el stock de uno descompuesto en unidades
// cerradas más cantidad abierta, igual que el formulario de la interfaz web.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/application/catalog"
	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/application/editor"
	"github.com/cafeteria-java/inventario/internal/infrastructure/api"
	"github.com/cafeteria-java/inventario/pkg/config"
	"github.com/cafeteria-java/inventario/pkg/logger"
)

// consoleView implementación de editor.View sobre stdout.
type consoleView struct{}

func (consoleView) ShowForm(s *editor.Session) {
	fmt.Printf("\nEditando %q (sesión %s)\n", s.Producto.Nombre, s.ID)
	fmt.Printf("  stock actual: %s %s\n", s.Config.Stock.StringFixed(2), s.Config.UnitLabel)
	fmt.Printf("  unidades cerradas: %d (de %s %s cada una)\n",
		s.Units, s.Config.UnitWeight, s.Config.UnitLabel)
	fmt.Printf("  cantidad abierta:  %s %s\n", s.Open.StringFixed(2), s.Config.UnitLabel)
}

func (consoleView) ShowValidationError(err error) {
	fmt.Printf("  entrada inválida: %v\n", err)
}

func (consoleView) ShowSubmitError(err error) {
	fmt.Printf("  no se pudo guardar (%v); la edición sigue abierta para reintentar\n", err)
}

func (consoleView) ShowStock(p *dto.Producto, stock decimal.Decimal) {
	fmt.Printf("  guardado: %q ahora tiene %s %s\n", p.Nombre, stock.StringFixed(2), p.UnidadMed)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	client := api.NewClient(cfg.Client.BaseURL)
	cat := catalog.New(client)
	ed := editor.New(cat, client, consoleView{})

	ctx := context.Background()
	if err := cat.Load(ctx); err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Client.BaseURL).Msg("cargar catálogo")
	}
	fmt.Printf("Catálogo cargado: %d productos desde %s\n", cat.Len(), cfg.Client.BaseURL)
	fmt.Println("Comandos: listar | editar <producto> | salir")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		linea := strings.TrimSpace(scanner.Text())
		cmd, resto, _ := strings.Cut(linea, " ")

		switch cmd {
		case "", "#":
			continue
		case "salir":
			return
		case "listar":
			listar(cat)
		case "editar":
			editar(ctx, ed, scanner, resto)
		default:
			fmt.Printf("comando desconocido: %q\n", cmd)
		}
	}
}

func listar(cat *catalog.Catalog) {
	for _, p := range cat.Products() {
		fmt.Printf("  [%d] %-25s %10s %-3s (%s)\n",
			p.ID, p.Nombre, p.Stock.StringFixed(2), p.UnidadMed, p.Categoria)
	}
}

func editar(ctx context.Context, ed *editor.Editor, scanner *bufio.Scanner, nombre string) {
	if nombre == "" {
		fmt.Println("uso: editar <producto>")
		return
	}
	if err := ed.Open(nombre); err != nil {
		fmt.Printf("  %v\n", err)
		return
	}

	unidades := preguntar(scanner, "  nuevas unidades cerradas: ")
	abierto := preguntar(scanner, "  nueva cantidad abierta:   ")
	if err := ed.Input(unidades, abierto); err != nil {
		fmt.Printf("  %v\n", err)
		ed.Cancel()
		return
	}

	// Confirm valida antes de tocar la red; si el backend falla la sesión
	// queda abierta, pero en esta interfaz secuencial la descartamos.
	if err := ed.Confirm(ctx); err != nil {
		ed.Cancel()
	}
}

func preguntar(scanner *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
