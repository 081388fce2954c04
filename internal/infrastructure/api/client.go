// Package api implementa el cliente HTTP del backend de inventario: trae el
// listado de productos y empuja actualizaciones de stock. Usa net/http de la
// stdlib con timeout explícito, igual que los demás clientes salientes del
// proyecto.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/domain"
)

// Client cliente de la API de stock.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout de red de 15 s.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope sobre JSON de la API con los datos aún sin tipar.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	ID      *int64          `json:"id"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// ListProducts trae el listado completo de productos.
func (c *Client) ListProducts(ctx context.Context) ([]*dto.Producto, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/productos", nil)
	if err != nil {
		return nil, err
	}
	var productos []*dto.Producto
	if err := json.Unmarshal(env.Data, &productos); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	return productos, nil
}

// GetProduct obtiene un producto por ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.Producto, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/productos/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var p dto.Producto
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return nil, fmt.Errorf("decodificar producto: %w", err)
	}
	return &p, nil
}

// UpdateStock empuja el nuevo stock total de un producto con
// PATCH /api/productos/:id/stock.
func (c *Client) UpdateStock(ctx context.Context, id int64, stock decimal.Decimal) error {
	body := dto.StockRequest{Stock: &stock}
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/productos/%d/stock", id), body)
	return err
}

// ListCategories trae el listado de categorías.
func (c *Client) ListCategories(ctx context.Context) ([]*dto.Categoria, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/categorias", nil)
	if err != nil {
		return nil, err
	}
	var categorias []*dto.Categoria
	if err := json.Unmarshal(env.Data, &categorias); err != nil {
		return nil, fmt.Errorf("decodificar categorías: %w", err)
	}
	return categorias, nil
}

// do ejecuta la petición y traduce el resultado a la taxonomía de errores
// del dominio: fallo de transporte -> ErrUnavailable, 404 -> ErrNotFound,
// resto de errores del backend -> ErrStore. Quien llama solo distingue la
// identidad del error, nunca detalles internos del backend.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: respuesta ilegible", domain.ErrUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, env.Error)
	case resp.StatusCode >= 400 || !env.Success:
		return nil, fmt.Errorf("%w: %s", domain.ErrStore, env.Error)
	}
	return &env, nil
}
