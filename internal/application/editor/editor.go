// Package editor implementa el controlador del formulario de edición de
// stock: una máquina de estados Idle → Editing → Submitting → Idle que
// descompone el stock actual, valida la entrada del usuario y la recompone
// hacia el backend. La presentación queda detrás de la interfaz View, sin
// acoplarse a ninguna tecnología de render.
package editor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/application/catalog"
	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/domain"
	"github.com/cafeteria-java/inventario/internal/domain/quantity"
)

// State estado del controlador.
type State int

const (
	// Idle sin edición en curso.
	Idle State = iota
	// Editing hay una sesión abierta con entrada sin confirmar.
	Editing
	// Submitting hay una actualización de stock en vuelo hacia el backend.
	Submitting
)

// String nombre legible del estado.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StockUpdater es el puerto hacia el cliente de la API de stock.
type StockUpdater interface {
	UpdateStock(ctx context.Context, id int64, stock decimal.Decimal) error
}

// View abstrae la superficie de presentación del formulario.
type View interface {
	// ShowForm muestra el formulario prellenado con la descomposición actual.
	ShowForm(s *Session)
	// ShowValidationError muestra una violación de límites; la sesión sigue abierta.
	ShowValidationError(err error)
	// ShowSubmitError muestra un fallo de red o del backend; la sesión sigue
	// abierta para reintentar sin volver a teclear.
	ShowSubmitError(err error)
	// ShowStock refleja el stock confirmado por el backend.
	ShowStock(producto *dto.Producto, stock decimal.Decimal)
}

// Session es el estado transitorio de una edición. Se descarta al confirmar
// o cancelar.
type Session struct {
	ID       uuid.UUID
	Producto *dto.Producto
	Config   quantity.Config
	Units    int64
	Open     decimal.Decimal
}

// Editor controlador del formulario de edición.
type Editor struct {
	catalogo *catalog.Catalog
	api      StockUpdater
	view     View
	state    State
	session  *Session
	pending  bool
}

// New construye el controlador en estado Idle.
func New(catalogo *catalog.Catalog, api StockUpdater, view View) *Editor {
	return &Editor{catalogo: catalogo, api: api, view: view, state: Idle}
}

// State estado actual del controlador.
func (e *Editor) State() State { return e.state }

// Session sesión de edición abierta, o nil en Idle.
func (e *Editor) Session() *Session { return e.session }

// Open inicia la edición de un producto por nombre: arma su configuración,
// descompone el stock actual y pasa a Editing. Si ya había una edición
// abierta se cancela primero (un disparo fuera de la superficie de edición
// descarta lo no confirmado).
func (e *Editor) Open(nombre string) error {
	if e.state == Submitting {
		return domain.ErrSubmitPending
	}
	if e.state == Editing {
		e.Cancel()
	}

	producto, err := e.catalogo.FindByName(nombre)
	if err != nil {
		return err
	}
	cfg := e.catalogo.ConfigFor(producto)
	units, open, err := quantity.Decompose(cfg.Stock, cfg.UnitWeight)
	if err != nil {
		return fmt.Errorf("descomponer stock de %q: %w", producto.Nombre, err)
	}

	e.session = &Session{
		ID:       uuid.New(),
		Producto: producto,
		Config:   cfg,
		Units:    units,
		Open:     open,
	}
	e.state = Editing
	e.view.ShowForm(e.session)
	return nil
}

// Input registra la entrada del usuario. Ambos campos se parsean de forma
// explícita: una entrada malformada es un error, nunca un cero silencioso.
func (e *Editor) Input(unidades, abierto string) error {
	if e.state != Editing {
		return fmt.Errorf("%w: no hay edición en curso", domain.ErrInvalidInput)
	}
	u, err := quantity.ParseAmount(unidades)
	if err != nil {
		return fmt.Errorf("unidades: %w", err)
	}
	if !u.IsInteger() {
		return fmt.Errorf("unidades: %w: %q no es un entero", quantity.ErrInvalidAmount, unidades)
	}
	a, err := quantity.ParseAmount(abierto)
	if err != nil {
		return fmt.Errorf("cantidad abierta: %w", err)
	}
	e.session.Units = u.IntPart()
	e.session.Open = a
	return nil
}

// Confirm valida la descomposición, la recompone y la envía al backend.
// La validación siempre ocurre antes de cualquier llamada de red. Mientras
// hay un envío en vuelo no se admite un segundo Confirm. Si el envío falla
// la sesión queda en Editing con la entrada intacta para reintentar.
func (e *Editor) Confirm(ctx context.Context) error {
	if e.pending || e.state == Submitting {
		return domain.ErrSubmitPending
	}
	if e.state != Editing {
		return fmt.Errorf("%w: no hay edición en curso", domain.ErrInvalidInput)
	}

	s := e.session
	if err := quantity.Validate(s.Units, s.Open, s.Config); err != nil {
		e.view.ShowValidationError(err)
		return err
	}

	total := quantity.Recompose(s.Units, s.Open, s.Config.UnitWeight)

	e.state = Submitting
	e.pending = true
	err := e.api.UpdateStock(ctx, s.Producto.ID, total)
	e.pending = false
	if err != nil {
		e.state = Editing
		e.view.ShowSubmitError(err)
		return err
	}

	e.catalogo.ApplyStock(s.Producto.ID, total)
	e.view.ShowStock(s.Producto, total)
	e.session = nil
	e.state = Idle
	return nil
}

// Cancel descarta la entrada no confirmada y vuelve a Idle. Cancelar antes
// de confirmar no toca el backend.
func (e *Editor) Cancel() {
	e.session = nil
	e.state = Idle
}
