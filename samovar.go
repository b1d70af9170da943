package samovar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/samovar/internal/logging"
	"github.com/aretw0/samovar/pkg/adapters/memory"
	"github.com/aretw0/samovar/pkg/cart"
	"github.com/aretw0/samovar/pkg/catalog"
	"github.com/aretw0/samovar/pkg/controller"
	"github.com/aretw0/samovar/pkg/domain"
	"github.com/aretw0/samovar/pkg/observability"
	"github.com/aretw0/samovar/pkg/order"
	"github.com/aretw0/samovar/pkg/ports"
	"github.com/aretw0/samovar/pkg/session"
)

// Version of the samovar module.
const Version = "0.3.0"

// Flow is the high-level entry point for the Samovar library. It wires the
// catalog, session store, sequencer, and controller behind one facade.
type Flow struct {
	catalog    ports.Catalog
	store      ports.SessionStore
	manager    *session.Manager
	sequencer  *order.Sequencer
	controller *controller.Controller
	carts      *cart.Store
	logger     *slog.Logger
	registry   prometheus.Registerer
}

// Option defines a functional option for configuring the Flow.
type Option func(*Flow)

// WithCatalog injects a pre-built catalog, bypassing the menu file.
func WithCatalog(c ports.Catalog) Option {
	return func(f *Flow) {
		f.catalog = c
	}
}

// WithStore injects a custom session store (default: in-memory).
func WithStore(s ports.SessionStore) Option {
	return func(f *Flow) {
		f.store = s
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Flow) {
		f.logger = logger
	}
}

// WithMetricsRegistry enables Prometheus collection on the given registry.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(f *Flow) {
		f.registry = reg
	}
}

// New initializes a Flow. menuPath points at the YAML menu definition and
// may be empty when WithCatalog is provided.
func New(menuPath string, opts ...Option) (*Flow, error) {
	f := &Flow{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.catalog == nil {
		if menuPath == "" {
			return nil, fmt.Errorf("menuPath is required when no catalog is provided")
		}
		c, err := catalog.Load(menuPath)
		if err != nil {
			return nil, err
		}
		f.catalog = c
	}

	if f.store == nil {
		f.store = memory.NewStore()
	}

	f.manager = session.NewManager(f.store, session.WithLogger(f.logger))
	f.sequencer = order.NewSequencer()
	f.carts = cart.NewStore(f.manager, f.catalog)

	ctrlOpts := []controller.Option{controller.WithLogger(f.logger)}
	if f.registry != nil {
		ctrlOpts = append(ctrlOpts, controller.WithMetrics(observability.NewMetrics(f.registry)))
		observability.RegisterSessionGauge(f.registry, f.sessionCount)
	}
	f.controller = controller.New(f.catalog, f.manager, f.sequencer, ctrlOpts...)

	return f, nil
}

// HandleEvent applies one user event and returns the response descriptor.
func (f *Flow) HandleEvent(ctx context.Context, userID string, ev domain.Event) (domain.Response, error) {
	return f.controller.HandleEvent(ctx, userID, ev)
}

// Catalog returns the menu catalog.
func (f *Flow) Catalog() ports.Catalog {
	return f.catalog
}

// Carts returns the cart store facade.
func (f *Flow) Carts() *cart.Store {
	return f.carts
}

// Sessions returns the session manager.
func (f *Flow) Sessions() *session.Manager {
	return f.manager
}

// Orders returns every order issued in this process, in issuance sequence.
func (f *Flow) Orders() []domain.Order {
	return f.sequencer.Orders()
}

func (f *Flow) sessionCount() int {
	ids, err := f.manager.List(context.Background())
	if err != nil {
		return 0
	}
	return len(ids)
}
