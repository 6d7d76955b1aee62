package cmd

import (
	"time"

	"gorm.io/gorm"

	httpin "github.com/hankkuu/delivery-demo/internal/adapters/in/http"
	"github.com/hankkuu/delivery-demo/internal/adapters/out/postgres"
	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/commands"
	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/queries"
	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
)

// CompositionRoot wires adapters into use case handlers. Constructed once at
// startup; everything it hands out is safe for concurrent use.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	tokenProvider *auth.TokenProvider
	hasher        auth.BcryptHasher
}

// NewCompositionRoot builds the object graph. Fails when the JWT signing key
// is missing or too short; that is a configuration error the process must not
// survive.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	ttl := time.Duration(config.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}

	tokenProvider, err := auth.NewTokenProvider(config.JWTSecret, config.JWTIssuer, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenProvider: tokenProvider,
		hasher:        auth.NewBcryptHasher(config.BcryptCost),
	}, nil
}

// TokenProvider exposes the configured token provider for the HTTP layer.
func (c *CompositionRoot) TokenProvider() *auth.TokenProvider {
	return c.tokenProvider
}

// NewHTTPServer assembles the inbound HTTP adapter with all handlers wired.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSignUpMemberCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateChangeDestinationCommandHandler(),
		c.CreateChangeDeliveryStatusCommandHandler(),
		c.CreateAuthenticateMemberQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateListDeliveriesQueryHandler(),
		c.tokenProvider,
		c.tokenProvider,
	)
}

func (c *CompositionRoot) CreateSignUpMemberCommandHandler() commands.SignUpMemberCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpMemberCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.CreateDeliveryUoWFactory = FuncCreateDeliveryUoWFactory(func() commands.CreateDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	return commands.NewChangeDestinationCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateMemberQueryHandler() queries.AuthenticateMemberQueryHandler {
	return queries.NewAuthenticateMemberQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

// FuncMemberUoWFactory adapts a closure to commands.MemberUoWFactory, bridging
// the concrete unit of work factory to the narrower command-layer contract.
type FuncMemberUoWFactory func() commands.MemberUoW

// Create returns a new member unit of work.
func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

// FuncDeliveryUoWFactory adapts a closure to commands.DeliveryUoWFactory.
type FuncDeliveryUoWFactory func() commands.DeliveryUoW

// Create returns a new delivery unit of work.
func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

// FuncCreateDeliveryUoWFactory adapts a closure to commands.CreateDeliveryUoWFactory.
type FuncCreateDeliveryUoWFactory func() commands.CreateDeliveryUoW

// Create returns a unit of work spanning the member and delivery repositories.
func (f FuncCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	return f()
}
