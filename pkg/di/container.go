// Package di wires the storage backend, the cache service and the ten
// resource engines together. The per-resource declarations here (cache
// namespace, default sort, active-view predicate) are the whole of a
// resource binding; no resource has logic of its own.
package di

import (
	"log/slog"

	"github.com/uptrace/bun"

	"corecms/cache"
	"corecms/lifecycle"
	"corecms/model"
	"corecms/storage"
)

// Engine aliases so callers don't have to spell out both type parameters.
type (
	AdvertiseEngine   = lifecycle.Engine[model.Advertise, *model.Advertise]
	BannerEngine      = lifecycle.Engine[model.Banner, *model.Banner]
	ContactEngine     = lifecycle.Engine[model.Contact, *model.Contact]
	HomeEngine        = lifecycle.Engine[model.Home, *model.Home]
	LoginEngine       = lifecycle.Engine[model.Login, *model.Login]
	NavbarEngine      = lifecycle.Engine[model.Navbar, *model.Navbar]
	RegisterEngine    = lifecycle.Engine[model.Register, *model.Register]
	ServiceEngine     = lifecycle.Engine[model.Service, *model.Service]
	ServicesEngine    = lifecycle.Engine[model.Services, *model.Services]
	TestimonialEngine = lifecycle.Engine[model.Testimonial, *model.Testimonial]
)

// Config collects everything the container needs.
type Config struct {
	Storage storage.Config
	Cache   cache.Config
	Logger  *slog.Logger
}

// Container holds the shared infrastructure and one engine per resource.
type Container struct {
	db   *bun.DB
	svc  cache.Service
	keys cache.KeyBuilder

	advertises   *AdvertiseEngine
	banners      *BannerEngine
	contacts     *ContactEngine
	homes        *HomeEngine
	logins       *LoginEngine
	navbars      *NavbarEngine
	registers    *RegisterEngine
	services     *ServiceEngine
	servicesCat  *ServicesEngine
	testimonials *TestimonialEngine
}

// New opens the database, builds the cache service and constructs the
// resource engines.
func New(cfg Config) (*Container, error) {
	db, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	svc, err := cache.NewService(cfg.Cache)
	if err != nil {
		db.Close()
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	keys := cache.NewKeyBuilder()

	c := &Container{db: db, svc: svc, keys: keys}

	c.advertises = lifecycle.New[model.Advertise](
		storage.NewBunStore[model.Advertise](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("advertisements"))

	c.banners = lifecycle.New[model.Banner](
		storage.NewBunStore[model.Banner](db, storage.WithDefaultSort("display_order", false)), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("banners"))

	c.contacts = lifecycle.New[model.Contact](
		storage.NewBunStore[model.Contact](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("contacts"))

	c.homes = lifecycle.New[model.Home](
		storage.NewBunStore[model.Home](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("homes"))

	c.logins = lifecycle.New[model.Login](
		storage.NewBunStore[model.Login](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("logins"))

	c.navbars = lifecycle.New[model.Navbar](
		storage.NewBunStore[model.Navbar](db, storage.WithDefaultSort("display_order", false)), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("navbars"))

	c.registers = lifecycle.New[model.Register](
		storage.NewBunStore[model.Register](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("registers"))

	c.services = lifecycle.New[model.Service](
		storage.NewBunStore[model.Service](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("services"))

	// The legacy duplicate table gets its own namespace so the two service
	// stacks never cross-evict.
	c.servicesCat = lifecycle.New[model.Services](
		storage.NewBunStore[model.Services](db), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("services_legacy"))

	c.testimonials = lifecycle.New[model.Testimonial](
		storage.NewBunStore[model.Testimonial](db, storage.WithDefaultSort("rating", true)), svc, keys,
		lifecycle.WithLogger(log),
		lifecycle.WithNamespace("testimonials"),
		lifecycle.WithActivePredicates(storage.Eq("is_approved", true)))

	return c, nil
}

// DB exposes the underlying bun handle for schema management.
func (c *Container) DB() *bun.DB { return c.db }

// CacheService exposes the shared cache for advanced use.
func (c *Container) CacheService() cache.Service { return c.svc }

// KeyBuilder exposes the shared key builder.
func (c *Container) KeyBuilder() cache.KeyBuilder { return c.keys }

// Close releases the database pool.
func (c *Container) Close() error { return c.db.Close() }

func (c *Container) Advertises() *AdvertiseEngine     { return c.advertises }
func (c *Container) Banners() *BannerEngine           { return c.banners }
func (c *Container) Contacts() *ContactEngine         { return c.contacts }
func (c *Container) Homes() *HomeEngine               { return c.homes }
func (c *Container) Logins() *LoginEngine             { return c.logins }
func (c *Container) Navbars() *NavbarEngine           { return c.navbars }
func (c *Container) Registers() *RegisterEngine       { return c.registers }
func (c *Container) Services() *ServiceEngine         { return c.services }
func (c *Container) ServicesLegacy() *ServicesEngine  { return c.servicesCat }
func (c *Container) Testimonials() *TestimonialEngine { return c.testimonials }
