// Package service defines the managed service catalog.
//
// A Service describes one sub-project of the demo: where it lives, which
// Python version it runs on, and what it needs installed. The catalog is an
// ordered list; install and test runs visit services in exactly the declared
// order, and that order also determines summary output order.
package service

import (
	"path/filepath"

	"github.com/ecomdemo/shopctl/internal/config"
	"github.com/ecomdemo/shopctl/internal/errors"
)

// Service is an immutable descriptor for one managed service.
type Service struct {
	Name         string   // identifier, e.g. "payment-gateway"
	Title        string   // display label, e.g. "Payment Gateway Service"
	Directory    string   // path relative to the project root
	Python       string   // pinned Python version
	Requirements []string // package==version constraints
	Port         int      // HTTP port the service listens on
	Runner       string   // test runner identifier (parser selection)
}

// Dir returns the absolute path to the service directory.
func (s Service) Dir(root string) string {
	return filepath.Join(root, s.Directory)
}

// Catalog holds the ordered service list for one project.
type Catalog struct {
	services []Service
	byName   map[string]int
}

// NewCatalog builds a catalog from configuration. When the config declares
// no services, the built-in four-service demo catalog is used.
func NewCatalog(cfg *config.Config) (*Catalog, error) {
	var services []Service

	if len(cfg.Services) == 0 {
		services = DefaultServices()
	} else {
		for _, sc := range cfg.Services {
			services = append(services, Service{
				Name:         sc.Name,
				Title:        sc.Title,
				Directory:    sc.Directory,
				Python:       sc.Python,
				Requirements: sc.Requirements,
				Port:         sc.Port,
				Runner:       sc.Runner,
			})
		}
	}

	byName := make(map[string]int, len(services))
	for i, svc := range services {
		if _, dup := byName[svc.Name]; dup {
			return nil, errors.Configf("duplicate service name %q", svc.Name)
		}
		byName[svc.Name] = i
	}

	return &Catalog{services: services, byName: byName}, nil
}

// All returns the services in declared order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Get returns the service with the given name.
func (c *Catalog) Get(name string) (Service, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// Names returns the service names in declared order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.services))
	for i, svc := range c.services {
		names[i] = svc.Name
	}
	return names
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	return len(c.services)
}
