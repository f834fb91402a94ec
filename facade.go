package entryfacade

import (
	"fmt"

	"github.com/goliatone/go-entry-facade/core"
	facadequery "github.com/goliatone/go-entry-facade/query"
)

// FacadeService is the read surface the query handlers are wired over.
// *core.Service satisfies it.
type FacadeService interface {
	facadequery.FieldBuilder
	facadequery.URLReader
	facadequery.PropertyNameReader
}

type Queries struct {
	BuildField           *facadequery.BuildFieldQuery
	ResolveEntryURLs     *facadequery.ResolveEntryURLsQuery
	ResolveFacadeURLs    *facadequery.ResolveFacadeURLsQuery
	ValidatePropertyName *facadequery.ValidatePropertyNameQuery
}

type Facade struct {
	service FacadeService
	queries Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	propertyNameReader facadequery.PropertyNameReader
}

// WithPropertyNameReader swaps the membership check backing the
// ValidatePropertyName query. Legacy surface.
func WithPropertyNameReader(reader facadequery.PropertyNameReader) FacadeOption {
	return func(options *facadeOptions) {
		options.propertyNameReader = reader
	}
}

func NewFacade(service FacadeService, opts ...FacadeOption) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("entryfacade: facade service is required")
	}
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	nameReader := cfg.propertyNameReader
	if nameReader == nil {
		nameReader = service
	}

	facade := &Facade{service: service}
	facade.queries = Queries{
		BuildField:           facadequery.NewBuildFieldQuery(service),
		ResolveEntryURLs:     facadequery.NewResolveEntryURLsQuery(service),
		ResolveFacadeURLs:    facadequery.NewResolveFacadeURLsQuery(service),
		ValidatePropertyName: facadequery.NewValidatePropertyNameQuery(nameReader),
	}
	return facade, nil
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() FacadeService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ FacadeService = (*core.Service)(nil)
