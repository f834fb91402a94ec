// Package gocommand bridges the entry-facade query handlers to go-command
// registries and the process-wide dispatcher.
package gocommand

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	entryfacade "github.com/goliatone/go-entry-facade"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

// FacadeQueries is the set of handlers registered by RegisterFacadeQueries,
// shared with the root package so a wired facade can be registered as-is.
type FacadeQueries = entryfacade.Queries

// RegisterFacadeQueries registers every non-nil facade query handler on the
// adapter's registry.
func RegisterFacadeQueries(adapter *RegistryAdapter, queries FacadeQueries) error {
	if adapter == nil || adapter.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	if queries.BuildField != nil {
		if err := adapter.RegisterQuery(queries.BuildField); err != nil {
			return err
		}
	}
	if queries.ResolveEntryURLs != nil {
		if err := adapter.RegisterQuery(queries.ResolveEntryURLs); err != nil {
			return err
		}
	}
	if queries.ResolveFacadeURLs != nil {
		if err := adapter.RegisterQuery(queries.ResolveFacadeURLs); err != nil {
			return err
		}
	}
	if queries.ValidatePropertyName != nil {
		if err := adapter.RegisterQuery(queries.ValidatePropertyName); err != nil {
			return err
		}
	}
	return nil
}

func SubscribeQuery[T any, R any](qry command.Querier[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}

// RegisterAndSubscribeQuery wires a query into both the registry and the
// dispatcher, rolling the subscription back when registration fails.
func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if qry == nil {
		return nil, fmt.Errorf("gocommand: query is required")
	}
	subscription := SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}
