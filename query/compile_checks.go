package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-entry-facade/core"
)

var (
	_ gocmd.Querier[BuildFieldMessage, core.EntryFacadeField] = (*BuildFieldQuery)(nil)
	_ gocmd.Querier[ResolveEntryURLsMessage, []string]        = (*ResolveEntryURLsQuery)(nil)
	_ gocmd.Querier[ResolveFacadeURLsMessage, []string]       = (*ResolveFacadeURLsQuery)(nil)
	_ gocmd.Querier[ValidatePropertyNameMessage, bool]        = (*ValidatePropertyNameQuery)(nil)
)
