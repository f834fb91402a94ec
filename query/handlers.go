package query

import (
	"context"

	"github.com/goliatone/go-entry-facade/core"
)

type FieldBuilder interface {
	BuildField(
		ctx context.Context,
		record core.RecordReader,
		title string,
		kind core.PropertyKind,
		name string,
		options core.FieldOptions,
	) (core.EntryFacadeField, error)
}

type URLReader interface {
	EntryURLs(ctx context.Context, properties core.PropertyList, preference core.URLPreference) []string
	FacadeURLs(ctx context.Context, fields []core.EntryFacadeField, preference core.URLPreference) []string
}

type PropertyNameReader interface {
	IsRecognizedProperty(name string) bool
}

type BuildFieldQuery struct {
	builder FieldBuilder
}

func NewBuildFieldQuery(builder FieldBuilder) *BuildFieldQuery {
	return &BuildFieldQuery{builder: builder}
}

func (q *BuildFieldQuery) Query(ctx context.Context, msg BuildFieldMessage) (core.EntryFacadeField, error) {
	if q == nil || q.builder == nil {
		return core.EntryFacadeField{}, queryDependencyError("query: field builder is required")
	}
	if msg.Record == nil {
		return core.EntryFacadeField{}, queryInvalidInputError("query: record reader is required")
	}
	return q.builder.BuildField(ctx, msg.Record, msg.Title, msg.Kind, msg.Name, msg.Options)
}

type ResolveEntryURLsQuery struct {
	reader URLReader
}

func NewResolveEntryURLsQuery(reader URLReader) *ResolveEntryURLsQuery {
	return &ResolveEntryURLsQuery{reader: reader}
}

func (q *ResolveEntryURLsQuery) Query(ctx context.Context, msg ResolveEntryURLsMessage) ([]string, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: url reader is required")
	}
	return q.reader.EntryURLs(ctx, msg.Properties, msg.Preference), nil
}

type ResolveFacadeURLsQuery struct {
	reader URLReader
}

func NewResolveFacadeURLsQuery(reader URLReader) *ResolveFacadeURLsQuery {
	return &ResolveFacadeURLsQuery{reader: reader}
}

func (q *ResolveFacadeURLsQuery) Query(ctx context.Context, msg ResolveFacadeURLsMessage) ([]string, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: url reader is required")
	}
	return q.reader.FacadeURLs(ctx, msg.Fields, msg.Preference), nil
}

type ValidatePropertyNameQuery struct {
	reader PropertyNameReader
}

func NewValidatePropertyNameQuery(reader PropertyNameReader) *ValidatePropertyNameQuery {
	return &ValidatePropertyNameQuery{reader: reader}
}

func (q *ValidatePropertyNameQuery) Query(ctx context.Context, msg ValidatePropertyNameMessage) (bool, error) {
	if q == nil || q.reader == nil {
		return false, queryDependencyError("query: property name reader is required")
	}
	return q.reader.IsRecognizedProperty(msg.Name), nil
}
