package core

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

// Service wraps the pure facade-building functions with the resolved
// configuration and observability. It holds no mutable state; every method
// is safe for concurrent use as long as the record collaborator is.
type Service struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorFactory    ErrorFactory
	errorMapper     ErrorMapper
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
	propertyNames   PropertyNameSet
}

type ServiceDependencies struct {
	Logger          Logger
	LoggerProvider  LoggerProvider
	MetricsRecorder MetricsRecorder
	ErrorFactory    ErrorFactory
	ErrorMapper     ErrorMapper
	ConfigProvider  ConfigProvider
	OptionsResolver OptionsResolver
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&builder)
	}

	provider, logger := glog.Resolve("entry-facade", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("entry-facade"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorFactory == nil {
		builder.errorFactory = goerrors.New
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	propertyNames := builder.propertyNames
	if propertyNames == nil {
		propertyNames = finalConfig.Properties.RecognizedNames
	}

	return &Service{
		config:          finalConfig,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorFactory:    builder.errorFactory,
		errorMapper:     builder.errorMapper,
		configProvider:  builder.configProvider,
		optionsResolver: builder.optionsResolver,
		propertyNames:   NewPropertyNameSet(propertyNames),
	}, nil
}

func Setup(cfg Config, options ...Option) (*Service, error) {
	return NewService(cfg, options...)
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Dependencies() ServiceDependencies {
	if s == nil {
		return ServiceDependencies{}
	}
	return ServiceDependencies{
		Logger:          s.logger,
		LoggerProvider:  s.loggerProvider,
		MetricsRecorder: s.metricsRecorder,
		ErrorFactory:    s.errorFactory,
		ErrorMapper:     s.errorMapper,
		ConfigProvider:  s.configProvider,
		OptionsResolver: s.optionsResolver,
	}
}

// BuildField builds one field descriptor, reading the record at call time.
func (s *Service) BuildField(
	ctx context.Context,
	record RecordReader,
	title string,
	kind PropertyKind,
	name string,
	options FieldOptions,
) (EntryFacadeField, error) {
	startedAt := time.Now().UTC()
	field, err := NewFieldDescriptor(record, title, kind, name, options)
	err = s.mapError(err)
	s.observeOperation(ctx, startedAt, "build_field", err, map[string]any{
		"kind":     string(kind),
		"property": name,
	})
	return field, err
}

// EntryURLs resolves URL-shaped properties per preference. An empty
// preference uses the configured default.
func (s *Service) EntryURLs(
	ctx context.Context,
	properties PropertyList,
	preference URLPreference,
) []string {
	startedAt := time.Now().UTC()
	preference = s.normalizePreference(preference)
	urls := EntryURLs(properties, preference)
	s.observeOperation(ctx, startedAt, "resolve_entry_urls", nil, map[string]any{
		"preference": string(preference),
		"candidates": len(properties),
		"resolved":   len(urls),
	})
	return urls
}

// FacadeURLs resolves URLs from an assembled facade's property-kind fields.
func (s *Service) FacadeURLs(
	ctx context.Context,
	fields []EntryFacadeField,
	preference URLPreference,
) []string {
	startedAt := time.Now().UTC()
	preference = s.normalizePreference(preference)
	urls := FacadeURLs(fields, preference)
	s.observeOperation(ctx, startedAt, "resolve_facade_urls", nil, map[string]any{
		"preference": string(preference),
		"fields":     len(fields),
		"resolved":   len(urls),
	})
	return urls
}

// IsRecognizedProperty checks name against the configured closed set.
// Legacy surface, kept for older integrations.
func (s *Service) IsRecognizedProperty(name string) bool {
	if s == nil {
		return false
	}
	return s.propertyNames.Contains(name)
}

func (s *Service) normalizePreference(preference URLPreference) URLPreference {
	if s == nil {
		if preference == "" {
			return URLPreferenceAny
		}
		return preference
	}
	if preference == "" {
		return s.config.DefaultPreference()
	}
	return preference
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}
	if s == nil || s.errorMapper == nil {
		return err
	}
	mapped := s.errorMapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}
