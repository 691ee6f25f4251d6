// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-stamper/internal/config"
	"github.com/MKhiriev/go-config-stamper/internal/document"
	"github.com/MKhiriev/go-config-stamper/internal/environ"
	"github.com/MKhiriev/go-config-stamper/internal/logger"
	"github.com/MKhiriev/go-config-stamper/internal/store"
	"github.com/MKhiriev/go-config-stamper/internal/utils"
	"github.com/MKhiriev/go-config-stamper/models"
)

type stamperService struct {
	fileStore store.FileStore
	args      models.Arguments
	ids       IDGenerator

	indent       int
	argsFallback bool
	pemFiles     bool
	listTargets  map[string]struct{}
	paths        []pathMapping

	logger *logger.Logger
}

// pathMapping binds a dotted document path to the variable that feeds it.
type pathMapping struct {
	path    string
	envName string
}

// NewStamperService constructs a [StamperService].
//
// args are the positional values of the invocation. They are only consulted
// when cfg enables the argument fallback; otherwise they are accepted and
// ignored, and every field takes its value from the environment.
func NewStamperService(fileStore store.FileStore, cfg config.Stamp, args models.Arguments, ids IDGenerator, logger *logger.Logger) StamperService {
	listTargets := make(map[string]struct{}, len(cfg.ListFields))
	for _, t := range cfg.ListFields {
		listTargets[t] = struct{}{}
	}

	paths := make([]pathMapping, 0, len(cfg.Paths))
	for path, envName := range cfg.Paths {
		paths = append(paths, pathMapping{path: path, envName: envName})
	}
	slices.SortFunc(paths, func(a, b pathMapping) int {
		return strings.Compare(a.path, b.path)
	})

	return &stamperService{
		fileStore:    fileStore,
		args:         args,
		ids:          ids,
		indent:       cfg.IndentWidth(),
		argsFallback: cfg.FallbackToArgs(),
		pemFiles:     cfg.ReadPEMFiles(),
		listTargets:  listTargets,
		paths:        paths,
		logger:       logger,
	}
}

// Stamp implements [StamperService].
func (s *stamperService) Stamp(ctx context.Context, filePath string, env environ.Bindings) error {
	runID := s.ids.Generate()
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID).Str("file", filePath)
	})
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	data, err := s.fileStore.Read(ctx, filePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err = s.applyFields(ctx, doc, env); err != nil {
		return err
	}
	if err = s.applyPaths(ctx, doc, env); err != nil {
		return err
	}

	out, err := doc.Marshal(s.indent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err = s.fileStore.Write(ctx, filePath, out); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.Debug().
		Int("fields", len(models.Fields)).
		Int("paths", len(s.paths)).
		Int("bytes", len(out)).
		Msg("values replaced")
	return nil
}

// applyFields sets every fixed field unconditionally; a field without a value
// is removed.
func (s *stamperService) applyFields(ctx context.Context, doc *document.Document, env environ.Bindings) error {
	log := logger.FromContext(ctx)

	for _, field := range models.Fields {
		value := s.resolveField(field, env)
		log.Debug().
			Str("target", field.String()).
			Bool("present", value.Present).
			Str("source", value.Source).
			Msg("field resolved")

		if !value.Present {
			doc.Delete(field.String())
			continue
		}

		converted, err := s.convert(ctx, field.String(), field.IsPEM(), value.Raw)
		if err != nil {
			return err
		}
		if err = doc.Set(field.String(), converted); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrParse, field, err)
		}
	}

	return nil
}

func (s *stamperService) applyPaths(ctx context.Context, doc *document.Document, env environ.Bindings) error {
	log := logger.FromContext(ctx)

	for _, m := range s.paths {
		raw, ok := env.Lookup(m.envName)
		log.Debug().
			Str("target", m.path).
			Str("variable", m.envName).
			Bool("present", ok).
			Msg("path resolved")

		if !ok {
			if err := doc.DeletePath(m.path); err != nil {
				return fmt.Errorf("%w: %w", ErrParse, err)
			}
			continue
		}

		converted, err := s.convert(ctx, m.path, false, raw)
		if err != nil {
			return err
		}
		if err = doc.SetPath(m.path, converted); err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
	}

	return nil
}

// resolveField returns the environment value of field. The positional
// argument is used only when the fallback is enabled and the variable is
// unset.
func (s *stamperService) resolveField(field models.FieldName, env environ.Bindings) models.Value {
	if raw, ok := env.Lookup(field.String()); ok {
		return models.Value{Raw: raw, Present: true, Source: models.SourceEnv}
	}

	if s.argsFallback {
		if raw, ok := s.args.Lookup(field); ok {
			return models.Value{Raw: raw, Present: true, Source: models.SourceArgs}
		}
	}

	return models.Value{}
}

// convert turns a raw value into what is written for target: the body of a
// PEM file, a list of strings, or the raw string itself.
func (s *stamperService) convert(ctx context.Context, target string, pem bool, raw string) (any, error) {
	if pem && s.pemFiles {
		data, err := s.fileStore.Read(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: key file for %s: %w", ErrRead, target, err)
		}

		body, err := utils.PEMBody(data)
		if err != nil {
			return nil, fmt.Errorf("%w: key file for %s: %w", ErrRead, target, err)
		}
		raw = body
	}

	if _, ok := s.listTargets[target]; ok {
		return utils.SplitList(raw), nil
	}

	return raw, nil
}
