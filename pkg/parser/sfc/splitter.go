// Package sfc splits single-file components into markup and logic sections.
package sfc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/specvital/i18next-vue/pkg/domain"
)

// Splitter dispatches a component to the splitter for its dialect.
// It is immutable and safe for concurrent use.
type Splitter struct {
	vue2   ComponentParser
	logger zerolog.Logger
}

// NewSplitter creates a splitter. A nil vue2 parser makes every options-style
// component use ExtractNaive.
func NewSplitter(vue2 ComponentParser, logger zerolog.Logger) *Splitter {
	return &Splitter{
		vue2:   vue2,
		logger: logger,
	}
}

// Split returns the section bundle of code for the given dialect.
// It never fails: parser errors degrade to ExtractNaive.
func (s *Splitter) Split(dialect domain.Dialect, code string) domain.SectionBundle {
	switch dialect {
	case domain.DialectVue2:
		return s.splitVue2(code)
	default:
		return s.splitVue3(code)
	}
}

func (s *Splitter) splitVue2(code string) domain.SectionBundle {
	if s.vue2 == nil {
		return ExtractNaive(code)
	}

	bundle, err := s.vue2(code)
	if err != nil {
		s.logger.Debug().Err(err).Msg("component parser failed, using naive extraction")
		return ExtractNaive(code)
	}
	return bundle
}

func (s *Splitter) splitVue3(code string) domain.SectionBundle {
	bundle, err := ParseSFC(context.Background(), code)
	if err != nil {
		s.logger.Debug().Err(err).Msg("sfc parse failed, using naive extraction")
		return ExtractNaive(code)
	}
	return bundle
}
