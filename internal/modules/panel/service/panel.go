package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"trainer/internal/modules/panel/domain"
	apperrors "trainer/internal/platform/errors"
)

type Seed struct {
	Name    string
	Buttons int
}

// Panel holds the section layout. Like the countdown engine it is driven from
// a single event loop and does no locking.
type Panel struct {
	layout *domain.Layout
	log    zerolog.Logger
}

// NewPanel builds the initial layout. With no seeds a single empty "Main"
// section is created.
func NewPanel(seeds []Seed, logger zerolog.Logger) (*Panel, error) {
	if len(seeds) == 0 {
		seeds = []Seed{{Name: "Main"}}
	}
	sections := make([]domain.Section, 0, len(seeds))
	for _, seed := range seeds {
		section, err := domain.NewSection(seed.Name, seed.Buttons)
		if err != nil {
			return nil, fmt.Errorf("seed section %q: %w", seed.Name, err)
		}
		sections = append(sections, section)
	}
	layout, err := domain.NewLayout(sections...)
	if err != nil {
		return nil, err
	}
	return &Panel{layout: layout, log: logger.With().Str("component", "panel").Logger()}, nil
}

func (p *Panel) Sections() []domain.Section {
	return p.layout.Sections()
}

// Generate replaces a section's buttons. Invalid counts leave the section untouched.
func (p *Panel) Generate(key, raw string) (domain.Section, error) {
	count, err := domain.ParseCount(raw)
	if err != nil {
		return domain.Section{}, err
	}
	section, err := p.layout.Regenerate(key, count)
	if err != nil {
		return domain.Section{}, err
	}
	p.log.Debug().Str("section", key).Int("buttons", count).Msg("buttons generated")
	return section, nil
}

func (p *Panel) AddSection(name, raw string) (domain.Section, error) {
	count, err := domain.ParseCount(raw)
	if err != nil {
		return domain.Section{}, err
	}
	section, err := domain.NewSection(name, count)
	if err != nil {
		return domain.Section{}, err
	}
	if err := p.layout.Add(section); err != nil {
		return domain.Section{}, err
	}
	p.log.Debug().Str("section", section.Key).Int("buttons", count).Msg("section added")
	return section, nil
}

func (p *Panel) DeleteSection(key string) error {
	if err := p.layout.Delete(key); err != nil {
		return err
	}
	p.log.Debug().Str("section", key).Msg("section deleted")
	return nil
}

// Lookup reports whether a button exists without changing it.
func (p *Panel) Lookup(key string, id int) (domain.CounterButton, error) {
	if id <= 0 {
		return domain.CounterButton{}, fmt.Errorf("%w: button id must be positive", apperrors.ErrInvalidInput)
	}
	return p.layout.Button(key, id)
}

func (p *Panel) Activate(key string, id int) (domain.Command, domain.CounterButton, error) {
	cmd, button, err := p.layout.Activate(key, id)
	if err != nil {
		return domain.CommandNone, domain.CounterButton{}, err
	}
	p.log.Debug().
		Str("section", key).
		Int("button", id).
		Int("value", button.Value).
		Bool("armed", button.Armed).
		Stringer("command", cmd).
		Msg("button activated")
	return cmd, button, nil
}
