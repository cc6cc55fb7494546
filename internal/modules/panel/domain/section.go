package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "trainer/internal/platform/errors"
	"trainer/internal/platform/slug"
)

type Section struct {
	Key     string
	Name    string
	Buttons []CounterButton
}

// NewSection builds a section of count fresh buttons. The key is derived from the name.
func NewSection(name string, count int) (Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Section{}, fmt.Errorf("%w: section name is required", apperrors.ErrInvalidInput)
	}
	if count < 0 || count > MaxButtons {
		return Section{}, fmt.Errorf("%w: button count must be between 0 and %d", apperrors.ErrInvalidInput, MaxButtons)
	}
	s := Section{Key: slug.Make(name), Name: name}
	s.Regenerate(count)
	return s, nil
}

// Regenerate drops every button and creates count fresh ones numbered from 1.
func (s *Section) Regenerate(count int) {
	s.Buttons = make([]CounterButton, 0, count)
	for i := 1; i <= count; i++ {
		s.Buttons = append(s.Buttons, NewButton(i))
	}
}

func (s Section) clone() Section {
	s.Buttons = append([]CounterButton(nil), s.Buttons...)
	return s
}

// ParseCount validates a requested button count. Only whole numbers in
// [1, MaxButtons] are accepted.
func ParseCount(raw string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: please enter a valid number greater than 0", apperrors.ErrInvalidInput)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: please enter a valid number greater than 0", apperrors.ErrInvalidInput)
	}
	if count > MaxButtons {
		return 0, fmt.Errorf("%w: at most %d buttons per section", apperrors.ErrInvalidInput, MaxButtons)
	}
	return count, nil
}

// Layout is the ordered set of sections. It never becomes empty.
type Layout struct {
	sections []Section
}

func NewLayout(sections ...Section) (*Layout, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: layout needs at least one section", apperrors.ErrInvalidInput)
	}
	l := &Layout{}
	for _, s := range sections {
		if err := l.Add(s); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Layout) Sections() []Section {
	out := make([]Section, 0, len(l.sections))
	for _, s := range l.sections {
		out = append(out, s.clone())
	}
	return out
}

func (l *Layout) Len() int {
	return len(l.sections)
}

func (l *Layout) Section(key string) (Section, error) {
	idx, err := l.index(key)
	if err != nil {
		return Section{}, err
	}
	return l.sections[idx].clone(), nil
}

func (l *Layout) Add(section Section) error {
	if _, err := l.index(section.Key); err == nil {
		return fmt.Errorf("%w: %q", apperrors.ErrDuplicateSection, section.Name)
	}
	l.sections = append(l.sections, section.clone())
	return nil
}

// Delete removes one section. The last remaining section cannot be removed.
func (l *Layout) Delete(key string) error {
	idx, err := l.index(key)
	if err != nil {
		return err
	}
	if len(l.sections) == 1 {
		return apperrors.ErrLastSection
	}
	l.sections = append(l.sections[:idx], l.sections[idx+1:]...)
	return nil
}

func (l *Layout) Regenerate(key string, count int) (Section, error) {
	idx, err := l.index(key)
	if err != nil {
		return Section{}, err
	}
	l.sections[idx].Regenerate(count)
	return l.sections[idx].clone(), nil
}

func (l *Layout) Button(key string, id int) (CounterButton, error) {
	idx, err := l.index(key)
	if err != nil {
		return CounterButton{}, err
	}
	for _, b := range l.sections[idx].Buttons {
		if b.ID == id {
			return b, nil
		}
	}
	return CounterButton{}, fmt.Errorf("%w: button %d in section %q", apperrors.ErrNotFound, id, key)
}

// Activate clicks one button and returns its new state with the resulting command.
func (l *Layout) Activate(key string, id int) (Command, CounterButton, error) {
	idx, err := l.index(key)
	if err != nil {
		return CommandNone, CounterButton{}, err
	}
	buttons := l.sections[idx].Buttons
	for i := range buttons {
		if buttons[i].ID == id {
			cmd := buttons[i].Activate()
			return cmd, buttons[i], nil
		}
	}
	return CommandNone, CounterButton{}, fmt.Errorf("%w: button %d in section %q", apperrors.ErrNotFound, id, key)
}

func (l *Layout) index(key string) (int, error) {
	for i, s := range l.sections {
		if s.Key == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: section %q", apperrors.ErrNotFound, key)
}
