package page

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

var ErrFieldNotFound = errors.New("field not found")

// Notifier shows an acknowledgement to the user.
type Notifier interface {
	Notify(message string) error
}

type Field struct {
	Name  string
	Label string
	Value string
}

// Backspace removes the final rune of the value.
func (f *Field) Backspace() {
	if f.Value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.Value)
	f.Value = f.Value[:len(f.Value)-size]
}

// Form is a set of named text fields with a fixed acknowledgement message.
type Form struct {
	ID     string
	Ack    string
	Fields []*Field
}

func NewForm(id, ack string, fields ...*Field) *Form {
	return &Form{ID: id, Ack: ack, Fields: fields}
}

func (f *Form) Field(name string) (*Field, error) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, nil
		}
	}
	return nil, fmt.Errorf("%s: %w: %s", f.ID, ErrFieldNotFound, name)
}

func (f *Form) Set(name, value string) error {
	fld, err := f.Field(name)
	if err != nil {
		return err
	}
	fld.Value = value
	return nil
}

func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		out[fld.Name] = fld.Value
	}
	return out
}

// Empty reports whether no field holds a value.
func (f *Form) Empty() bool {
	for _, fld := range f.Fields {
		if fld.Value != "" {
			return false
		}
	}
	return true
}

func (f *Form) Reset() {
	for _, fld := range f.Fields {
		fld.Value = ""
	}
}

// Submitter handles form submission: nothing is sent or stored, the user
// gets the form's acknowledgement and the form is cleared.
type Submitter struct {
	notifier Notifier
	log      *slog.Logger
}

func NewSubmitter(n Notifier, log *slog.Logger) *Submitter {
	if log == nil {
		log = slog.Default()
	}
	return &Submitter{notifier: n, log: log}
}

// Submit acknowledges and resets f. The form is reset even when the
// acknowledgement fails.
func (s *Submitter) Submit(f *Form) error {
	if f == nil {
		return ErrFormNotFound
	}
	err := s.notifier.Notify(f.Ack)
	f.Reset()
	if err != nil {
		s.log.Warn("acknowledgement failed", "form", f.ID, "error", err)
		return fmt.Errorf("acknowledge %s: %w", f.ID, err)
	}
	s.log.Info("form submitted", "form", f.ID)
	return nil
}
