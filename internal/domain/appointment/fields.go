package appointment

import (
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

// Fields is a caller-supplied field mapping, as decoded from a request body.
type Fields map[string]any

// Changes are the validated column updates for an existing appointment.
// Nil members are left untouched.
type Changes struct {
	Text *string
}

func (c Changes) IsEmpty() bool {
	return c.Text == nil
}

// ApplyTo merges the changes into ap in place.
func (c Changes) ApplyTo(ap *models.Appointment) {
	if c.Text != nil {
		ap.Text = *c.Text
	}
}

// Identity fields never reach the store from caller input.
var immutableFields = map[string]struct{}{
	"id":         {},
	"_id":        {},
	"owner":      {},
	"user":       {},
	"created_at": {},
	"updated_at": {},
}

func IsImmutable(field string) bool {
	_, ok := immutableFields[field]
	return ok
}

func errMissingText() error {
	return httperr.Validation("missing_text_field", "missing text field")
}

func textValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// NewAppointment validates a create payload and builds the record for
// owner. Keys other than text are ignored.
func NewAppointment(owner string, payload Fields) (*models.Appointment, error) {
	raw, ok := payload["text"]
	if !ok {
		return nil, errMissingText()
	}
	text, ok := textValue(raw)
	if !ok {
		return nil, errMissingText()
	}

	return &models.Appointment{
		Text:  text,
		Owner: owner,
	}, nil
}

// BuildChanges turns a patch into Changes. Present fields overwrite,
// absent fields are retained; identity and unknown fields are dropped.
func BuildChanges(patch Fields) (Changes, error) {
	var ch Changes

	for key, raw := range patch {
		if IsImmutable(key) {
			continue
		}
		switch key {
		case "text":
			text, ok := textValue(raw)
			if !ok {
				return Changes{}, errMissingText()
			}
			ch.Text = &text
		}
	}

	return ch, nil
}
