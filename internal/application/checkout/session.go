package checkout

import "github.com/lacigarreria/tienda-api/internal/domain"

// Estados del proceso de checkout.
type State string

const (
	StateCollectingAddress State = "collecting-address"
	StateSubmitting        State = "submitting"
	StateSubmitted         State = "submitted"
	StateFailed            State = "failed"
)

// Session modela el avance de un checkout. Las transiciones válidas son:
//
//	collecting-address → submitting → submitted
//	                              └→ failed
//
// failed permite reintentar (vuelve a submitting); submitted es terminal.
type Session struct {
	state State
}

// NewSession inicia una sesión en collecting-address.
func NewSession() *Session {
	return &Session{state: StateCollectingAddress}
}

// State estado actual.
func (s *Session) State() State {
	return s.state
}

// Submit pasa a submitting. Solo válido desde collecting-address o failed.
func (s *Session) Submit() error {
	if s.state != StateCollectingAddress && s.state != StateFailed {
		return domain.ErrConflict
	}
	s.state = StateSubmitting
	return nil
}

// Succeed marca el checkout como submitted. Solo válido desde submitting.
func (s *Session) Succeed() error {
	if s.state != StateSubmitting {
		return domain.ErrConflict
	}
	s.state = StateSubmitted
	return nil
}

// Fail marca el intento como fallido. Solo válido desde submitting.
func (s *Session) Fail() error {
	if s.state != StateSubmitting {
		return domain.ErrConflict
	}
	s.state = StateFailed
	return nil
}
