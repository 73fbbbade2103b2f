package aqualedger

import (
	"context"
	"errors"
	"slices"
)

// Service is the port to the remote store of record. The HTTP Client
// implements it against the AquaLedger service; tests use an in-memory
// implementation.
type Service interface {
	// List returns the server's current record listing, most recent first.
	List(ctx context.Context) ([]CatchRecord, error)
	// Create persists a new record and returns it with the server-assigned
	// id and date.
	Create(ctx context.Context, fields RecordFields) (CatchRecord, error)
	// Update replaces every editable field of the record with the given id.
	Update(ctx context.Context, id int64, fields RecordFields) error
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}

// EditState tracks the single in-flight record-editing cycle.
type EditState int

const (
	// Idle means no draft is open.
	Idle EditState = iota
	// Drafting means a draft holds edits not yet submitted (or retained
	// after a failed submission, so the user can retry or cancel).
	Drafting
	// Saving means a submission is in flight.
	Saving
)

func (s EditState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drafting:
		return "drafting"
	case Saving:
		return "saving"
	default:
		return "unknown"
	}
}

// Ledger owns the authoritative local mirror of the record collection for
// the lifetime of one authenticated session, and the single in-flight
// edit/delete cycle.
//
// Only one record may be in Drafting/Saving at a time; initiating an edit
// while another is active is a precondition the presentation layer must
// uphold, not a runtime check the engine enforces. Operations on distinct
// records are independent; the server is the final arbiter of persisted
// order. Failures never partially mutate the collection.
type Ledger struct {
	session *Session
	service Service
	notify  NoticeSink

	records []CatchRecord
	state   EditState
	editID  int64 // id under edit; 0 while drafting a creation
	draft   RecordFields
}

// NewLedger builds a controller bound to an explicit session context and a
// remote service. The sink may be nil when no surface displays notices.
func NewLedger(session *Session, service Service, notify NoticeSink) *Ledger {
	return &Ledger{session: session, service: service, notify: notify}
}

// Records returns a snapshot copy of the local mirror. Presentation
// surfaces hold only such read views; all mutation goes through the
// operations below.
func (l *Ledger) Records() []CatchRecord { return slices.Clone(l.records) }

// State returns the current edit-cycle state.
func (l *Ledger) State() EditState { return l.state }

// Draft returns the current draft field values (retained across failed
// submissions).
func (l *Ledger) Draft() RecordFields { return l.draft }

// EditingID returns the id of the record under edit, or 0 for a creation
// draft.
func (l *Ledger) EditingID() int64 { return l.editID }

// BeginEdit opens an edit draft pre-populated from the record with the
// given id.
func (l *Ledger) BeginEdit(id int64) (RecordFields, error) {
	i := l.index(id)
	if i < 0 {
		return RecordFields{}, ErrNotFound
	}
	l.state = Drafting
	l.editID = id
	l.draft = FieldsOf(l.records[i])
	return l.draft, nil
}

// CancelEdit discards the draft and returns to Idle.
func (l *Ledger) CancelEdit() {
	l.state = Idle
	l.editID = 0
	l.draft = RecordFields{}
}

// Refresh replaces the entire local mirror with the server's current
// listing. It never merges: this wholesale replacement is the single
// source-of-truth reconciliation point, used at session start and after
// external events.
func (l *Ledger) Refresh(ctx context.Context) error {
	records, err := l.service.List(ctx)
	if err != nil {
		l.emit(NoticeFailure, failureMsg(err, "Could not load data"))
		return err
	}
	l.records = records
	return nil
}

// Create validates the draft fields and, only if the whole form is valid,
// asks the server to persist a new record. On success the server-returned
// record (with its assigned id and date) is appended to the mirror and the
// draft cleared; on failure the draft values are retained and the mirror is
// untouched.
func (l *Ledger) Create(ctx context.Context, fields RecordFields) (CatchRecord, error) {
	fields = fields.Normalized()
	l.draft = fields
	l.state = Drafting
	l.editID = 0

	if v := Validate(fields); !v.FormOK {
		err := &ValidationError{Validity: v}
		l.emit(NoticeFailure, err.Error())
		return CatchRecord{}, err
	}

	l.state = Saving
	created, err := l.service.Create(ctx, fields)
	if err != nil {
		l.state = Drafting
		l.emit(NoticeFailure, failureMsg(err, "Failed to add catch"))
		return CatchRecord{}, err
	}

	l.records = append(l.records, created)
	l.CancelEdit()
	l.emit(NoticeSuccess, "Catch recorded!")
	return created, nil
}

// Update validates the draft fields and submits a full-record update for
// the given id. On success the single matching record is replaced with the
// submitted field values (an optimistic write-back, trusting the client's
// own fields rather than re-fetching); on failure the mirror is untouched
// and the controller returns to Drafting with the attempted edits retained.
func (l *Ledger) Update(ctx context.Context, id int64, fields RecordFields) error {
	i := l.index(id)
	if i < 0 {
		return ErrNotFound
	}

	fields = fields.Normalized()
	l.draft = fields
	l.editID = id
	l.state = Drafting

	if v := Validate(fields); !v.FormOK {
		err := &ValidationError{Validity: v}
		l.emit(NoticeFailure, err.Error())
		return err
	}

	l.state = Saving
	if err := l.service.Update(ctx, id, fields); err != nil {
		l.state = Drafting
		l.emit(NoticeFailure, failureMsg(err, "Update failed"))
		return err
	}

	updated, err := fields.apply(l.records[i])
	if err != nil {
		// fields passed validation, so parsing cannot fail here
		l.state = Drafting
		return err
	}
	l.records[i] = updated
	l.CancelEdit()
	l.emit(NoticeSuccess, "Catch updated")
	return nil
}

// Delete removes the record with the given id. It is a destructive action:
// without explicit user confirmation no request is issued. On success
// exactly the matching record disappears from the mirror; on failure the
// mirror is untouched and the failure is surfaced without retry.
func (l *Ledger) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	i := l.index(id)
	if i < 0 {
		return ErrNotFound
	}

	if err := l.service.Delete(ctx, id); err != nil {
		l.emit(NoticeFailure, failureMsg(err, "Failed to delete catch"))
		return err
	}

	l.records = slices.Delete(l.records, i, i+1)
	l.emit(NoticeSuccess, "Catch deleted")
	return nil
}

func (l *Ledger) index(id int64) int {
	return slices.IndexFunc(l.records, func(r CatchRecord) bool { return r.ID == id })
}

func (l *Ledger) emit(kind NoticeKind, msg string) {
	if l.notify != nil {
		l.notify(newNotice(kind, msg))
	}
}

// failureMsg picks the user-facing message for a failed request: the
// server's message verbatim when there is one, a generic fallback when the
// transport or decoding failed.
func failureMsg(err error, fallback string) string {
	var req *RequestError
	if errors.As(err, &req) && req.Msg != "" {
		return req.Msg
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return "Network error"
	}
	return fallback
}
