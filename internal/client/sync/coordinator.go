// Package sync reconciles the in-memory record store with the remote backend.
// The design is optimistic-local, best-effort-remote: every mutation lands in
// the local store no matter what the network does, and the remote outcome is
// reported as a tagged result instead of an error. Local state is the source
// of truth for the running session; the database is a best-effort mirror.
package sync

import (
	"context"
	stdsync "sync"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/client/gateway"
	"github.com/hms/hms/internal/client/record"
	"github.com/hms/hms/internal/client/store"
)

// Outcome tags where a mutation ended up.
type Outcome int

const (
	// Persisted means the remote accepted the mutation and the local store
	// reflects the server-confirmed state.
	Persisted Outcome = iota
	// LocalOnly means the mutation was applied to the local store only;
	// Reason says why the remote copy is pending.
	LocalOnly
)

func (o Outcome) String() string {
	if o == Persisted {
		return "saved to database"
	}
	return "saved locally, database sync pending"
}

// SaveResult reports one mutation. ID carries the record's final identifier,
// which for an online create is the server-assigned one.
type SaveResult struct {
	Outcome Outcome
	ID      int
	Reason  string
}

// LoadReport summarises a startup bulk load.
type LoadReport struct {
	Connected bool
	Loaded    []string
	Failed    []string
}

// Coordinator owns the availability flag and mediates all store writes.
type Coordinator struct {
	store     *store.Store
	gw        *gateway.Client
	log       zerolog.Logger
	connected bool
}

// New creates a coordinator over the given store and gateway. The coordinator
// starts disconnected; call Connect once at startup.
func New(st *store.Store, gw *gateway.Client, logger zerolog.Logger) *Coordinator {
	return &Coordinator{store: st, gw: gw, log: logger}
}

// Connected reports the last-known availability of the backend. The flag is
// set once by Connect and deliberately never refreshed mid-session: a call
// that fails despite connected=true is folded into a LocalOnly outcome.
func (c *Coordinator) Connected() bool { return c.connected }

// Store exposes the owned record store for reading.
func (c *Coordinator) Store() *store.Store { return c.store }

// Connect probes the backend once. When it answers, every collection is
// fetched concurrently and each successful fetch atomically replaces the
// matching local collection; collections whose fetch failed keep their prior
// contents. When the probe fails the session runs offline on whatever the
// store already holds.
func (c *Coordinator) Connect(ctx context.Context) LoadReport {
	c.connected = c.gw.Probe(ctx)
	if !c.connected {
		c.log.Warn().Msg("server not connected, using local data")
		return LoadReport{}
	}
	c.log.Info().Msg("connected to database server")
	report := LoadReport{Connected: true}

	var mu stdsync.Mutex
	var wg stdsync.WaitGroup
	load := func(entity string, fetch func() bool) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok := fetch()
			mu.Lock()
			if ok {
				report.Loaded = append(report.Loaded, entity)
			} else {
				report.Failed = append(report.Failed, entity)
			}
			mu.Unlock()
		}()
	}

	load(record.EntityPatients, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityPatients, c.store.Patients)
	})
	load(record.EntityPhysicians, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityPhysicians, c.store.Physicians)
	})
	load(record.EntityAppointments, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityAppointments, c.store.Appointments)
	})
	load(record.EntityAdmissions, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityAdmissions, c.store.Admissions)
	})
	load(record.EntityRooms, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityRooms, c.store.Rooms)
	})
	load(record.EntityBilling, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityBilling, c.store.Billing)
	})
	load(record.EntityInsurance, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityInsurance, c.store.Insurance)
	})
	load(record.EntityRecords, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityRecords, c.store.Records)
	})
	load(record.EntityClaims, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityClaims, c.store.Claims)
	})
	load(record.EntityBeds, func() bool {
		return replaceFromRemote(ctx, c.gw, record.EntityBeds, c.store.Beds)
	})

	wg.Wait()
	c.log.Info().Strs("loaded", report.Loaded).Strs("failed", report.Failed).Msg("data loaded from database")
	return report
}

// replaceFromRemote fetches one collection and swaps it in whole. Records
// whose types carry timestamped dates are normalized to plain calendar dates
// before the swap, because comparisons throughout the system assume
// date-only strings.
func replaceFromRemote[T store.Record](ctx context.Context, gw *gateway.Client, entity string, col *store.Collection[T]) bool {
	recs := gateway.List[T](ctx, gw, entity)
	if recs == nil {
		return false
	}
	for i := range recs {
		if n, ok := any(&recs[i]).(interface{ Normalize() }); ok {
			n.Normalize()
		}
	}
	col.Replace(recs)
	return true
}

// mutable is a record that can be projected into a create/update payload.
type mutable interface {
	store.Record
	Payload() map[string]any
}

// save is the shared two-phase mutation: attempt remote persistence when
// connected, then commit to the local store either way.
func save[T mutable](ctx context.Context, c *Coordinator, entity, keyField string, col *store.Collection[T], rec T, isUpdate bool, setID func(*T, int)) SaveResult {
	if !c.connected {
		if !isUpdate && rec.Key() == 0 {
			setID(&rec, col.NextID())
		}
		col.Upsert(rec)
		return SaveResult{Outcome: LocalOnly, ID: rec.Key(), Reason: "server not connected"}
	}

	var res gateway.Result
	if isUpdate {
		res = c.gw.Update(ctx, entity, rec.Key(), rec.Payload())
	} else {
		res = c.gw.Create(ctx, entity, rec.Payload())
	}

	if res.OK() {
		if !isUpdate {
			if id, ok := res.IntField(keyField); ok {
				setID(&rec, id)
			}
		}
		col.Upsert(rec)
		return SaveResult{Outcome: Persisted, ID: rec.Key()}
	}

	// Remote rejected or unreachable: keep the UI consistent with user
	// intent and report the sync as pending.
	if !isUpdate && rec.Key() == 0 {
		setID(&rec, col.NextID())
	}
	col.Upsert(rec)
	return SaveResult{Outcome: LocalOnly, ID: rec.Key(), Reason: res.Err}
}

// remove deletes locally first, then attempts the remote delete. The remote
// outcome only affects the report; the record is never re-inserted.
func remove[T store.Record](ctx context.Context, c *Coordinator, entity string, col *store.Collection[T], id int) SaveResult {
	col.Remove(id)
	if !c.connected {
		return SaveResult{Outcome: LocalOnly, ID: id, Reason: "server not connected"}
	}
	res := c.gw.Delete(ctx, entity, id)
	if !res.OK() {
		return SaveResult{Outcome: LocalOnly, ID: id, Reason: res.Err}
	}
	return SaveResult{Outcome: Persisted, ID: id}
}

func (c *Coordinator) SavePatient(ctx context.Context, p record.Patient, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityPatients, "PatientID", c.store.Patients, p, isUpdate,
		func(p *record.Patient, id int) { p.PatientID = id })
}

func (c *Coordinator) DeletePatient(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityPatients, c.store.Patients, id)
}

func (c *Coordinator) SavePhysician(ctx context.Context, p record.Physician, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityPhysicians, "PhysicianID", c.store.Physicians, p, isUpdate,
		func(p *record.Physician, id int) { p.PhysicianID = id })
}

func (c *Coordinator) DeletePhysician(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityPhysicians, c.store.Physicians, id)
}

func (c *Coordinator) SaveAppointment(ctx context.Context, a record.Appointment, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityAppointments, "AppointmentID", c.store.Appointments, a, isUpdate,
		func(a *record.Appointment, id int) { a.AppointmentID = id })
}

func (c *Coordinator) DeleteAppointment(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityAppointments, c.store.Appointments, id)
}

func (c *Coordinator) SaveAdmission(ctx context.Context, a record.Admission, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityAdmissions, "AdmissionID", c.store.Admissions, a, isUpdate,
		func(a *record.Admission, id int) { a.AdmissionID = id })
}

func (c *Coordinator) DeleteAdmission(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityAdmissions, c.store.Admissions, id)
}

func (c *Coordinator) SaveRoom(ctx context.Context, r record.Room, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityRooms, "RoomID", c.store.Rooms, r, isUpdate,
		func(r *record.Room, id int) { r.RoomID = id })
}

func (c *Coordinator) DeleteRoom(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityRooms, c.store.Rooms, id)
}

func (c *Coordinator) SaveInvoice(ctx context.Context, i record.Invoice, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityBilling, "BillingID", c.store.Billing, i, isUpdate,
		func(i *record.Invoice, id int) { i.BillingID = id })
}

func (c *Coordinator) SaveInsurance(ctx context.Context, i record.Insurance, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityInsurance, "InsuranceID", c.store.Insurance, i, isUpdate,
		func(i *record.Insurance, id int) { i.InsuranceID = id })
}

func (c *Coordinator) SaveRecord(ctx context.Context, r record.PatientRecord, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityRecords, "RecordID", c.store.Records, r, isUpdate,
		func(r *record.PatientRecord, id int) { r.RecordID = id })
}

func (c *Coordinator) DeleteInvoice(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityBilling, c.store.Billing, id)
}

func (c *Coordinator) DeleteInsurance(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityInsurance, c.store.Insurance, id)
}

func (c *Coordinator) DeleteRecord(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityRecords, c.store.Records, id)
}

func (c *Coordinator) SaveClaim(ctx context.Context, cl record.InsuranceClaim, isUpdate bool) SaveResult {
	return save(ctx, c, record.EntityClaims, "InsuranceClaimID", c.store.Claims, cl, isUpdate,
		func(cl *record.InsuranceClaim, id int) { cl.InsuranceClaimID = id })
}

func (c *Coordinator) DeleteClaim(ctx context.Context, id int) SaveResult {
	return remove(ctx, c, record.EntityClaims, c.store.Claims, id)
}
