package store

import (
	"sort"
	"sync"
	"time"

	"oncall-portal-backend/internal/models"
)

// Store is an in-memory repository for all portal entities. It is volatile by
// design: contents live for the process lifetime and are lost on exit.
//
// Identifiers are assigned per entity kind, sequentially starting at 1, and are
// never reused within a process lifetime even after deletes. A single RWMutex
// makes every operation atomic relative to every other; callers only ever see
// deep copies of stored records, so returned values cannot alias store state.
//
// The store enforces no referential integrity across entity kinds: deleting an
// organization or physician leaves dangling ids in schedules, requests, users
// and assignment rows. Relationship queries tolerate those dangling ids by
// silently skipping them.
type Store struct {
	mu sync.RWMutex

	organizations map[int64]*models.Organization
	physicians    map[int64]*models.Physician
	assignments   map[int64]*models.OrganizationPhysicianAssignment
	schedules     map[int64]*models.Schedule
	requests      map[int64]*models.Request
	users         map[int64]*models.User

	nextOrganizationID int64
	nextPhysicianID    int64
	nextAssignmentID   int64
	nextScheduleID     int64
	nextRequestID      int64
	nextUserID         int64

	nowFn func() time.Time
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		organizations: make(map[int64]*models.Organization),
		physicians:    make(map[int64]*models.Physician),
		assignments:   make(map[int64]*models.OrganizationPhysicianAssignment),
		schedules:     make(map[int64]*models.Schedule),
		requests:      make(map[int64]*models.Request),
		users:         make(map[int64]*models.User),
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}

// SetNowFunc overrides the clock used for created/updated timestamps.
// Intended for tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

func (s *Store) now() time.Time {
	return s.nowFn()
}

func sortedIDs[T any](m map[int64]*T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}

func cloneOrganization(o *models.Organization) *models.Organization {
	cp := *o
	cp.BillingCodes = cloneStrings(o.BillingCodes)
	return &cp
}

func clonePhysician(p *models.Physician) *models.Physician {
	cp := *p
	cp.Credentials = cloneStrings(p.Credentials)
	return &cp
}

func cloneAssignment(a *models.OrganizationPhysicianAssignment) *models.OrganizationPhysicianAssignment {
	cp := *a
	return &cp
}

func cloneSchedule(sc *models.Schedule) *models.Schedule {
	cp := *sc
	return &cp
}

func cloneHistoryEntry(e models.StatusHistoryEntry) models.StatusHistoryEntry {
	cp := e
	if e.Note != nil {
		note := *e.Note
		cp.Note = &note
	}
	if e.UserID != nil {
		uid := *e.UserID
		cp.UserID = &uid
	}
	return cp
}

func cloneRequest(r *models.Request) *models.Request {
	cp := *r
	cp.StatusHistory = make([]models.StatusHistoryEntry, len(r.StatusHistory))
	for i, e := range r.StatusHistory {
		cp.StatusHistory[i] = cloneHistoryEntry(e)
	}
	return &cp
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	if u.OrganizationID != nil {
		id := *u.OrganizationID
		cp.OrganizationID = &id
	}
	if u.PhysicianID != nil {
		id := *u.PhysicianID
		cp.PhysicianID = &id
	}
	return &cp
}
