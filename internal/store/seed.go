package store

import (
	"fmt"
	"math/rand"
	"time"

	"oncall-portal-backend/internal/models"
)

// Seed populates the store with a synthetic demo dataset: two organizations,
// six physicians on a rotating on-call pattern, roughly ninety days of
// historical consult requests plus two weeks of forward schedule coverage,
// and login users for every physician plus one admin.
//
// The generator is deterministic for a given seed value. Exact values are not
// part of any contract; only the structural shape (counts, date ranges,
// status/priority distribution) is.
func Seed(s *Store, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	now := s.now()

	orgs := seedOrganizations(s)
	physicians := seedPhysicians(s)

	// Four physicians rotate at the hospital, the remaining two cover the
	// clinic alongside the first two. Duplicate coverage pairs are fine.
	hospitalDocs := physicians[:4]
	clinicDocs := append([]models.Physician{}, physicians[0], physicians[1], physicians[4], physicians[5])
	for _, p := range hospitalDocs {
		s.AssignPhysicianToOrganization(orgs[0].ID, p.ID)
	}
	for _, p := range clinicDocs {
		s.AssignPhysicianToOrganization(orgs[1].ID, p.ID)
	}

	seedSchedules(s, now, orgs[0].ID, hospitalDocs)
	seedSchedules(s, now, orgs[1].ID, clinicDocs)

	admin := s.CreateUser(models.User{
		Username:  "admin",
		Password:  "admin123",
		FirstName: "Pat",
		LastName:  "Reilly",
		Email:     "admin@lakeview.example.org",
		Role:      models.UserRoleAdmin,
	})
	for i, p := range physicians {
		orgID := orgs[i%2].ID
		physID := p.ID
		s.CreateUser(models.User{
			Username:       fmt.Sprintf("%s.%s", lower(p.FirstName), lower(p.LastName)),
			Password:       "oncall123",
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Email:          p.Email,
			Role:           models.UserRolePhysician,
			OrganizationID: &orgID,
			PhysicianID:    &physID,
		})
	}

	seedAuthoredRequests(s, now, orgs, physicians, admin.ID)
	seedRandomRequests(s, rng, now, orgs, physicians, admin.ID)
}

func lower(in string) string {
	out := make([]byte, len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func seedOrganizations(s *Store) []models.Organization {
	a := s.CreateOrganization(models.Organization{
		Name:         "Lakeview Regional Medical Center",
		Address:      "2400 Harbor Drive",
		City:         "Lakeview",
		State:        "IL",
		Zip:          "60044",
		Phone:        "847-555-0140",
		Email:        "oncall@lakeview.example.org",
		BillingCodes: []string{"99221", "99222", "99223", "99231"},
	})
	b := s.CreateOrganization(models.Organization{
		Name:         "Prairie Family Health Clinic",
		Address:      "118 West Elm Street",
		City:         "Naperville",
		State:        "IL",
		Zip:          "60540",
		Phone:        "630-555-0199",
		Email:        "coverage@prairiefamily.example.org",
		BillingCodes: []string{"99213", "99214"},
	})
	return []models.Organization{*a, *b}
}

func seedPhysicians(s *Store) []models.Physician {
	seedData := []models.Physician{
		{FirstName: "Elena", LastName: "Vasquez", Specialty: "Cardiology", Phone: "847-555-0101", Email: "evasquez@lakeview.example.org", Credentials: []string{"MD", "FACC"}},
		{FirstName: "Marcus", LastName: "Okafor", Specialty: "Internal Medicine", Phone: "847-555-0102", Email: "mokafor@lakeview.example.org", Credentials: []string{"MD"}},
		{FirstName: "Priya", LastName: "Natarajan", Specialty: "Pulmonology", Phone: "847-555-0103", Email: "pnatarajan@lakeview.example.org", Credentials: []string{"MD", "FCCP"}},
		{FirstName: "James", LastName: "Whitfield", Specialty: "Nephrology", Phone: "847-555-0104", Email: "jwhitfield@lakeview.example.org", Credentials: []string{"DO"}},
		{FirstName: "Hannah", LastName: "Lindqvist", Specialty: "Family Medicine", Phone: "630-555-0105", Email: "hlindqvist@prairiefamily.example.org", Credentials: []string{"MD", "FAAFP"}},
		{FirstName: "Samuel", LastName: "Adeyemi", Specialty: "Family Medicine", Phone: "630-555-0106", Email: "sadeyemi@prairiefamily.example.org", Credentials: []string{"MD"}},
	}
	out := make([]models.Physician, 0, len(seedData))
	for _, p := range seedData {
		out = append(out, *s.CreatePhysician(p))
	}
	return out
}

// seedSchedules lays down weekly on-call blocks over a 90-day trailing plus
// 14-day forward window, rotating through the four covering physicians so the
// pattern repeats every four weeks.
func seedSchedules(s *Store, now time.Time, orgID int64, docs []models.Physician) {
	windowStart := startOfWeek(now.AddDate(0, 0, -90))
	windowEnd := now.AddDate(0, 0, 14)

	week := 0
	for start := windowStart; start.Before(windowEnd); start = start.AddDate(0, 0, 7) {
		doc := docs[week%len(docs)]
		end := start.AddDate(0, 0, 7).Add(-time.Second)
		s.CreateSchedule(models.Schedule{
			OrganizationID: orgID,
			PhysicianID:    doc.ID,
			StartTime:      start,
			EndTime:        end,
			Title:          fmt.Sprintf("Primary on-call: Dr. %s", doc.LastName),
			Description:    "Weekly primary coverage rotation",
			IsActive:       true,
		})
		week++
	}
}

func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 7, 0, 0, 0, time.UTC)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// seedAuthoredRequests covers each terminal status at least once with
// hand-written cases, plus one still-open consult.
func seedAuthoredRequests(s *Store, now time.Time, orgs []models.Organization, docs []models.Physician, adminID int64) {
	note := func(text string) *string { return &text }

	completed := s.seedRequestAt(models.Request{
		OrganizationID: orgs[0].ID,
		PhysicianID:    docs[0].ID,
		PatientName:    "Harold Jensen",
		PatientMRN:     "MRN-004821",
		Diagnosis:      "NSTEMI, troponin trending up",
		Location:       "ED Bay 4",
		Notes:          "Cards consult for admission decision",
		Priority:       models.RequestPriorityEmergency,
	}, now.AddDate(0, 0, -21))
	s.appendHistoryAt(completed.ID, models.RequestStatusAccepted, note("En route"), &adminID, completed.CreatedAt.Add(12*time.Minute))
	s.appendHistoryAt(completed.ID, models.RequestStatusInProgress, nil, &adminID, completed.CreatedAt.Add(40*time.Minute))
	s.appendHistoryAt(completed.ID, models.RequestStatusCompleted, note("Admitted to CCU"), &adminID, completed.CreatedAt.Add(3*time.Hour))

	declined := s.seedRequestAt(models.Request{
		OrganizationID: orgs[0].ID,
		PhysicianID:    docs[3].ID,
		PatientName:    "Rosa Delgado",
		PatientMRN:     "MRN-007733",
		Diagnosis:      "AKI on CKD stage 3",
		Location:       "Med-Surg 212",
		Priority:       models.RequestPriorityUrgent,
	}, now.AddDate(0, 0, -14))
	s.appendHistoryAt(declined.ID, models.RequestStatusDeclined, note("Out of network, refer to covering group"), &adminID, declined.CreatedAt.Add(25*time.Minute))

	cancelled := s.seedRequestAt(models.Request{
		OrganizationID: orgs[1].ID,
		PhysicianID:    docs[4].ID,
		PatientName:    "Theo Brandt",
		PatientMRN:     "MRN-010904",
		Diagnosis:      "Chest pain, atypical",
		Location:       "Clinic Room 2",
		Priority:       models.RequestPriorityNormal,
	}, now.AddDate(0, 0, -7))
	s.appendHistoryAt(cancelled.ID, models.RequestStatusAccepted, nil, nil, cancelled.CreatedAt.Add(30*time.Minute))
	s.appendHistoryAt(cancelled.ID, models.RequestStatusCancelled, note("Patient left before evaluation"), &adminID, cancelled.CreatedAt.Add(2*time.Hour))

	inProgress := s.seedRequestAt(models.Request{
		OrganizationID: orgs[0].ID,
		PhysicianID:    docs[2].ID,
		PatientName:    "Mabel Osei",
		PatientMRN:     "MRN-011562",
		Diagnosis:      "COPD exacerbation, hypoxic",
		Location:       "ICU 3",
		Notes:          "Vent settings review requested",
		Priority:       models.RequestPriorityUrgent,
	}, now.Add(-5*time.Hour))
	s.appendHistoryAt(inProgress.ID, models.RequestStatusAccepted, nil, &adminID, inProgress.CreatedAt.Add(9*time.Minute))
	s.appendHistoryAt(inProgress.ID, models.RequestStatusInProgress, note("At bedside"), &adminID, inProgress.CreatedAt.Add(35*time.Minute))
}

var seedPatients = []struct {
	name      string
	diagnosis string
	location  string
}{
	{"Walter Griggs", "Atrial fibrillation with RVR", "ED Bay 1"},
	{"Imani Clarke", "Community-acquired pneumonia", "Med-Surg 305"},
	{"Dmitri Volkov", "Hyperkalemia", "ED Bay 7"},
	{"Sofia Marchetti", "Syncope workup", "Telemetry 410"},
	{"Ezra Whitman", "Diabetic ketoacidosis", "ICU 1"},
	{"Lucille Tran", "GI bleed, stable", "Med-Surg 318"},
	{"Omar Haddad", "Pleural effusion", "ED Bay 3"},
	{"Greta Nilsson", "Acute decompensated heart failure", "CCU 2"},
	{"Reuben Ortega", "Sepsis, pulmonary source", "ICU 5"},
	{"Adaeze Nwosu", "Hypertensive urgency", "Clinic Room 4"},
}

// Weighted status/priority tables roughly matching the production shape:
// most consults complete, a steady trickle stays open or gets declined.
func pickStatus(rng *rand.Rand) models.RequestStatus {
	switch roll := rng.Intn(100); {
	case roll < 15:
		return models.RequestStatusPending
	case roll < 25:
		return models.RequestStatusAccepted
	case roll < 30:
		return models.RequestStatusInProgress
	case roll < 85:
		return models.RequestStatusCompleted
	case roll < 95:
		return models.RequestStatusDeclined
	default:
		return models.RequestStatusCancelled
	}
}

func pickPriority(rng *rand.Rand) models.RequestPriority {
	switch roll := rng.Intn(100); {
	case roll < 60:
		return models.RequestPriorityNormal
	case roll < 90:
		return models.RequestPriorityUrgent
	default:
		return models.RequestPriorityEmergency
	}
}

// statusChain returns the intermediate statuses leading to the final one.
// The first pending step is the seeded creation entry and not included.
func statusChain(final models.RequestStatus) []models.RequestStatus {
	switch final {
	case models.RequestStatusAccepted:
		return []models.RequestStatus{models.RequestStatusAccepted}
	case models.RequestStatusInProgress:
		return []models.RequestStatus{models.RequestStatusAccepted, models.RequestStatusInProgress}
	case models.RequestStatusCompleted:
		return []models.RequestStatus{models.RequestStatusAccepted, models.RequestStatusInProgress, models.RequestStatusCompleted}
	case models.RequestStatusDeclined:
		return []models.RequestStatus{models.RequestStatusDeclined}
	case models.RequestStatusCancelled:
		return []models.RequestStatus{models.RequestStatusAccepted, models.RequestStatusCancelled}
	default:
		return nil
	}
}

func seedRandomRequests(s *Store, rng *rand.Rand, now time.Time, orgs []models.Organization, docs []models.Physician, adminID int64) {
	closingNotes := []string{
		"Seen and staffed", "Recommendations in chart", "Signed off",
		"Transferred to covering service", "Follow-up arranged",
	}

	for day := 90; day >= 1; day-- {
		for n := rng.Intn(3) + 1; n > 0; n-- {
			org := orgs[rng.Intn(len(orgs))]
			doc := docs[rng.Intn(len(docs))]
			patient := seedPatients[rng.Intn(len(seedPatients))]
			createdAt := now.AddDate(0, 0, -day).
				Add(time.Duration(rng.Intn(24*60)) * time.Minute)

			r := s.seedRequestAt(models.Request{
				OrganizationID: org.ID,
				PhysicianID:    doc.ID,
				PatientName:    patient.name,
				PatientMRN:     fmt.Sprintf("MRN-%06d", rng.Intn(900000)+100000),
				Diagnosis:      patient.diagnosis,
				Location:       patient.location,
				Priority:       pickPriority(rng),
			}, createdAt)

			at := createdAt
			for _, step := range statusChain(pickStatus(rng)) {
				at = at.Add(time.Duration(rng.Intn(120)+5) * time.Minute)
				var note *string
				var userID *int64
				if step.IsTerminal() {
					note = &closingNotes[rng.Intn(len(closingNotes))]
					userID = &adminID
				}
				s.appendHistoryAt(r.ID, step, note, userID, at)
			}
		}
	}
}

// seedRequestAt inserts a request as if it had been created at the given
// time. Only the seeder uses this; the public create path always stamps now.
func (s *Store) seedRequestAt(input models.Request, createdAt time.Time) *models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRequestID++
	r := cloneRequest(&input)
	r.ID = s.nextRequestID
	if r.Status == "" {
		r.Status = models.RequestStatusPending
	}
	r.CreatedAt = createdAt
	r.UpdatedAt = createdAt
	r.StatusHistory = []models.StatusHistoryEntry{
		{Status: r.Status, Timestamp: createdAt},
	}
	s.requests[r.ID] = r
	return cloneRequest(r)
}

// appendHistoryAt is the seeder's backdated counterpart of UpdateRequestStatus.
func (s *Store) appendHistoryAt(id int64, status models.RequestStatus, note *string, userID *int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return
	}
	entry := models.StatusHistoryEntry{Status: status, Timestamp: at, Note: note, UserID: userID}
	r.StatusHistory = append(r.StatusHistory, cloneHistoryEntry(entry))
	r.Status = status
	r.UpdatedAt = at
}
