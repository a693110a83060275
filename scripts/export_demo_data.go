package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"gopkg.in/yaml.v3"
)

// Flat structures for the exported fixtures. Kept separate from the API models
// so the files stay stable and never pick up sensitive fields.
type OrganizationData struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	City  string `yaml:"city"`
	State string `yaml:"state"`
	Email string `yaml:"email"`
}

type PhysicianData struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Specialty string `yaml:"specialty"`
}

type ScheduleData struct {
	ID             int64     `yaml:"id"`
	OrganizationID int64     `yaml:"organization_id"`
	PhysicianID    int64     `yaml:"physician_id"`
	StartTime      time.Time `yaml:"start_time"`
	EndTime        time.Time `yaml:"end_time"`
	Title          string    `yaml:"title"`
	IsActive       bool      `yaml:"is_active"`
}

type HistoryData struct {
	Status    string    `yaml:"status"`
	Timestamp time.Time `yaml:"timestamp"`
	Note      *string   `yaml:"note,omitempty"`
	UserID    *int64    `yaml:"user_id,omitempty"`
}

type RequestData struct {
	ID             int64         `yaml:"id"`
	OrganizationID int64         `yaml:"organization_id"`
	PhysicianID    int64         `yaml:"physician_id"`
	PatientName    string        `yaml:"patient_name"`
	Diagnosis      string        `yaml:"diagnosis"`
	Status         string        `yaml:"status"`
	Priority       string        `yaml:"priority"`
	CreatedAt      time.Time     `yaml:"created_at"`
	StatusHistory  []HistoryData `yaml:"status_history"`
}

type UserData struct {
	ID             int64  `yaml:"id"`
	Username       string `yaml:"username"`
	Role           string `yaml:"role"`
	OrganizationID *int64 `yaml:"organization_id,omitempty"`
	PhysicianID    *int64 `yaml:"physician_id,omitempty"`
}

func main() {
	seed := flag.Int64("seed", 1, "demo data seed")
	outDir := flag.String("out", "demo-data", "output directory for fixture files")
	flag.Parse()

	s := store.New()
	store.Seed(s, *seed)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	writeFixture(*outDir, "organizations.yaml", exportOrganizations(s.ListOrganizations()))
	writeFixture(*outDir, "physicians.yaml", exportPhysicians(s.ListPhysicians()))
	writeFixture(*outDir, "schedules.yaml", exportSchedules(s.ListSchedules()))
	writeFixture(*outDir, "requests.yaml", exportRequests(s.ListRequests()))
	writeFixture(*outDir, "users.yaml", exportUsers(s.ListUsers()))

	fmt.Printf("Exported demo fixtures for seed %d to %s\n", *seed, *outDir)
}

func writeFixture(dir, name string, data interface{}) {
	out, err := yaml.Marshal(data)
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}

func exportOrganizations(orgs []models.Organization) []OrganizationData {
	out := make([]OrganizationData, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, OrganizationData{
			ID:    o.ID,
			Name:  o.Name,
			City:  o.City,
			State: o.State,
			Email: o.Email,
		})
	}
	return out
}

func exportPhysicians(docs []models.Physician) []PhysicianData {
	out := make([]PhysicianData, 0, len(docs))
	for _, p := range docs {
		out = append(out, PhysicianData{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Specialty: p.Specialty,
		})
	}
	return out
}

func exportSchedules(schedules []models.Schedule) []ScheduleData {
	out := make([]ScheduleData, 0, len(schedules))
	for _, sc := range schedules {
		out = append(out, ScheduleData{
			ID:             sc.ID,
			OrganizationID: sc.OrganizationID,
			PhysicianID:    sc.PhysicianID,
			StartTime:      sc.StartTime,
			EndTime:        sc.EndTime,
			Title:          sc.Title,
			IsActive:       sc.IsActive,
		})
	}
	return out
}

func exportRequests(requests []models.Request) []RequestData {
	out := make([]RequestData, 0, len(requests))
	for _, r := range requests {
		history := make([]HistoryData, 0, len(r.StatusHistory))
		for _, h := range r.StatusHistory {
			history = append(history, HistoryData{
				Status:    string(h.Status),
				Timestamp: h.Timestamp,
				Note:      h.Note,
				UserID:    h.UserID,
			})
		}
		out = append(out, RequestData{
			ID:             r.ID,
			OrganizationID: r.OrganizationID,
			PhysicianID:    r.PhysicianID,
			PatientName:    r.PatientName,
			Diagnosis:      r.Diagnosis,
			Status:         string(r.Status),
			Priority:       string(r.Priority),
			CreatedAt:      r.CreatedAt,
			StatusHistory:  history,
		})
	}
	return out
}

// exportUsers deliberately leaves passwords out of the fixture files.
func exportUsers(users []models.User) []UserData {
	out := make([]UserData, 0, len(users))
	for _, u := range users {
		out = append(out, UserData{
			ID:             u.ID,
			Username:       u.Username,
			Role:           string(u.Role),
			OrganizationID: u.OrganizationID,
			PhysicianID:    u.PhysicianID,
		})
	}
	return out
}
