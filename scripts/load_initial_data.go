// Seeds a database with an organization and its classroom data from a YAML
// file. Intended for local development:
//
//	go run scripts/load_initial_data.go data/seed.yaml
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"classroom-backend/internal/config"
	"classroom-backend/internal/database"
	"classroom-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Organization seedOrganization `yaml:"organization"`
	Departments  []seedDepartment `yaml:"departments"`
	Users        []seedUser       `yaml:"users"`
	Subjects     []seedSubject    `yaml:"subjects"`
	Classes      []seedClass      `yaml:"classes"`
	Enrollments  []seedEnrollment `yaml:"enrollments"`
}

type seedOrganization struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone,omitempty"`
	Address string `yaml:"address,omitempty"`
}

type seedDepartment struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type seedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type seedSubject struct {
	DepartmentCode string `yaml:"department_code"`
	Code           string `yaml:"code"`
	Name           string `yaml:"name"`
	Description    string `yaml:"description,omitempty"`
}

type seedClass struct {
	SubjectCode  string `yaml:"subject_code"`
	TeacherEmail string `yaml:"teacher_email"`
	Name         string `yaml:"name"`
	Capacity     int    `yaml:"capacity,omitempty"`
	InviteCode   string `yaml:"invite_code"`
}

type seedEnrollment struct {
	StudentEmail string `yaml:"student_email"`
	ClassName    string `yaml:"class_name"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: load_initial_data <seed-file.yaml>")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, cfg.TrialPeriodDays)
	org := &models.Organization{
		Name:                  seed.Organization.Name,
		Type:                  models.OrganizationType(seed.Organization.Type),
		Email:                 seed.Organization.Email,
		Phone:                 seed.Organization.Phone,
		Address:               seed.Organization.Address,
		SubscriptionStatus:    models.SubscriptionStatusTrial,
		SubscriptionStartDate: &now,
		SubscriptionEndDate:   &trialEnd,
	}
	if err := db.Create(org).Error; err != nil {
		log.Fatalf("failed to create organization: %v", err)
	}

	departments := make(map[string]*models.Department)
	for _, d := range seed.Departments {
		dept := &models.Department{
			OrganizationID: org.ID,
			Code:           d.Code,
			Name:           d.Name,
			Description:    d.Description,
		}
		if err := db.Create(dept).Error; err != nil {
			log.Fatalf("failed to create department %s: %v", d.Code, err)
		}
		departments[d.Code] = dept
	}

	users := make(map[string]*models.User)
	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password for %s: %v", u.Email, err)
		}
		user := &models.User{
			Name:           u.Name,
			Email:          u.Email,
			Role:           models.UserRole(u.Role),
			OrganizationID: org.ID,
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("failed to create user %s: %v", u.Email, err)
		}
		account := &models.Account{
			AccountID:  user.ID.String(),
			ProviderID: models.ProviderCredential,
			UserID:     user.ID,
			Password:   string(hash),
		}
		if err := db.Create(account).Error; err != nil {
			log.Fatalf("failed to create account for %s: %v", u.Email, err)
		}
		users[u.Email] = user
	}

	subjects := make(map[string]*models.Subject)
	for _, s := range seed.Subjects {
		dept, ok := departments[s.DepartmentCode]
		if !ok {
			log.Fatalf("subject %s references unknown department %s", s.Code, s.DepartmentCode)
		}
		subject := &models.Subject{
			DepartmentID:   dept.ID,
			OrganizationID: org.ID,
			Code:           s.Code,
			Name:           s.Name,
			Description:    s.Description,
		}
		if err := db.Create(subject).Error; err != nil {
			log.Fatalf("failed to create subject %s: %v", s.Code, err)
		}
		subjects[s.Code] = subject
	}

	classes := make(map[string]*models.Class)
	for _, c := range seed.Classes {
		subject, ok := subjects[c.SubjectCode]
		if !ok {
			log.Fatalf("class %s references unknown subject %s", c.Name, c.SubjectCode)
		}
		teacher, ok := users[c.TeacherEmail]
		if !ok || teacher.Role != models.UserRoleTeacher {
			log.Fatalf("class %s references unknown teacher %s", c.Name, c.TeacherEmail)
		}
		capacity := c.Capacity
		if capacity == 0 {
			capacity = models.DefaultClassCapacity
		}
		class := &models.Class{
			SubjectID:      subject.ID,
			TeacherID:      teacher.ID,
			OrganizationID: org.ID,
			InviteCode:     c.InviteCode,
			Name:           c.Name,
			Capacity:       capacity,
			Status:         models.ClassStatusActive,
		}
		if err := db.Create(class).Error; err != nil {
			log.Fatalf("failed to create class %s: %v", c.Name, err)
		}
		classes[c.Name] = class
	}

	for _, e := range seed.Enrollments {
		student, ok := users[e.StudentEmail]
		if !ok || student.Role != models.UserRoleStudent {
			log.Fatalf("enrollment references unknown student %s", e.StudentEmail)
		}
		class, ok := classes[e.ClassName]
		if !ok {
			log.Fatalf("enrollment references unknown class %s", e.ClassName)
		}
		enrollment := &models.Enrollment{StudentID: student.ID, ClassID: class.ID}
		if err := db.Create(enrollment).Error; err != nil {
			log.Fatalf("failed to enroll %s in %s: %v", e.StudentEmail, e.ClassName, err)
		}
	}

	fmt.Printf("seeded organization %s: %d departments, %d users, %d subjects, %d classes, %d enrollments\n",
		org.Name, len(departments), len(users), len(subjects), len(classes), len(seed.Enrollments))
}
