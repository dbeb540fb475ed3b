package store

import (
	"log"

	"github.com/nkamau743/driving_school/models"
	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	account  models.Account
	password string
}

// Seed returns the fixed demo directory: two candidates, two instructors and
// one admin, plus the instructors' slot menus. Passwords are hashed here so
// no plaintext credential lives past startup.
func Seed() ([]models.Account, []models.InstructorProfile) {
	seeds := []seedAccount{
		{
			account: models.Account{
				ID:       1,
				FullName: "Kevin Omondi",
				Email:    "kevin.omondi@example.com",
				Phone:    "+254 712 345 001",
				Role:     models.RoleCandidate,
			},
			password: "candidate123",
		},
		{
			account: models.Account{
				ID:       2,
				FullName: "Alice Njeri",
				Email:    "alice.njeri@example.com",
				Phone:    "+254 712 345 002",
				Role:     models.RoleCandidate,
			},
			password: "candidate123",
		},
		{
			account: models.Account{
				ID:       3,
				FullName: "Daniel Mwangi",
				Email:    "daniel.mwangi@roadworthy.co.ke",
				Phone:    "+254 712 345 003",
				Role:     models.RoleInstructor,
			},
			password: "instructor123",
		},
		{
			account: models.Account{
				ID:       4,
				FullName: "Grace Achieng",
				Email:    "grace.achieng@roadworthy.co.ke",
				Phone:    "+254 712 345 004",
				Role:     models.RoleInstructor,
			},
			password: "instructor123",
		},
		{
			account: models.Account{
				ID:       5,
				FullName: "Pauline Karanja",
				Email:    "admin@roadworthy.co.ke",
				Phone:    "+254 712 345 005",
				Role:     models.RoleAdmin,
			},
			password: "admin123",
		},
	}

	accounts := make([]models.Account, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash seed password for %s: %v", s.account.Email, err)
		}
		s.account.PasswordHash = string(hash)
		accounts = append(accounts, s.account)
	}

	profiles := []models.InstructorProfile{
		{
			ID:           3,
			FullName:     "Daniel Mwangi",
			Transmission: "Manual",
			Slots:        []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00"},
		},
		{
			ID:           4,
			FullName:     "Grace Achieng",
			Transmission: "Automatic",
			Slots:        []string{"09:00", "11:00", "13:00", "16:00", "17:00"},
		},
	}

	return accounts, profiles
}
