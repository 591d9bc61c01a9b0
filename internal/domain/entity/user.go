package entity

import "time"

// User représente un membre du personnel habilité à saisir des relevés.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hash bcrypt, jamais le mot de passe en clair après persistance
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
}
