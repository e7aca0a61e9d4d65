package configs

import (
	"log"

	"medmatch/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_* env on first run.
func SeedAdmin() error {
	username := getEnv("ADMIN_USERNAME", "")
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:   username,
		Email:      email,
		Password:   string(hash),
		Role:       entity.RoleAdmin,
		IsVerified: true,
	}
	return db.Create(&admin).Error
}
