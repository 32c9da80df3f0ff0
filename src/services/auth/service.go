// Package auth handles backoffice logins.
package auth

import (
	"context"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db        *database.Mongo
	jwtSecret string
}

func NewService(db *database.Mongo, jwtSecret string) *Service {
	return &Service{db: db, jwtSecret: jwtSecret}
}

// Login verifies credentials and returns the user plus a signed token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.db.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// CreateUser registers a backoffice user with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, req models.UserCreate) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.db.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.New(apperr.KindInvalidInput, "email already registered")
		}
		return nil, err
	}
	return &user, nil
}
