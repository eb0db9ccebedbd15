package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a showroom operator account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	UserType     string             `bson:"user_type" json:"user_type"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// UserTypeAdmin and UserTypeStaff are the recognised account types.
const (
	UserTypeAdmin = "admin"
	UserTypeStaff = "staff"
)

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the user block returned on login, shaped by the client contract.
type UserInfo struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	UserType string `json:"user_type"`
}

// LoginResponse carries the issued token and the logged-in user's identity.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
