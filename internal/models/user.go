package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Password     string     `json:"password,omitempty"`
	Role         string     `json:"role"` // homeowner, pro, admin
	AvatarPath   *string    `json:"avatar_path,omitempty"`
	CompanyName  *string    `json:"company_name,omitempty"`
	Trade        *string    `json:"trade,omitempty"`
	ReviewRating float64    `json:"review_rating"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Actor identifies the authenticated caller of a business operation. It is
// built by handlers from the request context and passed explicitly into
// services; the business layer never reads auth state ambiently.
type Actor struct {
	UserID int
	Role   string
}
