package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User Model with Pointers for Nullable Fields.
// A user row serves retailers, sellers and admins; which columns are
// populated depends on the role.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Role           string `json:"role" db:"role"`
	ApprovalStatus string `json:"approval_status" db:"approval_status"`
	Status         string `json:"status" db:"status"`
	Phone          string `json:"phone" db:"phone"`
	PasswordHash   string `json:"-" db:"password_hash"`

	Name  *string `json:"name,omitempty" db:"name"`
	Email *string `json:"email,omitempty" db:"email"`

	// --- Business Profile (Pointers = Clean JSON) ---
	CompanyName  *string  `json:"companyName,omitempty" db:"company_name"`
	OwnerName    *string  `json:"ownerName,omitempty" db:"owner_name"`
	GSTNumber    *string  `json:"gstNumber,omitempty" db:"gst_number"`
	PAN          *string  `json:"pan,omitempty" db:"pan"`
	AddressLine1 *string  `json:"addressLine1,omitempty" db:"address_line1"`
	City         *string  `json:"city,omitempty" db:"city"`
	State        *string  `json:"state,omitempty" db:"state"`
	Pincode      *string  `json:"pincode,omitempty" db:"pincode"`
	Latitude     *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64 `json:"longitude,omitempty" db:"longitude"`

	// --- Uploaded Documents ---
	GSTCertificate *string `json:"gstCertificate,omitempty" db:"gst_certificate"`
	ShopPhoto      *string `json:"shopPhoto,omitempty" db:"shop_photo"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
