package dto

import (
	"strings"

	"freight-service/internal/model"
	"freight-service/internal/validation"
)

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

func (r *SigninRequest) Validate() error {
	password := r.Password
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	err := validate(r)
	r.Password = password
	return err
}

type UserRequest struct {
	ID       string `json:"id" validate:"required,uuidv4"`
	Name     string `json:"name" validate:"required,personname,min=3,max=25"`
	Lastname string `json:"lastname" validate:"required,personname,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,strongpassword"`
	RoleID   string `json:"roleId" validate:"required,uuidv4"`
}

func (r *UserRequest) Validate() error {
	password := r.Password
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	validation.TrimStrings(r)
	r.Password = password
	return validation.Struct(r)
}

// ToModel leaves the password empty; the caller stores the hash.
func (r *UserRequest) ToModel() model.User {
	return model.User{
		ID:       parseUUID(r.ID),
		Name:     r.Name,
		Lastname: r.Lastname,
		Email:    r.Email,
		RoleID:   parseUUID(r.RoleID),
	}
}

type UserNameRequest struct {
	Name     string `json:"name" validate:"required,personname,min=3,max=25"`
	Lastname string `json:"lastname" validate:"required,personname,min=3,max=50"`
}

func (r *UserNameRequest) Validate() error {
	return validate(r)
}

type UserUpdateRequest struct {
	Name     string `json:"name" validate:"required,personname,min=3,max=25"`
	Lastname string `json:"lastname" validate:"required,personname,min=3,max=50"`
	RoleID   string `json:"roleId" validate:"required,uuidv4"`
}

func (r *UserUpdateRequest) Validate() error {
	return validate(r)
}

func (r *UserUpdateRequest) ApplyTo(u *model.User) {
	u.Name = r.Name
	u.Lastname = r.Lastname
	u.RoleID = parseUUID(r.RoleID)
}

type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strongpassword"`
}

// Passwords are not trimmed.
func (r *PasswordChangeRequest) Validate() error {
	return validation.Struct(r)
}

type PasswordResetRequest struct {
	NewPassword string `json:"newPassword" validate:"required,strongpassword"`
}

func (r *PasswordResetRequest) Validate() error {
	return validation.Struct(r)
}
