package handler

import "time"

type authorRequest struct {
	Name      string    `json:"name"      validate:"required"`
	Bio       string    `json:"bio"`
	Birthdate time.Time `json:"birthdate"`
}

type deleteResponse struct {
	Message string `json:"message"`
}
