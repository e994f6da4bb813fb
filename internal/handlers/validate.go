package handlers

import (
	"github.com/go-playground/validator/v10"
)

// validate is the package-wide request validator. Handlers run it before any
// store or network access.
var validate = validator.New()

// validationMessage maps the first validation failure to a user-facing
// message; raw validator output never reaches the client.
func validationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "Invalid input data"
	}

	e := ve[0]
	switch e.Field() {
	case "Email":
		return "Please provide a valid email address"
	case "Password":
		if e.Tag() == "min" {
			return "Your password must have at least 8 characters"
		}
		return "Password is required"
	case "Titulo":
		return "Title is required"
	case "NotaUsuario":
		return "Rating must be between 0 and 5"
	case "PosterURL", "BackdropURL":
		return "Image URLs must be valid URLs"
	default:
		return "Invalid input data"
	}
}
