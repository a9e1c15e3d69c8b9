package handler

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"time"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// Validation mirrors the shape constraints the storage schema assumes.
// Requests that fail here never reach the services.

var (
	yearPattern = regexp.MustCompile(`^\d{4}$`)
	// Accepts the classic ABC-1234 format and the Mercosul ABC1D23 format.
	platePattern = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)
)

type fieldErrors map[string][]string

func (f fieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f fieldErrors) ok() bool { return len(f) == 0 }

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateName(errs fieldErrors, name string) {
	switch {
	case name == "":
		errs.add("name", "name is required")
	case len(name) < 3:
		errs.add("name", "name must be at least 3 characters")
	case len(name) > 100:
		errs.add("name", "name must be at most 100 characters")
	}
}

func validateEmail(errs fieldErrors, email string) {
	switch {
	case email == "":
		errs.add("email", "email is required")
	case len(email) > 100:
		errs.add("email", "email must be at most 100 characters")
	case !validEmail(email):
		errs.add("email", "email must be valid")
	}
}

func validatePassword(errs fieldErrors, password string) {
	switch {
	case password == "":
		errs.add("password", "password is required")
	case len(password) < 6:
		errs.add("password", "password must be at least 6 characters")
	case len(password) > 50:
		errs.add("password", "password must be at most 50 characters")
	}
}

func (r createUserRequest) validate() fieldErrors {
	errs := fieldErrors{}
	validateName(errs, r.Name)
	validateEmail(errs, r.Email)
	validatePassword(errs, r.Password)
	if r.Role != "" && !model.ValidRole(model.Role(r.Role)) {
		errs.add("role", "role must be admin, customer or salesman")
	}
	return errs
}

func (r updateUserRequest) validate() fieldErrors {
	errs := fieldErrors{}
	validateName(errs, r.Name)
	validateEmail(errs, r.Email)
	if !model.ValidStatus(model.Status(r.Status)) {
		errs.add("status", "status must be active or inactive")
	}
	if !model.ValidRole(model.Role(r.Role)) {
		errs.add("role", "role must be admin, customer or salesman")
	}
	return errs
}

func (r loginRequest) validate() fieldErrors {
	errs := fieldErrors{}
	switch {
	case r.Email == "":
		errs.add("email", "email is required")
	case !validEmail(r.Email):
		errs.add("email", "email must be valid")
	}
	if r.Password == "" {
		errs.add("password", "password is required")
	}
	return errs
}

func (r vehicleRequest) validate() fieldErrors {
	errs := fieldErrors{}

	switch {
	case r.Brand == "":
		errs.add("brand", "brand is required")
	case len(r.Brand) > 100:
		errs.add("brand", "brand must be at most 100 characters")
	}

	switch {
	case r.Model == "":
		errs.add("model", "model is required")
	case len(r.Model) > 100:
		errs.add("model", "model must be at most 100 characters")
	}

	switch {
	case r.Year == "":
		errs.add("year", "year is required")
	case !yearPattern.MatchString(r.Year):
		errs.add("year", "year must be 4 digits")
	default:
		year, _ := strconv.Atoi(r.Year)
		next := time.Now().Year() + 1
		if year < 1900 || year > next {
			errs.add("year", fmt.Sprintf("year must be between 1900 and %d", next))
		}
	}

	switch {
	case r.Color == "":
		errs.add("color", "color is required")
	case len(r.Color) > 50:
		errs.add("color", "color must be at most 50 characters")
	}

	switch {
	case r.LicensePlate == "":
		errs.add("licensePlate", "license plate is required")
	case len(r.LicensePlate) > 20:
		errs.add("licensePlate", "license plate must be at most 20 characters")
	case !platePattern.MatchString(r.LicensePlate):
		errs.add("licensePlate", "license plate must match ABC-1234 or ABC1D23")
	}

	return errs
}
