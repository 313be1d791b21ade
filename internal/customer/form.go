package customer

import (
	"regexp"
	"strings"

	"github.com/fragranceshop/fragrance-admin/internal/api"
)

// Loose two-part check: something@something.something.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FormData is the add/edit draft, held apart from any loaded row so a failed
// save never clobbers the list.
type FormData struct {
	FirstName string
	LastName  string
	Email     string
}

func formFrom(c api.Customer) FormData {
	return FormData{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
}

// Validate is pure. An empty map means the draft may be submitted.
func (f FormData) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Invalid email"
	}
	return errs
}

func (f FormData) input() api.CustomerInput {
	return api.CustomerInput{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email}
}
