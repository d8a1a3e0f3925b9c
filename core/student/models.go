package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/Bam123-spec/drivofy-v2-sub001/core"
)

// sourceAdminPortal is the only onboarding origin this module supports.
// The remote service uses it to pick the magic-link email flavor.
const sourceAdminPortal = "admin_portal"

type (
	// InviteStudent is the payload an admin submits to onboard a new student.
	InviteStudent struct {
		Email    string `json:"email" validate:"required,email_basic"`
		FullName string `json:"fullName" validate:"required"`
		Phone    string `json:"phone,omitempty"`
	}

	// invitePayload is the validated wire payload POSTed to the onboarding service.
	invitePayload struct {
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone,omitempty"`
		Source   string `json:"source"`
	}

	// Result is the single, terminal outcome of an invite call. All expected
	// failure modes (validation, conflict, timeout, 5xx) come back as a Result
	// with Success=false; Invite never returns an error for those. The admin
	// UI shows Message verbatim, so it never carries secrets, stack traces or
	// raw response bodies.
	Result struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		UserID     string `json:"userId,omitempty"`
		RequestID  string `json:"requestId"`
		StatusCode int    `json:"statusCode,omitempty"`
	}

	// Options are per-call overrides for an invite.
	Options struct {
		// EndpointURL and AdminKey override the values the Service was
		// configured with.
		EndpointURL string
		AdminKey    string
		// RequestID correlates this call's diagnostics with an external
		// system; generated when empty.
		RequestID string
		// OnEvent receives every diagnostic Event for the call, in transition
		// order, before Invite returns. A panicking observer is contained.
		OnEvent func(Event)
	}
)

// Validate normalizes the invite in place (trim, lowercase email, drop empty
// phone) and checks it. No network activity happens before it passes.
func (inv *InviteStudent) Validate() error {
	inv.Email = core.CleanString(inv.Email, true /* lower */)
	inv.FullName = core.CleanString(inv.FullName)
	inv.Phone = core.CleanString(inv.Phone)

	if err := core.Validate.Struct(inv); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			flds := make([]core.FieldError, 0, len(vErrs))
			for _, fe := range vErrs {
				flds = append(flds, core.FieldError{Field: fe.Field(), Error: fe.Translate(core.Translator)})
			}
			return core.NewValidationError(err, flds...)
		}
		return err
	}
	return nil
}

func (inv InviteStudent) payload() invitePayload {
	return invitePayload{
		Email:    inv.Email,
		FullName: inv.FullName,
		Phone:    inv.Phone,
		Source:   sourceAdminPortal,
	}
}
