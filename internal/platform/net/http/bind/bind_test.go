package bind

import (
	"testing"

	perr "rolegate/internal/platform/errors"
)

type callbackInput struct {
	Code string `json:"code" validate:"required"`
}

type flowOptions struct {
	ClientID    string `json:"client_id" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"required,url"`
}

func TestValidateSuccess(t *testing.T) {
	if err := Validate(callbackInput{Code: "abc123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequired(t *testing.T) {
	err := Validate(callbackInput{})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestValidateURLFormat(t *testing.T) {
	ok := flowOptions{ClientID: "cid", RedirectURI: "https://gate.example/auth/discord/callback"}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := flowOptions{ClientID: "cid", RedirectURI: "not-a-url"}
	if err := Validate(bad); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestValidationFieldAndMessageUsesJSONNames(t *testing.T) {
	err := Get().Validator.Struct(flowOptions{RedirectURI: "https://gate.example/cb"})
	field, msg := ValidationFieldAndMessage(err)
	if field != "client_id" {
		t.Fatalf("field = %q, want json tag name", field)
	}
	if msg == "" {
		t.Fatalf("expected a translated message")
	}
}
