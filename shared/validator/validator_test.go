package validator_test

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"stayadmin/shared/failure"
	"stayadmin/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type paymentKind string

func (p paymentKind) Validate() error {
	if p == "full" || p == "deposit" {
		return nil
	}

	return errors.New("unknown payment kind")
}

type discountRequest struct {
	Amount int64        `json:"amount"       validate:"gte=0"`
	Reason string       `json:"reason"       validate:"required,notblank"`
	Kind   *paymentKind `json:"payment_type" validate:"omitempty,domain"`
}

type uploadRequest struct {
	File *multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png,maxfilesize=10"`
}

func kindPtr(p paymentKind) *paymentKind { return &p }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    discountRequest
		message string
	}{
		{
			name: "valid request",
			data: discountRequest{Amount: 2000, Reason: "loyalty adjustment"},
		},
		{
			name: "valid request with payment type",
			data: discountRequest{Amount: 0, Reason: "fix", Kind: kindPtr("deposit")},
		},
		{
			name:    "missing reason",
			data:    discountRequest{Amount: 10},
			message: "reason is required",
		},
		{
			name:    "blank reason",
			data:    discountRequest{Amount: 10, Reason: "   "},
			message: "reason must not be blank",
		},
		{
			name:    "negative amount",
			data:    discountRequest{Amount: -1, Reason: "oops"},
			message: "amount must be greater than or equal to 0",
		},
		{
			name:    "unknown payment type",
			data:    discountRequest{Amount: 1, Reason: "x", Kind: kindPtr("installments")},
			message: "payment_type has an unsupported value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, failure.IsKind(err, failure.KindValidation))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{"valid required string", "test", "required", false},
		{"empty required string", "", "required", true},
		{"valid uuid", "0b5e3c1a-7a1f-4a53-9d44-5b2f6c1c9e10", "uuid", false},
		{"invalid uuid", "BK-1", "uuid", true},
		{"valid oneof", "confirmed", "oneof=confirmed cancelled completed", false},
		{"invalid oneof", "archived", "oneof=confirmed cancelled completed", true},
		{"mimetypes needs a file upload", "data:image/png;base64,iVBORw0KGgo=", "mimetypes=image/jpeg image/png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{"valid JSON", `{"amount":2000,"reason":"loyalty adjustment"}`, false},
		{"invalid payload", `{"amount":-5,"reason":"x"}`, true},
		{"malformed JSON", `{"amount":}`, true},
		{"empty JSON", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data discountRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", contentType)

		return &multipart.FileHeader{Filename: "slip", Header: h, Size: size}
	}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		message string
	}{
		{name: "jpeg within limit", file: header("image/jpeg", 512*1024)},
		{name: "png at limit", file: header("image/png", 10*1024*1024)},
		{name: "pdf rejected", file: header("application/pdf", 1024), message: "File must be one of image/jpeg image/png"},
		{name: "too large", file: header("image/png", 10*1024*1024+1), message: "File must not exceed 10 MB"},
		{name: "missing", file: nil, message: "File is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{File: tt.file})

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
		})
	}
}
