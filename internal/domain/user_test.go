package domain

import "testing"

func validRegister() RegisterRequest {
	return RegisterRequest{
		Name:     "A",
		Username: "ab1",
		Email:    "a@b.com",
		Phone:    "9876543210",
		Password: "pass1",
	}
}

func TestRegisterValidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr string
	}{
		{"valid", func(r *RegisterRequest) {}, ""},
		{"missing name", func(r *RegisterRequest) { r.Name = "" }, "Missing Credentials"},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, "Missing Credentials"},
		{"short password", func(r *RegisterRequest) { r.Password = "ab" }, "password length should be 3-25"},
		{"long password", func(r *RegisterRequest) { r.Password = string(make([]byte, 26)) }, "password length should be 3-25"},
		{"short username", func(r *RegisterRequest) { r.Username = "ab" }, "username length should be 3-50"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email format invalid"},
		{"bad phone", func(r *RegisterRequest) { r.Phone = "abc" }, "Invalid phone number"},
		{"short phone", func(r *RegisterRequest) { r.Phone = "12345" }, "Invalid phone number"},
		// password is checked before username, username before email
		{"short password and username", func(r *RegisterRequest) {
			r.Password = "ab"
			r.Username = "ab"
		}, "password length should be 3-25"},
		{"short username and bad email", func(r *RegisterRequest) {
			r.Username = "ab"
			r.Email = "nope"
		}, "username length should be 3-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("a@b.com") {
		t.Error("a@b.com should be an email")
	}
	if IsEmail("ab1") {
		t.Error("ab1 should not be an email")
	}
	if IsEmail("a@b") {
		t.Error("a@b should not be an email")
	}
}

func TestRegisterNormalize(t *testing.T) {
	req := RegisterRequest{
		Name:     " A ",
		Username: " ab1 ",
		Email:    " A@B.com ",
		Phone:    " 9876543210 ",
		Password: "pass1",
	}
	req.Normalize()
	if req.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", req.Email, "a@b.com")
	}
	if req.Username != "ab1" {
		t.Errorf("Username = %q, want %q", req.Username, "ab1")
	}
}
