package domain

import (
	"encoding/json"
	"testing"
)

func TestBookRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       BookRequest
		wantPrice float64
		wantErr   string
	}{
		{
			name:      "valid number price",
			req:       BookRequest{Title: "T", Author: "A", Price: Numeric("120"), Category: "fiction"},
			wantPrice: 120,
		},
		{
			name:      "valid decimal price",
			req:       BookRequest{Title: "T", Author: "A", Price: Numeric("99.5"), Category: "fiction"},
			wantPrice: 99.5,
		},
		{
			name:    "missing title",
			req:     BookRequest{Author: "A", Price: Numeric("120"), Category: "fiction"},
			wantErr: "Please fill data in all the fields",
		},
		{
			name:    "missing price",
			req:     BookRequest{Title: "T", Author: "A", Category: "fiction"},
			wantErr: "Please fill data in all the fields",
		},
		{
			name:    "non numeric price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("cheap"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "nan price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("NaN"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "infinite price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("Inf"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "spelled out infinity",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("+Infinity"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "hex float price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("0x1p10"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "exponent price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("1e5"), Category: "fiction"},
			wantErr: "Invalid Price",
		},
		{
			name:    "negative price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("-5"), Category: "fiction"},
			wantErr: "Price must be greater than 0",
		},
		{
			name:    "zero price",
			req:     BookRequest{Title: "T", Author: "A", Price: Numeric("0"), Category: "fiction"},
			wantErr: "Price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := tt.req.Validate()
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Validate() = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if price != tt.wantPrice {
				t.Errorf("price = %v, want %v", price, tt.wantPrice)
			}
		})
	}
}

func TestBookRequestPriceFromJSONString(t *testing.T) {
	// clients send price either as a JSON number or a numeric string
	var req BookRequest
	if err := json.Unmarshal([]byte(`{"title":"T","author":"A","price":"-5","category":"c"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := req.Validate(); err == nil || err.Error() != "Price must be greater than 0" {
		t.Fatalf("Validate() = %v, want price error", err)
	}
}
