package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewParcelRecord(t *testing.T) {
	record := NewParcelRecord("77:01:0001001:5", 4, 1200.5, -10, "Земли населённых пунктов", "г. Москва")

	if record.PointsCount != 4 {
		t.Errorf("Expected 4 points, got %d", record.PointsCount)
	}
	if record.Area != 1200.5 {
		t.Errorf("Expected area 1200.5, got %f", record.Area)
	}
	if record.CadastralCost != 0 {
		t.Errorf("Expected negative cost to be clamped to 0, got %f", record.CadastralCost)
	}
	if record.Estimated {
		t.Error("Expected record from upstream data not to be estimated")
	}
}

func TestNewParcelRecordDropsNonFinite(t *testing.T) {
	record := NewParcelRecord("77:01:0001001:5", 4, math.NaN(), math.Inf(1), "c", "a")
	if record.Area != 0 || record.CadastralCost != 0 {
		t.Errorf("Expected non-finite values to become 0, got area=%v cost=%v", record.Area, record.CadastralCost)
	}
	if _, err := json.Marshal(ParcelBody{ParcelRecord: record}); err != nil {
		t.Errorf("Expected record to encode, got %v", err)
	}
}

func TestWithEstimatedPointsCopies(t *testing.T) {
	original := NewParcelRecord("77:01:0001001:5", 0, 500, 1000, "cat", "addr")
	estimated := original.WithEstimatedPoints(13)

	if original.PointsCount != 0 || original.Estimated {
		t.Error("Expected original record to stay unchanged")
	}
	if estimated.PointsCount != 13 || !estimated.Estimated {
		t.Errorf("Expected estimated copy with 13 points, got %+v", estimated)
	}
	if estimated.Area != 500 || estimated.Address != "addr" {
		t.Errorf("Expected attributes to be preserved, got %+v", estimated)
	}
}

func TestParcelBodyJSON(t *testing.T) {
	t.Run("omits estimated and error when unset", func(t *testing.T) {
		body := ParcelBody{ParcelRecord: NewParcelRecord("1:2:3:4", 4, 1, 2, "c", "a")}
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if strings.Contains(string(data), "estimated") || strings.Contains(string(data), "error") {
			t.Errorf("Expected no estimated/error keys, got %s", data)
		}
	})

	t.Run("includes diagnostics for estimates", func(t *testing.T) {
		body := ParcelBody{ParcelRecord: NewEstimatedParcel("1:2:3:4", 8), Error: "timeout"}
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if decoded["estimated"] != true {
			t.Errorf("Expected estimated=true, got %v", decoded["estimated"])
		}
		if decoded["error"] != "timeout" {
			t.Errorf("Expected error=timeout, got %v", decoded["error"])
		}
		if decoded["pointsCount"] != float64(8) {
			t.Errorf("Expected pointsCount=8, got %v", decoded["pointsCount"])
		}
	})
}

func TestLookupQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]string
		wantErr error
	}{
		{"present", map[string]string{"cadastralNumber": "77:01:0001001:5"}, nil},
		{"missing", map[string]string{}, ErrMissingCadastralNumber},
		{"nil params", nil, ErrMissingCadastralNumber},
		{"empty", map[string]string{"cadastralNumber": ""}, ErrMissingCadastralNumber},
		{"whitespace only", map[string]string{"cadastralNumber": "   "}, ErrMissingCadastralNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLookupQuery(tt.params).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeCadastralNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"77:01:0001001:5", "77:01:0001001:5"},
		{"  77:01:0001001:5\n", "77:01:0001001:5"},
		{"77：01：0001001：5", "77:01:0001001:5"},
	}
	for _, tt := range tests {
		if got := NormalizeCadastralNumber(tt.input); got != tt.want {
			t.Errorf("NormalizeCadastralNumber(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
