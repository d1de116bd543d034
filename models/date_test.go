package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2024-01-05", want: "2024-01-05"},
		{name: "date with trailing Z", input: "2024-01-05Z", want: "2024-01-05"},
		{name: "datetime with Z truncates time", input: "2024-01-05T23:59:59Z", want: "2024-01-05"},
		{name: "datetime with offset normalizes to UTC first", input: "2024-01-06T01:30:00+02:00", want: "2024-01-05"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "wrong ordering", input: "05-01-2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateFromUnix(t *testing.T) {
	// 2024-01-05T22:15:04Z: the time of day must be discarded in UTC,
	// not in server-local time.
	d := DateFromUnix(1704492904)
	if d.String() != "2024-01-05" {
		t.Errorf("DateFromUnix = %s, want 2024-01-05", d)
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("DateFromUnix kept time of day: %02d:%02d:%02d", h, m, s)
	}
	if d.Location() != time.UTC {
		t.Errorf("DateFromUnix location = %v, want UTC", d.Location())
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	var payload struct {
		Start Date `json:"start"`
	}
	if err := json.Unmarshal([]byte(`{"start":"2024-03-09T12:00:00Z"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"start":"2024-03-09"}` {
		t.Errorf("marshal = %s, want {\"start\":\"2024-03-09\"}", out)
	}
}
