package storage

import (
	"errors"
	"testing"

	"telegram-object-detection/internal/domain"
)

func TestParseURI(t *testing.T) {
	cases := []struct {
		name    string
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{name: "full uri", uri: "s3://other-bucket/predictions/img.jpg", bucket: "other-bucket", key: "predictions/img.jpg"},
		{name: "bare key", uri: "predictions/img.jpg", bucket: "default", key: "predictions/img.jpg"},
		{name: "leading slash key", uri: "/predictions/img.jpg", bucket: "default", key: "predictions/img.jpg"},
		{name: "empty", uri: "", wantErr: true},
		{name: "missing key", uri: "s3://bucket", wantErr: true},
		{name: "missing bucket", uri: "s3:///img.jpg", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bucket, key, err := ParseURI(tc.uri, "default")
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument for %q, got %v", tc.uri, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bucket != tc.bucket || key != tc.key {
				t.Fatalf("got (%q, %q), want (%q, %q)", bucket, key, tc.bucket, tc.key)
			}
		})
	}
}
