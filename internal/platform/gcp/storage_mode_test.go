package gcp

import (
	"strings"
	"testing"
)

func TestResolveObjectStorageConfigFromEnv(t *testing.T) {
	cases := []struct {
		name     string
		env      map[string]string
		wantMode ObjectStorageMode
		wantErr  string
	}{
		{
			name:     "default_gcs",
			env:      map[string]string{"SLIDES_GCS_BUCKET": "slides"},
			wantMode: ObjectStorageModeGCS,
		},
		{
			name:     "emulator_from_host",
			env:      map[string]string{"SLIDES_GCS_BUCKET": "slides", "STORAGE_EMULATOR_HOST": "http://fake-gcs:4443"},
			wantMode: ObjectStorageModeGCSEmulator,
		},
		{
			name:    "emulator_without_host",
			env:     map[string]string{"SLIDES_GCS_BUCKET": "slides", "OBJECT_STORAGE_MODE": "gcs_emulator"},
			wantErr: "requires STORAGE_EMULATOR_HOST",
		},
		{
			name:    "bad_mode",
			env:     map[string]string{"SLIDES_GCS_BUCKET": "slides", "OBJECT_STORAGE_MODE": "s3"},
			wantErr: "invalid OBJECT_STORAGE_MODE",
		},
		{
			name:    "missing_bucket",
			env:     map[string]string{},
			wantErr: "SLIDES_GCS_BUCKET",
		},
		{
			name:    "relative_emulator_host",
			env:     map[string]string{"SLIDES_GCS_BUCKET": "slides", "OBJECT_STORAGE_MODE": "gcs_emulator", "STORAGE_EMULATOR_HOST": "fake-gcs"},
			wantErr: "invalid STORAGE_EMULATOR_HOST",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"SLIDES_GCS_BUCKET", "SLIDES_GCS_PREFIX", "OBJECT_STORAGE_MODE", "STORAGE_EMULATOR_HOST", "OBJECT_STORAGE_PUBLIC_BASE_URL"} {
				t.Setenv(k, tc.env[k])
			}
			cfg, err := ResolveObjectStorageConfigFromEnv()
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err: want contains %q got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if cfg.Mode != tc.wantMode {
				t.Fatalf("Mode: want=%q got=%q", tc.wantMode, cfg.Mode)
			}
		})
	}
}

func TestPublicObjectURL(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		cfg  ObjectStorageConfig
		key  string
		want string
	}{
		{
			name: "gcs",
			cfg:  ObjectStorageConfig{Mode: ObjectStorageModeGCS, Bucket: "slides", Prefix: "ve/"},
			key:  "book1/01 I A.png",
			want: "https://storage.googleapis.com/slides/ve/book1/01%20I%20A.png",
		},
		{
			name: "emulator",
			cfg:  ObjectStorageConfig{Mode: ObjectStorageModeGCSEmulator, EmulatorHost: "http://localhost:4443", Bucket: "slides"},
			key:  "book1/a.png",
			want: "http://localhost:4443/storage/v1/b/slides/o/book1%2Fa.png?alt=media",
		},
		{
			name: "public_base",
			cfg:  ObjectStorageConfig{Mode: ObjectStorageModeGCS, Bucket: "slides", PublicBaseURL: "http://cdn.local"},
			key:  "/a b.png",
			want: "http://cdn.local/slides/a%20b.png",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicObjectURL(tc.cfg, tc.key); got != tc.want {
				t.Fatalf("want=%q got=%q", tc.want, got)
			}
		})
	}
}
