package httpapi

import "testing"

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(1234)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
}

func TestSetThemeTimeoutSeconds_NormalizesNegativeToZero(t *testing.T) {
	SetThemeTimeoutSeconds(-5)
	if themeTimeout != 0 {
		t.Fatalf("expected 0, got %d", themeTimeout)
	}
	SetThemeTimeoutSeconds(3)
	if themeTimeout != 3 {
		t.Fatalf("expected 3, got %d", themeTimeout)
	}
	SetThemeTimeoutSeconds(0)
}

func TestSetCORSOptions_Copies(t *testing.T) {
	origins := []string{"https://a.example"}
	SetCORSOptions(true, origins, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)
	origins[0] = "mutated"
	if !corsEnabled || corsAllowedOrigins[0] != "https://a.example" {
		t.Fatalf("cors options not copied: %v %v", corsEnabled, corsAllowedOrigins)
	}
}
