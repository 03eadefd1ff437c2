package profile

import (
	"errors"
	"testing"

	"github.com/slafling/slafling/internal/config"
)

func TestValidate(t *testing.T) {
	valid := []string{"default", "work", "my-team", "team_2", "日本語"}
	for _, name := range valid {
		if err := Validate(name); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"a/b",
		`a\b`,
		"../etc",
		"..",
		"work..",
		"a\x00b",
	}
	for _, name := range invalid {
		err := Validate(name)
		var bad *InvalidNameError
		if !errors.As(err, &bad) {
			t.Errorf("Validate(%q) = %v, want InvalidNameError", name, err)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv(config.EnvProfile, "from-env")

	// フラグが環境変数に勝つ
	name, err := Resolve("from-flag")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if name != "from-flag" {
		t.Errorf("Resolve = %q, want %q", name, "from-flag")
	}

	// フラグなしなら環境変数
	name, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if name != "from-env" {
		t.Errorf("Resolve = %q, want %q", name, "from-env")
	}
}

func TestResolveNone(t *testing.T) {
	t.Setenv(config.EnvProfile, "")

	name, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if name != "" {
		t.Errorf("Resolve = %q, want empty (use default)", name)
	}
}

// 不正な名前は環境変数経由でも拒否される
func TestResolveInvalidFromEnv(t *testing.T) {
	t.Setenv(config.EnvProfile, "../steal")

	_, err := Resolve("")
	var bad *InvalidNameError
	if !errors.As(err, &bad) {
		t.Fatalf("Resolve = %v, want InvalidNameError", err)
	}
}
