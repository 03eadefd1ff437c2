package config

import (
	"reflect"
	"testing"
)

func TestAssembleFromEnv(t *testing.T) {
	t.Setenv(EnvChannel, "#ci")
	t.Setenv(EnvMaxFileSize, "50MB")
	t.Setenv(EnvConfirm, "1")
	t.Setenv(EnvSearchTypes, "public_channel,private_channel")
	t.Setenv(EnvOutput, "json")

	settings, err := AssembleFromEnv()
	if err != nil {
		t.Fatalf("AssembleFromEnv failed: %v", err)
	}

	if settings.Channel != "#ci" {
		t.Errorf("Channel = %q, want %q", settings.Channel, "#ci")
	}
	if settings.MaxFileSize != 50*MB {
		t.Errorf("MaxFileSize = %d, want %d", settings.MaxFileSize, 50*MB)
	}
	if !settings.Confirm {
		t.Error("Confirm = false, want true")
	}
	if !reflect.DeepEqual(settings.SearchTypes, []string{"public_channel", "private_channel"}) {
		t.Errorf("SearchTypes = %v", settings.SearchTypes)
	}
	if settings.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", settings.Output, OutputJSON)
	}
}

// 未設定のフィールドは通常モードと同じ既定値に落ちる
func TestAssembleFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvChannel, "")
	t.Setenv(EnvMaxFileSize, "")
	t.Setenv(EnvConfirm, "")
	t.Setenv(EnvSearchTypes, "")
	t.Setenv(EnvOutput, "")

	settings, err := AssembleFromEnv()
	if err != nil {
		t.Fatalf("AssembleFromEnv failed: %v", err)
	}

	// channel 未設定はここではエラーにならない（送信解決時に検査される）
	if settings.Channel != "" {
		t.Errorf("Channel = %q, want empty", settings.Channel)
	}
	if settings.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want %d", settings.MaxFileSize, DefaultMaxFileSize)
	}
	if settings.Confirm {
		t.Error("Confirm = true, want false")
	}
	if settings.SearchTypes != nil {
		t.Errorf("SearchTypes = %v, want nil", settings.SearchTypes)
	}
	if settings.Output != "" {
		t.Errorf("Output = %q, want empty", settings.Output)
	}
}

func TestAssembleFromEnvInvalid(t *testing.T) {
	t.Setenv(EnvChannel, "#ci")
	t.Setenv(EnvOutput, "xml")

	if _, err := AssembleFromEnv(); err == nil {
		t.Error("AssembleFromEnv should fail for invalid output")
	}
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		flag bool
		env  string
		want Mode
	}{
		{"neither", false, "", ModeNormal},
		{"flag", true, "", ModeHeadless},
		{"env 1", false, "1", ModeHeadless},
		{"env true", false, "true", ModeHeadless},
		{"env 0", false, "0", ModeNormal},
		{"env false", false, "false", ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvHeadless, tt.env)

			if got := DetectMode(tt.flag); got != tt.want {
				t.Errorf("DetectMode(%v) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}
