package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultAPITimeout <= 0 {
		t.Fatalf("DefaultAPITimeout must be positive")
	}
	if ToastDuration <= 0 {
		t.Fatalf("ToastDuration must be positive")
	}
	if AppName == "" || DBFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if SettingSelectedGroup == "" {
		t.Fatalf("SettingSelectedGroup should not be empty")
	}
	if SidebarWidth >= CompactModeThreshold {
		t.Fatalf("sidebar must fit below the compact threshold")
	}
}
