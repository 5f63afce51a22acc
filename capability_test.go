package showcase

import "testing"

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		touch   bool
		prefers bool
		want    DeviceProfile
	}{
		{"desktop", 1440, false, false, DeviceProfile{Tier: TierDesktop}},
		{"desktop prefers reduced", 1440, false, true, DeviceProfile{Tier: TierDesktop, ReducedMotion: true}},
		{"desktop touch", 1440, true, false, DeviceProfile{Tier: TierDesktop, Touch: true, ReducedMotion: true}},
		{"tablet", 1024, false, false, DeviceProfile{Tier: TierTablet, ReducedMotion: true}},
		{"mobile", 390, true, false, DeviceProfile{Tier: TierMobile, Touch: true, ReducedMotion: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectProfile(tt.width, tt.touch, tt.prefers); got != tt.want {
				t.Errorf("DetectProfile(%d, %v, %v) = %+v, want %+v", tt.width, tt.touch, tt.prefers, got, tt.want)
			}
		})
	}
}
