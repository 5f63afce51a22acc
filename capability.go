package showcase

import "runtime"

// DeviceProfile describes what the current device can afford. It is computed
// once at startup and handed to every component that animates, instead of
// each component guessing on its own.
type DeviceProfile struct {
	Tier          Tier
	Touch         bool
	ReducedMotion bool
}

// DetectProfile derives a profile from the startup viewport width, whether
// the device is touch-first, and an explicit reduced-motion preference.
// Touch devices and anything up to tablet width get reduced motion.
func DetectProfile(width int, touch, prefersReducedMotion bool) DeviceProfile {
	tier := TierForWidth(width)
	return DeviceProfile{
		Tier:          tier,
		Touch:         touch,
		ReducedMotion: prefersReducedMotion || touch || tier <= TierTablet,
	}
}

// TouchFirst reports whether the build target is a touch-first platform.
func TouchFirst() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}
