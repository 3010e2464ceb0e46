package platform

import "time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender where the platform shows it.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays visible; 0 uses the
	// platform default.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "StickerSketch"
	}
	return o.AppName
}
