package ipc

import "os"

// Controller is what the socket server needs from a running slideshow. It
// is implemented by the cli layer on top of playback.Loop, so this package
// stays ignorant of how playback is driven.
type Controller interface {
	CurrentSource() string
	RequestNext()
	RequestStop()
}

// Response is the generic reply for command endpoints.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Version      string `json:"version"`
	PID          int    `json:"pid"`
	Socket       string `json:"socket"`
	Config       string `json:"config"`
	CurrentImage string `json:"current_image"`
}

// SocketPath is where the control socket lives, preferring the user
// runtime dir.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return sockDir + "/fbslide.sock"
}
