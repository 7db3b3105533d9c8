package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()

	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", path)
			},
		},
	})

	client.SetBaseURL("http://fbslide")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "fbslide")

	return client
}

// SendStatus fetches the running slideshow's status over the control
// socket.
func SendStatus() (*StatusResponse, error) {
	result := StatusResponse{}

	response, err := newClient().R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching status: %s", response.Status())
	}

	return &result, nil
}

// SendNext asks the running slideshow to advance to the next image.
func SendNext() error { return post("/next") }

// SendStop asks the running slideshow to shut down.
func SendStop() error { return post("/stop") }

func post(route string) error {
	result := Response{}

	response, err := newClient().R().SetResult(&result).Post(route)
	if err != nil {
		return err
	}
	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("error sending command: %s", response.Status())
	}

	return nil
}
