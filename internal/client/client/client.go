package client

import (
	"context"

	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
)

// Client talks to the sync endpoint, one request per call.
//
// Errors:
//   - *TransportError (ErrTransport): the server was never reached or did not
//     answer in time; the identical request may be retried.
//   - *MalformedResponseError (ErrMalformedResponse): the server answered with a
//     non-2xx status or a body that is not a valid envelope.
//   - any other error: the request could not be built and nothing was sent.
type Client interface {
	// Fetch requests a full snapshot of the given collections.
	Fetch(ctx context.Context, kinds []models.Kind) (*models.Envelope, error)
	// FetchSince requests the changes made after syncToken.
	FetchSince(ctx context.Context, syncToken string, kinds []models.Kind) (*models.Envelope, error)
	// Apply sends commands in order. An empty syncToken makes the write unconditional.
	Apply(ctx context.Context, kinds []models.Kind, syncToken string, commands []command.Command) (*models.Envelope, error)
}
