package ai

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Fixed replies returned in text mode when the upstream call fails.
const (
	ReplyMisconfigured = "Server misconfiguration. Try again later."
	ReplyServiceFailed = "AI service failed. Try again later."
	ReplyGenericError  = "Something went wrong. Please try again."
)

// Gateway applies the no-raise failure contract on top of a Completer:
// failures are logged and collapse to a sentinel, never to an error.
type Gateway struct {
	completer Completer
}

func NewGateway(completer Completer) *Gateway {
	return &Gateway{completer: completer}
}

// Text returns the trimmed reply, or a fixed apology when the call fails.
func (g *Gateway) Text(ctx context.Context, prompt string) string {
	reply, err := g.completer.Complete(ctx, prompt)
	if err == nil {
		return reply
	}

	logFailure(err, "text")
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return ReplyMisconfigured
	case StatusCode(err) != 0:
		return ReplyServiceFailed
	default:
		return ReplyGenericError
	}
}

// JSON returns the normalized reply. A failed call yields an empty ReasonUpstream result.
func (g *Gateway) JSON(ctx context.Context, prompt string) Result {
	reply, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		logFailure(err, "json")
		return failed(ReasonUpstream, err)
	}

	res := Normalize(reply)
	if !res.OK() {
		log.Warn().Err(res.Err).Str("reason", res.Reason.String()).Int("reply_len", len(reply)).
			Msg("AI Gateway: could not normalize reply")
	}
	return res
}

func logFailure(err error, mode string) {
	evt := log.Error().Err(err).Str("mode", mode)
	if code := StatusCode(err); code != 0 {
		evt = evt.Int("status", code)
	}
	evt.Msg("AI Gateway: completion failed")
}
