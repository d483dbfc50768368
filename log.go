package vpnhost

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

func init() {
	l := zerolog.New(io.Discard)
	ProxyLogger.Store(&l)
}

// ProxyLogger emits the log record for hostname checks.
// Embedding servers replace it with their own logger.
var ProxyLogger atomic.Pointer[zerolog.Logger]

// SessionIDCtxKey is the context.Context key for a VPN session id.
// The embedding server sets it on the context passed to Checker.Check;
// the vpnhost check command sets it to the position of each input.
type SessionIDCtxKey struct{}

// Log emits the logs for a particular zerolog event.
// The session id associated with the context will be included if presents.
func Log(ctx context.Context, e *zerolog.Event, format string, v ...any) {
	id, ok := ctx.Value(SessionIDCtxKey{}).(string)
	if !ok {
		e.Msgf(format, v...)
		return
	}
	e.MsgFunc(func() string {
		return fmt.Sprintf("[%s] %s", id, fmt.Sprintf(format, v...))
	})
}
